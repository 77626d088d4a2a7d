// Package speech provides Speaker implementations for the bot.
package speech

import (
	"go.uber.org/zap"
)

// LogSpeaker records speech requests in the log. Telegram has no speech
// synthesis, so the request is only traced.
type LogSpeaker struct {
	logger *zap.Logger
}

// NewLogSpeaker creates a speaker that logs at debug level
func NewLogSpeaker(logger *zap.Logger) *LogSpeaker {
	return &LogSpeaker{logger: logger}
}

// Speak logs the request and returns immediately
func (s *LogSpeaker) Speak(text, locale string) {
	s.logger.Debug("Speech requested",
		zap.String("text", text),
		zap.String("locale", locale),
	)
}

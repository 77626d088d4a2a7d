package handler

import (
	"emaster/internal/domain"
	"emaster/internal/middleware"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	unlock := h.locks.Lock(userID)
	defer unlock()

	h.leaveFlow(userID)
	if !h.authorized(c) {
		return c.Send(passwordPrompt)
	}
	return c.Send(mainMenuText, mainMenuMarkup())
}

// authorized reads the flag set by the auth middleware, asking the service
// when the middleware did not run
func (h *Handler) authorized(c tele.Context) bool {
	if v, ok := c.Get(middleware.AuthorizedKey).(bool); ok {
		return v
	}

	authorized, err := h.authService.IsAuthorized(c.Sender().ID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return false
	}
	return authorized
}

// handleMainMenu leaves any flow and shows the main menu
func (h *Handler) handleMainMenu(c tele.Context) error {
	userID := c.Sender().ID

	h.leaveFlow(userID)
	return h.show(c, mainMenuText, mainMenuMarkup())
}

// leaveFlow resets the user to idle. Only "End quiz" records a session;
// a quiz left through navigation is dropped.
func (h *Handler) leaveFlow(userID int64) {
	if h.GetState(userID).State == domain.StateInQuiz {
		h.logger.Info("Quiz abandoned", zap.Int64("user_id", userID))
	}
	h.ResetState(userID)
}

// handleStats shows per-section statistics
func (h *Handler) handleStats(c tele.Context) error {
	userID := c.Sender().ID

	summaries, err := h.statsService.Summaries(userID)
	if err != nil {
		return alert(c, genericErrorText)
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnMainMenu))
	return h.show(c, renderStats(summaries), markup)
}

func (h *Handler) handleStatsCommand(c tele.Context) error {
	unlock := h.locks.Lock(c.Sender().ID)
	defer unlock()

	if !h.authorized(c) {
		return c.Send(passwordPrompt)
	}
	return h.handleStats(c)
}

func (h *Handler) handleHistoryCommand(c tele.Context) error {
	unlock := h.locks.Lock(c.Sender().ID)
	defer unlock()

	if !h.authorized(c) {
		return c.Send(passwordPrompt)
	}
	return h.handleHistory(c, "1")
}

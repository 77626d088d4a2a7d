package quiz

// Speaker reads text aloud. Calls are fire-and-forget: the engine never
// waits for or inspects the outcome.
type Speaker interface {
	Speak(text, locale string)
}

// NopSpeaker ignores every request
type NopSpeaker struct{}

// Speak does nothing
func (NopSpeaker) Speak(string, string) {}

// EnglishLocale is the locale requested for English prompts
const EnglishLocale = "en-US"

package handler

import (
	"strings"

	"emaster/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	unlock := h.locks.Lock(userID)
	defer unlock()

	if !h.authorized(c) {
		return h.handlePassword(c, text)
	}

	st := h.GetState(userID)
	switch st.State {
	case domain.StateWaitingRanges:
		return h.applyRanges(c, st, text)
	case domain.StateWaitingSearch:
		return h.applySearch(c, st, text)
	case domain.StateInQuiz:
		return h.submitText(c, st, text)
	}

	return c.Send(mainMenuText, mainMenuMarkup())
}

// handlePassword treats text from an unauthorized user as a password attempt
func (h *Handler) handlePassword(c tele.Context, text string) error {
	userID := c.Sender().ID

	if !h.authService.CheckPassword(text) {
		h.logger.Info("Wrong password", zap.Int64("user_id", userID))
		return c.Send("❌ Wrong password.")
	}

	if err := h.authService.AuthorizeUser(userID); err != nil {
		h.logger.Error("Failed to authorize user", zap.Error(err))
		return c.Send(genericErrorText)
	}

	h.logger.Info("User authorized", zap.Int64("user_id", userID))
	h.ResetState(userID)
	return c.Send("✅ Access granted!\n\n"+mainMenuText, mainMenuMarkup())
}

package handler

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Callback actions. Buttons carry "action" or "action|payload".
const (
	cbMenu                = "menu"
	cbCancel              = "cancel"
	cbSection             = "sec"
	cbCategory            = "cat"
	cbRanges              = "rng"
	cbRangesClear         = "rngclr"
	cbQuiz                = "quiz"
	cbReview              = "rev"
	cbRandom              = "rnd"
	cbType                = "type"
	cbOrder               = "ord"
	cbAnswer              = "ans"
	cbHint                = "hint"
	cbNext                = "next"
	cbEnd                 = "end"
	cbWords               = "wl"
	cbWordsSort           = "wlsort"
	cbWordsMistakes       = "wlmis"
	cbWordsSearch         = "wls"
	cbWordsSearchClear    = "wlsclr"
	cbReset               = "reset"
	cbResetConfirm        = "resetok"
	cbStats               = "stats"
	cbHistory             = "hist"
	cbHistoryDetail       = "hdet"
	cbHistoryCSV          = "hcsv"
	cbHistoryDetailCSV    = "hdcsv"
	cbHistoryClear        = "hclr"
	cbHistoryClearConfirm = "hclrok"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// parseCallback splits cleaned callback data into action and payload
func parseCallback(data string) (action, payload string) {
	action, payload, _ = strings.Cut(data, "|")
	return strings.TrimSpace(action), strings.TrimSpace(payload)
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// the message already shows this content, e.g. after a double tap
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// show edits the message behind a callback, or sends a new one for commands
// and text replies
func (h *Handler) show(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// alert answers a callback with a popup, or sends a plain message otherwise
func alert(c tele.Context, text string) error {
	if c.Callback() == nil {
		return c.Send(text)
	}
	return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	userID := c.Sender().ID
	unlock := h.locks.Lock(userID)
	defer unlock()

	data := cleanCallbackData(callback.Data)
	action, payload := parseCallback(data)

	h.logger.Debug("Processing callback",
		zap.String("action", action),
		zap.String("payload", payload),
		zap.String("id", callback.ID),
		zap.Int64("user_id", userID),
	)

	switch action {
	case cbMenu, cbCancel:
		return h.handleMainMenu(c)
	case cbStats:
		return h.handleStats(c)

	case cbSection:
		return h.handleSection(c, payload)
	case cbCategory:
		return h.handleCategory(c, payload)
	case cbRanges:
		return h.handleRangesPrompt(c)
	case cbRangesClear:
		return h.handleRangesClear(c)
	case cbReset:
		return h.handleResetPrompt(c)
	case cbResetConfirm:
		return h.handleResetConfirm(c)

	case cbWords:
		return h.handleWordList(c, payload)
	case cbWordsSort:
		return h.handleWordSort(c)
	case cbWordsMistakes:
		return h.handleWordMistakes(c)
	case cbWordsSearch:
		return h.handleWordSearchPrompt(c)
	case cbWordsSearchClear:
		return h.handleWordSearchClear(c)

	case cbQuiz:
		return h.handleQuizSetup(c, false)
	case cbReview:
		return h.handleQuizSetup(c, true)
	case cbRandom:
		return h.handleRandomQuiz(c)
	case cbType:
		return h.handleQuizType(c, payload)
	case cbOrder:
		return h.handleQuizOrder(c, payload)
	case cbAnswer:
		return h.handleAnswerButton(c, payload)
	case cbHint:
		return h.handleHint(c, payload)
	case cbNext:
		return h.handleNext(c)
	case cbEnd:
		return h.handleEnd(c)

	case cbHistory:
		return h.handleHistory(c, payload)
	case cbHistoryDetail:
		return h.handleHistoryDetail(c, payload)
	case cbHistoryCSV:
		return h.handleHistoryCSV(c)
	case cbHistoryDetailCSV:
		return h.handleHistoryDetailCSV(c, payload)
	case cbHistoryClear:
		return h.handleHistoryClearPrompt(c)
	case cbHistoryClearConfirm:
		return h.handleHistoryClearConfirm(c)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.Int64("user_id", userID),
	)
	return c.Respond()
}

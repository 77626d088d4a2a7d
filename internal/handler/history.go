package handler

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"emaster/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleHistory shows one page of past sessions
func (h *Handler) handleHistory(c tele.Context, payload string) error {
	userID := c.Sender().ID

	page, err := strconv.Atoi(payload)
	if err != nil || page < 1 {
		page = 1
	}

	records, totalPages, err := h.historyService.Page(userID, page)
	if err != nil {
		h.logger.Error("Failed to get history page", zap.Int64("user_id", userID), zap.Error(err))
		return alert(c, genericErrorText)
	}

	if len(records) == 0 && page > 1 {
		return c.Respond(&tele.CallbackResponse{Text: "No more sessions"})
	}

	text := renderHistoryList(records, page, totalPages)
	return h.show(c, text, historyMarkup(records, page, totalPages, h.now()))
}

func (h *Handler) handleHistoryDetail(c tele.Context, id string) error {
	userID := c.Sender().ID

	record, err := h.historyService.Get(userID, id)
	if errors.Is(err, domain.ErrHistoryNotFound) {
		return alert(c, "This session was deleted")
	}
	if err != nil {
		h.logger.Error("Failed to get history record",
			zap.Int64("user_id", userID),
			zap.String("record_id", id),
			zap.Error(err),
		)
		return alert(c, genericErrorText)
	}

	text := truncate(renderHistoryDetail(*record, h.now()), maxMessageRunes)
	return h.show(c, text, historyDetailMarkup(record.ID))
}

// handleHistoryCSV sends the summary of all sessions as a document
func (h *Handler) handleHistoryCSV(c tele.Context) error {
	userID := c.Sender().ID

	data, err := h.historyService.SummaryCSV(userID)
	if err != nil {
		h.logger.Error("Failed to export history", zap.Int64("user_id", userID), zap.Error(err))
		return alert(c, genericErrorText)
	}

	return h.sendCSV(c, data, "history.csv")
}

// handleHistoryDetailCSV sends the answers of one session as a document
func (h *Handler) handleHistoryDetailCSV(c tele.Context, id string) error {
	userID := c.Sender().ID

	data, err := h.historyService.DetailCSV(userID, id)
	if errors.Is(err, domain.ErrHistoryNotFound) {
		return alert(c, "This session was deleted")
	}
	if err != nil {
		h.logger.Error("Failed to export history record",
			zap.Int64("user_id", userID),
			zap.String("record_id", id),
			zap.Error(err),
		)
		return alert(c, genericErrorText)
	}

	return h.sendCSV(c, data, fmt.Sprintf("history-%s.csv", id))
}

func (h *Handler) sendCSV(c tele.Context, data []byte, name string) error {
	if c.Callback() != nil {
		if err := c.Respond(); err != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}
	}

	doc := &tele.Document{
		File:     tele.FromReader(bytes.NewReader(data)),
		FileName: name,
		MIME:     "text/csv",
	}
	return c.Send(doc)
}

func (h *Handler) handleHistoryClearPrompt(c tele.Context) error {
	return h.show(c, "🗑 Delete the whole quiz history?\nThis cannot be undone.", confirmMarkup(cbHistoryClearConfirm, cbHistory, "1"))
}

func (h *Handler) handleHistoryClearConfirm(c tele.Context) error {
	userID := c.Sender().ID

	if err := h.historyService.Clear(userID); err != nil {
		h.logger.Error("Failed to clear history", zap.Int64("user_id", userID), zap.Error(err))
		return alert(c, genericErrorText)
	}

	return h.handleHistory(c, "1")
}

package handler

import (
	"fmt"
	"strconv"

	"emaster/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleSection opens the menu of a section
func (h *Handler) handleSection(c tele.Context, payload string) error {
	userID := c.Sender().ID

	section := domain.Section(payload)
	if !section.Valid() {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown section"})
	}

	h.leaveFlow(userID)
	st := h.GetState(userID)
	if st.Section != section {
		st.Section = section
		st.Category = ""
		st.Ranges = nil
		st.Search = ""
		st.MistakesOnly = false
	}

	return h.show(c, renderSectionMenu(st), sectionMarkup(st))
}

// handleCategory narrows SCRAMBLE to one category, or "ALL"
func (h *Handler) handleCategory(c tele.Context, code string) error {
	st := h.GetState(c.Sender().ID)
	if st.Section != domain.SectionScramble {
		return c.Respond()
	}

	if code == "ALL" {
		st.Category = ""
	} else {
		category, ok := domain.CategoryFromCode(code)
		if !ok {
			return c.Respond(&tele.CallbackResponse{Text: "Unknown category"})
		}
		st.Category = category
	}

	return h.show(c, renderSectionMenu(st), sectionMarkup(st))
}

func (h *Handler) handleRangesPrompt(c tele.Context) error {
	st := h.GetState(c.Sender().ID)
	if st.Section == "" {
		return h.handleMainMenu(c)
	}

	st.State = domain.StateWaitingRanges
	return h.show(c, "🎯 Send the id ranges to practise, for example:\n1-50, 80-90", cancelMarkup())
}

func (h *Handler) handleRangesClear(c tele.Context) error {
	st := h.GetState(c.Sender().ID)
	st.Ranges = nil
	return h.show(c, renderSectionMenu(st), sectionMarkup(st))
}

// applyRanges handles the text reply to the ranges prompt
func (h *Handler) applyRanges(c tele.Context, st *chatState, text string) error {
	ranges, err := parseRanges(text)
	if err != nil {
		return c.Send(fmt.Sprintf("⚠️ %v\n\nUse the form 1-50, 80-90 or press Cancel.", err), cancelMarkup())
	}

	st.Ranges = ranges
	st.State = domain.StateIdle
	return c.Send(renderSectionMenu(st), sectionMarkup(st))
}

func (h *Handler) handleResetPrompt(c tele.Context) error {
	st := h.GetState(c.Sender().ID)
	if st.Section == "" {
		return h.handleMainMenu(c)
	}

	text := fmt.Sprintf("♻️ Reset all statistics of %s?\nThis cannot be undone.", sectionTitle(st.Section))
	return h.show(c, text, confirmMarkup(cbResetConfirm, cbSection, string(st.Section)))
}

func (h *Handler) handleResetConfirm(c tele.Context) error {
	userID := c.Sender().ID
	st := h.GetState(userID)
	if st.Section == "" {
		return h.handleMainMenu(c)
	}

	n, err := h.wordService.ResetStats(userID, st.Section)
	if err != nil {
		h.logger.Error("Failed to reset stats", zap.Int64("user_id", userID), zap.Error(err))
		return alert(c, genericErrorText)
	}

	if err := c.Respond(&tele.CallbackResponse{Text: fmt.Sprintf("Statistics of %d words reset", n)}); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return h.editOrSend(c, renderSectionMenu(st), sectionMarkup(st))
}

// editOrSend replaces the callback message after the callback was answered
func (h *Handler) editOrSend(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() != nil {
		if err := c.Edit(text, markup); err == nil {
			return nil
		}
	}
	return c.Send(text, markup)
}

// handleWordList shows one page of the filtered word list
func (h *Handler) handleWordList(c tele.Context, payload string) error {
	userID := c.Sender().ID
	st := h.GetState(userID)
	if st.Section == "" {
		return h.handleMainMenu(c)
	}

	page, err := strconv.Atoi(payload)
	if err != nil {
		page = 1
	}

	words, err := h.wordService.List(userID, st.filter())
	if err != nil {
		h.logger.Error("Failed to list words", zap.Int64("user_id", userID), zap.Error(err))
		return alert(c, genericErrorText)
	}

	shown, page, totalPages := pageOf(words, page, wordsPageSize)
	return h.show(c, renderWordList(shown, st, page, totalPages, len(words)), wordListMarkup(st, page, totalPages))
}

func (h *Handler) handleWordSort(c tele.Context) error {
	st := h.GetState(c.Sender().ID)
	st.SortBy = nextSortKey(st.SortBy)
	return h.handleWordList(c, "1")
}

func (h *Handler) handleWordMistakes(c tele.Context) error {
	st := h.GetState(c.Sender().ID)
	st.MistakesOnly = !st.MistakesOnly
	return h.handleWordList(c, "1")
}

func (h *Handler) handleWordSearchPrompt(c tele.Context) error {
	st := h.GetState(c.Sender().ID)
	if st.Section == "" {
		return h.handleMainMenu(c)
	}

	st.State = domain.StateWaitingSearch
	return h.show(c, "🔍 Send a word or part of it, in English or Japanese:", cancelMarkup())
}

func (h *Handler) handleWordSearchClear(c tele.Context) error {
	st := h.GetState(c.Sender().ID)
	st.Search = ""
	return h.handleWordList(c, "1")
}

// applySearch handles the text reply to the search prompt
func (h *Handler) applySearch(c tele.Context, st *chatState, text string) error {
	st.Search = text
	st.State = domain.StateIdle
	return h.handleWordList(c, "1")
}

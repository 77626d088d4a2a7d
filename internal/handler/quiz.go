package handler

import (
	"errors"
	"strconv"
	"strings"

	"emaster/internal/domain"
	"emaster/internal/quiz"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleQuizSetup starts the type and order pickers
func (h *Handler) handleQuizSetup(c tele.Context, review bool) error {
	st := h.GetState(c.Sender().ID)
	if st.Section == "" {
		return h.handleMainMenu(c)
	}

	st.Review = review
	st.QuizType = ""
	return h.show(c, renderQuizSetup(st), quizTypeMarkup(st.Section))
}

func (h *Handler) handleQuizType(c tele.Context, payload string) error {
	st := h.GetState(c.Sender().ID)
	if st.Section == "" {
		return h.handleMainMenu(c)
	}

	t := domain.QuizType(payload)
	if !t.Valid() {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown quiz type"})
	}

	st.QuizType = t
	return h.show(c, renderQuizSetup(st), orderMarkup(st.Section))
}

func (h *Handler) handleQuizOrder(c tele.Context, payload string) error {
	st := h.GetState(c.Sender().ID)
	if st.Section == "" || st.QuizType == "" {
		return h.handleMainMenu(c)
	}

	order := domain.SortOrder(payload)
	if !order.Valid() {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown order"})
	}

	return h.startQuiz(c, st, st.quizConfig(st.QuizType, order))
}

// handleRandomQuiz starts a typed quiz over a random sample of the selection
func (h *Handler) handleRandomQuiz(c tele.Context) error {
	userID := c.Sender().ID
	st := h.GetState(userID)
	if st.Section == "" {
		return h.handleMainMenu(c)
	}

	st.Review = false
	cfg := st.quizConfig(domain.QuizInputJpToEng, domain.OrderRandom)

	available, err := h.quizService.Available(userID, cfg)
	if err != nil {
		h.logger.Error("Failed to count words", zap.Int64("user_id", userID), zap.Error(err))
		return alert(c, genericErrorText)
	}
	cfg.Limit = h.quizService.RandomLimit(available)

	return h.startQuiz(c, st, cfg)
}

func (h *Handler) startQuiz(c tele.Context, st *chatState, cfg domain.QuizConfig) error {
	userID := c.Sender().ID

	session, err := h.quizService.Start(userID, cfg)
	switch {
	case errors.Is(err, domain.ErrEmptyQuestionSet):
		if cfg.OnlyReview {
			return alert(c, "No mistakes to review here 🎉")
		}
		return alert(c, "No matching words")
	case errors.Is(err, domain.ErrMissingDistractors):
		return alert(c, "These words have no answer choices for this quiz type")
	case err != nil:
		h.logger.Error("Failed to start quiz", zap.Int64("user_id", userID), zap.Error(err))
		return alert(c, genericErrorText)
	}

	st.Session = session
	st.State = domain.StateInQuiz
	st.HintShown = false
	return h.show(c, renderQuestion(session, false), questionMarkup(session, false))
}

// handleAnswerButton grades a multiple-choice answer. Taps from the keyboard
// of an earlier question are refused.
func (h *Handler) handleAnswerButton(c tele.Context, payload string) error {
	st := h.GetState(c.Sender().ID)
	if st.State != domain.StateInQuiz || st.Session.Phase() != quiz.PhaseAwaitingAnswer {
		return c.Respond(&tele.CallbackResponse{Text: staleQuestionText})
	}

	question, option, ok := parseAnswerPayload(payload)
	options := st.Session.Options()
	if !ok || question != st.Session.Index() || option >= len(options) {
		return c.Respond(&tele.CallbackResponse{Text: staleQuestionText})
	}

	return h.submit(c, st, options[option])
}

func answerPayload(question, option int) string {
	return strconv.Itoa(question) + ":" + strconv.Itoa(option)
}

// parseAnswerPayload reads "question:option" indexes
func parseAnswerPayload(payload string) (question, option int, ok bool) {
	q, o, found := strings.Cut(payload, ":")
	if !found {
		return 0, 0, false
	}

	question, err := strconv.Atoi(q)
	if err != nil || question < 0 {
		return 0, 0, false
	}
	option, err = strconv.Atoi(o)
	if err != nil || option < 0 {
		return 0, 0, false
	}
	return question, option, true
}

// handleHint reveals the Japanese meaning of the current gap-fill question
func (h *Handler) handleHint(c tele.Context, payload string) error {
	st := h.GetState(c.Sender().ID)
	if st.State != domain.StateInQuiz || st.Session.Phase() != quiz.PhaseAwaitingAnswer ||
		!st.Session.Config().Type.IsGapFill() || payload != strconv.Itoa(st.Session.Index()) {
		return c.Respond(&tele.CallbackResponse{Text: staleQuestionText})
	}

	st.HintShown = true
	return h.show(c, renderQuestion(st.Session, true), questionMarkup(st.Session, true))
}

// submitText grades a typed answer
func (h *Handler) submitText(c tele.Context, st *chatState, text string) error {
	if !st.Session.Config().Type.IsInput() {
		return c.Send("Please choose one of the buttons.")
	}
	if st.Session.Phase() != quiz.PhaseAwaitingAnswer {
		return c.Send("Press ➡️ Next to continue.")
	}
	return h.submit(c, st, text)
}

func (h *Handler) submit(c tele.Context, st *chatState, answer string) error {
	session, res, err := st.Session.Submit(answer)
	switch {
	case errors.Is(err, domain.ErrEmptyAnswer):
		return c.Send("The answer is empty, try again.")
	case errors.Is(err, domain.ErrInvalidTransition):
		return alert(c, staleQuestionText)
	case err != nil:
		return err
	}

	st.Session = session
	return h.show(c, renderResult(session, res), resultMarkup(session))
}

func (h *Handler) handleNext(c tele.Context) error {
	userID := c.Sender().ID
	st := h.GetState(userID)
	if st.State != domain.StateInQuiz || st.Session.Phase() != quiz.PhaseShowingResult {
		return c.Respond(&tele.CallbackResponse{Text: staleQuestionText})
	}

	session, err := st.Session.Advance()
	if err != nil {
		h.logger.Error("Failed to advance quiz", zap.Int64("user_id", userID), zap.Error(err))
		// keep what was answered
		return h.finishQuiz(c, st, st.Session.End())
	}

	if session.Finished() {
		return h.finishQuiz(c, st, session)
	}

	st.Session = session
	st.HintShown = false
	return h.show(c, renderQuestion(session, false), questionMarkup(session, false))
}

func (h *Handler) handleEnd(c tele.Context) error {
	st := h.GetState(c.Sender().ID)
	if st.State != domain.StateInQuiz {
		return c.Respond(&tele.CallbackResponse{Text: staleQuestionText})
	}
	return h.finishQuiz(c, st, st.Session.End())
}

// finishQuiz records the session and shows the summary. Persistence problems
// are reported in the summary, the results themselves are always shown.
func (h *Handler) finishQuiz(c tele.Context, st *chatState, session quiz.Session) error {
	userID := c.Sender().ID

	record, err := h.quizService.Finish(userID, session)
	saved := err == nil
	if err != nil && !errors.Is(err, domain.ErrPersistence) {
		h.logger.Error("Failed to finish quiz", zap.Int64("user_id", userID), zap.Error(err))
	}

	section := st.Session.Config().Section
	h.ResetState(userID)

	return h.show(c, truncate(renderSummary(record, saved), maxMessageRunes), summaryMarkup(section))
}

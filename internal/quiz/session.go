package quiz

import (
	"fmt"
	"strings"

	"emaster/internal/domain"
)

// Phase is the position of a session in its lifecycle
type Phase int

const (
	PhaseAwaitingAnswer Phase = iota
	PhaseShowingResult
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingAnswer:
		return "awaiting_answer"
	case PhaseShowingResult:
		return "showing_result"
	case PhaseFinished:
		return "finished"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Result is the graded answer to one question
type Result struct {
	Word       domain.Word
	UserAnswer string
	Correct    bool
}

// Session is one quiz run. It is a value: every transition returns a new
// Session and leaves the receiver untouched. Copies share the random source
// and speaker, so one session must be driven from one goroutine.
type Session struct {
	config    domain.QuizConfig
	questions []domain.Word
	pool      []domain.Word
	rng       Rand
	speaker   Speaker

	index   int
	phase   Phase
	options []string
	results []Result
}

// NewSession builds the question set and enters the first question.
// Returns domain.ErrEmptyQuestionSet when no word matches the config.
func NewSession(cfg domain.QuizConfig, pool []domain.Word, rng Rand, speaker Speaker) (Session, error) {
	if speaker == nil {
		speaker = NopSpeaker{}
	}

	questions := BuildQuestionSet(pool, cfg, rng)
	if len(questions) == 0 {
		return Session{}, domain.ErrEmptyQuestionSet
	}

	s := Session{
		config:    cfg,
		questions: questions,
		pool:      pool,
		rng:       rng,
		speaker:   speaker,
	}

	return s.enter(0)
}

// enter moves to AwaitingAnswer(i) with freshly generated options
func (s Session) enter(i int) (Session, error) {
	word := s.questions[i]

	opts, err := GenerateOptions(word, s.pool, s.config.Type, s.rng)
	if err != nil {
		return s, err
	}

	s.index = i
	s.phase = PhaseAwaitingAnswer
	s.options = opts

	if s.config.Type == domain.QuizMCQEngToJp {
		s.speaker.Speak(word.English, EnglishLocale)
	}

	return s, nil
}

// Submit grades answer for the current question and moves to ShowingResult.
// Typed quiz types reject blank answers with domain.ErrEmptyAnswer.
func (s Session) Submit(answer string) (Session, Result, error) {
	if s.phase != PhaseAwaitingAnswer {
		return s, Result{}, fmt.Errorf("%w: submit while %s", domain.ErrInvalidTransition, s.phase)
	}
	if s.config.Type.IsInput() && strings.TrimSpace(answer) == "" {
		return s, Result{}, domain.ErrEmptyAnswer
	}

	word := s.questions[s.index]
	res := Result{
		Word:       word,
		UserAnswer: answer,
		Correct:    Grade(s.config.Type, word, answer),
	}

	// full slice expression forces a new backing array
	s.results = append(s.results[:len(s.results):len(s.results)], res)
	s.phase = PhaseShowingResult

	return s, res, nil
}

// Advance leaves ShowingResult for the next question, or Finished after the last one
func (s Session) Advance() (Session, error) {
	if s.phase != PhaseShowingResult {
		return s, fmt.Errorf("%w: advance while %s", domain.ErrInvalidTransition, s.phase)
	}

	next := s.index + 1
	if next >= len(s.questions) {
		return s.End(), nil
	}

	return s.enter(next)
}

// End terminates the session early. An unanswered current question
// contributes nothing. Ending a finished session is a no-op.
func (s Session) End() Session {
	s.phase = PhaseFinished
	s.options = nil
	return s
}

// Phase returns the current phase
func (s Session) Phase() Phase {
	return s.phase
}

// Finished reports whether the session reached its terminal phase
func (s Session) Finished() bool {
	return s.phase == PhaseFinished
}

// Config returns the configuration the session was built from
func (s Session) Config() domain.QuizConfig {
	return s.config
}

// Index returns the zero-based position of the current question
func (s Session) Index() int {
	return s.index
}

// Total returns the number of questions in the session
func (s Session) Total() int {
	return len(s.questions)
}

// Questions returns a copy of the ordered question set
func (s Session) Questions() []domain.Word {
	out := make([]domain.Word, len(s.questions))
	copy(out, s.questions)
	return out
}

// Current returns the question being asked or shown. False once finished.
func (s Session) Current() (domain.Word, bool) {
	if s.phase == PhaseFinished || len(s.questions) == 0 {
		return domain.Word{}, false
	}
	return s.questions[s.index], true
}

// Options returns the option set of the current question, nil for typed types
func (s Session) Options() []string {
	if s.options == nil {
		return nil
	}
	out := make([]string, len(s.options))
	copy(out, s.options)
	return out
}

// Results returns the graded answers in answer order
func (s Session) Results() []Result {
	out := make([]Result, len(s.results))
	copy(out, s.results)
	return out
}

// LastResult returns the most recent graded answer
func (s Session) LastResult() (Result, bool) {
	if len(s.results) == 0 {
		return Result{}, false
	}
	return s.results[len(s.results)-1], true
}

// Score returns the number of correct answers and of answered questions
func (s Session) Score() (correct, answered int) {
	for _, r := range s.results {
		if r.Correct {
			correct++
		}
	}
	return correct, len(s.results)
}

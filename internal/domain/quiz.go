package domain

import (
	"fmt"
	"strings"
)

// QuizType selects the question format and grading rule
type QuizType string

const (
	QuizMCQEngToJp   QuizType = "MCQ_4_ENG_TO_JP"
	QuizMCQJpToEng   QuizType = "MCQ_4_JP_TO_ENG"
	QuizInputJpToEng QuizType = "INPUT_JP_TO_ENG"
	QuizGapFill      QuizType = "GAP_FILL"
	QuizGapFillMCQ   QuizType = "GAP_FILL_MCQ"
)

// QuizTypes lists every quiz type in menu order
var QuizTypes = []QuizType{
	QuizMCQEngToJp, QuizMCQJpToEng, QuizInputJpToEng, QuizGapFill, QuizGapFillMCQ,
}

// Valid reports whether t is a known quiz type
func (t QuizType) Valid() bool {
	for _, known := range QuizTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsMultipleChoice reports whether the answer is picked from an option set
func (t QuizType) IsMultipleChoice() bool {
	return t == QuizMCQEngToJp || t == QuizMCQJpToEng || t == QuizGapFillMCQ
}

// IsInput reports whether the answer is typed
func (t QuizType) IsInput() bool {
	return t == QuizInputJpToEng || t == QuizGapFill
}

// IsGapFill reports whether the prompt is an example sentence with a blank
func (t QuizType) IsGapFill() bool {
	return t == QuizGapFill || t == QuizGapFillMCQ
}

// UsesFixedDistractors reports whether options come from authored distractors
// instead of being sampled from the section.
func (t QuizType) UsesFixedDistractors() bool {
	return t == QuizGapFillMCQ
}

// QuestionText is the text recorded as the question in history
func (t QuizType) QuestionText(w Word) string {
	if t == QuizMCQEngToJp {
		return w.English
	}
	return w.Japanese
}

// CorrectAnswer is the expected answer for the word under this quiz type
func (t QuizType) CorrectAnswer(w Word) string {
	if t == QuizMCQEngToJp {
		return w.Japanese
	}
	return w.English
}

// GapBlank replaces the target word in example sentences
const GapBlank = "_______"

// Prompt is what the learner sees for the word
func (t QuizType) Prompt(w Word) string {
	if t.IsGapFill() {
		return BlankSentence(w.Sentence, w.English)
	}
	return t.QuestionText(w)
}

// BlankSentence blanks out the first occurrence of target in sentence.
// Falls back to a case-insensitive match and to a bare blank when the
// sentence is empty.
func BlankSentence(sentence, target string) string {
	if sentence == "" || target == "" {
		return GapBlank
	}
	if strings.Contains(sentence, target) {
		return strings.Replace(sentence, target, GapBlank, 1)
	}
	lowerSentence, lowerTarget := strings.ToLower(sentence), strings.ToLower(target)
	// byte offsets are only comparable when lowering kept the lengths
	if len(lowerSentence) != len(sentence) || len(lowerTarget) != len(target) {
		return sentence
	}
	idx := strings.Index(lowerSentence, lowerTarget)
	if idx < 0 {
		return sentence
	}
	return sentence[:idx] + GapBlank + sentence[idx+len(target):]
}

// SortOrder controls the order of questions in a session
type SortOrder string

const (
	OrderSequential  SortOrder = "SEQUENTIAL"
	OrderRandom      SortOrder = "RANDOM"
	OrderAccuracyAsc SortOrder = "ACCURACY_ASC"
)

// SortOrders lists every order in menu order
var SortOrders = []SortOrder{OrderSequential, OrderRandom, OrderAccuracyAsc}

// Valid reports whether o is a known sort order
func (o SortOrder) Valid() bool {
	return o == OrderSequential || o == OrderRandom || o == OrderAccuracyAsc
}

// IDRange is an inclusive id interval
type IDRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether id lies inside the range, both ends included
func (r IDRange) Contains(id int) bool {
	return id >= r.Start && id <= r.End
}

// String formats the range as "start-end"
func (r IDRange) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// QuizConfig describes one quiz session
type QuizConfig struct {
	Section          Section
	ScrambleCategory ScrambleCategory
	Type             QuizType
	Order            SortOrder
	Limit            int  // 0 = no limit
	OnlyReview       bool // previously missed words only
	IDRanges         []IDRange
}

// ModeDescription summarizes type, order and limit for history records
func (c QuizConfig) ModeDescription() string {
	desc := fmt.Sprintf("%s - %s", c.Type, c.Order)
	if c.Limit > 0 {
		desc += fmt.Sprintf(" (Limit: %d)", c.Limit)
	}
	return desc
}

// Validate checks that the config names known enum values
func (c QuizConfig) Validate() error {
	if !c.Section.Valid() {
		return fmt.Errorf("unknown section %q", c.Section)
	}
	if !c.Type.Valid() {
		return fmt.Errorf("unknown quiz type %q", c.Type)
	}
	if !c.Order.Valid() {
		return fmt.Errorf("unknown sort order %q", c.Order)
	}
	if c.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", c.Limit)
	}
	for _, r := range c.IDRanges {
		if r.Start > r.End {
			return fmt.Errorf("%w: %s", ErrInvalidRange, r)
		}
	}
	return nil
}

// Outcome is the per-question result consumed by the stats update
type Outcome struct {
	Key     WordKey
	Correct bool
}

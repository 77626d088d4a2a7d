package domain

// Section is a top-level word bank grouping
type Section string

const (
	SectionLeap     Section = "LEAP"
	SectionTarget   Section = "TARGET"
	SectionScramble Section = "SCRAMBLE"
)

// Sections lists every section that carries words, in menu order
var Sections = []Section{SectionLeap, SectionTarget, SectionScramble}

// Valid reports whether s is a known word section
func (s Section) Valid() bool {
	switch s {
	case SectionLeap, SectionTarget, SectionScramble:
		return true
	}
	return false
}

// ScrambleCategory is a sub-grouping used only inside the SCRAMBLE section.
// The values are the persisted ones and must not change.
type ScrambleCategory string

const (
	CategoryUsage        ScrambleCategory = "語法"
	CategoryVocab        ScrambleCategory = "語い"
	CategoryIdiom        ScrambleCategory = "イディオム"
	CategoryConversation ScrambleCategory = "会話表現"
)

// ScrambleCategories lists the categories in menu order
var ScrambleCategories = []ScrambleCategory{
	CategoryUsage, CategoryVocab, CategoryIdiom, CategoryConversation,
}

var categoryCodes = map[ScrambleCategory]string{
	CategoryUsage:        "USAGE",
	CategoryVocab:        "VOCAB",
	CategoryIdiom:        "IDIOM",
	CategoryConversation: "CONVERSATION",
}

// Code returns the ASCII code of the category (USAGE, VOCAB, ...)
func (c ScrambleCategory) Code() string {
	return categoryCodes[c]
}

// CategoryFromCode resolves an ASCII code back to its category
func CategoryFromCode(code string) (ScrambleCategory, bool) {
	for cat, c := range categoryCodes {
		if c == code {
			return cat, true
		}
	}
	return "", false
}

// Stats holds per-word answer counters. Correct never exceeds Attempts.
type Stats struct {
	Attempts int `json:"attempts"`
	Correct  int `json:"correct"`
}

// Accuracy returns correct/attempts, or 0 for a word never attempted
func (s Stats) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

// NeedsReview reports whether the word was attempted and missed at least once.
// Words with zero attempts are not reviewable.
func (s Stats) NeedsReview() bool {
	return s.Attempts > 0 && s.Accuracy() < 1
}

// Word represents a vocabulary entry
type Word struct {
	ID               int              `json:"id"`
	English          string           `json:"english"`
	Japanese         string           `json:"japanese"`
	Section          Section          `json:"section"`
	ScrambleCategory ScrambleCategory `json:"scrambleCategory,omitempty"`
	Sentence         string           `json:"sentence,omitempty"`
	Distractors      []string         `json:"distractors,omitempty"`
	Stats            Stats            `json:"stats"`
}

// WordKey identifies a word globally. Ids repeat across sections, so an id
// alone is never enough.
type WordKey struct {
	Section Section
	ID      int
}

// Key returns the composite identity of the word
func (w Word) Key() WordKey {
	return WordKey{Section: w.Section, ID: w.ID}
}

package domain

import "time"

// HistoryRecord summarizes one finished quiz session. Immutable once created.
type HistoryRecord struct {
	ID              string          `json:"id"`
	Date            time.Time       `json:"date"`
	Section         Section         `json:"section"`
	ModeDescription string          `json:"modeDescription"`
	TotalQuestions  int             `json:"totalQuestions"`
	CorrectCount    int             `json:"correctCount"`
	Details         []HistoryDetail `json:"details"`
}

// HistoryDetail is one answered question of a session
type HistoryDetail struct {
	WordID        int    `json:"wordId"`
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
}

// Rate returns the share of correct answers, 0 for an empty session
func (r HistoryRecord) Rate() float64 {
	if r.TotalQuestions == 0 {
		return 0
	}
	return float64(r.CorrectCount) / float64(r.TotalQuestions)
}

// SectionSummary aggregates word statistics of one section
type SectionSummary struct {
	Section   Section
	Words     int
	Attempted int
	Review    int
	Attempts  int
	Correct   int
}

// Accuracy returns correct/attempts over the whole section
func (s SectionSummary) Accuracy() float64 {
	return Stats{Attempts: s.Attempts, Correct: s.Correct}.Accuracy()
}

// Package export renders history records as CSV.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"emaster/internal/domain"
)

// DateLayout is how record dates appear in summary exports
const DateLayout = "2006-01-02 15:04:05"

var (
	summaryHeader = []string{"ID", "Date", "Section", "Mode", "Questions", "Correct", "Rate"}
	detailHeader  = []string{"Question", "User Answer", "Correct Answer", "Is Correct"}
)

// SummaryCSV renders one row per record, dates converted to loc
func SummaryCSV(records []domain.HistoryRecord, loc *time.Location) ([]byte, error) {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, summaryHeader)

	for _, r := range records {
		rows = append(rows, []string{
			r.ID,
			r.Date.In(loc).Format(DateLayout),
			string(r.Section),
			r.ModeDescription,
			strconv.Itoa(r.TotalQuestions),
			strconv.Itoa(r.CorrectCount),
			fmt.Sprintf("%.1f%%", r.Rate()*100),
		})
	}

	return write(rows)
}

// DetailCSV renders one row per answered question of the record
func DetailCSV(record domain.HistoryRecord) ([]byte, error) {
	rows := make([][]string, 0, len(record.Details)+1)
	rows = append(rows, detailHeader)

	for _, d := range record.Details {
		correct := "FALSE"
		if d.IsCorrect {
			correct = "TRUE"
		}
		rows = append(rows, []string{d.Question, d.UserAnswer, d.CorrectAnswer, correct})
	}

	return write(rows)
}

func write(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}

	return buf.Bytes(), nil
}

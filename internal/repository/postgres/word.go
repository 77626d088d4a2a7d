package postgres

import (
	"database/sql"
	"fmt"

	"emaster/internal/domain"

	"github.com/lib/pq"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// ListWords returns the user's word collection in storage order
func (r *WordRepo) ListWords(userID int64) ([]domain.Word, error) {
	query := `
		SELECT section, id, english, japanese, scramble_category, sentence, distractors, attempts, correct
		FROM words
		WHERE user_id = $1
		ORDER BY position
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		var (
			w           domain.Word
			category    sql.NullString
			sentence    sql.NullString
			distractors pq.StringArray
		)
		if err := rows.Scan(
			&w.Section, &w.ID, &w.English, &w.Japanese, &category, &sentence, &distractors,
			&w.Stats.Attempts, &w.Stats.Correct,
		); err != nil {
			return nil, err
		}
		w.ScrambleCategory = domain.ScrambleCategory(category.String)
		w.Sentence = sentence.String
		if len(distractors) > 0 {
			w.Distractors = []string(distractors)
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// ReplaceWords overwrites the user's whole collection in one transaction.
// Slice order becomes storage order.
func (r *WordRepo) ReplaceWords(userID int64, words []domain.Word) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM words WHERE user_id = $1`, userID); err != nil {
		return err
	}

	insert := `
		INSERT INTO words (user_id, section, id, position, english, japanese,
			scramble_category, sentence, distractors, attempts, correct)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	for i, w := range words {
		_, err := tx.Exec(insert,
			userID, string(w.Section), w.ID, i, w.English, w.Japanese,
			nullString(string(w.ScrambleCategory)), nullString(w.Sentence), pq.Array(w.Distractors),
			w.Stats.Attempts, w.Stats.Correct,
		)
		if err != nil {
			return fmt.Errorf("insert word %s/%d: %w", w.Section, w.ID, err)
		}
	}

	return tx.Commit()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

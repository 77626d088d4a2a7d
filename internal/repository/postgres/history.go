package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"emaster/internal/domain"
)

// HistoryRepo implements repository.HistoryRepository
type HistoryRepo struct {
	db *sql.DB
}

// NewHistoryRepo creates a new history repository
func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

const historyColumns = `id, recorded_at, section, mode_description, total_questions, correct_count, details`

// InsertHistory stores a finished session
func (r *HistoryRepo) InsertHistory(userID int64, record domain.HistoryRecord) error {
	details := record.Details
	if details == nil {
		details = []domain.HistoryDetail{}
	}
	payload, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("encode details: %w", err)
	}

	query := `
		INSERT INTO history (id, user_id, recorded_at, section, mode_description,
			total_questions, correct_count, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.db.Exec(query,
		record.ID, userID, record.Date, string(record.Section), record.ModeDescription,
		record.TotalQuestions, record.CorrectCount, payload,
	)
	return err
}

// ListHistory returns one page of records, newest first
func (r *HistoryRepo) ListHistory(userID int64, limit, offset int) ([]domain.HistoryRecord, error) {
	query := `
		SELECT ` + historyColumns + `
		FROM history
		WHERE user_id = $1
		ORDER BY recorded_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.HistoryRecord
	for rows.Next() {
		rec, err := scanHistory(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// CountHistory returns the number of stored records
func (r *HistoryRepo) CountHistory(userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM history WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

// GetHistory returns one record or domain.ErrHistoryNotFound
func (r *HistoryRepo) GetHistory(userID int64, id string) (*domain.HistoryRecord, error) {
	query := `
		SELECT ` + historyColumns + `
		FROM history
		WHERE user_id = $1 AND id = $2
	`

	rec, err := scanHistory(r.db.QueryRow(query, userID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrHistoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ClearHistory deletes every record of the user
func (r *HistoryRepo) ClearHistory(userID int64) error {
	_, err := r.db.Exec(`DELETE FROM history WHERE user_id = $1`, userID)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanHistory(s scanner) (domain.HistoryRecord, error) {
	var (
		rec     domain.HistoryRecord
		payload []byte
	)
	err := s.Scan(
		&rec.ID, &rec.Date, &rec.Section, &rec.ModeDescription,
		&rec.TotalQuestions, &rec.CorrectCount, &payload,
	)
	if err != nil {
		return rec, err
	}

	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &rec.Details); err != nil {
			return rec, fmt.Errorf("decode details of %s: %w", rec.ID, err)
		}
	}
	return rec, nil
}

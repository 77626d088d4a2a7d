package domain

import "errors"

var (
	// ErrEmptyQuestionSet means no word matched the quiz filters
	ErrEmptyQuestionSet = errors.New("no matching questions")
	// ErrMissingDistractors means a fixed-choice word lacks three distinct authored distractors
	ErrMissingDistractors = errors.New("word needs exactly 3 distinct authored distractors")
	// ErrPersistence marks a failed store read or write; in-memory results stay valid
	ErrPersistence = errors.New("persistence failure")
	// ErrEmptyAnswer means a typed answer was blank
	ErrEmptyAnswer = errors.New("answer is empty")
	// ErrInvalidTransition means the action is not allowed in the current phase
	ErrInvalidTransition = errors.New("invalid session transition")
	// ErrHistoryNotFound means no history record has the requested id
	ErrHistoryNotFound = errors.New("history record not found")
	// ErrInvalidRange means an id range is malformed
	ErrInvalidRange = errors.New("invalid id range")
)

package domain

// UserState represents the user's current interaction state
type UserState string

const (
	StateIdle          UserState = "idle"
	StateWaitingRanges UserState = "waiting_ranges"
	StateWaitingSearch UserState = "waiting_search"
	StateInQuiz        UserState = "in_quiz"
)

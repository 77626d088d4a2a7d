package handler

import (
	"sync"
	"time"

	"emaster/internal/domain"
	"emaster/internal/quiz"
	"emaster/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// chatState is the per-user conversation state
type chatState struct {
	State    domain.UserState
	Section  domain.Section
	Category domain.ScrambleCategory
	Ranges   []domain.IDRange

	// quiz setup and the running session
	Review    bool
	QuizType  domain.QuizType
	Session   quiz.Session
	HintShown bool

	// word list view
	Search       string
	SortBy       service.WordSortKey
	MistakesOnly bool
}

// filter returns the word list filter of the current view
func (s *chatState) filter() service.WordFilter {
	return service.WordFilter{
		Section:          s.Section,
		ScrambleCategory: s.Category,
		IDRanges:         s.Ranges,
		Search:           s.Search,
		SortBy:           s.SortBy,
		MistakesOnly:     s.MistakesOnly,
	}
}

// quizConfig builds a session config from the current selection
func (s *chatState) quizConfig(t domain.QuizType, order domain.SortOrder) domain.QuizConfig {
	cfg := domain.QuizConfig{
		Section:    s.Section,
		Type:       t,
		Order:      order,
		OnlyReview: s.Review,
		IDRanges:   s.Ranges,
	}
	if s.Section == domain.SectionScramble {
		cfg.ScrambleCategory = s.Category
	}
	return cfg
}

// Handler manages all bot interactions
type Handler struct {
	bot            *tele.Bot
	authService    *service.AuthService
	wordService    *service.WordService
	quizService    *service.QuizService
	historyService *service.HistoryService
	statsService   *service.StatsService
	location       *time.Location
	logger         *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*chatState
	stateMux sync.RWMutex

	// one update per user at a time
	locks *service.UserLocks
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	wordService *service.WordService,
	quizService *service.QuizService,
	historyService *service.HistoryService,
	statsService *service.StatsService,
	location *time.Location,
	logger *zap.Logger,
) *Handler {
	if location == nil {
		location = time.Local
	}
	return &Handler{
		bot:            bot,
		authService:    authService,
		wordService:    wordService,
		quizService:    quizService,
		historyService: historyService,
		statsService:   statsService,
		location:       location,
		logger:         logger,
		states:         make(map[int64]*chatState),
		locks:          service.NewUserLocks(),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/stats", h.handleStatsCommand)
	h.bot.Handle("/history", h.handleHistoryCommand)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Every inline button is routed by its callback data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state, creating an idle one on first use
func (h *Handler) GetState(userID int64) *chatState {
	h.stateMux.RLock()
	state, exists := h.states[userID]
	h.stateMux.RUnlock()
	if exists {
		return state
	}

	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	if state, exists = h.states[userID]; exists {
		return state
	}
	state = &chatState{State: domain.StateIdle}
	h.states[userID] = state
	return state
}

// ResetState drops any running quiz and input mode but keeps the section
// selection
func (h *Handler) ResetState(userID int64) {
	state := h.GetState(userID)
	state.State = domain.StateIdle
	state.Session = quiz.Session{}
	state.HintShown = false
	state.Review = false
}

// now returns the current time in the bot's display location
func (h *Handler) now() time.Time {
	return time.Now().In(h.location)
}

// Static inline buttons. None is registered on its own; they reach
// handleCallback with their unique as data.
var (
	btnStats = tele.Btn{
		Unique: cbStats,
		Text:   "📊 Statistics",
	}
	btnHistory = tele.Btn{
		Unique: cbHistory,
		Text:   "🕘 History",
		Data:   "1",
	}
	btnCancel = tele.Btn{
		Unique: cbCancel,
		Text:   "❌ Cancel",
	}
	btnMainMenu = tele.Btn{
		Unique: cbMenu,
		Text:   "🏠 Main menu",
	}
	btnNext = tele.Btn{
		Unique: cbNext,
		Text:   "➡️ Next",
	}
	btnFinish = tele.Btn{
		Unique: cbNext,
		Text:   "🏁 Finish",
	}
	btnEnd = tele.Btn{
		Unique: cbEnd,
		Text:   "⏹ End quiz",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}

	sections := make(tele.Row, 0, len(domain.Sections))
	for _, s := range domain.Sections {
		sections = append(sections, menu.Data(sectionTitle(s), cbSection, string(s)))
	}

	menu.Inline(
		sections,
		menu.Row(btnStats, btnHistory),
	)
	return menu
}

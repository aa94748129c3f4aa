package handler

import (
	"sync"

	"shark/internal/domain"
	"shark/internal/middleware"
	"shark/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// historyLimit is how many snapshots the History button shows
const historyLimit = 5

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	authService *service.AuthService
	wordService *service.WordService
	logger      *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	wordService *service.WordService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		authService: authService,
		wordService: wordService,
		logger:      logger,
		states:      make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands and free text do their own password check
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle(tele.OnText, h.handleText)

	// Inline buttons require an authorized user
	authorized := h.bot.Group()
	authorized.Use(middleware.AuthMiddleware(h.authService, h.logger))

	authorized.Handle(&btnShowWords, h.handleShowWords)
	authorized.Handle(&btnHistory, h.handleHistory)
	authorized.Handle(&btnCancel, h.handleCancel)
	authorized.Handle(&btnBack, h.handleMainMenu)
	authorized.Handle(&btnMainMenu, h.handleMainMenu)

	// Fallback for callbacks whose unique id got lost
	authorized.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// Inline keyboard buttons
var (
	btnShowWords = tele.Btn{
		Unique: "show_words",
		Text:   "🦈 Показать слова",
	}
	btnHistory = tele.Btn{
		Unique: "history",
		Text:   "🗂 История",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Отменить",
	}
	btnBack = tele.Btn{
		Unique: "back",
		Text:   "🏠 Назад",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Главное меню",
	}
)

const (
	mainMenuText = "🏠 Главное меню\n\nПришли слова через пробел, потом переводы в том же порядке."
	passwordText = "Привет! Это закрытый бот, введи пароль:"
	errorText    = "Произошла ошибка. Попробуйте позже."
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnShowWords),
		menu.Row(btnHistory),
	)
	return menu
}

func cancelMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnCancel))
	return menu
}

func backMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnBack))
	return menu
}

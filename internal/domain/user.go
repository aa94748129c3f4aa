package domain

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle                UserState = "idle"
	StateWaitingTranslations UserState = "waiting_translations"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State        UserState
	PendingWords []string
}

package middleware

import (
	"shark/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	errorText    = "Произошла ошибка. Попробуйте позже."
	passwordText = "Сначала введи пароль: /start"
)

// AuthMiddleware lets only authorized users through. Callbacks from other
// users are answered with an alert, messages with a password prompt.
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			if err := authService.EnsureUserExists(userID); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return reply(c, errorText)
			}

			authorized, err := authService.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return reply(c, errorText)
			}

			if !authorized {
				logger.Info("Rejected unauthorized user", zap.Int64("user_id", userID))
				return reply(c, passwordText)
			}

			return next(c)
		}
	}
}

func reply(c tele.Context, text string) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
	}
	return c.Send(text)
}

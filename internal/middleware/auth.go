package middleware

import (
	"emaster/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AuthorizedKey is the context key holding the sender's authorization flag
const AuthorizedKey = "authorized"

// Authorizer is the part of the auth service the middleware needs
type Authorizer interface {
	EnsureUserExists(userID int64) error
	IsAuthorized(userID int64) (bool, error)
}

var _ Authorizer = (*service.AuthService)(nil)

// AuthMiddleware creates authentication middleware. It registers the sender,
// stores the authorization flag in the context and blocks buttons for
// unauthorized users; their text still goes through as a password attempt.
func AuthMiddleware(auth Authorizer, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return nil
			}
			userID := sender.ID

			// Ensure user exists
			if err := auth.EnsureUserExists(userID); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Int64("user_id", userID), zap.Error(err))
				return c.Send("Something went wrong. Please try again later.")
			}

			// Check authorization
			authorized, err := auth.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Int64("user_id", userID), zap.Error(err))
				return c.Send("Something went wrong. Please try again later.")
			}
			c.Set(AuthorizedKey, authorized)

			if !authorized && c.Callback() != nil {
				return c.Respond(&tele.CallbackResponse{
					Text:      "Send the password first",
					ShowAlert: true,
				})
			}

			return next(c)
		}
	}
}

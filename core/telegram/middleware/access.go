package middleware

import tele "gopkg.in/telebot.v4"

// AdminOptions defines how admin-only checks should behave.
// The admin is the operator chat that receives finished leads.
type AdminOptions struct {
	AdminID  int64
	OnReject tele.HandlerFunc
}

// AdminOnlyMiddleware ensures that only the operator can invoke downstream handlers.
func AdminOnlyMiddleware(opts AdminOptions) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if opts.AdminID != 0 && !fromOperator(c, opts.AdminID) {
				if opts.OnReject != nil {
					return opts.OnReject(c)
				}
				return nil
			}
			return next(c)
		}
	}
}

// fromOperator accepts the operator whether the destination is a private
// chat (sender id) or a group (chat id).
func fromOperator(c tele.Context, adminID int64) bool {
	if s := c.Sender(); s != nil && s.ID == adminID {
		return true
	}
	if ch := c.Chat(); ch != nil && ch.ID == adminID {
		return true
	}
	return false
}

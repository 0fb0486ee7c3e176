package middleware

import "github.com/gin-gonic/gin"

const (
	AuthCookie      = "is_authenticated"
	UserEmailCookie = "user_email"

	UserEmailKey = "user_email"
	DemoModeKey  = "demo_mode"
)

// SessionUser reads the login cookies set by the auth page. It never rejects
// a request; pages only use the email for display.
func SessionUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if authed, err := c.Cookie(AuthCookie); err == nil && authed == "true" {
			if email, err := c.Cookie(UserEmailCookie); err == nil && email != "" {
				c.Set(UserEmailKey, email)
			}
		}
		c.Next()
	}
}

func DemoMode(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(DemoModeKey, enabled)
		c.Next()
	}
}

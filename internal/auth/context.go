package auth

import "github.com/gin-gonic/gin"

const ctxUserKey = "auth_user"

// CurrentUser extracts the verified user set by RequireUser or OptionalUser.
func CurrentUser(c *gin.Context) (*User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*User)
	return u, ok
}

func setCurrentUser(c *gin.Context, u *User) {
	c.Set(ctxUserKey, u)
}

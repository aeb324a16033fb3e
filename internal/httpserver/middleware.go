package httpserver

import (
	"net/http"

	"freshmarket/internal/domain"
	"github.com/gin-gonic/gin"
)

// sessionCookie is the name of the cookie carrying the session token.
const sessionCookie = "fm_session"

const ctxUserKey = "currentUser"

// requireAuth resolves the session cookie to a user and stores it on the
// request context. Requests without a valid session get a 401.
func requireAuth(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookie)
		if err != nil || token == "" {
			respondError(c, http.StatusUnauthorized, "Não autenticado")
			c.Abort()
			return
		}
		u, err := auth.CurrentUser(c.Request.Context(), token)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "Não autenticado")
			c.Abort()
			return
		}
		c.Set(ctxUserKey, *u)
		c.Next()
	}
}

func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c).Role != domain.RoleAdmin {
			respondError(c, http.StatusForbidden, "Acesso negado. Apenas administradores podem realizar esta ação.")
			c.Abort()
			return
		}
		c.Next()
	}
}

func requireAdminOrManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := currentUser(c).Role
		if role != domain.RoleAdmin && role != domain.RoleManager {
			respondError(c, http.StatusForbidden, "Acesso negado. Apenas administradores e gerentes podem realizar esta ação.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// currentUser returns the user stored by requireAuth. Routes using it must
// be registered behind that middleware.
func currentUser(c *gin.Context) domain.User {
	u, _ := c.Get(ctxUserKey)
	user, _ := u.(domain.User)
	return user
}

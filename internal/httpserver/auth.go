package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func loginHandler(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Informe usuário e senha")
			return
		}
		u, token, err := auth.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookie, token, int(auth.SessionTTL().Seconds()), "/", "", false, true)
		c.JSON(http.StatusOK, u)
	}
}

func logoutHandler(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(sessionCookie); err == nil && token != "" {
			// Best effort; an already-expired session is still a logout.
			_ = auth.Logout(c.Request.Context(), token)
		}
		c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
		c.Status(http.StatusNoContent)
	}
}

func meHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, currentUser(c))
	}
}

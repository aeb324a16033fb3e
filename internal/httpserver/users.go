package httpserver

import (
	"net/http"

	usersvc "freshmarket/internal/service/user"
	"github.com/gin-gonic/gin"
)

func listUsersHandler(users UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := users.List(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func createUserHandler(users UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in usersvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "Dados inválidos")
			return
		}
		u, err := users.Create(c.Request.Context(), currentUser(c), in)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, u)
	}
}

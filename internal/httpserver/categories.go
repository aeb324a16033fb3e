package httpserver

import (
	"net/http"

	categorysvc "freshmarket/internal/service/category"
	"github.com/gin-gonic/gin"
)

func listCategoriesHandler(categories CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := categories.List(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func createCategoryHandler(categories CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in categorysvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "Dados inválidos")
			return
		}
		cat, err := categories.Create(c.Request.Context(), currentUser(c), in)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, cat)
	}
}

func deleteCategoryHandler(categories CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := categories.Delete(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

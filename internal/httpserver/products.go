package httpserver

import (
	"net/http"

	productsvc "freshmarket/internal/service/product"
	"github.com/gin-gonic/gin"
)

func listProductsHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.List(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func createProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in productsvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "Dados inválidos")
			return
		}
		p, err := products.Create(c.Request.Context(), currentUser(c), in)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

func updateProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in productsvc.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "Dados inválidos")
			return
		}
		p, err := products.Update(c.Request.Context(), currentUser(c), c.Param("id"), in)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func deleteProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := products.Delete(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

type increaseStockRequest struct {
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
}

func increaseStockHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req increaseStockRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Quantidade inválida")
			return
		}
		p, err := products.IncreaseStock(c.Request.Context(), currentUser(c), c.Param("id"), req.Quantity)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func editCountHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, err := products.EditStatusFor(c.Request.Context(), currentUser(c))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, status)
	}
}

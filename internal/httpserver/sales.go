package httpserver

import (
	"net/http"

	salesvc "freshmarket/internal/service/sale"
	"github.com/gin-gonic/gin"
)

func listSalesHandler(sales SaleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := sales.ListFor(c.Request.Context(), currentUser(c))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func createSaleHandler(sales SaleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in salesvc.CheckoutInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "Dados inválidos")
			return
		}
		sale, err := sales.Checkout(c.Request.Context(), currentUser(c), in)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, sale)
	}
}

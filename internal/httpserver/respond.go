package httpserver

import (
	"errors"
	"net/http"

	"freshmarket/internal/domain"
	authsvc "freshmarket/internal/service/auth"
	ordersvc "freshmarket/internal/service/order"
	productsvc "freshmarket/internal/service/product"
	salesvc "freshmarket/internal/service/sale"
	usersvc "freshmarket/internal/service/user"
	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondServiceError maps service and domain errors onto HTTP statuses.
// Anything unrecognized is a 500 with a generic body.
func respondServiceError(c *gin.Context, err error) {
	var approvalErr *ordersvc.ApprovalError
	var stockErr *salesvc.StockError
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr):
		respondError(c, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, domain.ErrNotFound):
		respondError(c, http.StatusNotFound, "Não encontrado")
	case errors.Is(err, authsvc.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "Usuário ou senha incorretos")
	case errors.Is(err, productsvc.ErrEditLimitReached):
		respondError(c, http.StatusForbidden, "Limite diário de edições atingido. Vendedores podem fazer 5 edições por dia.")
	case errors.Is(err, ordersvc.ErrReopenLimitReached):
		respondError(c, http.StatusForbidden, "Limite diário de reaberturas atingido.")
	case errors.Is(err, ordersvc.ErrNotPending), errors.Is(err, ordersvc.ErrAlreadyPending):
		respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, usersvc.ErrUsernameTaken):
		respondError(c, http.StatusConflict, "Nome de usuário já existe")
	case errors.Is(err, salesvc.ErrEmptyCart), errors.Is(err, salesvc.ErrInsufficientPayment):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInsufficientStock):
		respondError(c, http.StatusBadRequest, "Estoque insuficiente")
	case errors.As(err, &stockErr):
		respondError(c, http.StatusBadRequest, stockErr.Error())
	case errors.As(err, &approvalErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":             "Estoque insuficiente para aprovar o pedido",
			"insufficientItems": approvalErr.Items,
		})
	default:
		respondError(c, http.StatusInternalServerError, "Erro interno")
	}
}

package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func listAuditLogsHandler(logs AuditLogReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := logs.List(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

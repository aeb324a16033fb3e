package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func listNotificationsHandler(notifs NotificationRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := notifs.ListForUser(c.Request.Context(), currentUser(c).ID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func markNotificationReadHandler(notifs NotificationRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := notifs.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

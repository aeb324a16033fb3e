package httpserver

import (
	"net/http"

	"freshmarket/internal/domain"
	taskrepo "freshmarket/internal/repository/task"
	"github.com/gin-gonic/gin"
)

func listTasksHandler(tasks TaskRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		var (
			list []domain.Task
			err  error
		)
		if u.Role.IsAdmin() {
			list, err = tasks.List(c.Request.Context())
		} else {
			list, err = tasks.ListVisible(c.Request.Context(), u.ID, u.Role)
		}
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

type createTaskRequest struct {
	Title        string              `json:"title" binding:"required"`
	AssignedTo   domain.TaskAssignee `json:"assignedTo" binding:"required"`
	AssignedToID *string             `json:"assignedToId"`
}

func createTaskHandler(tasks TaskRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createTaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Dados inválidos")
			return
		}
		if !req.AssignedTo.Valid() {
			respondError(c, http.StatusBadRequest, "Destinatário inválido")
			return
		}
		t, err := tasks.Create(c.Request.Context(), taskrepo.CreateTaskInput{
			Title:        req.Title,
			AssignedTo:   req.AssignedTo,
			AssignedToID: req.AssignedToID,
			CreatedBy:    currentUser(c).ID,
		})
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, t)
	}
}

type updateTaskRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

func updateTaskHandler(tasks TaskRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateTaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Dados inválidos")
			return
		}
		t, err := tasks.SetCompleted(c.Request.Context(), c.Param("id"), *req.Completed)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

func deleteTaskHandler(tasks TaskRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := tasks.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

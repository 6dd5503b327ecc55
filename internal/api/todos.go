package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createTodoRequest struct {
	Title string `json:"title"`
}

type updateTodoRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

func (h *Handler) listTodos(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"todos": h.todos.List()})
}

func (h *Handler) createTodo(c *gin.Context) {
	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := h.todos.Create(req.Title)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"todo": item})
}

func (h *Handler) updateTodo(c *gin.Context) {
	var req updateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := h.todos.SetCompleted(c.Param("id"), *req.Completed)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"todo": item})
}

func (h *Handler) deleteTodo(c *gin.Context) {
	if err := h.todos.Delete(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

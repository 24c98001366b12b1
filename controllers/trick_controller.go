package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chunponglai/tricks-planner/middlewares"
	"github.com/chunponglai/tricks-planner/services"
)

type TrickController struct {
	tricks *services.TrickService
}

func NewTrickController(tricks *services.TrickService) *TrickController {
	return &TrickController{tricks: tricks}
}

func (ct *TrickController) List(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	tricks, err := ct.tricks.List(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tricks)
}

func (ct *TrickController) Create(c *gin.Context) {
	var input services.TrickInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middlewares.CurrentUser(c)
	trick, err := ct.tricks.Create(user.ID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, trick)
}

func (ct *TrickController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	user := middlewares.CurrentUser(c)
	if err := ct.tricks.Delete(user.ID, uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trick not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chunponglai/tricks-planner/middlewares"
	"github.com/chunponglai/tricks-planner/services"
)

type SyncController struct {
	sync *services.SyncService
}

func NewSyncController(sync *services.SyncService) *SyncController {
	return &SyncController{sync: sync}
}

func (ct *SyncController) Pull(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	payload, err := ct.sync.Pull(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payload)
}

func (ct *SyncController) Push(c *gin.Context) {
	var payload services.SyncPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middlewares.CurrentUser(c)
	if err := ct.sync.Push(user.ID, &payload); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

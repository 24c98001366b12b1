package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chunponglai/tricks-planner/middlewares"
	"github.com/chunponglai/tricks-planner/services"
)

type ChallengeController struct {
	challenges *services.ChallengeService
}

func NewChallengeController(challenges *services.ChallengeService) *ChallengeController {
	return &ChallengeController{challenges: challenges}
}

func (ct *ChallengeController) List(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	challenges, err := ct.challenges.List(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, challenges)
}

func (ct *ChallengeController) Create(c *gin.Context) {
	var input services.ChallengeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middlewares.CurrentUser(c)
	challenge, err := ct.challenges.Create(user.ID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, challenge)
}

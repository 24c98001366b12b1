package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chunponglai/tricks-planner/middlewares"
	"github.com/chunponglai/tricks-planner/services"
)

type PlanController struct {
	plans *services.PlanService
}

func NewPlanController(plans *services.PlanService) *PlanController {
	return &PlanController{plans: plans}
}

func (ct *PlanController) List(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	plans, err := ct.plans.List(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (ct *PlanController) Create(c *gin.Context) {
	var input services.PlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middlewares.CurrentUser(c)
	plan, err := ct.plans.Create(user.ID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}

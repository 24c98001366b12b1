package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chunponglai/tricks-planner/middlewares"
)

type UserController struct{}

func NewUserController() *UserController {
	return &UserController{}
}

func (ct *UserController) Me(c *gin.Context) {
	c.JSON(http.StatusOK, middlewares.CurrentUser(c))
}

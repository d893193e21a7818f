package project

import (
	"net/http"
	"strings"

	"bizdash/internal/shared/response"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine, handler *Handler) {
	router.GET("/projects", handler.GetAll)
	router.POST("/projects", handler.Create)

	router.GET("/projectslist", handler.GetSplitList)
	router.GET("/projectslist/ProjectDetails/:id", handler.GetDetails)

	// Gin keeps one tree per verb and a static segment cannot sit beside a
	// parameter, so the fixed markAsCompleted path and the :id update share
	// a catch-all and are dispatched here.
	router.PUT("/projectslist/*action", func(c *gin.Context) {
		action := strings.Trim(c.Param("action"), "/")
		switch {
		case action == "activeProjects/markAsCompleted":
			handler.MarkCompleted(c)
		case action != "" && !strings.Contains(action, "/"):
			c.Params = append(c.Params, gin.Param{Key: "id", Value: action})
			handler.Update(c)
		default:
			response.Error(c, http.StatusNotFound, "Not found", "", nil)
		}
	})
}

package employee

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", h.GetAll)
		employees.POST("", h.Create)
		employees.GET("/count", h.Count)
		employees.GET("/latest-user-id", h.LatestUserID)
	}
}

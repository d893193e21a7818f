package attendance

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	attendance := r.Group("/attendance")
	{
		attendance.POST("", h.Submit)
		attendance.POST("/bulk", h.Bulk)
		attendance.GET("/present", h.PresentCount)
		attendance.GET("/records", h.DayRecords)
		attendance.GET("/monthly", h.Monthly)
	}
}

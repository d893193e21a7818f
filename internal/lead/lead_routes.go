package lead

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.Engine, handler *Handler) {
	router.POST("/leads", handler.Create)

	contacts := router.Group("/contacts")
	{
		contacts.GET("", handler.GetGroupedContacts)
		contacts.PUT("/:id/status", handler.UpdateStatus)
		contacts.DELETE("/:id", handler.Delete)
	}
}

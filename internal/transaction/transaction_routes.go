package transaction

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	transactions := r.Group("/transactions")
	{
		transactions.GET("", h.GetAll)
		transactions.POST("", h.Create)
		transactions.GET("/monthly", h.Monthly)
		transactions.GET("/expenses", h.Expenses)
		transactions.GET("/summary", h.Summary)
	}

	// The balance widget reads from its own top-level path.
	r.GET("/account-balance", h.AccountBalance)
}

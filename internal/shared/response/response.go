package response

import "github.com/gin-gonic/gin"

// The dashboard API has no result envelope: success bodies are written
// verbatim (arrays, counts, grouped maps), and failures all share the
// {message, error, details} shape the frontend widgets expect.

func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func Error(c *gin.Context, status int, message, errorText string, details any) {
	body := gin.H{"message": message}
	if errorText != "" {
		body["error"] = errorText
	}
	if details != nil {
		body["details"] = details
	}
	c.JSON(status, body)
}

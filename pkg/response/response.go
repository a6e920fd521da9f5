package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the shape every failed request returns. Nothing unstructured
// is allowed to reach the caller.
type ErrorBody struct {
	Status    int         `json:"status"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
	Details   interface{} `json:"details,omitempty"`
}

// Error writes a structured status+message response.
func Error(c *gin.Context, status int, message string, details interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, ErrorBody{
		Status:    status,
		Message:   message,
		RequestID: c.GetString("request_id"),
		Details:   details,
	})
}

// AbortError writes the error body and stops the handler chain.
func AbortError(c *gin.Context, status int, message string, details interface{}) {
	Error(c, status, message, details)
	c.Abort()
}

// Message writes a plain {message} body, the success shape of login/logout.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

package utils

import (
	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	// Detail mirrors Message; the bundled chat UI reads it.
	Detail string `json:"detail,omitempty"`
}

func ErrorResponse(c *gin.Context, code int, message string, err error) {
	response := APIResponse{
		Success: false,
		Message: message,
		Detail:  message,
	}

	if err != nil {
		response.Error = err.Error()
	}

	c.JSON(code, response)
}

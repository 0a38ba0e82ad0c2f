// Package response builds the JSON envelope shared by every endpoint.
// Legacy clients key off the "status" field, so both shapes are fixed:
// success envelopes merge the payload next to status, error envelopes carry
// a single stable message.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Success(c *gin.Context, payload gin.H) {
	body := gin.H{"status": "success"}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": "error", "message": message})
}

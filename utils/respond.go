// utils/respond.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError aborts the request with a JSON error body.
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// RespondWithFieldErrors aborts with the accumulated per-field validation
// errors so a form can display all problems at once.
func RespondWithFieldErrors(c *gin.Context, code int, fieldErrors map[string]string) {
	c.AbortWithStatusJSON(code, gin.H{"errors": fieldErrors})
}

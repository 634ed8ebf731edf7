package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Outcome strings shared by every endpoint. Endpoint-specific ones live next to their handlers.
const (
	Done         = "done"
	NoAuth       = "no_auth"
	NoPermission = "no_permission"
	NotFound     = "not_found"
	Exists       = "exists"
	Error        = "error"
	BadRequest   = "bad_request"
)

// ContextKey is where the outcome of a request is kept for logging and metrics.
const ContextKey = "result"

// Body documents the envelope for swagger; handlers build it with Result and With.
type Body struct {
	Result string `json:"result" example:"done"`
}

// Result builds the {"result": ...} envelope.
func Result(result string) gin.H {
	return gin.H{"result": result}
}

// With builds the envelope and merges payload fields next to "result".
func With(result string, payload gin.H) gin.H {
	body := make(gin.H, len(payload)+1)
	for k, v := range payload {
		body[k] = v
	}
	body["result"] = result
	return body
}

// JSON writes the envelope. The HTTP status is always 200; the outcome travels in the body.
func JSON(c *gin.Context, body gin.H) {
	if result, ok := body["result"].(string); ok {
		c.Set(ContextKey, result)
	}
	c.JSON(http.StatusOK, body)
}

// Abort writes a bare outcome and stops the handler chain.
func Abort(c *gin.Context, result string) {
	c.Set(ContextKey, result)
	c.AbortWithStatusJSON(http.StatusOK, Result(result))
}

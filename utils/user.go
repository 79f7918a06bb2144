package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserKey      = "user"
	ContextRequestIDKey = "request_id"
)

func GetActiveUser(ctx *gin.Context) (TokenObject, error) {
	value, exists := ctx.Get(ContextUserKey)
	if !exists {
		return TokenObject{}, fmt.Errorf("error occurred, not authorized to access this resource")
	}

	user, ok := value.(TokenObject)
	if !ok {
		return TokenObject{}, fmt.Errorf("an error occurred")
	}

	return user, nil
}

// GetRequestID returns the id assigned by the request-id middleware, or "unknown".
func GetRequestID(ctx *gin.Context) string {
	if id := ctx.GetString(ContextRequestIDKey); id != "" {
		return id
	}
	return "unknown"
}

package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respond writes an upstream payload unchanged. Raw payloads are copied
// byte for byte; an empty one produces an empty body.
func respond(ctx *gin.Context, status int, payload interface{}) {
	switch v := payload.(type) {
	case json.RawMessage:
		if len(v) == 0 {
			ctx.Status(status)
			return
		}
		ctx.Data(status, "application/json; charset=utf-8", v)
	case nil:
		ctx.Status(status)
	default:
		ctx.JSON(status, v)
	}
}

func respondOK(ctx *gin.Context, payload interface{}) {
	respond(ctx, http.StatusOK, payload)
}

func respondCreated(ctx *gin.Context, payload interface{}) {
	respond(ctx, http.StatusCreated, payload)
}

package api

import (
	"net/http"

	"github.com/Portalfi/Portalfi-Backend/api/models"
	"github.com/gin-gonic/gin"
)

type Email struct {
	server *Server
}

func (e Email) router(server *Server) {
	e.server = server

	serverGroup := server.router.Group("/email")
	serverGroup.POST("send", e.send)
	serverGroup.POST("send-example", e.sendExample)
	serverGroup.GET("preview-example", e.previewExample)
}

func (e *Email) send(ctx *gin.Context) {
	var request models.SendEmailParams
	if !e.server.bindJSON(ctx, &request) {
		return
	}

	id, err := e.server.email.Send(ctx.Request.Context(), request.To, request.Template, request.Language, request.Params)
	if err != nil {
		e.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, models.EmailResponse{Success: true, MessageID: id})
}

func (e *Email) sendExample(ctx *gin.Context) {
	var request models.SendExampleEmailParams
	if !e.server.bindJSON(ctx, &request) {
		return
	}

	if err := e.server.email.SendWelcomeEmail(ctx.Request.Context(), request.To, request.Name, request.Language); err != nil {
		e.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, models.StatusResponse{Status: "ok"})
}

func (e *Email) previewExample(ctx *gin.Context) {
	var query models.PreviewEmailQuery
	if !e.server.bindQuery(ctx, &query) {
		return
	}

	html, err := e.server.email.PreviewExample(query.Name, query.Language, query.Template)
	if err != nil {
		e.server.fail(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

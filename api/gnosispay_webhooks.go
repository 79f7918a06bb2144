package api

import (
	"github.com/Portalfi/Portalfi-Backend/api/models"
	"github.com/Portalfi/Portalfi-Backend/middleware"
	"github.com/Portalfi/Portalfi-Backend/providers/gnosispay"
	"github.com/gin-gonic/gin"
)

type GnosisPayWebhooks struct {
	server *Server
}

func (w GnosisPayWebhooks) router(server *Server) {
	w.server = server

	serverGroupV1 := server.router.Group("/api/v1/webhooks", server.GnosisPayTokenMiddleware())
	serverGroupV1.GET("", w.getWebhooks)
	serverGroupV1.POST("", w.createWebhook)
	serverGroupV1.GET("message/:partnerId", w.getMessage)
	serverGroupV1.POST("subscribe/:partnerId", w.subscribe)
	serverGroupV1.GET(":id", w.getWebhook)
	serverGroupV1.PATCH(":id", w.updateWebhook)
	serverGroupV1.DELETE(":id", w.deleteWebhook)
}

func (w *GnosisPayWebhooks) getWebhooks(ctx *gin.Context) {
	webhooks, err := w.server.gnosisPay.GetWebhooks(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		w.server.fail(ctx, err)
		return
	}
	respondOK(ctx, webhooks)
}

func (w *GnosisPayWebhooks) createWebhook(ctx *gin.Context) {
	var request models.CreateWebhookParams
	if !w.server.bindJSON(ctx, &request) {
		return
	}

	webhook, err := w.server.gnosisPay.CreateWebhook(ctx.Request.Context(), bearerToken(ctx), gnosispay.WebhookRequest{
		URL:         request.URL,
		Events:      request.Events,
		Description: request.Description,
	})
	if err != nil {
		w.server.fail(ctx, err)
		return
	}

	ctx.Set(middleware.ContextActivityTargetKey, request.URL)
	respondCreated(ctx, webhook)
}

func (w *GnosisPayWebhooks) getWebhook(ctx *gin.Context) {
	webhook, err := w.server.gnosisPay.GetWebhook(ctx.Request.Context(), bearerToken(ctx), ctx.Param("id"))
	if err != nil {
		w.server.fail(ctx, err)
		return
	}
	respondOK(ctx, webhook)
}

func (w *GnosisPayWebhooks) updateWebhook(ctx *gin.Context) {
	var request models.UpdateWebhookParams
	if !w.server.bindJSON(ctx, &request) {
		return
	}

	webhook, err := w.server.gnosisPay.UpdateWebhook(ctx.Request.Context(), bearerToken(ctx), ctx.Param("id"), gnosispay.WebhookRequest{
		URL:         request.URL,
		Events:      request.Events,
		Description: request.Description,
		IsActive:    request.IsActive,
	})
	if err != nil {
		w.server.fail(ctx, err)
		return
	}
	respondOK(ctx, webhook)
}

func (w *GnosisPayWebhooks) deleteWebhook(ctx *gin.Context) {
	if err := w.server.gnosisPay.DeleteWebhook(ctx.Request.Context(), bearerToken(ctx), ctx.Param("id")); err != nil {
		w.server.fail(ctx, err)
		return
	}
	respondOK(ctx, nil)
}

func (w *GnosisPayWebhooks) getMessage(ctx *gin.Context) {
	message, err := w.server.gnosisPay.GetWebhookMessage(ctx.Request.Context(), bearerToken(ctx), ctx.Param("partnerId"))
	if err != nil {
		w.server.fail(ctx, err)
		return
	}
	respondOK(ctx, message)
}

func (w *GnosisPayWebhooks) subscribe(ctx *gin.Context) {
	var request models.WebhookSubscriptionParams
	if !w.server.bindJSON(ctx, &request) {
		return
	}

	result, err := w.server.gnosisPay.SubscribeWebhook(ctx.Request.Context(), bearerToken(ctx), ctx.Param("partnerId"), gnosispay.WebhookSubscription{
		URL:       request.URL,
		Signature: request.Signature,
		Events:    request.Events,
	})
	if err != nil {
		w.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, result)
}

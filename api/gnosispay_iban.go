package api

import (
	"github.com/Portalfi/Portalfi-Backend/api/models"
	"github.com/Portalfi/Portalfi-Backend/providers/gnosispay"
	"github.com/gin-gonic/gin"
)

type GnosisPayIBAN struct {
	server *Server
}

func (i GnosisPayIBAN) router(server *Server) {
	i.server = server
	guard := server.GnosisPayTokenMiddleware()

	ibans := server.router.Group("/api/v1/ibans", guard)
	ibans.GET("available", i.getAvailability)
	ibans.GET("details", i.getDetails)
	ibans.GET("orders", i.getOrders)
	ibans.GET("signing-message", i.getSigningMessage)
	ibans.GET("oauth/redirect_url", i.getOAuthRedirectURL)
	ibans.POST("monerium-profile", i.createMoneriumProfile)
	ibans.DELETE("reset", i.reset)

	server.router.POST("/api/v1/integrations/monerium", guard, i.createMoneriumIntegration)
}

func (i *GnosisPayIBAN) getAvailability(ctx *gin.Context) {
	availability, err := i.server.gnosisPay.GetIbanAvailability(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		i.server.fail(ctx, err)
		return
	}
	respondOK(ctx, availability)
}

func (i *GnosisPayIBAN) getDetails(ctx *gin.Context) {
	details, err := i.server.gnosisPay.GetIbanDetails(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		i.server.fail(ctx, err)
		return
	}
	respondOK(ctx, details)
}

func (i *GnosisPayIBAN) getOrders(ctx *gin.Context) {
	orders, err := i.server.gnosisPay.GetIbanOrders(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		i.server.fail(ctx, err)
		return
	}
	if orders == nil {
		orders = []gnosispay.IbanOrder{}
	}
	respondOK(ctx, orders)
}

func (i *GnosisPayIBAN) getSigningMessage(ctx *gin.Context) {
	message, err := i.server.gnosisPay.GetIbanSigningMessage(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		i.server.fail(ctx, err)
		return
	}
	respondOK(ctx, message)
}

func (i *GnosisPayIBAN) getOAuthRedirectURL(ctx *gin.Context) {
	var query models.CallbackQuery
	if !i.server.bindQuery(ctx, &query) {
		return
	}

	redirect, err := i.server.gnosisPay.GetIbanOAuthRedirectURL(ctx.Request.Context(), bearerToken(ctx), query.CallbackURL)
	if err != nil {
		i.server.fail(ctx, err)
		return
	}
	respondOK(ctx, redirect)
}

func (i *GnosisPayIBAN) createMoneriumProfile(ctx *gin.Context) {
	var request models.MoneriumProfileParams
	if !i.server.bindJSON(ctx, &request) {
		return
	}

	profile, err := i.server.gnosisPay.CreateMoneriumProfile(ctx.Request.Context(), bearerToken(ctx), request.CallbackURL)
	if err != nil {
		i.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, profile)
}

func (i *GnosisPayIBAN) reset(ctx *gin.Context) {
	if err := i.server.gnosisPay.ResetIban(ctx.Request.Context(), bearerToken(ctx)); err != nil {
		i.server.fail(ctx, err)
		return
	}
	respondOK(ctx, nil)
}

func (i *GnosisPayIBAN) createMoneriumIntegration(ctx *gin.Context) {
	var request models.MoneriumIntegrationParams
	if !i.server.bindJSON(ctx, &request) {
		return
	}

	integration, err := i.server.gnosisPay.CreateMoneriumIntegration(ctx.Request.Context(), bearerToken(ctx), gnosispay.MoneriumIntegrationRequest{
		Signature: request.Signature,
		Accounts:  request.Accounts,
	})
	if err != nil {
		i.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, integration)
}

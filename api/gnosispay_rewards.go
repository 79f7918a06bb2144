package api

import (
	"net/http"

	"github.com/Portalfi/Portalfi-Backend/api/models"
	"github.com/gin-gonic/gin"
)

type GnosisPayRewards struct {
	server *Server
}

func (r GnosisPayRewards) router(server *Server) {
	r.server = server
	guard := server.GnosisPayTokenMiddleware()

	rewards := server.router.Group("/api/v1/rewards", guard)
	rewards.GET("", r.getRewards)
	rewards.POST("accept-terms", r.acceptTerms)

	server.router.GET("/api/v1/cashback", guard, r.getCashback)
}

func (r *GnosisPayRewards) getRewards(ctx *gin.Context) {
	rewards, err := r.server.gnosisPay.GetRewards(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		r.server.fail(ctx, err)
		return
	}
	respondOK(ctx, rewards)
}

func (r *GnosisPayRewards) acceptTerms(ctx *gin.Context) {
	var request models.AcceptRewardsTermsParams
	if !r.server.bindJSON(ctx, &request) {
		return
	}
	if !*request.Accepted {
		r.server.writeError(ctx, newAPIError(http.StatusBadRequest, "Terms must be accepted"))
		return
	}

	if err := r.server.gnosisPay.AcceptRewardsTerms(ctx.Request.Context(), bearerToken(ctx), request.Version); err != nil {
		r.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, nil)
}

func (r *GnosisPayRewards) getCashback(ctx *gin.Context) {
	cashback, err := r.server.gnosisPay.GetCashback(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		r.server.fail(ctx, err)
		return
	}
	respondOK(ctx, cashback)
}

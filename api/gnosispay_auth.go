package api

import (
	"net/http"

	"github.com/Portalfi/Portalfi-Backend/api/models"
	"github.com/Portalfi/Portalfi-Backend/providers/gnosispay"
	"github.com/gin-gonic/gin"
)

type GnosisPayAuth struct {
	server *Server
}

func (a GnosisPayAuth) router(server *Server) {
	a.server = server

	serverGroupV1 := server.router.Group("/api/v1/auth")
	serverGroupV1.GET("nonce", a.generateNonce)
	serverGroupV1.POST("challenge", a.verifyChallenge)
	serverGroupV1.POST("signup", server.GnosisPayTokenMiddleware(), a.signup)
	serverGroupV1.POST("signup/otp", a.requestSignupOTP)
}

func (a *GnosisPayAuth) generateNonce(ctx *gin.Context) {
	nonce, err := a.server.gnosisPay.GenerateNonce(ctx.Request.Context())
	if err != nil {
		a.server.fail(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(nonce))
}

func (a *GnosisPayAuth) verifyChallenge(ctx *gin.Context) {
	var request models.VerifyChallengeParams
	if !a.server.bindJSON(ctx, &request) {
		return
	}

	resp, err := a.server.gnosisPay.VerifyChallenge(ctx.Request.Context(), gnosispay.ChallengeRequest{
		Message:      request.Message,
		Signature:    request.Signature,
		TTLInSeconds: request.TTLInSeconds,
	})
	if err != nil {
		a.server.fail(ctx, err)
		return
	}

	respondCreated(ctx, models.TokenResponse{Token: resp.Token})
}

func (a *GnosisPayAuth) signup(ctx *gin.Context) {
	var request models.SignupParams
	if !a.server.bindJSON(ctx, &request) {
		return
	}

	resp, err := a.server.authService.SignupUser(ctx.Request.Context(), bearerToken(ctx), request.ToRequest())
	if err != nil {
		a.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, resp)
}

func (a *GnosisPayAuth) requestSignupOTP(ctx *gin.Context) {
	var request models.SignupOTPParams
	if !a.server.bindJSON(ctx, &request) {
		return
	}

	if err := a.server.gnosisPay.RequestSignupOTP(ctx.Request.Context(), request.Email); err != nil {
		a.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, nil)
}

package api

import (
	"github.com/Portalfi/Portalfi-Backend/api/models"
	"github.com/Portalfi/Portalfi-Backend/providers/gnosispay"
	"github.com/gin-gonic/gin"
)

type GnosisPayUser struct {
	server *Server
}

func (u GnosisPayUser) router(server *Server) {
	u.server = server

	serverGroupV1 := server.router.Group("/api/v1/user", server.GnosisPayTokenMiddleware())
	serverGroupV1.GET("", u.getUser)
	serverGroupV1.PATCH("", u.updateUser)
	serverGroupV1.POST("phone/send-otp", u.sendPhoneOTP)
	serverGroupV1.POST("phone/verify-otp", u.verifyPhoneOTP)
	serverGroupV1.GET("terms", u.getTerms)
	serverGroupV1.POST("terms", u.acceptTerms)
}

func (u *GnosisPayUser) getUser(ctx *gin.Context) {
	user, err := u.server.gnosisPay.GetUser(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		u.server.fail(ctx, err)
		return
	}
	respondOK(ctx, user)
}

func (u *GnosisPayUser) updateUser(ctx *gin.Context) {
	var request models.UpdateGnosisUserParams
	if !u.server.bindJSON(ctx, &request) {
		return
	}

	user, err := u.server.gnosisPay.UpdateUser(ctx.Request.Context(), bearerToken(ctx), request.ToRequest())
	if err != nil {
		u.server.fail(ctx, err)
		return
	}
	respondOK(ctx, user)
}

func (u *GnosisPayUser) sendPhoneOTP(ctx *gin.Context) {
	var request models.PhoneParams
	if !u.server.bindJSON(ctx, &request) {
		return
	}

	if err := u.server.kycService.SendPhoneVerification(ctx.Request.Context(), bearerToken(ctx), request.Phone); err != nil {
		u.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, nil)
}

func (u *GnosisPayUser) verifyPhoneOTP(ctx *gin.Context) {
	var request models.PhoneOTPParams
	if !u.server.bindJSON(ctx, &request) {
		return
	}

	if err := u.server.kycService.VerifyPhoneOTP(ctx.Request.Context(), bearerToken(ctx), request.OTP); err != nil {
		u.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, nil)
}

func (u *GnosisPayUser) getTerms(ctx *gin.Context) {
	terms, err := u.server.gnosisPay.GetUserTermsStatus(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		u.server.fail(ctx, err)
		return
	}
	respondOK(ctx, terms)
}

func (u *GnosisPayUser) acceptTerms(ctx *gin.Context) {
	var request models.TermsParams
	if !u.server.bindJSON(ctx, &request) {
		return
	}

	err := u.server.gnosisPay.AcceptUserTerms(ctx.Request.Context(), bearerToken(ctx), gnosispay.TermsRequest{
		Type:    request.Type,
		Version: request.Version,
	})
	if err != nil {
		u.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, nil)
}

package api

import (
	"encoding/json"
	"net/http"

	"github.com/Portalfi/Portalfi-Backend/api/models"
	"github.com/Portalfi/Portalfi-Backend/providers/gnosispay"
	"github.com/gin-gonic/gin"
)

type GnosisPayKYC struct {
	server *Server
}

func (k GnosisPayKYC) router(server *Server) {
	k.server = server
	guard := server.GnosisPayTokenMiddleware()

	kyc := server.router.Group("/api/v1/kyc", guard)
	kyc.GET("questions", k.getQuestions)
	kyc.POST("answers", k.submitAnswers)
	kyc.GET("access-token", k.getAccessToken)
	kyc.GET("status", k.getStatus)
	kyc.GET("flow-status", k.getFlowStatus)
	kyc.GET("integration", k.getIntegration)
	kyc.GET("integration/sdk", k.getIntegrationSDK)
	kyc.POST("import-partner-applicant", k.importPartnerApplicant)

	sourceOfFunds := server.router.Group("/api/v1/source-of-funds", guard)
	sourceOfFunds.GET("", k.getSourceOfFunds)
	sourceOfFunds.POST("", k.submitSourceOfFunds)

	verification := server.router.Group("/api/v1/verification", guard)
	verification.POST("", k.requestVerification)
	verification.POST("check", k.checkVerification)
}

func (k *GnosisPayKYC) getQuestions(ctx *gin.Context) {
	questions, err := k.server.kycService.GetQuestions(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		k.server.fail(ctx, err)
		return
	}
	if questions == nil {
		questions = []gnosispay.KycQuestion{}
	}
	respondOK(ctx, questions)
}

func (k *GnosisPayKYC) submitAnswers(ctx *gin.Context) {
	var request models.KycAnswersParams
	if !k.server.bindJSON(ctx, &request) {
		return
	}

	if err := k.server.kycService.SubmitAnswers(ctx.Request.Context(), bearerToken(ctx), request.ToAnswers()); err != nil {
		k.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, nil)
}

func (k *GnosisPayKYC) getAccessToken(ctx *gin.Context) {
	token, err := k.server.kycService.GetAccessToken(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		k.server.fail(ctx, err)
		return
	}
	respondOK(ctx, models.AccessTokenResponse{Token: token})
}

func (k *GnosisPayKYC) getStatus(ctx *gin.Context) {
	status, err := k.server.kycService.GetStatus(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		k.server.fail(ctx, err)
		return
	}
	respondOK(ctx, models.KYCStatusResponse{KYCStatus: status})
}

func (k *GnosisPayKYC) getFlowStatus(ctx *gin.Context) {
	status, err := k.server.kycService.GetFlowStatus(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		k.server.fail(ctx, err)
		return
	}
	respondOK(ctx, status)
}

func (k *GnosisPayKYC) getIntegration(ctx *gin.Context) {
	var query models.LanguageQuery
	if !k.server.bindQuery(ctx, &query) {
		return
	}

	integration, err := k.server.gnosisPay.GetKYCIntegration(ctx.Request.Context(), bearerToken(ctx), query.Lang)
	if err != nil {
		k.server.fail(ctx, err)
		return
	}
	respondOK(ctx, integration)
}

func (k *GnosisPayKYC) getIntegrationSDK(ctx *gin.Context) {
	var query models.LanguageQuery
	if !k.server.bindQuery(ctx, &query) {
		return
	}

	token, err := k.server.gnosisPay.GetKYCAccessToken(ctx.Request.Context(), bearerToken(ctx), query.Lang)
	if err != nil {
		k.server.fail(ctx, err)
		return
	}
	respondOK(ctx, token)
}

func (k *GnosisPayKYC) importPartnerApplicant(ctx *gin.Context) {
	var request models.ImportApplicantParams
	if !k.server.bindJSON(ctx, &request) {
		return
	}

	result, err := k.server.gnosisPay.ImportPartnerApplicant(ctx.Request.Context(), bearerToken(ctx), request.ApplicantID)
	if err != nil {
		k.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, result)
}

func (k *GnosisPayKYC) getSourceOfFunds(ctx *gin.Context) {
	var query models.LocaleQuery
	if !k.server.bindQuery(ctx, &query) {
		return
	}

	questions, err := k.server.gnosisPay.GetSourceOfFunds(ctx.Request.Context(), bearerToken(ctx), query.Locale)
	if err != nil {
		k.server.fail(ctx, err)
		return
	}
	respondOK(ctx, questions)
}

// submitSourceOfFunds forwards the answers untouched; the shape is owned upstream.
func (k *GnosisPayKYC) submitSourceOfFunds(ctx *gin.Context) {
	body, err := ctx.GetRawData()
	if err != nil {
		k.server.fail(ctx, err)
		return
	}
	if len(body) == 0 || !json.Valid(body) {
		k.server.writeError(ctx, newAPIError(http.StatusBadRequest, "Malformed JSON body"))
		return
	}

	if err := k.server.gnosisPay.SubmitSourceOfFunds(ctx.Request.Context(), bearerToken(ctx), json.RawMessage(body)); err != nil {
		k.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, nil)
}

func (k *GnosisPayKYC) requestVerification(ctx *gin.Context) {
	var request models.VerificationParams
	if !k.server.bindJSON(ctx, &request) {
		return
	}

	if err := k.server.gnosisPay.RequestVerificationOTP(ctx.Request.Context(), bearerToken(ctx), request.PhoneNumber); err != nil {
		k.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, nil)
}

func (k *GnosisPayKYC) checkVerification(ctx *gin.Context) {
	var request models.VerificationCheckParams
	if !k.server.bindJSON(ctx, &request) {
		return
	}

	if err := k.server.gnosisPay.CheckVerificationOTP(ctx.Request.Context(), bearerToken(ctx), request.Code); err != nil {
		k.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, nil)
}

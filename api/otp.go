package api

import (
	"github.com/Portalfi/Portalfi-Backend/api/models"
	"github.com/Portalfi/Portalfi-Backend/services/notification"
	"github.com/gin-gonic/gin"
)

// SMS sends test messages and localized one time passwords through Twilio.
// Both routes answer 200.
type SMS struct {
	server *Server
}

func (s SMS) router(server *Server) {
	s.server = server

	serverGroup := server.router.Group("/sms")
	serverGroup.POST("test", s.sendTest)
	serverGroup.POST("otp", s.sendOTP)
}

func (s *SMS) sendTest(ctx *gin.Context) {
	var request models.TestSMSParams
	if !s.server.bindJSON(ctx, &request) {
		return
	}

	sid, err := s.server.sms.SendTestSMS(ctx.Request.Context(), request.To, request.Message)
	if err != nil {
		s.server.fail(ctx, err)
		return
	}
	respondOK(ctx, models.SMSResponse{Success: true, Sid: sid})
}

func (s *SMS) sendOTP(ctx *gin.Context) {
	var request models.OTPSMSParams
	if !s.server.bindJSON(ctx, &request) {
		return
	}

	purpose := request.Purpose
	if purpose == "" {
		purpose = notification.OTPGeneric
	}

	sid, err := s.server.sms.SendOTPSMS(ctx.Request.Context(), request.To, request.Code, purpose, request.Language)
	if err != nil {
		s.server.fail(ctx, err)
		return
	}
	respondOK(ctx, models.SMSResponse{Success: true, Sid: sid})
}

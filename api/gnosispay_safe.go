package api

import (
	"github.com/Portalfi/Portalfi-Backend/api/models"
	"github.com/Portalfi/Portalfi-Backend/providers/gnosispay"
	"github.com/gin-gonic/gin"
)

type GnosisPaySafe struct {
	server *Server
}

func (s GnosisPaySafe) router(server *Server) {
	s.server = server
	guard := server.GnosisPayTokenMiddleware()

	safe := server.router.Group("/api/v1/safe", guard)
	safe.POST("set-currency", s.setCurrency)
	safe.GET("supported-currencies", s.getSupportedCurrencies)
	safe.POST("transactions", s.createTransaction)
	safe.POST("deploy", s.deploy)
	safe.GET("deploy", s.getDeploymentStatus)
	safe.DELETE("reset", s.reset)
	safe.GET("config", s.getConfig)

	owners := server.router.Group("/api/v1/owners", guard)
	owners.GET("", s.getOwners)
	owners.POST("", s.addOwner)
	owners.DELETE("", s.removeOwner)
	owners.GET("add/transaction-data", s.getAddOwnerTransactionData)
	owners.GET("remove/transaction-data", s.getRemoveOwnerTransactionData)
}

func (s *GnosisPaySafe) setCurrency(ctx *gin.Context) {
	var request models.SetCurrencyParams
	if !s.server.bindJSON(ctx, &request) {
		return
	}

	if err := s.server.gnosisPay.SetSafeCurrency(ctx.Request.Context(), bearerToken(ctx), request.Currency); err != nil {
		s.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, nil)
}

func (s *GnosisPaySafe) getSupportedCurrencies(ctx *gin.Context) {
	currencies, err := s.server.gnosisPay.GetSupportedCurrencies(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		s.server.fail(ctx, err)
		return
	}
	respondOK(ctx, currencies)
}

func (s *GnosisPaySafe) createTransaction(ctx *gin.Context) {
	var request models.SafeTransactionParams
	if !s.server.bindJSON(ctx, &request) {
		return
	}

	tx, err := s.server.gnosisPay.CreateSafeTransaction(ctx.Request.Context(), bearerToken(ctx), gnosispay.SafeTransactionRequest{
		To:    request.To,
		Value: request.Value,
		Data:  request.Data,
	})
	if err != nil {
		s.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, tx)
}

func (s *GnosisPaySafe) deploy(ctx *gin.Context) {
	result, err := s.server.gnosisPay.DeploySafe(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		s.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, result)
}

func (s *GnosisPaySafe) getDeploymentStatus(ctx *gin.Context) {
	status, err := s.server.gnosisPay.GetSafeDeploymentStatus(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		s.server.fail(ctx, err)
		return
	}
	respondOK(ctx, status)
}

func (s *GnosisPaySafe) reset(ctx *gin.Context) {
	if err := s.server.gnosisPay.ResetSafe(ctx.Request.Context(), bearerToken(ctx)); err != nil {
		s.server.fail(ctx, err)
		return
	}
	respondOK(ctx, nil)
}

func (s *GnosisPaySafe) getConfig(ctx *gin.Context) {
	config, err := s.server.gnosisPay.GetSafeConfig(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		s.server.fail(ctx, err)
		return
	}
	respondOK(ctx, config)
}

func (s *GnosisPaySafe) getOwners(ctx *gin.Context) {
	owners, err := s.server.gnosisPay.GetSafeOwners(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		s.server.fail(ctx, err)
		return
	}
	respondOK(ctx, owners)
}

func (s *GnosisPaySafe) addOwner(ctx *gin.Context) {
	var request models.AddOwnerParams
	if !s.server.bindJSON(ctx, &request) {
		return
	}

	result, err := s.server.gnosisPay.AddSafeOwner(ctx.Request.Context(), bearerToken(ctx), gnosispay.AddOwnerRequest{
		NewOwner:  request.NewOwner,
		Signature: request.Signature,
	})
	if err != nil {
		s.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, result)
}

func (s *GnosisPaySafe) removeOwner(ctx *gin.Context) {
	var request models.RemoveOwnerParams
	if !s.server.bindJSON(ctx, &request) {
		return
	}

	result, err := s.server.gnosisPay.RemoveSafeOwner(ctx.Request.Context(), bearerToken(ctx), gnosispay.RemoveOwnerRequest{
		OwnerToRemove: request.OwnerToRemove,
		Signature:     request.Signature,
	})
	if err != nil {
		s.server.fail(ctx, err)
		return
	}
	respondOK(ctx, result)
}

func (s *GnosisPaySafe) getAddOwnerTransactionData(ctx *gin.Context) {
	var query models.AddOwnerQuery
	if !s.server.bindQuery(ctx, &query) {
		return
	}

	data, err := s.server.gnosisPay.GetAddOwnerTransactionData(ctx.Request.Context(), bearerToken(ctx), query.NewOwner)
	if err != nil {
		s.server.fail(ctx, err)
		return
	}
	respondOK(ctx, data)
}

func (s *GnosisPaySafe) getRemoveOwnerTransactionData(ctx *gin.Context) {
	var query models.RemoveOwnerQuery
	if !s.server.bindQuery(ctx, &query) {
		return
	}

	data, err := s.server.gnosisPay.GetRemoveOwnerTransactionData(ctx.Request.Context(), bearerToken(ctx), query.OwnerToRemove)
	if err != nil {
		s.server.fail(ctx, err)
		return
	}
	respondOK(ctx, data)
}

package api

import (
	"github.com/Portalfi/Portalfi-Backend/api/models"
	"github.com/Portalfi/Portalfi-Backend/providers/gnosispay"
	"github.com/gin-gonic/gin"
)

type GnosisPayAccount struct {
	server *Server
}

func (a GnosisPayAccount) router(server *Server) {
	a.server = server
	guard := server.GnosisPayTokenMiddleware()

	account := server.router.Group("/api/v1/account", guard)
	account.GET("balances", a.getBalances)
	account.GET("safe-config", a.getSafeConfig)
	account.GET("delay-transactions", a.getDelayTransactions)
	account.POST("", a.createSafe)
	account.GET("signature-payload", a.getSignaturePayload)
	account.PATCH("deploy-safe-modules", a.deploySafeModules)

	accounts := server.router.Group("/api/v1/accounts", guard)
	accounts.GET("daily-limit", a.getDailyLimit)
	accounts.PUT("daily-limit", a.setDailyLimit)
	accounts.GET("daily-limit/transaction-data", a.getDailyLimitTransactionData)
	accounts.POST("withdraw", a.withdraw)
	accounts.GET("withdraw/transaction-data", a.getWithdrawTransactionData)

	// Deprecated aliases kept for older clients.
	accounts.GET("onchain-daily-limit", a.getDailyLimit)
	accounts.PUT("onchain-daily-limit", a.setDailyLimit)
	accounts.GET("onchain-daily-limit/transaction-data", a.getDailyLimitTransactionData)

	eoa := server.router.Group("/api/v1/eoa-accounts", guard)
	eoa.GET("", a.getEOAAccounts)
	eoa.POST("", a.addEOAAccount)
	eoa.DELETE(":id", a.removeEOAAccount)

	server.router.GET("/api/v1/delay-relay", guard, a.getDelayTransactions)
}

func (a *GnosisPayAccount) getBalances(ctx *gin.Context) {
	balances, err := a.server.gnosisPay.GetAccountBalance(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		a.server.fail(ctx, err)
		return
	}
	respondOK(ctx, balances)
}

func (a *GnosisPayAccount) getSafeConfig(ctx *gin.Context) {
	config, err := a.server.gnosisPay.GetSafeConfig(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		a.server.fail(ctx, err)
		return
	}
	respondOK(ctx, config)
}

func (a *GnosisPayAccount) getDelayTransactions(ctx *gin.Context) {
	transactions, err := a.server.gnosisPay.GetDelayTransactions(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		a.server.fail(ctx, err)
		return
	}
	if transactions == nil {
		transactions = []gnosispay.DelayTransaction{}
	}
	respondOK(ctx, transactions)
}

func (a *GnosisPayAccount) createSafe(ctx *gin.Context) {
	var request models.CreateSafeParams
	if !a.server.bindJSON(ctx, &request) {
		return
	}

	safe, err := a.server.gnosisPay.CreateSafe(ctx.Request.Context(), bearerToken(ctx), string(request.ChainID))
	if err != nil {
		a.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, safe)
}

func (a *GnosisPayAccount) getSignaturePayload(ctx *gin.Context) {
	payload, err := a.server.gnosisPay.GetSignaturePayload(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		a.server.fail(ctx, err)
		return
	}
	respondOK(ctx, payload)
}

func (a *GnosisPayAccount) deploySafeModules(ctx *gin.Context) {
	var request models.DeploySafeModulesParams
	if !a.server.bindJSON(ctx, &request) {
		return
	}

	result, err := a.server.gnosisPay.DeploySafeModules(ctx.Request.Context(), bearerToken(ctx), request.Signature)
	if err != nil {
		a.server.fail(ctx, err)
		return
	}
	respondOK(ctx, result)
}

func (a *GnosisPayAccount) getDailyLimit(ctx *gin.Context) {
	limit, err := a.server.gnosisPay.GetDailyLimit(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		a.server.fail(ctx, err)
		return
	}
	respondOK(ctx, limit)
}

func (a *GnosisPayAccount) setDailyLimit(ctx *gin.Context) {
	var request models.DailyLimitParams
	if !a.server.bindJSON(ctx, &request) {
		return
	}

	result, err := a.server.gnosisPay.SetDailyLimit(ctx.Request.Context(), bearerToken(ctx), gnosispay.SetDailyLimitRequest{
		NewLimit:  request.NewLimit,
		Signature: request.Signature,
	})
	if err != nil {
		a.server.fail(ctx, err)
		return
	}
	respondOK(ctx, result)
}

func (a *GnosisPayAccount) getDailyLimitTransactionData(ctx *gin.Context) {
	var query models.DailyLimitQuery
	if !a.server.bindQuery(ctx, &query) {
		return
	}

	data, err := a.server.gnosisPay.GetDailyLimitTransactionData(ctx.Request.Context(), bearerToken(ctx), query.NewLimit)
	if err != nil {
		a.server.fail(ctx, err)
		return
	}
	respondOK(ctx, data)
}

func (a *GnosisPayAccount) withdraw(ctx *gin.Context) {
	var request models.WithdrawParams
	if !a.server.bindJSON(ctx, &request) {
		return
	}

	result, err := a.server.gnosisPay.Withdraw(ctx.Request.Context(), bearerToken(ctx), request.ToRequest())
	if err != nil {
		a.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, result)
}

func (a *GnosisPayAccount) getWithdrawTransactionData(ctx *gin.Context) {
	var query models.WithdrawQuery
	if !a.server.bindQuery(ctx, &query) {
		return
	}

	data, err := a.server.gnosisPay.GetWithdrawTransactionData(ctx.Request.Context(), bearerToken(ctx), gnosispay.WithdrawQuery{
		TokenAddress: query.TokenAddress,
		To:           query.To,
		Amount:       query.Amount,
	})
	if err != nil {
		a.server.fail(ctx, err)
		return
	}
	respondOK(ctx, data)
}

func (a *GnosisPayAccount) getEOAAccounts(ctx *gin.Context) {
	accounts, err := a.server.gnosisPay.GetEOAAccounts(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		a.server.fail(ctx, err)
		return
	}
	respondOK(ctx, accounts)
}

func (a *GnosisPayAccount) addEOAAccount(ctx *gin.Context) {
	var request models.EOAAccountParams
	if !a.server.bindJSON(ctx, &request) {
		return
	}

	account, err := a.server.gnosisPay.AddEOAAccount(ctx.Request.Context(), bearerToken(ctx), gnosispay.AddEOAAccountRequest{
		Address:   request.Address,
		Message:   request.Message,
		Signature: request.Signature,
	})
	if err != nil {
		a.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, account)
}

func (a *GnosisPayAccount) removeEOAAccount(ctx *gin.Context) {
	if err := a.server.gnosisPay.RemoveEOAAccount(ctx.Request.Context(), bearerToken(ctx), ctx.Param("id")); err != nil {
		a.server.fail(ctx, err)
		return
	}
	respondOK(ctx, nil)
}

package api

import (
	"github.com/Portalfi/Portalfi-Backend/api/models"
	"github.com/Portalfi/Portalfi-Backend/providers/gnosispay"
	"github.com/gin-gonic/gin"
)

type GnosisPayTransactions struct {
	server *Server
}

// Both the transaction lookup and the dispute use ":id" since gin requires
// one wildcard name per path segment. For disputes it holds the thread id.
func (t GnosisPayTransactions) router(server *Server) {
	t.server = server

	serverGroupV1 := server.router.Group("/api/v1/transactions", server.GnosisPayTokenMiddleware())
	serverGroupV1.GET("", t.getTransactions)
	serverGroupV1.GET("dispute/reasons", t.getDisputeReasons)
	serverGroupV1.GET(":id", t.getTransaction)
	serverGroupV1.POST(":id/dispute", t.dispute)
}

func (t *GnosisPayTransactions) getTransactions(ctx *gin.Context) {
	var query models.TransactionsQuery
	if !t.server.bindQuery(ctx, &query) {
		return
	}

	transactions, err := t.server.gnosisPay.GetTransactions(ctx.Request.Context(), bearerToken(ctx), query.ToQuery())
	if err != nil {
		t.server.fail(ctx, err)
		return
	}
	respondOK(ctx, transactions)
}

func (t *GnosisPayTransactions) getTransaction(ctx *gin.Context) {
	transaction, err := t.server.gnosisPay.GetTransaction(ctx.Request.Context(), bearerToken(ctx), ctx.Param("id"))
	if err != nil {
		t.server.fail(ctx, err)
		return
	}
	respondOK(ctx, transaction)
}

func (t *GnosisPayTransactions) getDisputeReasons(ctx *gin.Context) {
	reasons, err := t.server.gnosisPay.GetDisputeReasons(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		t.server.fail(ctx, err)
		return
	}
	respondOK(ctx, reasons)
}

func (t *GnosisPayTransactions) dispute(ctx *gin.Context) {
	var request models.DisputeParams
	if !t.server.bindJSON(ctx, &request) {
		return
	}

	result, err := t.server.gnosisPay.DisputeTransaction(ctx.Request.Context(), bearerToken(ctx), ctx.Param("id"), gnosispay.DisputeRequest{
		Reason:      request.Reason,
		Description: request.Description,
	})
	if err != nil {
		t.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, result)
}

package api

import (
	"context"

	"github.com/Portalfi/Portalfi-Backend/api/models"
	"github.com/Portalfi/Portalfi-Backend/providers/gnosispay"
	"github.com/gin-gonic/gin"
)

type GnosisPayCards struct {
	server *Server
}

func (c GnosisPayCards) router(server *Server) {
	c.server = server

	serverGroupV1 := server.router.Group("/api/v1/cards", server.GnosisPayTokenMiddleware())
	serverGroupV1.GET("", c.getCards)
	serverGroupV1.POST("virtual", c.createVirtualCard)
	serverGroupV1.GET("transactions", c.getAllTransactions)
	serverGroupV1.GET(":cardId", c.getCard)
	serverGroupV1.GET(":cardId/status", c.getStatus)
	serverGroupV1.GET(":cardId/transactions", c.getTransactions)
	serverGroupV1.POST(":cardId/activate", c.cardAction(c.server.cardService.ActivateCard))
	serverGroupV1.POST(":cardId/freeze", c.cardAction(c.server.cardService.FreezeCard))
	serverGroupV1.POST(":cardId/unfreeze", c.cardAction(c.server.cardService.UnfreezeCard))
	serverGroupV1.POST(":cardId/report-lost", c.cardAction(c.server.cardService.ReportCardLost))
	serverGroupV1.POST(":cardId/stolen", c.cardAction(c.server.cardService.ReportCardStolen))
	serverGroupV1.POST(":cardId/void", c.cardAction(c.server.cardService.VoidCard))
}

func (c *GnosisPayCards) getCards(ctx *gin.Context) {
	cards, err := c.server.cardService.GetCards(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		c.server.fail(ctx, err)
		return
	}
	if cards == nil {
		cards = []gnosispay.Card{}
	}
	respondOK(ctx, cards)
}

func (c *GnosisPayCards) createVirtualCard(ctx *gin.Context) {
	card, err := c.server.cardService.CreateVirtualCard(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		c.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, card)
}

func (c *GnosisPayCards) getCard(ctx *gin.Context) {
	card, err := c.server.cardService.GetCard(ctx.Request.Context(), bearerToken(ctx), ctx.Param("cardId"))
	if err != nil {
		c.server.fail(ctx, err)
		return
	}
	respondOK(ctx, card)
}

func (c *GnosisPayCards) getStatus(ctx *gin.Context) {
	status, err := c.server.cardService.GetCardStatus(ctx.Request.Context(), bearerToken(ctx), ctx.Param("cardId"))
	if err != nil {
		c.server.fail(ctx, err)
		return
	}
	respondOK(ctx, status)
}

func (c *GnosisPayCards) getAllTransactions(ctx *gin.Context) {
	var query models.CardTransactionsQuery
	if !c.server.bindQuery(ctx, &query) {
		return
	}

	transactions, err := c.server.cardService.GetAllCardTransactions(ctx.Request.Context(), bearerToken(ctx), query.ToQuery())
	if err != nil {
		c.server.fail(ctx, err)
		return
	}
	respondOK(ctx, transactions)
}

func (c *GnosisPayCards) getTransactions(ctx *gin.Context) {
	var query models.CardTransactionsQuery
	if !c.server.bindQuery(ctx, &query) {
		return
	}

	transactions, err := c.server.cardService.GetCardTransactions(ctx.Request.Context(), bearerToken(ctx), ctx.Param("cardId"), query.ToQuery())
	if err != nil {
		c.server.fail(ctx, err)
		return
	}
	respondOK(ctx, transactions)
}

type cardActionFunc func(ctx context.Context, token, cardID string) error

// cardAction adapts the card state transitions, which share a signature and
// answer 201 with an empty body.
func (c *GnosisPayCards) cardAction(action cardActionFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := action(ctx.Request.Context(), bearerToken(ctx), ctx.Param("cardId")); err != nil {
			c.server.fail(ctx, err)
			return
		}
		respondCreated(ctx, nil)
	}
}

package api

import (
	"github.com/Portalfi/Portalfi-Backend/api/models"
	"github.com/gin-gonic/gin"
)

type GnosisPayCardOrders struct {
	server *Server
}

func (o GnosisPayCardOrders) router(server *Server) {
	o.server = server

	serverGroupV1 := server.router.Group("/api/v1/card-orders", server.GnosisPayTokenMiddleware())
	serverGroupV1.GET("", o.getOrders)
	serverGroupV1.POST("physical", o.createPhysicalOrder)
	serverGroupV1.GET(":orderId", o.getOrder)
	serverGroupV1.PATCH(":orderId/cancel", o.cancelOrder)
	serverGroupV1.POST(":orderId/confirm", o.confirmOrder)
	serverGroupV1.POST(":orderId/create-card", o.createCard)
	serverGroupV1.POST(":orderId/attach-coupon", o.attachCoupon)
	serverGroupV1.POST(":orderId/attach-transaction", o.attachTransaction)
}

func (o *GnosisPayCardOrders) getOrders(ctx *gin.Context) {
	orders, err := o.server.gnosisPay.GetCardOrders(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		o.server.fail(ctx, err)
		return
	}
	respondOK(ctx, orders)
}

func (o *GnosisPayCardOrders) createPhysicalOrder(ctx *gin.Context) {
	var request models.PhysicalCardOrderParams
	if !o.server.bindJSON(ctx, &request) {
		return
	}

	order, err := o.server.gnosisPay.CreatePhysicalCardOrder(ctx.Request.Context(), bearerToken(ctx), request.ToRequest())
	if err != nil {
		o.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, order)
}

func (o *GnosisPayCardOrders) getOrder(ctx *gin.Context) {
	order, err := o.server.gnosisPay.GetCardOrder(ctx.Request.Context(), bearerToken(ctx), ctx.Param("orderId"))
	if err != nil {
		o.server.fail(ctx, err)
		return
	}
	respondOK(ctx, order)
}

func (o *GnosisPayCardOrders) cancelOrder(ctx *gin.Context) {
	if err := o.server.gnosisPay.CancelCardOrder(ctx.Request.Context(), bearerToken(ctx), ctx.Param("orderId")); err != nil {
		o.server.fail(ctx, err)
		return
	}
	respondOK(ctx, nil)
}

// confirmOrder validates the confirmation but upstream only needs the order id.
func (o *GnosisPayCardOrders) confirmOrder(ctx *gin.Context) {
	var request models.ConfirmCardOrderParams
	if !o.server.bindJSON(ctx, &request) {
		return
	}

	if err := o.server.gnosisPay.ConfirmCardOrderPayment(ctx.Request.Context(), bearerToken(ctx), ctx.Param("orderId")); err != nil {
		o.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, nil)
}

func (o *GnosisPayCardOrders) createCard(ctx *gin.Context) {
	card, err := o.server.gnosisPay.CreatePhysicalCard(ctx.Request.Context(), bearerToken(ctx), ctx.Param("orderId"))
	if err != nil {
		o.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, card)
}

func (o *GnosisPayCardOrders) attachCoupon(ctx *gin.Context) {
	var request models.CouponParams
	if !o.server.bindJSON(ctx, &request) {
		return
	}

	order, err := o.server.gnosisPay.AttachCouponToOrder(ctx.Request.Context(), bearerToken(ctx), ctx.Param("orderId"), request.CouponCode)
	if err != nil {
		o.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, order)
}

func (o *GnosisPayCardOrders) attachTransaction(ctx *gin.Context) {
	var request models.AttachTransactionParams
	if !o.server.bindJSON(ctx, &request) {
		return
	}

	order, err := o.server.gnosisPay.AttachTransactionToOrder(ctx.Request.Context(), bearerToken(ctx), ctx.Param("orderId"), request.TransactionHash)
	if err != nil {
		o.server.fail(ctx, err)
		return
	}
	respondCreated(ctx, order)
}

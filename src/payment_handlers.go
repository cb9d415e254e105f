package main

import (
	"fmt"
	"log"
	"net/http"

	"hallbook/src/common"
	"hallbook/src/config"
	"hallbook/src/db"
	"hallbook/src/lib"
	"hallbook/src/models"
	"hallbook/src/types"
	"hallbook/src/utils"

	"github.com/gin-gonic/gin"
)

// paymentHandlers hosts the gateway redirect targets. They are public: the
// customer lands here from the checkout page, and the reference in the
// query string is the only input. Every outcome is re-verified against the
// gateway before it is applied, so a forged redirect cannot mark anything
// paid.
func paymentHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/payments/reservations/verify", func(ctx *gin.Context) {
			var query types.VerifyPaymentQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			result, err := lib.GetPaymentGateway().VerifyTransaction(ctx, query.Reference)
			if err != nil {
				log.Printf("Error verifying payment [%s]: %s\n", query.Reference, err.Error())
				ctx.Redirect(http.StatusFound, paymentRedirect("failed", query.Reference))
				return
			}
			reservation, err := common.ApplyDepositPayment(query.Reference, result)
			switch {
			case err == nil:
				ctx.Redirect(http.StatusFound, paymentRedirect("success", reservation.Code))
			case err == common.ErrPaymentPending:
				ctx.Redirect(http.StatusFound, paymentRedirect("pending", query.Reference))
			default:
				ctx.Redirect(http.StatusFound, paymentRedirect("failed", query.Reference))
			}
		}).
		GET("/payments/conversions/verify", func(ctx *gin.Context) {
			var query types.VerifyPaymentQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			result, err := lib.GetPaymentGateway().VerifyTransaction(ctx, query.Reference)
			if err != nil {
				log.Printf("Error verifying payment [%s]: %s\n", query.Reference, err.Error())
				ctx.Redirect(http.StatusFound, paymentRedirect("failed", query.Reference))
				return
			}
			booking, err := common.ApplyConversionPayment(query.Reference, result)
			switch {
			case err == nil:
				ctx.Redirect(http.StatusFound, paymentRedirect("success", booking.Code))
			case err == common.ErrPaymentPending:
				ctx.Redirect(http.StatusFound, paymentRedirect("pending", query.Reference))
			default:
				ctx.Redirect(http.StatusFound, paymentRedirect("failed", query.Reference))
			}
		})
	return g
}

func paymentRedirect(outcome, ref string) string {
	return fmt.Sprintf("%s/payments/%s?ref=%s", config.AppHost(), outcome, ref)
}

// transactionHandlers exposes the audit trail for staff.
func transactionHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/transactions/:reference", func(ctx *gin.Context) {
			reference := ctx.Params.ByName("reference")
			if _, _, err := utils.ParsePaymentReference(reference); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			gdb := db.GetDb()
			var txn models.Transaction
			if err := gdb.
				Model(&models.Transaction{}).
				Where("reference = ?", reference).
				First(&txn).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": txn})
		})
	return g
}

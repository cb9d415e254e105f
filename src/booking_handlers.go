package main

import (
	"log"
	"net/http"

	"hallbook/src/db"
	"hallbook/src/models"
	"hallbook/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/bookings", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			gdb := db.GetDb()
			var data []models.Booking
			err := gdb.
				Model(&models.Booking{}).
				Where(&models.Booking{UserID: &userId}).
				Preload("Hall").
				Order("created_at DESC").
				Limit(100).
				Find(&data).
				Error
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data, "count": len(data)})
		}).
		GET("/bookings/:code", func(ctx *gin.Context) {
			var params types.CodeRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			gdb := db.GetDb()
			var booking models.Booking
			err := gdb.
				Model(&models.Booking{}).
				Where(&models.Booking{Code: params.Code}).
				Preload("Hall").
				Preload("Reservation").
				First(&booking).
				Error
			if err != nil {
				log.Print(err.Error())
				ctx.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
				return
			}
			userId := ctx.GetUint("id")
			role := ctx.GetString("role")
			owns := booking.UserID != nil && *booking.UserID == userId
			if !owns && role == types.ROLE_CUSTOMER {
				ctx.JSON(http.StatusForbidden, gin.H{"error": "not enough permissions"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		PUT("/bookings/:code/cancel", func(ctx *gin.Context) {
			var params types.CodeRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			gdb := db.GetDb()
			var booking models.Booking
			if err := gdb.
				Model(&models.Booking{}).
				Where(&models.Booking{Code: params.Code}).
				First(&booking).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
				return
			}
			userId := ctx.GetUint("id")
			role := ctx.GetString("role")
			owns := booking.UserID != nil && *booking.UserID == userId
			if !owns && role == types.ROLE_CUSTOMER {
				ctx.JSON(http.StatusForbidden, gin.H{"error": "not enough permissions"})
				return
			}
			err := gdb.Transaction(func(tx *gorm.DB) error {
				err := tx.
					Model(&models.Booking{}).
					Where(&models.Booking{ID: booking.ID}).
					Updates(&models.Booking{Status: types.BOOKING_CANCELED}).
					Error
				if err != nil {
					return err
				}
				return nil
			})
			if err != nil {
				log.Printf("Could not complete request: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Error while processing request"})
				return
			}

			ctx.Status(http.StatusNoContent)
		})
	return g
}

package main

import (
	"net/http"

	"hallbook/src/db"
	"hallbook/src/models"
	"hallbook/src/types"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

func hallHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/halls", func(ctx *gin.Context) {
			gdb := db.GetDb()
			var data []models.Hall
			err := gdb.
				Model(&models.Hall{}).
				Where("status = ?", types.HALL_OPEN).
				Preload("Facilities").
				Limit(100).
				Find(&data).
				Error
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data, "count": len(data)})
		}).
		GET("/halls/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			gdb := db.GetDb()
			var hall models.Hall
			err := gdb.
				Model(&models.Hall{}).
				Where(&models.Hall{ID: params.ID}).
				Preload("Facilities").
				First(&hall).
				Error
			if err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "hall not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": hall})
		}).
		GET("/halls/:id/reservations", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			if ctx.GetString("role") == types.ROLE_CUSTOMER {
				ctx.JSON(http.StatusForbidden, gin.H{"error": "not enough permissions"})
				return
			}
			var filters types.ReservationQueryFilters
			if err := ctx.ShouldBindQuery(&filters); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			gdb := db.GetDb()
			q := gdb.
				Model(&models.Reservation{}).
				Where("hall_id = ?", params.ID)
			if filters.Status != "" {
				q = q.Where("status = ?", filters.Status)
			}
			if filters.PaymentStatus != "" {
				q = q.Where("payment_status = ?", filters.PaymentStatus)
			}
			var data []models.Reservation
			err := q.
				Preload("User").
				Order("cutoff_date ASC").
				Limit(100).
				Find(&data).
				Error
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data, "count": len(data)})
		}).
		POST("/halls", func(ctx *gin.Context) {
			role := ctx.GetString("role")
			if role != types.ROLE_OWNER && role != types.ROLE_ADMIN {
				ctx.JSON(http.StatusForbidden, gin.H{"error": "not enough permissions"})
				return
			}
			var body types.CreateHallRequestBody
			if err := ctx.ShouldBindBodyWithJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			hall := models.Hall{
				Name:           body.Name,
				Slug:           slug.Make(body.Name),
				Location:       body.Location,
				HourlyRate:     body.HourlyRate,
				DailyRate:      body.DailyRate,
				DepositPercent: body.DepositPercent,
				BufferHours:    body.BufferHours,
				ContactEmail:   body.ContactEmail,
				Status:         types.HALL_OPEN,
				OwnerID:        ctx.GetUint("id"),
			}
			if body.About != "" {
				hall.About = &body.About
			}
			gdb := db.GetDb()
			if err := gdb.Create(&hall).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": hall})
		}).
		POST("/halls/:id/facilities", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			role := ctx.GetString("role")
			if role != types.ROLE_OWNER && role != types.ROLE_ADMIN {
				ctx.JSON(http.StatusForbidden, gin.H{"error": "not enough permissions"})
				return
			}
			var body types.CreateFacilityRequestBody
			if err := ctx.ShouldBindBodyWithJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			gdb := db.GetDb()
			var hall models.Hall
			if err := gdb.
				Model(&models.Hall{}).
				Where(&models.Hall{ID: params.ID}).
				First(&hall).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "hall not found"})
				return
			}
			if role != types.ROLE_ADMIN && hall.OwnerID != ctx.GetUint("id") {
				ctx.JSON(http.StatusForbidden, gin.H{"error": "not enough permissions"})
				return
			}
			chargeMethod := types.CHARGE_FLAT
			if body.ChargeMethod != "" {
				chargeMethod = types.ChargeMethod(body.ChargeMethod)
			}
			facility := models.Facility{
				HallID:       hall.ID,
				Name:         body.Name,
				Cost:         body.Cost,
				ChargeMethod: chargeMethod,
			}
			if err := gdb.Create(&facility).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": facility})
		})
	return g
}

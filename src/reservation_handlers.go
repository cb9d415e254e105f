package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"hallbook/src/common"
	"hallbook/src/config"
	"hallbook/src/db"
	"hallbook/src/models"
	"hallbook/src/types"

	"github.com/gin-gonic/gin"
)

func parseDateRanges(inputs []types.DateRangeInput) ([]types.DateRange, error) {
	ranges := make([]types.DateRange, 0, len(inputs))
	for _, in := range inputs {
		start, err := time.Parse(config.TIME_PARSE_FORMAT, in.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := time.Parse(config.TIME_PARSE_FORMAT, in.EndTime)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, types.DateRange{StartTime: start, EndTime: end})
	}
	return ranges, nil
}

// statusForError maps state-machine errors onto HTTP statuses.
func statusForError(err error) int {
	var rangeErr *common.RangeValidationError
	var conflictErr *common.ConflictError
	var facilityErr *common.FacilityNotFoundError
	switch {
	case errors.As(err, &conflictErr):
		return http.StatusConflict
	case errors.As(err, &rangeErr),
		errors.As(err, &facilityErr),
		errors.Is(err, common.ErrDurationTooShort),
		errors.Is(err, common.ErrDurationTooLong),
		errors.Is(err, common.ErrNoRates),
		errors.Is(err, common.ErrDailyRateOnly),
		errors.Is(err, common.ErrWalkInIdentity),
		errors.Is(err, common.ErrUnsupportedPaymentMethod):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrNotAllowed):
		return http.StatusForbidden
	case errors.Is(err, common.ErrReservationNotFound),
		errors.Is(err, common.ErrHallNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrReservationExpired):
		return http.StatusGone
	case errors.Is(err, common.ErrAlreadyConverted),
		errors.Is(err, common.ErrReservationNotActive),
		errors.Is(err, common.ErrDepositUnpaid),
		errors.Is(err, common.ErrPaymentPending),
		errors.Is(err, common.ErrDepositPaymentFailed),
		errors.Is(err, common.ErrConversionPaymentFailed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(ctx *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		log.Printf("Error handling %s %s: %s\n", ctx.Request.Method, ctx.Request.URL.Path, err.Error())
		ctx.JSON(status, gin.H{"error": "something went wrong"})
		return
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}

func reservationHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/reservations", func(ctx *gin.Context) {
			var body types.CreateReservationRequestBody
			if err := ctx.ShouldBindBodyWithJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			dates, err := parseDateRanges(body.Dates)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			result, err := common.CreateReservation(&common.CreateReservationInput{
				HallID:     body.HallID,
				Dates:      dates,
				Facilities: body.Facilities,
				Customer: types.Customer{
					UserID: &userId,
					Email:  ctx.GetString("email"),
				},
				ReservedByID: userId,
				ActorRole:    ctx.GetString("role"),
			})
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": result})
		}).
		POST("/reservations/walkin", func(ctx *gin.Context) {
			var body types.CreateWalkInReservationRequestBody
			if err := ctx.ShouldBindBodyWithJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			dates, err := parseDateRanges(body.Dates)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			result, err := common.CreateReservation(&common.CreateReservationInput{
				HallID:     body.HallID,
				Dates:      dates,
				Facilities: body.Facilities,
				Customer: types.Customer{
					FullName: body.Customer.FullName,
					Phone:    body.Customer.Phone,
					Email:    body.Customer.Email,
				},
				ReservedByID:  ctx.GetUint("id"),
				ActorRole:     ctx.GetString("role"),
				PaymentMethod: body.PaymentMethod,
			})
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": result})
		}).
		GET("/reservations", func(ctx *gin.Context) {
			var filters types.ReservationQueryFilters
			if err := ctx.ShouldBindQuery(&filters); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			gdb := db.GetDb()
			q := gdb.
				Model(&models.Reservation{}).
				Where("user_id = ? OR reserved_by_id = ?", userId, userId)
			if filters.Status != "" {
				q = q.Where("status = ?", filters.Status)
			}
			if filters.PaymentStatus != "" {
				q = q.Where("payment_status = ?", filters.PaymentStatus)
			}
			page := filters.Page
			if page < 1 {
				page = 1
			}
			limit := filters.Limit
			if limit < 1 || limit > 100 {
				limit = 20
			}
			var count int64
			if err := q.Count(&count).Error; err != nil {
				abortWithError(ctx, err)
				return
			}
			var data []models.Reservation
			if err := q.
				Preload("Hall").
				Order("created_at DESC").
				Offset((page - 1) * limit).
				Limit(limit).
				Find(&data).
				Error; err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data, "count": count, "page": page})
		}).
		GET("/users/:id/reservations", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			role := ctx.GetString("role")
			if role == types.ROLE_CUSTOMER && params.ID != ctx.GetUint("id") {
				ctx.JSON(http.StatusForbidden, gin.H{"error": common.ErrNotAllowed.Error()})
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
				Where("user_id = ?", params.ID)
			if filters.Status != "" {
				q = q.Where("status = ?", filters.Status)
			}
			if filters.PaymentStatus != "" {
				q = q.Where("payment_status = ?", filters.PaymentStatus)
			}
			var data []models.Reservation
			if err := q.
				Preload("Hall").
				Order("created_at DESC").
				Limit(100).
				Find(&data).
				Error; err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data, "count": len(data)})
		}).
		GET("/reservations/:code", func(ctx *gin.Context) {
			var params types.CodeRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			gdb := db.GetDb()
			var reservation models.Reservation
			if err := gdb.
				Model(&models.Reservation{}).
				Where(&models.Reservation{Code: params.Code}).
				Preload("Hall").
				Preload("User").
				First(&reservation).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": common.ErrReservationNotFound.Error()})
				return
			}
			userId := ctx.GetUint("id")
			role := ctx.GetString("role")
			owns := (reservation.UserID != nil && *reservation.UserID == userId) || reservation.ReservedByID == userId
			if !owns && role == types.ROLE_CUSTOMER {
				ctx.JSON(http.StatusForbidden, gin.H{"error": common.ErrNotAllowed.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": reservation})
		}).
		POST("/reservations/:code/convert", func(ctx *gin.Context) {
			var params types.CodeRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.ConvertReservationRequestBody
			if err := ctx.ShouldBindBodyWithJSON(&body); err != nil && err.Error() != "EOF" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			outcome, err := common.ConvertReservation(params.Code, ctx.GetUint("id"), ctx.GetString("role"), body.PaymentMethod)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": outcome})
		})
	return g
}

package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/plateapp/reservations/services"
	"github.com/plateapp/reservations/utils"
)

type ReservationController struct {
	DB      *gorm.DB
	service *services.ReservationService
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db, service: services.NewReservationService(db)}
}

// CreateReservation -> allocate a table for the party and record the booking
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req struct {
		Name        string    `json:"name" binding:"required"`
		PartySize   uint      `json:"party_size" binding:"required"`
		PhoneNumber string    `json:"phone_number" binding:"required"`
		Time        time.Time `json:"time" binding:"required"`
		Section     string    `json:"section"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.service.CreateReservation(services.CreateReservationInput{
		Name:        req.Name,
		PartySize:   req.PartySize,
		PhoneNumber: req.PhoneNumber,
		Time:        req.Time,
		Section:     req.Section,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPartyTooLarge):
			utils.RespondError(c, http.StatusUnprocessableEntity, err)
		case errors.Is(err, services.ErrNoTableAvailable):
			utils.RespondError(c, http.StatusConflict, err)
		case errors.Is(err, services.ErrInvalidPartySize):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.InfoLogger.Printf("Reservation %s created: table %d, party of %d, %d minutes",
		reservation.ID, reservation.TableID, reservation.PartySize, reservation.DurationMinutes)
	utils.RespondJSON(c, http.StatusCreated, "Reservation created successfully", reservation)
}

// CancelReservation -> cancel an active reservation and free its table
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	reservationID := c.Param("reservation_id")

	if err := rc.service.CancelReservation(reservationID); err != nil {
		if errors.Is(err, services.ErrReservationNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %s cancelled", reservationID)
	utils.RespondJSON(c, http.StatusOK, "Reservation cancelled", gin.H{"id": reservationID})
}

// GetReservationByID -> detail of one reservation, active or cancelled
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	reservationID := c.Param("reservation_id")

	reservation, err := rc.service.GetReservation(reservationID)
	if err != nil {
		if errors.Is(err, services.ErrReservationNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

// GetAllReservations -> full ledger scan for staff
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	reservations, err := rc.service.ListReservations()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// parseUintParam reads a numeric path parameter, responding 400 itself on
// bad input. A zero return means the response has already been written.
func parseUintParam(c *gin.Context, name string) uint {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid %s: %q", name, raw))
		return 0
	}
	return uint(id)
}

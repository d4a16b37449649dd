package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	userRepo "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/user"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/guest"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/housekeeping"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/inventory"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/maintenance"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/report"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/reservation"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/stay"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/user"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/utils"
)

// HandlerBundle groups every handler's dependencies so route registration
// receives a single value.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	UserService         user.UserService
	GuestService        guest.GuestService
	StayService         stay.StayService
	ReservationService  reservation.ReservationService
	HousekeepingService housekeeping.HousekeepingService
	MaintenanceService  maintenance.MaintenanceService
	InventoryService    inventory.InventoryService
	ReportService       report.ReportService
}

// respondError maps domain sentinels onto HTTP statuses. Anything not
// recognized is a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reservation.ErrConflict):
		utils.JSONError(c, http.StatusConflict, "Reservation dates conflict with an existing booking", err.Error())
	case errors.Is(err, reservation.ErrNotFound),
		errors.Is(err, reservation.ErrRoomNotFound),
		errors.Is(err, guest.ErrNotFound),
		errors.Is(err, stay.ErrStayNotFound),
		errors.Is(err, stay.ErrRoomNotFound),
		errors.Is(err, housekeeping.ErrMaidNotFound),
		errors.Is(err, housekeeping.ErrScheduleNotFound),
		errors.Is(err, maintenance.ErrTaskNotFound),
		errors.Is(err, maintenance.ErrOccurrenceNotFound),
		errors.Is(err, inventory.ErrItemNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case errors.Is(err, reservation.ErrInvalidDates),
		errors.Is(err, reservation.ErrInvalidStatus),
		errors.Is(err, maintenance.ErrInvalidRRule),
		errors.Is(err, inventory.ErrInvalidMovement),
		errors.Is(err, inventory.ErrInsufficientStock),
		errors.Is(err, user.ErrEmailTaken):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
	case errors.Is(err, user.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
	}
}

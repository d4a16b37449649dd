package report

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	housekeepingRepo "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/housekeeping"
	inventoryRepo "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/inventory"
	maintenanceRepo "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/maintenance"
	reservationRepo "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/reservation"
	stayRepo "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/stay"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/occupancy"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/utils"
)

const (
	dashboardCacheKey = "report:dashboard"
	dashboardCacheTTL = 5 * time.Minute
	rankingSize       = 3
)

// ReportService produces the dashboard and the period reports.
type ReportService interface {
	Dashboard(ctx context.Context, now time.Time) (*models.DashboardSummary, error)
	Occupancy(ctx context.Context, window occupancy.Interval) (occupancy.Report, error)
	Performance(ctx context.Context, window occupancy.Interval) (*models.PerformanceReport, error)
	Payroll(ctx context.Context, window occupancy.Interval) (*models.PayrollReport, error)
}

// DefaultReportService implements ReportService over the live repositories,
// with a short-lived Redis cache in front of the dashboard.
type DefaultReportService struct {
	Stays        stayRepo.StayRepository
	Reservations reservationRepo.ReservationRepository
	Housekeeping housekeepingRepo.HousekeepingRepository
	Maintenance  maintenanceRepo.MaintenanceRepository
	Inventory    inventoryRepo.InventoryRepository
	Cache        *redis.Client
}

// engineRooms maps persisted rooms onto the engine's shape.
func engineRooms(rooms []models.Room) []occupancy.Room {
	out := make([]occupancy.Room, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, occupancy.Room{
			ID:     r.ID,
			StayID: r.StayID,
			Name:   r.Name,
			Active: r.Active,
		})
	}
	return out
}

// engineBookings maps persisted reservations onto the engine's shape. The
// mapping happens here, once, so every report consumes the same canonical
// fields no matter which endpoint asked.
func engineBookings(reservations []models.Reservation) []occupancy.Booking {
	out := make([]occupancy.Booking, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, occupancy.Booking{
			RoomID: r.RoomID,
			Interval: occupancy.NewInterval(
				occupancy.DateOf(r.CheckIn),
				occupancy.DateOf(r.CheckOut),
			),
			Cancelled: r.Status == models.ReservationCancelled,
		})
	}
	return out
}

func (s *DefaultReportService) Occupancy(ctx context.Context, window occupancy.Interval) (occupancy.Report, error) {
	rooms, err := s.Stays.ListRooms(ctx, "", true)
	if err != nil {
		return occupancy.Report{}, err
	}

	from, to := windowTimes(window)
	reservations, err := s.Reservations.List(ctx, reservationRepo.ListFilter{From: from, To: to})
	if err != nil {
		return occupancy.Report{}, err
	}

	return occupancy.Compute(engineRooms(rooms), engineBookings(reservations), window), nil
}

func (s *DefaultReportService) Performance(ctx context.Context, window occupancy.Interval) (*models.PerformanceReport, error) {
	occ, err := s.Occupancy(ctx, window)
	if err != nil {
		return nil, err
	}

	from, to := windowTimes(window)
	reservations, err := s.Reservations.List(ctx, reservationRepo.ListFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}
	var revenue float64
	for _, r := range reservations {
		if r.Status != models.ReservationCancelled {
			revenue += r.Price
		}
	}

	best := occupancy.RankRooms(occ.PerRoom, true)
	worst := occupancy.RankRooms(occ.PerRoom, false)
	if len(best) > rankingSize {
		best = best[:rankingSize]
		worst = worst[:rankingSize]
	}

	return &models.PerformanceReport{
		From:       window.Start.String(),
		To:         window.End.String(),
		Occupancy:  occ,
		Revenue:    revenue,
		NightsSold: occ.OccupiedNights,
		BestRooms:  best,
		WorstRooms: worst,
	}, nil
}

func (s *DefaultReportService) Payroll(ctx context.Context, window occupancy.Interval) (*models.PayrollReport, error) {
	from, to := windowTimes(window)
	rows, err := s.Housekeeping.Payroll(ctx, from, to)
	if err != nil {
		return nil, err
	}

	out := &models.PayrollReport{
		From:  window.Start.String(),
		To:    window.End.String(),
		Lines: make([]models.PayrollLine, 0, len(rows)),
	}
	for _, row := range rows {
		out.Lines = append(out.Lines, models.PayrollLine{
			MaidID:    row.MaidID,
			MaidName:  row.MaidName,
			Cleanings: row.Cleanings,
			Amount:    row.Amount,
		})
		out.Total += row.Amount
	}
	return out, nil
}

func (s *DefaultReportService) Dashboard(ctx context.Context, now time.Time) (*models.DashboardSummary, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, dashboardCacheKey).Result(); err == nil {
			var summary models.DashboardSummary
			if json.Unmarshal([]byte(cached), &summary) == nil {
				return &summary, nil
			}
		}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	arrivals, err := s.Reservations.ArrivalsOn(ctx, today)
	if err != nil {
		return nil, err
	}
	departures, err := s.Reservations.DeparturesOn(ctx, today)
	if err != nil {
		return nil, err
	}

	rooms, err := s.Stays.ListRooms(ctx, "", true)
	if err != nil {
		return nil, err
	}

	// Rooms occupied tonight: reservations covering [today, today+1).
	tonight := occupancy.NewInterval(occupancy.DateOf(today), occupancy.DateOf(today).AddDays(1))
	staying, err := s.Reservations.List(ctx, reservationRepo.ListFilter{
		From: today, To: today.AddDate(0, 0, 1),
	})
	if err != nil {
		return nil, err
	}
	occupied := map[string]bool{}
	for _, b := range engineBookings(staying) {
		if !b.Cancelled && b.Interval.OverlapWith(tonight) > 0 {
			occupied[b.RoomID] = true
		}
	}

	pendingCleanings, err := s.Housekeeping.CountPending(ctx, today)
	if err != nil {
		return nil, err
	}
	openMaintenance, err := s.Maintenance.CountOpen(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.Inventory.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}

	monthOcc, err := s.Occupancy(ctx, CurrentMonth(now))
	if err != nil {
		return nil, err
	}

	summary := &models.DashboardSummary{
		Date:             today.Format("2006-01-02"),
		ArrivalsToday:    arrivals,
		DeparturesToday:  departures,
		RoomsOccupied:    len(occupied),
		RoomsFree:        len(rooms) - len(occupied),
		PendingCleanings: int(pendingCleanings),
		OpenMaintenance:  int(openMaintenance),
		LowStockItems:    len(lowStock),
		MonthOccupancy:   monthOcc,
	}

	if s.Cache != nil {
		if data, err := json.Marshal(summary); err == nil {
			if err := s.Cache.Set(ctx, dashboardCacheKey, data, dashboardCacheTTL).Err(); err != nil {
				logger.Warn("failed to cache dashboard", zap.Error(err))
			}
		}
	}
	return summary, nil
}

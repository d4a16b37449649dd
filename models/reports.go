package models

import "github.com/pyetrosoares0910-source/pms-backend-sub000/services/occupancy"

// DashboardSummary backs the landing dashboard: today's movement plus the
// current month's occupancy.
type DashboardSummary struct {
	Date             string           `json:"date"`
	ArrivalsToday    []Reservation    `json:"arrivalsToday"`
	DeparturesToday  []Reservation    `json:"departuresToday"`
	RoomsOccupied    int              `json:"roomsOccupied"`
	RoomsFree        int              `json:"roomsFree"`
	PendingCleanings int              `json:"pendingCleanings"`
	OpenMaintenance  int              `json:"openMaintenance"`
	LowStockItems    int              `json:"lowStockItems"`
	MonthOccupancy   occupancy.Report `json:"monthOccupancy"`
}

// PerformanceReport is the monthly/arbitrary-window performance view:
// occupancy breakdowns plus revenue and the best/worst room rankings.
type PerformanceReport struct {
	From       string                    `json:"from"`
	To         string                    `json:"to"`
	Occupancy  occupancy.Report          `json:"occupancy"`
	Revenue    float64                   `json:"revenue"`
	NightsSold int                       `json:"nightsSold"`
	BestRooms  []occupancy.RoomOccupancy `json:"bestRooms"`
	WorstRooms []occupancy.RoomOccupancy `json:"worstRooms"`
}

// PayrollLine is one maid's pay for a period.
type PayrollLine struct {
	MaidID    string  `json:"maidId"`
	MaidName  string  `json:"maidName"`
	Cleanings int     `json:"cleanings"`
	Amount    float64 `json:"amount"`
}

// PayrollReport totals completed cleanings per maid over a period.
type PayrollReport struct {
	From  string        `json:"from"`
	To    string        `json:"to"`
	Lines []PayrollLine `json:"lines"`
	Total float64       `json:"total"`
}

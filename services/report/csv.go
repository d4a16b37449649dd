package report

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
)

// PerformanceCSV renders a performance report as CSV for download. The pack
// has no spreadsheet dependency anywhere, so this sticks to encoding/csv.
func PerformanceCSV(r *models.PerformanceReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"room", "stay", "occupied_nights", "capacity_nights", "occupancy_pct"}); err != nil {
		return nil, err
	}
	for _, room := range r.Occupancy.PerRoom {
		if err := w.Write([]string{
			room.RoomName,
			room.StayID,
			strconv.Itoa(room.OccupiedNights),
			strconv.Itoa(room.CapacityNights),
			strconv.Itoa(room.Pct),
		}); err != nil {
			return nil, err
		}
	}
	if err := w.Write([]string{"TOTAL", "",
		strconv.Itoa(r.Occupancy.OccupiedNights),
		strconv.Itoa(r.Occupancy.CapacityNights),
		strconv.Itoa(r.Occupancy.OverallPct),
	}); err != nil {
		return nil, err
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// PayrollCSV renders a cleaning payroll report as CSV.
func PayrollCSV(r *models.PayrollReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"maid", "cleanings", "amount"}); err != nil {
		return nil, err
	}
	for _, line := range r.Lines {
		if err := w.Write([]string{
			line.MaidName,
			strconv.Itoa(line.Cleanings),
			strconv.FormatFloat(line.Amount, 'f', 2, 64),
		}); err != nil {
			return nil, err
		}
	}
	if err := w.Write([]string{"TOTAL", "", strconv.FormatFloat(r.Total, 'f', 2, 64)}); err != nil {
		return nil, err
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

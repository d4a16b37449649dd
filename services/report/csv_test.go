package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/occupancy"
)

func TestPerformanceCSV(t *testing.T) {
	r := &models.PerformanceReport{
		Occupancy: occupancy.Report{
			PerRoom: []occupancy.RoomOccupancy{
				{RoomName: "101", StayID: "s1", OccupiedNights: 3, CapacityNights: 31, Pct: 10},
			},
			OccupiedNights: 3,
			CapacityNights: 31,
			OverallPct:     10,
		},
	}

	data, err := PerformanceCSV(r)
	assert.NoError(t, err)
	assert.Equal(t,
		"room,stay,occupied_nights,capacity_nights,occupancy_pct\n"+
			"101,s1,3,31,10\n"+
			"TOTAL,,3,31,10\n",
		string(data))
}

func TestPayrollCSV(t *testing.T) {
	r := &models.PayrollReport{
		Lines: []models.PayrollLine{
			{MaidName: "Ana", Cleanings: 4, Amount: 200},
			{MaidName: "Bia", Cleanings: 2, Amount: 90.5},
		},
		Total: 290.5,
	}

	data, err := PayrollCSV(r)
	assert.NoError(t, err)
	assert.Equal(t,
		"maid,cleanings,amount\n"+
			"Ana,4,200.00\n"+
			"Bia,2,90.50\n"+
			"TOTAL,,290.50\n",
		string(data))
}

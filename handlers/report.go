package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/database"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/occupancy"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/report"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/utils"
)

// parseReportWindow reads the reporting window from query params. Accepts
// either ?month=YYYY-MM or ?from=YYYY-MM-DD&to=YYYY-MM-DD; with from/to,
// ?inclusive=true treats to as the last day inside the window. Defaults to
// the current month.
func parseReportWindow(c *gin.Context) (occupancy.Interval, error) {
	if month := c.Query("month"); month != "" {
		t, err := time.Parse("2006-01", month)
		if err != nil {
			return occupancy.Interval{}, fmt.Errorf("invalid month %q: %w", month, err)
		}
		return report.MonthWindow(t.Year(), t.Month()), nil
	}

	from := c.Query("from")
	to := c.Query("to")
	if from == "" && to == "" {
		return report.CurrentMonth(time.Now().UTC()), nil
	}
	if from == "" || to == "" {
		return occupancy.Interval{}, fmt.Errorf("from and to must be provided together")
	}
	return report.ParseWindow(from, to, c.Query("inclusive") == "true")
}

func (hb *HandlerBundle) DashboardHandler(c *gin.Context) {
	summary, err := hb.ReportService.Dashboard(c.Request.Context(), time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (hb *HandlerBundle) OccupancyReportHandler(c *gin.Context) {
	window, err := parseReportWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid window", "details": err.Error()})
		return
	}

	rep, err := hb.ReportService.Occupancy(c.Request.Context(), window)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

func (hb *HandlerBundle) PerformanceReportHandler(c *gin.Context) {
	window, err := parseReportWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid window", "details": err.Error()})
		return
	}

	rep, err := hb.ReportService.Performance(c.Request.Context(), window)
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("format") == "csv" {
		data, err := report.PerformanceCSV(rep)
		if err != nil {
			respondError(c, err)
			return
		}
		name := fmt.Sprintf("performance_%s_%s.csv", window.Start, window.End)
		c.Header("Content-Disposition", "attachment; filename="+name)
		c.Data(http.StatusOK, "text/csv", data)
		return
	}
	c.JSON(http.StatusOK, rep)
}

func (hb *HandlerBundle) PayrollReportHandler(c *gin.Context) {
	window, err := parseReportWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid window", "details": err.Error()})
		return
	}

	rep, err := hb.ReportService.Payroll(c.Request.Context(), window)
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("format") == "csv" {
		data, err := report.PayrollCSV(rep)
		if err != nil {
			respondError(c, err)
			return
		}
		name := fmt.Sprintf("payroll_%s_%s.csv", window.Start, window.End)
		c.Header("Content-Disposition", "attachment; filename="+name)
		c.Data(http.StatusOK, "text/csv", data)
		return
	}
	c.JSON(http.StatusOK, rep)
}

// HealthHandler reports liveness of the database and the cache.
func (hb *HandlerBundle) HealthHandler(c *gin.Context) {
	status := utils.CheckHealth(database.GetDB())
	code := http.StatusOK
	if !status.Database {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}

package report

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicore/clinic-api/internal/handler"
	"github.com/clinicore/clinic-api/internal/model"
	"github.com/clinicore/clinic-api/internal/service/report"
)

type Handler struct {
	service *report.Service
}

func NewHandler(service *report.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/reports")
	{
		reports.GET("/dashboard", h.Dashboard)
		reports.GET("/overview", h.Overview)
		reports.GET("/revenue-trend", h.RevenueTrend)
		reports.GET("/appointments", h.AppointmentReport)
		reports.GET("/patients", h.PatientReport)
	}
}

func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(stats))
}

// Overview returns the activity summary with growth figures for the
// requested date range, defaulting to the trailing 30 days.
func (h *Handler) Overview(c *gin.Context) {
	var rng model.ReportRange
	if err := c.ShouldBindQuery(&rng); err != nil {
		handler.BindError(c, err)
		return
	}

	stats, err := h.service.PeriodStats(c.Request.Context(), rng)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(stats))
}

func (h *Handler) RevenueTrend(c *gin.Context) {
	var rng model.ReportRange
	if err := c.ShouldBindQuery(&rng); err != nil {
		handler.BindError(c, err)
		return
	}

	points, err := h.service.RevenueTrend(c.Request.Context(), rng)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(points))
}

func (h *Handler) AppointmentReport(c *gin.Context) {
	report, err := h.service.AppointmentReport(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(report))
}

// PatientReport combines headline patient counts with the gender and
// age breakdowns.
func (h *Handler) PatientReport(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.service.PatientStats(ctx)
	if err != nil {
		handler.Error(c, err)
		return
	}
	genders, err := h.service.GenderDistribution(ctx)
	if err != nil {
		handler.Error(c, err)
		return
	}
	ages, err := h.service.AgeDistribution(ctx)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"stats":     stats,
		"by_gender": genders,
		"by_age":    ages,
	}))
}

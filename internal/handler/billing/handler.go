package billing

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clinicore/clinic-api/internal/handler"
	"github.com/clinicore/clinic-api/internal/model"
	"github.com/clinicore/clinic-api/internal/service/billing"
	"github.com/clinicore/clinic-api/pkg/export"
)

type Handler struct {
	service *billing.Service
}

func NewHandler(service *billing.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	bills := r.Group("/bills")
	{
		bills.POST("", h.CreateBill)
		bills.GET("", h.ListBills)
		bills.GET("/export", h.ExportBills)
		bills.GET("/stats", h.FinancialStats)
		bills.GET("/revenue/monthly", h.MonthlyRevenue)
		bills.GET("/payment-methods", h.PaymentMethods)
		bills.GET("/:id", h.GetBill)
		bills.POST("/:id/payments", h.RecordPayment)
	}
}

func (h *Handler) CreateBill(c *gin.Context) {
	var req model.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

// ListBills returns bills joined with patient names, optionally
// filtered by date range and payment status, plus their totals.
func (h *Handler) ListBills(c *gin.Context) {
	var filters model.BillFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		handler.BindError(c, err)
		return
	}

	rows, totals, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"bills":  rows,
		"totals": totals,
	}))
}

func (h *Handler) GetBill(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid bill ID"))
		return
	}

	bill, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(bill))
}

func (h *Handler) RecordPayment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid bill ID"))
		return
	}

	var req model.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	bill, err := h.service.RecordPayment(c.Request.Context(), id, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(bill))
}

func (h *Handler) FinancialStats(c *gin.Context) {
	stats, err := h.service.FinancialStats(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(stats))
}

func (h *Handler) MonthlyRevenue(c *gin.Context) {
	rows, err := h.service.MonthlyRevenue(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(rows))
}

func (h *Handler) PaymentMethods(c *gin.Context) {
	rows, err := h.service.PaymentMethods(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(rows))
}

// ExportBills streams the filtered bill listing as a CSV download.
func (h *Handler) ExportBills(c *gin.Context) {
	var filters model.BillFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		handler.BindError(c, err)
		return
	}

	rows, _, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		handler.Error(c, err)
		return
	}

	columns := []string{"ID", "Patient", "Amount", "Paid", "Status", "Bill Date", "Services", "Payment Method"}
	records := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		records = append(records, []interface{}{
			row.ID, row.PatientName, row.Amount, row.PaidAmount,
			row.PaymentStatus, row.BillDate, row.Services, row.PaymentMethod,
		})
	}

	data, err := export.CSV(columns, records)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="bills.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

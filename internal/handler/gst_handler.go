package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voicegst/internal/service"
)

// GSTHandler handles GST calculation endpoints.
type GSTHandler struct {
	gstService service.GSTService
	log        *zap.Logger
}

// NewGSTHandler creates a new GSTHandler.
func NewGSTHandler(gstService service.GSTService, log *zap.Logger) *GSTHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &GSTHandler{gstService: gstService, log: log}
}

// Calculate handles POST /api/v1/gst/calculate
// @Summary      Calculate GST
// @Description  Computes tax on a tax-exclusive amount and splits it into components
// @Tags         gst
// @Accept       json
// @Produce      json
// @Param        body body CalculateRequest true "Amount, rate and method"
// @Success      200 {object} APIResponse{data=gst.CalculationResult}
// @Failure      400 {object} APIResponse
// @Router       /gst/calculate [post]
func (h *GSTHandler) Calculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	res, err := h.gstService.Calculate(c.Request.Context(), req.Amount, req.RatePercent, req.Method)
	if err != nil {
		HandleError(c, h.log, err)
		return
	}
	RespondOK(c, res)
}

// ReverseCalculate handles POST /api/v1/gst/calculate-reverse
// @Summary      Reverse-calculate GST
// @Description  Derives the tax-exclusive amount from a tax-inclusive total
// @Tags         gst
// @Accept       json
// @Produce      json
// @Param        body body ReverseCalculateRequest true "Total, rate and method"
// @Success      200 {object} APIResponse{data=gst.CalculationResult}
// @Failure      400 {object} APIResponse
// @Router       /gst/calculate-reverse [post]
func (h *GSTHandler) ReverseCalculate(c *gin.Context) {
	var req ReverseCalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	res, err := h.gstService.ReverseCalculate(c.Request.Context(), req.TotalAmount, req.RatePercent, req.Method)
	if err != nil {
		HandleError(c, h.log, err)
		return
	}
	RespondOK(c, res)
}

// CalculateItems handles POST /api/v1/gst/calculate-items
// @Summary      Calculate GST for line items
// @Description  Prices each item at its own rate and aggregates the components per rate
// @Tags         gst
// @Accept       json
// @Produce      json
// @Param        body body CalculateItemsRequest true "Items and method"
// @Success      200 {object} APIResponse{data=gst.ItemsResult}
// @Failure      400 {object} APIResponse
// @Router       /gst/calculate-items [post]
func (h *GSTHandler) CalculateItems(c *gin.Context) {
	var req CalculateItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	res, err := h.gstService.CalculateItems(c.Request.Context(), req.Items, req.Method)
	if err != nil {
		HandleError(c, h.log, err)
		return
	}
	RespondOK(c, res)
}

// QuarterlyReturn handles POST /api/v1/gst/quarterly-return
// @Summary      Quarterly return summary
// @Description  Summarises sales, purchases and expenses and computes the net liability or credit
// @Tags         gst
// @Accept       json
// @Produce      json
// @Param        body body QuarterlyReturnRequest true "Transactions for the period"
// @Success      200 {object} APIResponse{data=gst.QuarterlyReturn}
// @Failure      400 {object} APIResponse
// @Router       /gst/quarterly-return [post]
func (h *GSTHandler) QuarterlyReturn(c *gin.Context) {
	var req QuarterlyReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	ret, err := h.gstService.QuarterlyReturn(c.Request.Context(), req.Period, req.Sales, req.Purchases, req.Expenses)
	if err != nil {
		HandleError(c, h.log, err)
		return
	}
	RespondOK(c, ret)
}

// ValidateGSTIN handles GET /api/v1/gst/validate/:gstin
// @Summary      Validate a GSTIN
// @Description  Checks the GSTIN format and decodes state, PAN and checksum. With strict=true an invalid GSTIN answers 400.
// @Tags         gst
// @Produce      json
// @Param        gstin path string true "GSTIN"
// @Param        strict query bool false "Reject invalid GSTINs with 400" default(false)
// @Success      200 {object} APIResponse{data=service.GSTINCheck}
// @Failure      400 {object} APIResponse
// @Router       /gst/validate/{gstin} [get]
func (h *GSTHandler) ValidateGSTIN(c *gin.Context) {
	strict := false
	if s := c.Query("strict"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			respondBadRequest(c, "invalid 'strict': must be a boolean")
			return
		}
		strict = v
	}

	gstin := c.Param("gstin")
	check := h.gstService.ValidateGSTIN(c.Request.Context(), gstin)
	if strict && !check.Valid {
		RespondError(c, http.StatusBadRequest, "INVALID_GSTIN", fmt.Sprintf("GSTIN %q is not valid", gstin))
		return
	}
	RespondOK(c, check)
}

// Rates handles GET /api/v1/gst/rates
// @Summary      List GST rates
// @Description  Lists the recognised slabs, category rates and calculation methods
// @Tags         gst
// @Produce      json
// @Success      200 {object} APIResponse{data=service.RateCatalogue}
// @Router       /gst/rates [get]
func (h *GSTHandler) Rates(c *gin.Context) {
	RespondOK(c, h.gstService.Rates(c.Request.Context()))
}

// CategoryRate handles GET /api/v1/gst/rates/categories/:category
// @Summary      Rate for a product category
// @Description  Unknown categories return the default rate with matched=false
// @Tags         gst
// @Produce      json
// @Param        category path string true "Product category" example(electronics)
// @Success      200 {object} APIResponse{data=service.CategoryRate}
// @Router       /gst/rates/categories/{category} [get]
func (h *GSTHandler) CategoryRate(c *gin.Context) {
	RespondOK(c, h.gstService.CategoryRate(c.Request.Context(), c.Param("category")))
}

// Method handles GET /api/v1/gst/method
// @Summary      Choose the calculation method
// @Description  CGST+SGST for intra-state supply, IGST otherwise. Either parameter may be a state code or a GSTIN.
// @Tags         gst
// @Produce      json
// @Param        supplierState query string true "Supplier state code or GSTIN" example(27)
// @Param        placeOfSupply query string true "Place of supply state code or GSTIN" example(29)
// @Success      200 {object} APIResponse{data=service.MethodChoice}
// @Failure      400 {object} APIResponse
// @Router       /gst/method [get]
func (h *GSTHandler) Method(c *gin.Context) {
	supplier := c.Query("supplierState")
	pos := c.Query("placeOfSupply")
	if supplier == "" || pos == "" {
		respondBadRequest(c, "supplierState and placeOfSupply are required")
		return
	}

	choice, err := h.gstService.MethodForStates(c.Request.Context(), supplier, pos)
	if err != nil {
		HandleError(c, h.log, err)
		return
	}
	RespondOK(c, choice)
}

// GSTR1 handles POST /api/v1/gst/gstr1
// @Summary      Build GSTR-1 data
// @Description  Splits invoices into B2B and B2C (small) sections by customer GSTIN
// @Tags         gstr1
// @Accept       json
// @Produce      json
// @Param        body body GSTR1Request true "Invoices"
// @Success      200 {object} APIResponse{data=gst.GSTR1}
// @Failure      400 {object} APIResponse
// @Router       /gst/gstr1 [post]
func (h *GSTHandler) GSTR1(c *gin.Context) {
	var req GSTR1Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	report, err := h.gstService.GSTR1(c.Request.Context(), req.Invoices, req.StrictGSTIN)
	if err != nil {
		HandleError(c, h.log, err)
		return
	}
	RespondOK(c, report)
}

// ExportGSTR1 handles POST /api/v1/gst/gstr1/export
// @Summary      Export GSTR-1 data
// @Description  Downloads the GSTR-1 sections as CSV (UTF-8 with BOM) or an XLSX workbook
// @Tags         gstr1
// @Accept       json
// @Produce      text/csv
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        format query string false "csv or xlsx" default(csv)
// @Param        body body GSTR1Request true "Invoices"
// @Success      200 {file} file
// @Failure      400 {object} APIResponse
// @Router       /gst/gstr1/export [post]
func (h *GSTHandler) ExportGSTR1(c *gin.Context) {
	var req GSTR1Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	out, err := h.gstService.ExportGSTR1(c.Request.Context(), req.Invoices, req.StrictGSTIN, c.DefaultQuery("format", "csv"))
	if err != nil {
		HandleError(c, h.log, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, out.Filename))
	c.Data(http.StatusOK, out.ContentType, out.Data)
}

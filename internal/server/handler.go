package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rshade/carbonlens/internal/chart"
	"github.com/rshade/carbonlens/internal/engine"
	"github.com/rshade/carbonlens/internal/report"
)

// Assessor runs footprint assessments.
type Assessor interface {
	Assess(ctx context.Context, req *engine.Request) (*engine.Assessment, error)
}

// FootprintHandler serves the footprint endpoints.
type FootprintHandler struct {
	assessor Assessor
}

// NewFootprintHandler returns a handler backed by a.
func NewFootprintHandler(a Assessor) *FootprintHandler {
	return &FootprintHandler{assessor: a}
}

// Health reports liveness.
func (h *FootprintHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Calculate returns the footprint, suggestions and equivalencies as JSON.
func (h *FootprintHandler) Calculate(c *gin.Context) {
	a, ok := h.assess(c, true, true)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, a)
}

// Chart returns the bar chart as a PNG image.
func (h *FootprintHandler) Chart(c *gin.Context) {
	a, ok := h.assess(c, false, true)
	if !ok {
		return
	}
	c.Data(http.StatusOK, chart.MIMEType, a.Chart)
}

// Report returns the PDF report as an attachment.
func (h *FootprintHandler) Report(c *gin.Context) {
	a, ok := h.assess(c, true, false)
	if !ok {
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.PDFFileName))
	c.Data(http.StatusOK, report.PDFMIMEType, a.PDF)
}

// assess binds the request body and runs the assessment, writing the error
// response itself on failure.
func (h *FootprintHandler) assess(c *gin.Context, skipChart, skipPDF bool) (*engine.Assessment, bool) {
	var payload FootprintRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return nil, false
	}

	in, err := payload.ToInputs()
	if err != nil {
		appErr := newAPIError("INVALID_INPUT", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return nil, false
	}

	a, err := h.assessor.Assess(c.Request.Context(), &engine.Request{
		Name:      payload.Name,
		Inputs:    in,
		SkipChart: skipChart,
		SkipPDF:   skipPDF,
	})
	if err != nil {
		appErr := mapAssessError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return nil, false
	}
	return a, true
}

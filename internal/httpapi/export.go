package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eduplan/timetable-engine/internal/dto"
	appErrors "github.com/eduplan/timetable-engine/pkg/errors"
	"github.com/eduplan/timetable-engine/pkg/export"
)

// ExportHandler renders a just-solved document as PDF or CSV. It takes
// the input document fresh on every call rather than an id, mirroring
// Solve: export is a rendering of a solve, not a separate resource.
type ExportHandler struct {
	driverSolve func(*dto.InputDocument, time.Duration) (*dto.SolutionDocument, error)
	csv         *export.CSVExporter
	pdf         *export.PDFExporter
	timeout     time.Duration
}

// NewExportHandler builds an ExportHandler bound to the solve function.
func NewExportHandler(solve func(*dto.InputDocument, time.Duration) (*dto.SolutionDocument, error), timeout time.Duration) *ExportHandler {
	return &ExportHandler{driverSolve: solve, csv: export.NewCSVExporter(), pdf: export.NewPDFExporter(), timeout: timeout}
}

func (h *ExportHandler) solve(c *gin.Context) (*dto.SolutionDocument, bool) {
	var doc dto.InputDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, appErrors.Clone(appErrors.ErrInputMalformed, err.Error()))
		return nil, false
	}
	result, err := h.driverSolve(&doc, h.timeout)
	if err != nil {
		c.JSON(appErrors.FromError(err).Status, appErrors.FromError(err))
		return nil, false
	}
	return result, true
}

// CSV handles POST /v1/solve/export.csv.
func (h *ExportHandler) CSV(c *gin.Context) {
	result, ok := h.solve(c)
	if !ok {
		return
	}
	body, err := h.csv.Render(export.TimetableDataset(result))
	if err != nil {
		c.JSON(http.StatusInternalServerError, appErrors.Clone(appErrors.ErrInternal, err.Error()))
		return
	}
	c.Header("Content-Disposition", "attachment; filename=timetable.csv")
	c.Data(http.StatusOK, "text/csv", body)
}

// PDF handles POST /v1/solve/export.pdf.
func (h *ExportHandler) PDF(c *gin.Context) {
	result, ok := h.solve(c)
	if !ok {
		return
	}
	body, err := h.pdf.Render(export.TimetableDataset(result), export.TimetableTitle(result))
	if err != nil {
		c.JSON(http.StatusInternalServerError, appErrors.Clone(appErrors.ErrInternal, err.Error()))
		return
	}
	c.Header("Content-Disposition", "attachment; filename=timetable.pdf")
	c.Data(http.StatusOK, "application/pdf", body)
}

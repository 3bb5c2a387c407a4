package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turisflow/internal/http/middleware"
	"turisflow/internal/services"
)

// GetSummaryReport aggregates totals for a date window. With only
// start_date the window is that exact date; with both bounds it is
// inclusive; with neither, all trips count.
func GetSummaryReport(c *gin.Context) {
	svc := services.ReportsService{RequestID: middleware.GetRequestID(c)}
	summary, err := svc.Summarize(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetSummaryReportPDF renders the same aggregation as a printable document.
func GetSummaryReportPDF(c *gin.Context) {
	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := svc.GenerateSummaryReport(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GetTripManifestPDF renders the driver's boarding sheet for a trip.
func GetTripManifestPDF(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := svc.GenerateManifest(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

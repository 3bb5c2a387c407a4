package services

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	intconfig "turisflow/internal/config"
	"turisflow/internal/domain/models"
	"turisflow/internal/repositories"
	"turisflow/internal/utils"
)

// DocsService renders printable PDFs: the per-trip boarding manifest and the
// period summary report.
type DocsService struct {
	TripRepo    repositories.TripRepository
	CompanyRepo repositories.CompanyRepository
	Reports     ReportsService
	DB          *sql.DB
	RequestID   string
	LoadTrip    func(int64) (models.Trip, error)
}

func (s DocsService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s DocsService) trips() repositories.TripRepository {
	if s.TripRepo.DB != nil {
		return s.TripRepo
	}
	return repositories.TripRepository{DB: s.db()}
}

func (s DocsService) company() repositories.CompanyRepository {
	if s.CompanyRepo.DB != nil {
		return s.CompanyRepo
	}
	return repositories.CompanyRepository{DB: s.db()}
}

func (s DocsService) loadTrip(id int64) (models.Trip, error) {
	if s.LoadTrip != nil {
		return s.LoadTrip(id)
	}
	return s.trips().GetByID(id)
}

// GenerateManifest builds the driver's boarding sheet: one row per booked
// group, in seat-allocation order.
func (s DocsService) GenerateManifest(tripID int64) ([]byte, string, error) {
	trip, err := s.loadTrip(tripID)
	if err != nil {
		return nil, "", err
	}
	profile, _ := s.company().Load()
	utils.LogEvent(s.RequestID, "docs", "manifest", fmt.Sprintf("trip_id=%d", tripID))
	return buildManifestPDF(trip, profile)
}

// GenerateSummaryReport renders the aggregated totals for a date window.
func (s DocsService) GenerateSummaryReport(start, end string) ([]byte, string, error) {
	reports := s.Reports
	if reports.DB == nil && reports.TripRepo.DB == nil {
		reports = ReportsService{DB: s.db(), RequestID: s.RequestID}
	}
	summary, err := reports.Summarize(start, end)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "summary_report",
		fmt.Sprintf("start=%q end=%q", start, end))
	return buildSummaryPDF(summary)
}

func buildManifestPDF(trip models.Trip, profile models.CompanyProfile) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Lista de Embarque", false)
	pdf.AddPage()
	// Core fonts are cp1252; UTF-8 text must go through the translator or
	// accented pt-BR strings come out garbled.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "LISTA DE EMBARQUE")
	pdf.Ln(8)
	if profile.Name != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 6, tr(profile.Name))
		pdf.Ln(8)
	} else {
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "", 11)
	header := []string{
		fmt.Sprintf("Viagem #%d  %s -> %s", trip.ID, trip.Origin, trip.Destination),
		fmt.Sprintf("Data: %s  Saída: %s", utils.DateBR(trip.Date), trip.Time),
		fmt.Sprintf("Veículo: %s %s (%d lugares)", trip.VehicleType, trip.VehicleModel, trip.TotalSeats),
	}
	if trip.DriverName != "" || trip.GuideName != "" {
		header = append(header, fmt.Sprintf("Motorista: %s  Guia: %s",
			dash(trip.DriverName), dash(trip.GuideName)))
	}
	for _, line := range header {
		pdf.Cell(0, 6, tr(line))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(62, 7, "Passageiro", "1", 0, "L", false, 0, "")
	pdf.CellFormat(12, 7, "Pax", "1", 0, "C", false, 0, "")
	pdf.CellFormat(58, 7, "Embarque", "1", 0, "L", false, 0, "")
	pdf.CellFormat(18, 7, "Hora", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 7, "Status", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 7, "Valor", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, p := range trip.Passengers {
		name := p.Name
		if p.IsOverbooked {
			name += " (EXCEDENTE)"
		}
		pdf.CellFormat(62, 7, tr(name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(12, 7, fmt.Sprintf("%d", p.PaxCount), "1", 0, "C", false, 0, "")
		pdf.CellFormat(58, 7, tr(dash(p.BoardingLocation)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(18, 7, dash(p.BoardingTime), "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 7, boardingLabel(p.BoardingStatus), "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 7, utils.FormatBRL(p.TotalValue), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Total de passageiros: %d / %d lugares", trip.Occupancy(), trip.TotalSeats))
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, "Gerado em "+utils.FormatDateTime(time.Now()))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("MANIFESTO_%d_%s.pdf", trip.ID, safeFilenamePart(trip.Destination))
	return buf.Bytes(), filename, nil
}

func buildSummaryPDF(summary Summary) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Relatório de Período", false)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("RELATÓRIO DE PERÍODO"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr("Período: "+windowLabel(summary.StartDate, summary.EndDate)))
	pdf.Ln(10)

	t := summary.Totals
	lines := []string{
		fmt.Sprintf("Viagens           : %d", summary.TripCount),
		fmt.Sprintf("Passageiros       : %d", t.TotalPassengers),
		fmt.Sprintf("Capacidade total  : %d", t.TotalCapacity),
		fmt.Sprintf("Excedentes        : %d", t.OverbookedPax),
		fmt.Sprintf("Ocupação          : %d%%", t.OccupancyPercent),
		fmt.Sprintf("Valor contratado  : %s", utils.FormatBRL(t.TotalValue)),
		fmt.Sprintf("Valor recebido    : %s", utils.FormatBRL(t.TotalPaid)),
		fmt.Sprintf("A receber         : %s", utils.FormatBRL(t.TotalReceivable)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, tr(line))
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, "Gerado em "+utils.FormatDateTime(time.Now()))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := "RELATORIO_" + safeFilenamePart(windowLabel(summary.StartDate, summary.EndDate)) + ".pdf"
	return buf.Bytes(), filename, nil
}

func windowLabel(start, end string) string {
	switch {
	case start == "" && end == "":
		return "todas as datas"
	case end == "":
		return utils.DateBR(start)
	default:
		return utils.DateBR(start) + " a " + utils.DateBR(end)
	}
}

func boardingLabel(s models.BoardingStatus) string {
	switch s {
	case models.BoardingBoarded:
		return "Embarcou"
	case models.BoardingNoShow:
		return "Faltou"
	default:
		return "Pendente"
	}
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func safeFilenamePart(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), "_")
	if out == "" {
		return "doc"
	}
	return out
}

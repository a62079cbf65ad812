package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/go-pdf/fpdf"

	"github.com/traveljournal/tj_backend/internal/apperrors"
	"github.com/traveljournal/tj_backend/internal/core/domain"
	portsrepo "github.com/traveljournal/tj_backend/internal/core/ports/repositories"
	portssvc "github.com/traveljournal/tj_backend/internal/core/ports/services"
)

type exportService struct {
	BaseService
	journalRepo  portsrepo.JournalReader
	entryRepo    portsrepo.EntryReader
	userRepo     portsrepo.UserReader
	subscription portssvc.SubscriptionPolicySvc
}

// NewExportService creates the PDF export service.
func NewExportService(
	journalRepo portsrepo.JournalReader,
	entryRepo portsrepo.EntryReader,
	userRepo portsrepo.UserReader,
	subscription portssvc.SubscriptionPolicySvc,
) portssvc.ExportSvcFacade {
	return &exportService{
		journalRepo:  journalRepo,
		entryRepo:    entryRepo,
		userRepo:     userRepo,
		subscription: subscription,
	}
}

// JournalPDF renders the journal's active entries as an A4 document. Only the
// journal's owner may export, and only on a plan that unlocks the feature.
func (s *exportService) JournalPDF(ctx context.Context, journalID int64, userID int64) ([]byte, error) {
	if journalID <= 0 || userID <= 0 {
		return nil, fmt.Errorf("%w: journal ID and user ID must be positive", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user %d: %w", userID, err)
	}

	allowed, err := s.subscription.CanExportPdf(ctx, user.SubscriptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check export entitlement for user %d: %w", userID, err)
	}
	if !allowed {
		return nil, apperrors.NewSubscriptionGateError("your subscription does not allow PDF export")
	}

	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if journal.UserID != userID {
		return nil, apperrors.ErrNotFound
	}

	entries, err := s.entryRepo.FindEntriesByJournal(ctx, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries for journal %d: %w", journalID, err)
	}

	pdfBytes, err := renderJournalPDF(journal, entries)
	if err != nil {
		return nil, fmt.Errorf("failed to render PDF for journal %d: %w", journalID, err)
	}

	s.LogInfo(ctx, "Journal exported",
		slog.Int64("journal_id", journalID),
		slog.Int("entries", len(entries)),
		slog.Int("bytes", len(pdfBytes)))
	return pdfBytes, nil
}

func renderJournalPDF(journal *domain.Journal, entries []domain.Entry) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(journal.Title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, journal.Title, "", 1, "L", false, 0, "")
	if journal.Description != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, journal.Description, "", "L", false)
	}
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Created %s", journal.CreatedAt.Format("2 Jan 2006")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Table header.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(15, 8, "ID", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 8, "Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(145, 8, "Entry", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, entry := range entries {
		body := entry.Title
		if entry.Content != "" {
			body += " - " + entry.Content
		}
		if entry.Location != "" {
			body += " (" + entry.Location + ")"
		}

		top := pdf.GetY()
		pdf.SetX(55)
		pdf.MultiCell(145, 6, body, "1", "L", false)
		rowHeight := pdf.GetY() - top

		pdf.SetY(top)
		pdf.SetX(10)
		pdf.CellFormat(15, rowHeight, fmt.Sprintf("%d", entry.EntryID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, rowHeight, entry.CreatedAt.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.SetY(top + rowHeight)
	}

	if len(entries) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 8, "This journal has no entries yet.", "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

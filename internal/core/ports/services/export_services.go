package services

import "context"

// ExportSvcFacade renders journal exports for plans that unlock the feature.
type ExportSvcFacade interface {
	// JournalPDF renders the journal's active entries as a PDF document. The
	// journal must be owned by userID and the user's plan must allow export.
	JournalPDF(ctx context.Context, journalID int64, userID int64) ([]byte, error)
}

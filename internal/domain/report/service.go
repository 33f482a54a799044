package report

import (
	"context"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/user"
)

type ReportService interface {
	// Generate materializes one CSV document for the requested type and
	// date range.
	Generate(ctx context.Context, identity user.Identity, req Request) (Document, error)
}

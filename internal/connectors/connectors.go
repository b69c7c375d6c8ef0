package connectors

import (
	"context"

	"certgen/internal"
)

// SubmissionStore inserts one submitter record per session into a
// remote append-only table.
type SubmissionStore interface {
	Insert(ctx context.Context, record internal.SubmissionRecord) error
}

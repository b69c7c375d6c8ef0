package connectors

import (
	"context"
	"fmt"
	"strings"
	"time"

	"certgen/internal"
	"certgen/internal/storage"
)

// SubmitService validates submitter details, stamps them, inserts the
// record into the remote store and mirrors it in the local log. In
// lenient mode a remote failure is reported in the outcome but does not
// stop the caller; strict mode turns it into an error.
type SubmitService struct {
	db     *storage.DB
	store  SubmissionStore
	strict bool
	now    func() time.Time
}

type SubmitOutcome struct {
	Record    internal.SubmissionRecord
	RemoteOK  bool
	RemoteErr error
}

func NewSubmitService(db *storage.DB, store SubmissionStore, strict bool) *SubmitService {
	return &SubmitService{db: db, store: store, strict: strict, now: time.Now}
}

func (s *SubmitService) Submit(ctx context.Context, record internal.SubmissionRecord) (SubmitOutcome, error) {
	if err := validate(record); err != nil {
		return SubmitOutcome{}, err
	}

	record = trimmed(record)
	record.Timestamp = s.now().UTC().Format(time.RFC3339)

	outcome := SubmitOutcome{Record: record, RemoteOK: true}
	if s.store != nil {
		if err := s.store.Insert(ctx, record); err != nil {
			outcome.RemoteOK = false
			outcome.RemoteErr = err
			if s.strict {
				return outcome, fmt.Errorf("store submission: %w", err)
			}
		}
	}

	if s.db != nil {
		if _, err := s.db.InsertSubmission(record, outcome.RemoteOK); err != nil {
			return outcome, fmt.Errorf("log submission: %w", err)
		}
	}

	return outcome, nil
}

func validate(record internal.SubmissionRecord) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", record.Name},
		{"school name", record.SchoolName},
		{"school number", record.SchoolNumber},
		{"contact number", record.ContactNumber},
		{"ic number", record.ICNumber},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("missing required field: %s", f.name)
		}
	}
	return nil
}

func trimmed(record internal.SubmissionRecord) internal.SubmissionRecord {
	record.Name = strings.TrimSpace(record.Name)
	record.SchoolName = strings.TrimSpace(record.SchoolName)
	record.SchoolNumber = strings.TrimSpace(record.SchoolNumber)
	record.ContactNumber = strings.TrimSpace(record.ContactNumber)
	record.ICNumber = strings.TrimSpace(record.ICNumber)
	return record
}

package pipeline

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"certgen/internal"
	"certgen/internal/certificate"
	"certgen/internal/config"
	"certgen/internal/connectors"
	"certgen/internal/dataset"
	"certgen/internal/storage"
)

// Service runs one certificate batch end to end: dataset intake, column
// detection, normalization, submitter record hand-off, per-row rendering
// and the run log.
type Service struct {
	db       *storage.DB
	cfg      config.Config
	submit   *connectors.SubmitService
	renderer certificate.Renderer
}

func NewService(db *storage.DB, cfg config.Config, submit *connectors.SubmitService, renderer certificate.Renderer) *Service {
	return &Service{db: db, cfg: cfg, submit: submit, renderer: renderer}
}

type RunInput struct {
	// Either a path or in-memory bytes with an explicit kind.
	DatasetPath  string
	DatasetBytes []byte
	DatasetKind  internal.DatasetKind

	// Overrides cfg.TemplatePath when set.
	TemplatePath string

	Session *Session
}

type RunResult struct {
	internal.BatchResult
	TraceID     string
	ArchiveName string
	Columns     dataset.Columns
	TotalRows   int
	Submission  *connectors.SubmitOutcome
}

func (s *Service) Run(ctx context.Context, in RunInput) (*RunResult, error) {
	table, err := s.loadDataset(in)
	if err != nil {
		return nil, err
	}

	cols := dataset.DetectColumns(table.Headers)
	rows, skipped := dataset.Normalize(table, cols)

	var submission *connectors.SubmitOutcome
	if in.Session != nil && !in.Session.Submitted {
		outcome, err := s.submit.Submit(ctx, in.Session.Record)
		if err != nil {
			return nil, err
		}
		submission = &outcome
		in.Session.MarkSubmitted(outcome.Record, outcome.RemoteOK)
	}

	templatePath := in.TemplatePath
	if strings.TrimSpace(templatePath) == "" {
		templatePath = s.cfg.TemplatePath
	}
	tpl, err := certificate.LoadTemplate(templatePath)
	if err != nil {
		return nil, err
	}

	batch, err := certificate.NewGenerator(s.renderer).Generate(tpl, rows)
	if err != nil {
		return nil, err
	}

	// Fold rows the normalizer rejected into the batch tally so that
	// success + fail covers every row of the dataset.
	batch.FailCount += len(skipped)
	batch.RowErrors = append(batch.RowErrors, skipped...)
	sort.Slice(batch.RowErrors, func(i, j int) bool {
		return batch.RowErrors[i].RowIndex < batch.RowErrors[j].RowIndex
	})

	result := &RunResult{
		BatchResult: *batch,
		TraceID:     traceID(),
		ArchiveName: certificate.ArchiveName,
		Columns:     cols,
		TotalRows:   table.Len(),
		Submission:  submission,
	}

	if s.db != nil {
		if err := s.db.InsertRun(result.TraceID, result.SuccessCount, result.FailCount, result.ArchiveName); err != nil {
			return nil, fmt.Errorf("record run: %w", err)
		}
	}

	return result, nil
}

func (s *Service) loadDataset(in RunInput) (*dataset.Table, error) {
	if len(in.DatasetBytes) > 0 {
		return dataset.Read(in.DatasetKind, in.DatasetBytes)
	}
	if strings.TrimSpace(in.DatasetPath) != "" {
		return dataset.ReadFile(in.DatasetPath)
	}
	return nil, fmt.Errorf("no dataset supplied")
}

func traceID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}

package certificate

import (
	"archive/zip"
	"bytes"
	"fmt"
	"time"

	"certgen/internal"
)

// ArchiveName is the fixed container-level filename offered for download.
const ArchiveName = "certificates.zip"

// Entry timestamps are pinned so identical inputs produce identical
// archive bytes.
var entryModTime = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)

// Generator renders normalized rows one at a time, in source order, and
// folds the per-row outcomes into a BatchResult. A row failure never
// aborts the batch.
type Generator struct {
	renderer Renderer
}

func NewGenerator(renderer Renderer) *Generator {
	return &Generator{renderer: renderer}
}

func (g *Generator) Generate(tpl *Template, rows []internal.NormalizedParticipant) (*internal.BatchResult, error) {
	buf := bytes.NewBuffer(nil)
	zw := zip.NewWriter(buf)
	result := &internal.BatchResult{}

	for _, row := range rows {
		cert, rowErr := g.renderRow(tpl, row)
		if rowErr != nil {
			result.FailCount++
			result.RowErrors = append(result.RowErrors, *rowErr)
			continue
		}

		header := &zip.FileHeader{Name: cert.Filename, Method: zip.Deflate, Modified: entryModTime}
		w, err := zw.CreateHeader(header)
		if err != nil {
			result.FailCount++
			result.RowErrors = append(result.RowErrors, internal.RowError{
				RowIndex: row.RowIndex,
				Name:     row.Name,
				Message:  fmt.Sprintf("archive entry: %v", err),
			})
			continue
		}
		if _, err := w.Write(cert.Bytes); err != nil {
			return nil, fmt.Errorf("write archive entry %s: %w", cert.Filename, err)
		}
		result.SuccessCount++
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	result.ArchiveBytes = buf.Bytes()
	return result, nil
}

func (g *Generator) renderRow(tpl *Template, row internal.NormalizedParticipant) (*internal.RenderedCertificate, *internal.RowError) {
	blob, err := g.renderer.Render(tpl, row)
	if err != nil {
		return nil, &internal.RowError{RowIndex: row.RowIndex, Name: row.Name, Message: err.Error()}
	}
	return &internal.RenderedCertificate{
		RowIndex: row.RowIndex,
		Filename: EntryName(row.RowIndex, row.Name),
		Bytes:    blob,
	}, nil
}

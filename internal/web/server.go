package web

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"certgen/internal"
	"certgen/internal/pipeline"
)

const maxUploadBytes = 32 << 20

// Server is the thin HTTP intake around the generation pipeline: one
// multipart form post in, one zip download out.
type Server struct {
	svc *pipeline.Service
	log *zap.Logger
}

func NewServer(svc *pipeline.Service, log *zap.Logger) *Server {
	return &Server{svc: svc, log: log}
}

func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /generate", s.handleGenerate)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}

	file, header, err := r.FormFile("participants")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing participants file"})
		return
	}
	defer file.Close()

	blob, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unreadable participants file"})
		return
	}

	kind, err := datasetKind(header.Filename)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	session := pipeline.NewSession()
	session.Record = internal.SubmissionRecord{
		Name:          r.FormValue("name"),
		SchoolName:    r.FormValue("school_name"),
		SchoolNumber:  r.FormValue("school_number"),
		ContactNumber: r.FormValue("contact_number"),
		ICNumber:      r.FormValue("ic_number"),
	}

	result, err := s.svc.Run(r.Context(), pipeline.RunInput{
		DatasetBytes: blob,
		DatasetKind:  kind,
		Session:      session,
	})
	if err != nil {
		s.log.Warn("generation failed", zap.Error(err))
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}

	s.log.Info("generation complete",
		zap.String("traceId", result.TraceID),
		zap.Int("success", result.SuccessCount),
		zap.Int("fail", result.FailCount),
		zap.Bool("remoteOk", session.RemoteOK),
	)

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.ArchiveName))
	w.Header().Set("X-Success-Count", fmt.Sprintf("%d", result.SuccessCount))
	w.Header().Set("X-Fail-Count", fmt.Sprintf("%d", result.FailCount))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.ArchiveBytes)
}

func datasetKind(filename string) (internal.DatasetKind, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return internal.DatasetXLSX, nil
	case ".csv":
		return internal.DatasetCSV, nil
	default:
		return "", fmt.Errorf("unsupported upload type: %s", filepath.Ext(filename))
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

package web

import (
	"archive/zip"
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/signintech/gopdf"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"certgen/internal/certificate"
	"certgen/internal/config"
	"certgen/internal/connectors"
	"certgen/internal/pipeline"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	tmp := t.TempDir()

	doc := &gopdf.GoPdf{}
	doc.Start(gopdf.Config{PageSize: gopdf.Rect{W: 842, H: 595}, Unit: gopdf.UnitPT})
	doc.AddPage()
	blob, err := doc.GetBytesPdfReturnErr()
	if err != nil {
		t.Fatal(err)
	}
	templatePath := filepath.Join(tmp, "template.pdf")
	if err := os.WriteFile(templatePath, blob, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _ := config.Load()
	cfg.TemplatePath = templatePath

	fontPath := filepath.Join("..", "certificate", "testdata", "DejaVuSans-Bold.ttf")
	renderer := certificate.NewPDFRenderer(fontPath, certificate.DefaultStyle())
	submit := connectors.NewSubmitService(nil, nil, false)
	svc := pipeline.NewService(nil, cfg, submit, renderer)

	return NewServer(svc, zap.NewNop())
}

func mkUpload(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	cells := [][]any{
		{"Student Name", "School"},
		{"Alice", "Lincoln High"},
		{"Bob", ""},
	}
	for r, row := range cells {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	xlsx := bytes.NewBuffer(nil)
	if _, err := f.WriteTo(xlsx); err != nil {
		t.Fatal(err)
	}

	body := bytes.NewBuffer(nil)
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("participants", "participants.xlsx")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(xlsx.Bytes()); err != nil {
		t.Fatal(err)
	}
	for k, v := range map[string]string{
		"name":           "Teacher",
		"school_name":    "Lincoln High",
		"school_number":  "LH-01",
		"contact_number": "0123456789",
		"ic_number":      "990101-01-1234",
	} {
		_ = mw.WriteField(k, v)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return body, mw.FormDataContentType()
}

func TestGenerateEndpoint(t *testing.T) {
	srv := newTestServer(t)
	body, contentType := mkUpload(t)

	req := httptest.NewRequest(http.MethodPost, "/generate", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	srv.Routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "application/zip" {
		t.Fatalf("content type=%q", got)
	}
	if got := rec.Header().Get("X-Success-Count"); got != "2" {
		t.Fatalf("success header=%q", got)
	}

	zr, err := zip.NewReader(bytes.NewReader(rec.Body.Bytes()), int64(rec.Body.Len()))
	if err != nil {
		t.Fatal(err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("entries=%d", len(zr.File))
	}
}

func TestGenerateEndpointMissingFile(t *testing.T) {
	srv := newTestServer(t)

	body := bytes.NewBuffer(nil)
	mw := multipart.NewWriter(body)
	_ = mw.WriteField("name", "Teacher")
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/generate", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	srv.Routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", rec.Code)
	}
}

func TestGenerateEndpointMissingSubmitterField(t *testing.T) {
	srv := newTestServer(t)

	body := bytes.NewBuffer(nil)
	mw := multipart.NewWriter(body)
	part, _ := mw.CreateFormFile("participants", "participants.csv")
	_, _ = part.Write([]byte("Student Name\nAlice\n"))
	_ = mw.WriteField("name", "Teacher")
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/generate", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	srv.Routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
}

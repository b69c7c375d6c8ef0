package certificate

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signintech/gopdf"

	"certgen/internal"
)

// Renderer produces one flattened single-page document for a participant.
type Renderer interface {
	Render(tpl *Template, p internal.NormalizedParticipant) ([]byte, error)
}

// PDFRenderer composites the template page and the text overlay with
// gopdf. The template is imported as the page background, the overlay
// draws land on top, and the result is serialized in memory.
type PDFRenderer struct {
	fontPath string
	style    Style
}

func NewPDFRenderer(fontPath string, style Style) *PDFRenderer {
	return &PDFRenderer{fontPath: fontPath, style: style}
}

func (r *PDFRenderer) Render(tpl *Template, p internal.NormalizedParticipant) (out []byte, err error) {
	// The page importer panics on malformed templates; contain that as a
	// row-level error so the batch keeps going.
	defer func() {
		if rec := recover(); rec != nil {
			out = nil
			err = fmt.Errorf("render certificate: %v", rec)
		}
	}()

	draws, err := PlanOverlay(p, r.style)
	if err != nil {
		return nil, err
	}

	doc := &gopdf.GoPdf{}
	doc.Start(gopdf.Config{PageSize: gopdf.Rect{W: tpl.Width, H: tpl.Height}, Unit: gopdf.UnitPT})
	doc.AddPage()

	var src io.ReadSeeker = bytes.NewReader(tpl.Bytes)
	tplID := doc.ImportPageStream(&src, 1, "/MediaBox")
	if tplID <= 0 {
		return nil, fmt.Errorf("import template page")
	}
	doc.UseImportedTemplate(tplID, 0, 0, tpl.Width, tpl.Height)

	if err := doc.AddTTFFont(r.style.FontFamily, r.fontPath); err != nil {
		return nil, fmt.Errorf("load font %s: %w", r.fontPath, err)
	}

	for _, d := range draws {
		if err := doc.SetFont(r.style.FontFamily, "", d.FontSize); err != nil {
			return nil, fmt.Errorf("set font: %w", err)
		}
		doc.SetTextColor(d.Color.R, d.Color.G, d.Color.B)

		width, err := doc.MeasureTextWidth(d.Text)
		if err != nil {
			return nil, fmt.Errorf("measure text: %w", err)
		}
		// Style coordinates are bottom-left origin; gopdf draws from the
		// top-left with Y at the top of the text box.
		doc.SetXY(d.X-width/2, tpl.Height-d.Y-d.FontSize)
		if err := doc.Cell(nil, d.Text); err != nil {
			return nil, fmt.Errorf("draw text: %w", err)
		}
	}

	blob, err := doc.GetBytesPdfReturnErr()
	if err != nil {
		return nil, fmt.Errorf("serialize certificate: %w", err)
	}
	return blob, nil
}

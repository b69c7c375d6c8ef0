package certificate

import (
	"bytes"
	"fmt"
	"os"

	pdf "github.com/ledongthuc/pdf"
)

// Template is the fixed single-page background. Loaded once per batch,
// shared read-only across every row; Width/Height are MediaBox points.
type Template struct {
	Bytes  []byte
	Width  float64
	Height float64
}

func LoadTemplate(path string) (*Template, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	return LoadTemplateBytes(blob)
}

func LoadTemplateBytes(blob []byte) (*Template, error) {
	r, err := pdf.NewReader(bytes.NewReader(blob), int64(len(blob)))
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	if r.NumPage() < 1 {
		return nil, fmt.Errorf("template has no pages")
	}

	page := r.Page(1)
	if page.V.IsNull() {
		return nil, fmt.Errorf("template page is unreadable")
	}

	// MediaBox may live on an ancestor Pages node.
	var box pdf.Value
	for v := page.V; !v.IsNull(); v = v.Key("Parent") {
		if b := v.Key("MediaBox"); !b.IsNull() {
			box = b
			break
		}
	}
	if box.IsNull() || box.Len() < 4 {
		return nil, fmt.Errorf("template page has no MediaBox")
	}

	width := box.Index(2).Float64() - box.Index(0).Float64()
	height := box.Index(3).Float64() - box.Index(1).Float64()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("template page has invalid size %gx%g", width, height)
	}

	return &Template{Bytes: blob, Width: width, Height: height}, nil
}

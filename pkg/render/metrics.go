package render

import "github.com/jung-kurt/gofpdf"

// widthScale narrows Helvetica widths to approximate the body face.
const widthScale = 0.95

// Metrics measures text with one reference metric, core Helvetica, whatever
// face the text is eventually set in. Emphasized runs are therefore measured
// as if they were upright. Not safe for concurrent use.
type Metrics struct {
	pdf *gofpdf.Fpdf
}

// NewMetrics returns the reference metric.
func NewMetrics() *Metrics {
	p := gofpdf.New("P", "pt", "A4", "")
	p.SetFont("Helvetica", "", 12)
	return &Metrics{pdf: p}
}

// Width implements richtext.Measurer.
func (m *Metrics) Width(s string, size float64) float64 {
	m.pdf.SetFontSize(size)
	return m.pdf.GetStringWidth(s) * widthScale
}

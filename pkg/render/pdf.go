package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// PDF is a Canvas backed by gofpdf.
type PDF struct {
	pdf     *gofpdf.Fpdf
	fonts   *Fonts
	metrics *Metrics
	cfg     pdfConfig

	// current is the 1-based gofpdf page drawing goes to.
	current int
	// fontStale is set after a page switch: gofpdf only emits a font
	// selection when it changes, and each page has its own content stream.
	fontStale bool
	fontSet   bool

	targets   map[int]int
	translate func(string) string
}

var _ Canvas = (*PDF)(nil)

// NewPDF creates an empty document drawing with fonts.
func NewPDF(fonts *Fonts, opts ...Option) *PDF {
	cfg := pdfConfig{
		width:    595.28,
		height:   841.89,
		creator:  "planner",
		compress: true,
	}
	for _, o := range opts {
		o(&cfg)
	}

	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: cfg.width, Ht: cfg.height},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.SetCompression(cfg.compress)
	p.SetCreator(cfg.creator, true)
	if cfg.title != "" {
		p.SetTitle(cfg.title, true)
	}
	if cfg.author != "" {
		p.SetAuthor(cfg.author, true)
	}

	for _, s := range []Style{Regular, Italic} {
		face := fonts.Face(s)
		if !face.Core {
			p.AddUTF8FontFromBytes(face.Family, face.Style, face.data)
		}
	}

	return &PDF{
		pdf:       p,
		fonts:     fonts,
		metrics:   NewMetrics(),
		cfg:       cfg,
		targets:   make(map[int]int),
		translate: p.UnicodeTranslatorFromDescriptor(""),
	}
}

// NewPage implements Canvas.
func (d *PDF) NewPage() int {
	// gofpdf appends after the selected page, not after the last one.
	if n := d.pdf.PageCount(); n > 0 && d.current != n {
		d.pdf.SetPage(n)
	}
	d.pdf.AddPage()
	d.current = d.pdf.PageNo()
	d.fontStale = true
	return d.current - 1
}

// PageCount implements Canvas.
func (d *PDF) PageCount() int {
	return d.pdf.PageCount()
}

// Text implements Canvas.
func (d *PDF) Text(page int, at Point, s string, style Style, size float64, c Color) {
	if !d.selectPage("Text", page) {
		return
	}
	face := d.fonts.Face(style)
	if d.fontStale && d.fontSet {
		d.pdf.SetFontSize(size + 1)
	}
	d.pdf.SetFont(face.Family, face.Style, size)
	d.fontStale = false
	d.fontSet = true

	r, g, b := c.RGB255()
	d.pdf.SetTextColor(int(r), int(g), int(b))
	d.pdf.SetFillColor(int(r), int(g), int(b))
	if face.Core {
		s = d.translate(s)
	}
	d.pdf.Text(at.X, at.Y, s)
}

// TextWidth implements Canvas.
func (d *PDF) TextWidth(s string, size float64) float64 {
	return d.metrics.Width(s, size)
}

// Line implements Canvas.
func (d *PDF) Line(page int, from, to Point, c Color, width float64) {
	if !d.selectPage("Line", page) {
		return
	}
	d.stroke(c, width)
	d.pdf.Line(from.X, from.Y, to.X, to.Y)
}

// Rect implements Canvas.
func (d *PDF) Rect(page int, r Rect, p Paint) {
	if !d.selectPage("Rect", page) {
		return
	}
	if style := d.paint(p); style != "" {
		d.pdf.Rect(r.X0, r.Y0, r.Width(), r.Height(), style)
	}
}

// Circle implements Canvas.
func (d *PDF) Circle(page int, center Point, radius float64, p Paint) {
	if !d.selectPage("Circle", page) {
		return
	}
	if style := d.paint(p); style != "" {
		d.pdf.Circle(center.X, center.Y, radius, style)
	}
}

// Polygon implements Canvas.
func (d *PDF) Polygon(page int, pts []Point, p Paint) {
	if len(pts) < 2 || !d.selectPage("Polygon", page) {
		return
	}
	style := d.paint(p)
	if style == "" {
		return
	}
	out := make([]gofpdf.PointType, len(pts))
	for i, pt := range pts {
		out[i] = gofpdf.PointType{X: pt.X, Y: pt.Y}
	}
	d.pdf.Polygon(out, style)
}

// Link implements Canvas.
func (d *PDF) Link(page int, r Rect, target int) {
	if target < 0 || target >= d.pdf.PageCount() {
		d.pdf.SetError(newError("Link", fmt.Errorf("%w: target %d", ErrPageRange, target)))
		return
	}
	if !d.selectPage("Link", page) {
		return
	}
	id, ok := d.targets[target]
	if !ok {
		id = d.pdf.AddLink()
		d.pdf.SetLink(id, 0, target+1)
		d.targets[target] = id
	}
	d.pdf.Link(r.X0, r.Y0, r.Width(), r.Height(), id)
}

// Err implements Canvas.
func (d *PDF) Err() error {
	return d.pdf.Error()
}

// Save implements Canvas. The parent directory is created if needed.
func (d *PDF) Save(path string) error {
	if d.pdf.PageCount() == 0 {
		return newError("Save", ErrNoPages)
	}
	if err := d.pdf.Error(); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return newError("Save", err)
		}
	}
	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return newError("Save", err)
	}
	return nil
}

func (d *PDF) selectPage(op string, page int) bool {
	if d.pdf.Err() {
		return false
	}
	if page < 0 || page >= d.pdf.PageCount() {
		d.pdf.SetError(newError(op, fmt.Errorf("%w: %d", ErrPageRange, page)))
		return false
	}
	if page+1 != d.current {
		d.pdf.SetPage(page + 1)
		d.current = page + 1
		d.fontStale = true
	}
	return true
}

func (d *PDF) stroke(c Color, width float64) {
	r, g, b := c.RGB255()
	d.pdf.SetDrawColor(int(r), int(g), int(b))
	if width <= 0 {
		width = 1
	}
	d.pdf.SetLineWidth(width)
}

// paint applies p and returns the gofpdf style string, empty when there is
// nothing to draw.
func (d *PDF) paint(p Paint) string {
	style := ""
	if p.Stroke != nil {
		d.stroke(*p.Stroke, p.Width)
		style += "D"
	}
	if p.Fill != nil {
		r, g, b := p.Fill.RGB255()
		d.pdf.SetFillColor(int(r), int(g), int(b))
		style += "F"
	}
	return style
}

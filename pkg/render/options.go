package render

// Option configures a PDF created by NewPDF.
type Option func(*pdfConfig)

type pdfConfig struct {
	width, height float64
	title         string
	author        string
	creator       string
	compress      bool
}

// WithPageSize sets the size of every page, in points.
func WithPageSize(width, height float64) Option {
	return func(c *pdfConfig) {
		c.width = width
		c.height = height
	}
}

// WithTitle sets the document title metadata.
func WithTitle(title string) Option {
	return func(c *pdfConfig) {
		c.title = title
	}
}

// WithAuthor sets the document author metadata.
func WithAuthor(author string) Option {
	return func(c *pdfConfig) {
		c.author = author
	}
}

// WithCompression toggles content stream compression.
func WithCompression(on bool) Option {
	return func(c *pdfConfig) {
		c.compress = on
	}
}

package render

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
)

// Core fonts used when a font file cannot be loaded.
const (
	fallbackFamily = "Times"
	embeddedFamily = "EBGaramond"
)

// FontPaths locates the TrueType files for each style.
type FontPaths struct {
	Regular string `json:"regular"`
	Italic  string `json:"italic"`
}

// Face is a registered font face.
type Face struct {
	Family string
	Style  string
	Path   string
	// Core is set when the face is one of the PDF core fonts, either because
	// no file was configured or because loading it failed.
	Core bool
	data []byte
}

// Fonts is the read-only set of faces every page draws with. It is loaded
// once before any page is rendered.
type Fonts struct {
	faces [2]Face
}

// LoadFonts reads the configured font files. A file that cannot be read is
// reported through warn and replaced by a core font; it is never fatal.
func LoadFonts(paths FontPaths, warn func(error)) *Fonts {
	f := &Fonts{}
	f.faces[Regular] = loadFace(paths.Regular, "", warn)
	f.faces[Italic] = loadFace(paths.Italic, "I", warn)
	return f
}

// Face returns the face for a style.
func (f *Fonts) Face(s Style) Face {
	if s == Italic {
		return f.faces[Italic]
	}
	return f.faces[Regular]
}

// Degraded reports whether any style fell back to a core font.
func (f *Fonts) Degraded() bool {
	return f.faces[Regular].Core || f.faces[Italic].Core
}

func loadFace(path, style string, warn func(error)) Face {
	core := Face{Family: fallbackFamily, Style: style, Core: true}
	if path == "" {
		return core
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		reportFont(warn, path, err)
		return core
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		reportFont(warn, path, err)
		return core
	}
	if len(data) == 0 {
		reportFont(warn, path, fmt.Errorf("empty file"))
		return core
	}
	return Face{Family: embeddedFamily, Style: style, Path: expanded, data: data}
}

func reportFont(warn func(error), path string, err error) {
	if warn == nil {
		return
	}
	warn(newError("LoadFonts", fmt.Errorf("%w: %s: %v, using %s", ErrNoFont, path, err, fallbackFamily)))
}

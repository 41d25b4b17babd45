// Package links accumulates navigation links while pages are drawn and
// materializes them in one pass once the document is complete.
package links

// Rect is a clickable region in page coordinates, top-left origin.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Width of the region.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height of the region.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Link is a deferred jump from a region of Source to Dest.
//
// Source is the 0-based page index handed out by the canvas. Dest is a
// 1-based page number as produced by the layout table.
type Link struct {
	Source int
	Rect   Rect
	Dest   int
}

// Linker materializes a link. Target is 0-based.
type Linker interface {
	Link(page int, r Rect, target int)
}

// Stats summarizes a resolution pass.
type Stats struct {
	Created int
	Dropped int
}

// Buffer is an append-only list of deferred links. It is drained exactly
// once by Resolve or by being merged into another buffer.
type Buffer struct {
	links   []Link
	drained bool
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// Add records a link from r on source to dest.
func (b *Buffer) Add(source int, r Rect, dest int) {
	b.mustLive()
	b.links = append(b.links, Link{Source: source, Rect: r, Dest: dest})
}

// Len is the number of pending links.
func (b *Buffer) Len() int { return len(b.links) }

// Links returns a copy of the pending links.
func (b *Buffer) Links() []Link {
	return append([]Link(nil), b.links...)
}

// Merge moves every link of other into b. other is drained.
func (b *Buffer) Merge(other *Buffer) {
	b.mustLive()
	other.mustLive()
	b.links = append(b.links, other.links...)
	other.links = nil
	other.drained = true
}

// Resolve hands every link whose destination lies in [1, total] to l, with
// the destination converted to a 0-based page index. Links pointing outside
// the document are skipped. The buffer is drained afterwards.
func (b *Buffer) Resolve(total int, l Linker) Stats {
	b.mustLive()
	var st Stats
	for _, lk := range b.links {
		if lk.Dest < 1 || lk.Dest > total {
			st.Dropped++
			continue
		}
		l.Link(lk.Source, lk.Rect, lk.Dest-1)
		st.Created++
	}
	b.links = nil
	b.drained = true
	return st
}

func (b *Buffer) mustLive() {
	if b.drained {
		panic("links: buffer used after it was drained")
	}
}

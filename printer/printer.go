// Package printer provides the low-level output destination that AST nodes
// serialize themselves to. It owns whitespace and indentation policy so
// that node code only states what must be written, not how it is spaced.
package printer

import (
	"io"

	"github.com/adamwathan/lightningcss/token"
)

// Options configures a Printer.
type Options struct {
	// Minify collapses optional whitespace and newlines.
	Minify bool
	// SourceMap records an input-position mapping for each node that
	// reports one.
	SourceMap bool
}

// Mapping associates an input source position with a byte offset in the
// generated output.
type Mapping struct {
	Pos    token.Pos
	Offset int
}

// Printer writes serialized CSS to an underlying writer. All writes go
// through the Printer so it can track output offsets and apply the
// configured whitespace policy.
type Printer struct {
	w        io.Writer
	minify   bool
	srcmap   bool
	indent   int
	written  int
	mappings []Mapping
}

// New returns a Printer writing to w.
func New(w io.Writer, opts Options) *Printer {
	return &Printer{w: w, minify: opts.Minify, srcmap: opts.SourceMap}
}

// Minify reports whether the printer is in minified-output mode.
func (p *Printer) Minify() bool { return p.minify }

// WriteString writes s verbatim.
func (p *Printer) WriteString(s string) error {
	n, err := io.WriteString(p.w, s)
	p.written += n
	return err
}

// WriteByte writes a single byte verbatim.
func (p *Printer) WriteByte(c byte) error {
	n, err := p.w.Write([]byte{c})
	p.written += n
	return err
}

// Whitespace writes a single optional space. It is elided when minifying.
func (p *Printer) Whitespace() error {
	if p.minify {
		return nil
	}
	return p.WriteByte(' ')
}

// Delim writes a delimiter with optional surrounding whitespace, e.g.
// Delim(':', false) prints ": " in pretty mode and ":" when minifying.
func (p *Printer) Delim(c byte, spaceBefore bool) error {
	if spaceBefore {
		if err := p.Whitespace(); err != nil {
			return err
		}
	}
	if err := p.WriteByte(c); err != nil {
		return err
	}
	return p.Whitespace()
}

// Newline writes a line break followed by the current indentation. It is
// elided when minifying.
func (p *Printer) Newline() error {
	if p.minify {
		return nil
	}
	if err := p.WriteByte('\n'); err != nil {
		return err
	}
	for i := 0; i < p.indent; i++ {
		if err := p.WriteString("  "); err != nil {
			return err
		}
	}
	return nil
}

// Indent increases the indentation level by one.
func (p *Printer) Indent() { p.indent++ }

// Dedent decreases the indentation level by one.
func (p *Printer) Dedent() {
	if p.indent > 0 {
		p.indent--
	}
}

// AddMapping records that output emitted from here on originates at the
// given source position. It is a no-op unless source mapping is enabled.
func (p *Printer) AddMapping(pos token.Pos) {
	if !p.srcmap {
		return
	}
	p.mappings = append(p.mappings, Mapping{Pos: pos, Offset: p.written})
}

// Mappings returns the recorded source mappings in emission order.
func (p *Printer) Mappings() []Mapping {
	return p.mappings
}

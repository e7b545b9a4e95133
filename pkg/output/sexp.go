package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/symdex/pkg/errors"
	"github.com/arthur-debert/symdex/pkg/format"
	"github.com/arthur-debert/symdex/pkg/types"
)

// Record is the s-expression view of one entry.
type Record struct {
	Path     string
	FullPath string
	Type     string
	Kind     string
	Doc      string
	HasDoc   bool
}

// RecordOf projects e into a record, qualifying its path from scope.
func RecordOf(e *types.Entry, scope types.Scope) Record {
	doc, hasDoc := e.Doc()
	return Record{
		Path:     format.Qualified(e, scope),
		FullPath: e.FullPath(),
		Type:     e.Signature(),
		Kind:     e.Kind.String(),
		Doc:      doc,
		HasDoc:   hasDoc,
	}
}

// String renders the record as a single s-expression.
func (r Record) String() string {
	var b strings.Builder
	b.WriteString("(:path ")
	writeString(&b, r.Path)
	b.WriteString(" :full-path ")
	writeString(&b, r.FullPath)
	b.WriteString(" :type ")
	writeString(&b, r.Type)
	b.WriteString(" :kind ")
	writeString(&b, r.Kind)
	if r.HasDoc {
		b.WriteString(" :doc ")
		writeString(&b, r.Doc)
	}
	b.WriteByte(')')
	return b.String()
}

// WriteSexp writes records as one list, one record per line.
func WriteSexp(w io.Writer, records []Record) error {
	if _, err := io.WriteString(w, "(\n"); err != nil {
		return err
	}
	for _, r := range records {
		if _, err := io.WriteString(w, r.String()+"\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ")\n")
	return err
}

// EscapeSexp escapes s for use inside a double-quoted s-expression string.
// It works on bytes, so invalid UTF-8 passes through unchanged.
func EscapeSexp(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	b.WriteString(EscapeSexp(s))
	b.WriteByte('"')
}

// DecodeSexp parses the output of WriteSexp back into records. Unknown
// keywords are skipped.
func DecodeSexp(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSexpParse, "failed to read s-expression")
	}

	p := &sexpParser{src: string(data)}
	records, err := p.list()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.fail("trailing data after list")
	}
	return records, nil
}

type sexpParser struct {
	src string
	pos int
}

func (p *sexpParser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *sexpParser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *sexpParser) skipSpace() {
	for !p.eof() && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func (p *sexpParser) fail(msg string) error {
	return errors.Newf(errors.ErrSexpParse, "%s at offset %d", msg, p.pos).
		WithDetail("offset", p.pos)
}

func (p *sexpParser) expect(c byte) error {
	p.skipSpace()
	if p.peek() != c {
		return p.fail(fmt.Sprintf("expected %q", c))
	}
	p.pos++
	return nil
}

func (p *sexpParser) list() ([]Record, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	records := []Record{}
	for {
		p.skipSpace()
		switch p.peek() {
		case ')':
			p.pos++
			return records, nil
		case '(':
			rec, err := p.record()
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		default:
			return nil, p.fail("expected record or ')'")
		}
	}
}

func (p *sexpParser) record() (Record, error) {
	var rec Record
	if err := p.expect('('); err != nil {
		return rec, err
	}
	for {
		p.skipSpace()
		if p.peek() == ')' {
			p.pos++
			return rec, nil
		}
		key, err := p.keyword()
		if err != nil {
			return rec, err
		}
		val, err := p.str()
		if err != nil {
			return rec, err
		}
		switch key {
		case "path":
			rec.Path = val
		case "full-path":
			rec.FullPath = val
		case "type":
			rec.Type = val
		case "kind":
			rec.Kind = val
		case "doc":
			rec.Doc = val
			rec.HasDoc = true
		}
	}
}

func (p *sexpParser) keyword() (string, error) {
	if err := p.expect(':'); err != nil {
		return "", err
	}
	start := p.pos
	for !p.eof() {
		c := p.src[p.pos]
		if isSpace(c) || c == '"' || c == '(' || c == ')' {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return "", p.fail("empty keyword")
	}
	return p.src[start:p.pos], nil
}

func (p *sexpParser) str() (string, error) {
	if err := p.expect('"'); err != nil {
		return "", err
	}
	var b strings.Builder
	for !p.eof() {
		c := p.src[p.pos]
		p.pos++
		switch c {
		case '"':
			return b.String(), nil
		case '\\':
			if p.eof() {
				return "", p.fail("unterminated escape")
			}
			esc := p.src[p.pos]
			p.pos++
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '\\', '"':
				b.WriteByte(esc)
			default:
				return "", p.fail(fmt.Sprintf("unknown escape \\%c", esc))
			}
		default:
			b.WriteByte(c)
		}
	}
	return "", p.fail("unterminated string")
}

package output

import (
	"bufio"
	"io"

	"github.com/arthur-debert/symdex/pkg/errors"
	"github.com/arthur-debert/symdex/pkg/format"
	"github.com/arthur-debert/symdex/pkg/types"
)

// Mode selects how entries are encoded.
type Mode int

const (
	ModeSummary Mode = iota
	ModePlain
	ModeSexp
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModeSummary:
		return "summary"
	case ModePlain:
		return "plain"
	case ModeSexp:
		return "sexp"
	default:
		return "unknown"
	}
}

// Settings are the user choices an Encoder is built from.
type Settings struct {
	// Sexp requests s-expression output.
	Sexp bool
	// Template is a custom format string, honoured only when HasTemplate is
	// set so that an explicitly empty template differs from none.
	Template    string
	HasTemplate bool
	// Format carries scope, root, type width and the kind styler.
	Format format.Options
}

// Encoder writes entries in one mode.
type Encoder struct {
	mode     Mode
	template *format.Template
	opts     format.Options
}

// New validates settings and builds the encoder.
func New(s Settings) (*Encoder, error) {
	if s.Sexp && s.HasTemplate {
		return nil, errors.New(errors.ErrUsage, "--sexp cannot be combined with a custom format").
			WithDetail("format", s.Template)
	}

	e := &Encoder{opts: s.Format}
	switch {
	case s.Sexp:
		e.mode = ModeSexp
		e.opts.KindStyle = nil
	case s.HasTemplate:
		e.mode = ModePlain
		e.template = format.Compile(s.Template)
		e.opts.KindStyle = nil
	default:
		e.mode = ModeSummary
		e.template = format.Compile(format.SummaryTemplate)
	}
	return e, nil
}

// Mode returns the encoder's mode.
func (e *Encoder) Mode() Mode {
	return e.mode
}

// Encode writes entries to w. Sexp mode always writes a list, even when
// entries is empty.
func (e *Encoder) Encode(w io.Writer, entries []*types.Entry) error {
	bw := bufio.NewWriter(w)
	if e.mode == ModeSexp {
		records := make([]Record, 0, len(entries))
		for _, entry := range entries {
			records = append(records, RecordOf(entry, e.opts.Scope))
		}
		if err := WriteSexp(bw, records); err != nil {
			return err
		}
		return bw.Flush()
	}

	for _, entry := range entries {
		if _, err := bw.WriteString(e.template.Render(entry, e.opts)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// EncodeLine renders a single entry without a trailing newline.
func (e *Encoder) EncodeLine(entry *types.Entry) string {
	if e.mode == ModeSexp {
		return RecordOf(entry, e.opts.Scope).String()
	}
	return e.template.Render(entry, e.opts)
}

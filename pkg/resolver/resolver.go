// Package resolver turns raw query strings into index entries. It owns the
// disambiguation policy for unique lookups and the interface/implementation
// location fallback used by locate.
package resolver

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/symdex/pkg/errors"
	"github.com/arthur-debert/symdex/pkg/index"
	"github.com/arthur-debert/symdex/pkg/logging"
	"github.com/arthur-debert/symdex/pkg/types"
)

// TieBreak selects one entry when a unique lookup matches several.
type TieBreak string

const (
	// TieBreakFirst keeps the first match in index order.
	TieBreakFirst TieBreak = "first"
	// TieBreakShortest keeps the match with the fewest path segments,
	// falling back to index order between equals.
	TieBreakShortest TieBreak = "shortest"
)

// DefaultTieBreak is used when no policy is configured.
const DefaultTieBreak = TieBreakFirst

// ParseTieBreak validates a policy name. The empty string selects the default.
func ParseTieBreak(s string) (TieBreak, error) {
	switch TieBreak(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultTieBreak, nil
	case TieBreakFirst:
		return TieBreakFirst, nil
	case TieBreakShortest:
		return TieBreakShortest, nil
	}
	return "", fmt.Errorf("unknown tie-break policy %q (want %q or %q)", s, TieBreakFirst, TieBreakShortest)
}

func (tb TieBreak) pick(entries []*types.Entry) *types.Entry {
	best := entries[0]
	if tb == TieBreakShortest {
		for _, e := range entries[1:] {
			if len(e.Path) < len(best.Path) {
				best = e
			}
		}
	}
	return best
}

// Resolver wraps an index provider with symdex's resolution policy.
type Resolver struct {
	provider index.Provider
	tieBreak TieBreak
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithTieBreak sets the policy used by ResolveUnique.
func WithTieBreak(tb TieBreak) Option {
	return func(r *Resolver) {
		r.tieBreak = tb
	}
}

// New returns a resolver over provider.
func New(provider index.Provider, opts ...Option) *Resolver {
	r := &Resolver{provider: provider, tieBreak: DefaultTieBreak}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Complete returns the entries matching prefix in index order.
func (r *Resolver) Complete(prefix string) ([]*types.Entry, error) {
	entries, err := r.provider.Complete(prefix)
	if err != nil {
		return nil, err
	}
	logger := logging.GetLogger("resolver")
	logger.Debug().
		Str("prefix", prefix).
		Int("matches", len(entries)).
		Msg("Completed prefix")
	return entries, nil
}

// ResolveAll returns every entry matching query. An empty result is not an
// error; callers decide how to report it.
func (r *Resolver) ResolveAll(query string) ([]*types.Entry, error) {
	entries, err := r.provider.LookupAll(query)
	if err != nil {
		return nil, err
	}
	logger := logging.GetLogger("resolver")
	logger.Debug().
		Str("query", query).
		Int("matches", len(entries)).
		Msg("Resolved query")
	return entries, nil
}

// ResolveUnique returns exactly one entry for query, chosen by the
// resolver's tie-break policy when several match.
func (r *Resolver) ResolveUnique(query string) (*types.Entry, error) {
	entries, err := r.ResolveAll(query)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, NotFound(query)
	}
	picked := r.tieBreak.pick(entries)
	if len(entries) > 1 {
		logger := logging.GetLogger("resolver")
		logger.Debug().
			Str("query", query).
			Str("policy", string(r.tieBreak)).
			Str("picked", picked.FullPath()).
			Int("candidates", len(entries)).
			Msg("Disambiguated query")
	}
	return picked, nil
}

// ResolveLocation returns the entries matching query that carry the
// requested location kind. When none do, it retries with the opposite kind.
// The returned flag reports which kind the entries were selected for; it
// differs from preferInterface only when the fallback was taken. An empty
// slice means neither kind is indexed for any match.
func (r *Resolver) ResolveLocation(query string, preferInterface bool) ([]*types.Entry, bool, error) {
	entries, err := r.ResolveAll(query)
	if err != nil {
		return nil, preferInterface, err
	}

	for _, iface := range []bool{preferInterface, !preferInterface} {
		found := withLocation(entries, iface)
		if len(found) == 0 {
			continue
		}
		if iface != preferInterface {
			logger := logging.GetLogger("resolver")
			logger.Info().
				Str("query", query).
				Str("wanted", locationKind(preferInterface)).
				Str("using", locationKind(iface)).
				Msg("Falling back to other location kind")
		}
		return found, iface, nil
	}
	return []*types.Entry{}, preferInterface, nil
}

func withLocation(entries []*types.Entry, iface bool) []*types.Entry {
	out := []*types.Entry{}
	for _, e := range entries {
		if _, ok := e.Location(iface); ok {
			out = append(out, e)
		}
	}
	return out
}

func locationKind(iface bool) string {
	if iface {
		return "interface"
	}
	return "implementation"
}

// NotFound builds the error returned when a query has no usable match.
func NotFound(query string) error {
	return errors.Newf(errors.ErrNotFound, "no entry found for %q", query).
		WithDetail("query", query)
}

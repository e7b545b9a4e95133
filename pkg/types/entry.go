package types

// Entry is one symbol occurrence surfaced by the index. Apart from its lazy
// fields an Entry is immutable once built; the lazy fields only ever move
// from uncomputed to computed.
type Entry struct {
	// Path is the full path of the symbol; the last segment is its name.
	Path []string
	Kind Kind
	// Source identifies the compiled artifact the entry was read from.
	Source string

	signature *Lazy[string]
	doc       *Lazy[*string]
	implLoc   *Lazy[*Location]
	sigLoc    *Lazy[*Location]
}

// EntryFields carries the functions an index provider supplies to compute
// an entry's derived fields. Nil functions yield empty or absent values.
type EntryFields struct {
	Signature func() string
	Doc       func() (string, bool)
	ImplLoc   func() (Location, bool)
	SigLoc    func() (Location, bool)
}

// NewEntry builds an entry whose derived fields are computed on first use.
// Keyword entries never carry locations, whatever fields supplies.
func NewEntry(path []string, kind Kind, source string, fields EntryFields) *Entry {
	e := &Entry{
		Path:   path,
		Kind:   kind,
		Source: source,
	}

	e.signature = NewLazy(func() string {
		if fields.Signature == nil {
			return ""
		}
		return fields.Signature()
	})
	e.doc = NewLazy(func() *string {
		if fields.Doc == nil {
			return nil
		}
		if d, ok := fields.Doc(); ok {
			return &d
		}
		return nil
	})

	if kind.Tag == KindKeyword {
		e.implLoc = Computed[*Location](nil)
		e.sigLoc = Computed[*Location](nil)
		return e
	}
	e.implLoc = lazyLocation(fields.ImplLoc)
	e.sigLoc = lazyLocation(fields.SigLoc)
	return e
}

func lazyLocation(fn func() (Location, bool)) *Lazy[*Location] {
	return NewLazy(func() *Location {
		if fn == nil {
			return nil
		}
		if loc, ok := fn(); ok {
			return &loc
		}
		return nil
	})
}

// Name returns the short name of the symbol.
func (e *Entry) Name() string {
	return e.Path[len(e.Path)-1]
}

// FullPath returns the dotted full path.
func (e *Entry) FullPath() string {
	return JoinPath(e.Path)
}

// Signature returns the type signature, computing it on first call.
func (e *Entry) Signature() string {
	return e.signature.Get()
}

// Doc returns the documentation text and whether the entry has any.
func (e *Entry) Doc() (string, bool) {
	d := e.doc.Get()
	if d == nil {
		return "", false
	}
	return *d, true
}

// ImplLocation returns the implementation-site location, if indexed.
func (e *Entry) ImplLocation() (Location, bool) {
	return deref(e.implLoc.Get())
}

// SigLocation returns the interface declaration location, if indexed.
func (e *Entry) SigLocation() (Location, bool) {
	return deref(e.sigLoc.Get())
}

// Location returns the signature location when iface is set and the
// implementation location otherwise.
func (e *Entry) Location(iface bool) (Location, bool) {
	if iface {
		return e.SigLocation()
	}
	return e.ImplLocation()
}

// Forced reports which lazy fields have been computed so far.
func (e *Entry) Forced() ForcedFields {
	return ForcedFields{
		Signature: e.signature.Forced(),
		Doc:       e.doc.Forced(),
		ImplLoc:   e.implLoc.Forced() && e.Kind.Tag != KindKeyword,
		SigLoc:    e.sigLoc.Forced() && e.Kind.Tag != KindKeyword,
	}
}

// ForcedFields is a snapshot of an entry's memoization state.
type ForcedFields struct {
	Signature bool
	Doc       bool
	ImplLoc   bool
	SigLoc    bool
}

func deref(l *Location) (Location, bool) {
	if l == nil {
		return Location{}, false
	}
	return *l, true
}

package format

// Directive identifies one entry projection.
type Directive int

const (
	DirName Directive = iota
	DirQualified
	DirFullPath
	DirKind
	DirType
	DirDoc
	DirLocImpl
	DirLocSig
	DirSourceFile
	DirSummary
	DirPercent
)

// Directives lists every directive in table order.
var Directives = []Directive{
	DirName, DirQualified, DirFullPath, DirKind, DirType, DirDoc,
	DirLocImpl, DirLocSig, DirSourceFile, DirSummary, DirPercent,
}

var directiveInfo = map[Directive]struct {
	char byte
	name string
}{
	DirName:       {'n', "name"},
	DirQualified:  {'q', "qualified"},
	DirFullPath:   {'p', "full-path"},
	DirKind:       {'k', "kind"},
	DirType:       {'t', "type"},
	DirDoc:        {'d', "doc"},
	DirLocImpl:    {'l', "loc-impl"},
	DirLocSig:     {'s', "loc-sig"},
	DirSourceFile: {'f', "source-file"},
	DirSummary:    {'i', "summary"},
	DirPercent:    {'%', "percent"},
}

var byChar = func() map[byte]Directive {
	m := make(map[byte]Directive, len(directiveInfo))
	for d, info := range directiveInfo {
		m[info.char] = d
	}
	return m
}()

// Lookup returns the directive written as '%' followed by c.
func Lookup(c byte) (Directive, bool) {
	d, ok := byChar[c]
	return d, ok
}

// Char returns the character that follows '%' for this directive.
func (d Directive) Char() byte {
	return directiveInfo[d].char
}

// String returns the directive's documented name.
func (d Directive) String() string {
	if info, ok := directiveInfo[d]; ok {
		return info.name
	}
	return "unknown"
}

// Lazy reports whether projecting d forces a memoized entry field.
func (d Directive) Lazy() bool {
	switch d {
	case DirType, DirDoc, DirLocImpl, DirLocSig, DirSummary:
		return true
	}
	return false
}

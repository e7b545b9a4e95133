package types

import (
	"fmt"
	"strings"
)

// KindTag enumerates the kinds of symbol an index entry can describe.
type KindTag int

const (
	KindType KindTag = iota
	KindValue
	KindException
	KindField
	KindConstructor
	KindMethod
	KindModule
	KindModuleType
	KindClass
	KindClassType
	KindKeyword
)

// KindTags lists every tag in declaration order.
var KindTags = []KindTag{
	KindType, KindValue, KindException, KindField, KindConstructor, KindMethod,
	KindModule, KindModuleType, KindClass, KindClassType, KindKeyword,
}

var kindTokens = map[KindTag]string{
	KindType:        "type",
	KindValue:       "val",
	KindException:   "exception",
	KindField:       "field",
	KindConstructor: "constr",
	KindMethod:      "method",
	KindModule:      "module",
	KindModuleType:  "modtype",
	KindClass:       "class",
	KindClassType:   "classtype",
	KindKeyword:     "keyword",
}

// Token returns the short name of the tag, without any owner.
func (t KindTag) Token() string {
	if s, ok := kindTokens[t]; ok {
		return s
	}
	return "unknown"
}

// HasOwner reports whether kinds with this tag carry an owner type or class.
func (t KindTag) HasOwner() bool {
	return t == KindField || t == KindConstructor || t == KindMethod
}

// Kind is the tagged variant describing an entry. Owner names the enclosing
// type for fields and constructors, and the enclosing class for methods.
type Kind struct {
	Tag   KindTag
	Owner string
}

// String renders the kind the way format directives and s-expressions
// expect it: "val", "field(point)", "method(widget)".
func (k Kind) String() string {
	if k.Tag.HasOwner() {
		return fmt.Sprintf("%s(%s)", k.Tag.Token(), k.Owner)
	}
	return k.Tag.Token()
}

// ParseKindTag maps an index token back to its tag.
func ParseKindTag(token string) (KindTag, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	for tag, s := range kindTokens {
		if s == token {
			return tag, nil
		}
	}
	switch token {
	case "value":
		return KindValue, nil
	case "constructor":
		return KindConstructor, nil
	case "moduletype", "module_type":
		return KindModuleType, nil
	case "class_type":
		return KindClassType, nil
	}
	return 0, fmt.Errorf("unknown kind %q", token)
}

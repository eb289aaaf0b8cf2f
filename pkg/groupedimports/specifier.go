package groupedimports

import (
	"regexp"
	"strings"
)

// PartyType tells whether an import comes from the project itself or from a
// package dependency
type PartyType int

const (
	PartyUnset PartyType = iota
	FirstParty
	ThirdParty
)

func (p PartyType) String() string {
	switch p {
	case FirstParty:
		return "first-party"
	case ThirdParty:
		return "third-party"
	default:
		return "unset"
	}
}

var (
	rootPattern  = regexp.MustCompile(`^(?:@\w+/)?\w+`)
	scopePattern = regexp.MustCompile(`^(@\w+)/`)
)

// Specifier is the classification of one import specifier
type Specifier struct {
	Text     string
	Party    PartyType
	Root     string
	HasRoot  bool
	Scope    string
	HasScope bool
}

// Classify derives party type, module root and module scope of a specifier
func Classify(specifier string) Specifier {
	spec := Specifier{
		Text:  specifier,
		Party: ClassifyParty(specifier),
	}
	spec.Root, spec.HasRoot = ExtractRoot(specifier)
	spec.Scope, spec.HasScope = ExtractScope(specifier)
	return spec
}

// ClassifyParty returns FirstParty for relative specifiers and ThirdParty
// for everything else
func ClassifyParty(specifier string) PartyType {
	if strings.HasPrefix(specifier, ".") {
		return FirstParty
	}
	return ThirdParty
}

// ExtractRoot returns the leading package segment of a specifier including
// its scope, e.g. "@angular/core" for "@angular/core/testing" and "rxjs" for
// "rxjs/add/operator/map"
func ExtractRoot(specifier string) (string, bool) {
	root := rootPattern.FindString(specifier)
	if root == "" {
		return "", false
	}
	return root, true
}

// ExtractScope returns the "@name" prefix of a scoped specifier
func ExtractScope(specifier string) (string, bool) {
	m := scopePattern.FindStringSubmatch(specifier)
	if m == nil {
		return "", false
	}
	return m[1], true
}

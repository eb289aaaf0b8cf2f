package groupedimports

import (
	"maps"

	"github.com/siyuan-infoblox/ts-layout-lint/pkg/rule"
)

// ViolationKind identifies what is wrong with an import statement
type ViolationKind int

const (
	FirstPartyShouldPrecedeThirdParty ViolationKind = iota + 1
	ThirdPartyShouldPrecedeFirstParty
	RootShouldBeGrouped
	ScopeShouldBeGrouped
)

// Violation is a single ordering or grouping problem bound to the offending
// statement. Name holds the module root or scope for grouping violations.
type Violation struct {
	Kind      ViolationKind
	Name      string
	Statement rule.Statement
}

// State is the analysis state carried from one import statement to the next.
// Step never mutates the receiver: the seen set is copied before it grows,
// so older states stay valid.
type State struct {
	ExpectedParty PartyType
	LastRoot      string
	HasLastRoot   bool
	LastScope     string
	HasLastScope  bool

	seen map[string]struct{}
}

// Seen reports whether a root or scope was observed earlier in the pass
func (s State) Seen(name string) bool {
	_, ok := s.seen[name]
	return ok
}

// SeenCount returns the number of distinct roots and scopes observed
func (s State) SeenCount() int {
	return len(s.seen)
}

// Step applies one classified import statement to the state. index is the
// position of the statement among the analyzed imports.
func (s State) Step(index int, stmt rule.Statement, spec Specifier, opts Options) (State, []Violation) {
	var violations []Violation
	next := s

	sectionSwitched := spec.Party != s.ExpectedParty &&
		spec.Party == opts.FirstVsThirdPartyOrder.leadingParty()
	if s.ExpectedParty == PartyUnset || sectionSwitched {
		next.ExpectedParty = spec.Party
	}

	if opts.FirstVsThirdPartyOrder != OrderUnset && spec.Party != next.ExpectedParty {
		kind := ThirdPartyShouldPrecedeFirstParty
		if spec.Party == FirstParty {
			kind = FirstPartyShouldPrecedeThirdParty
		}
		violations = append(violations, Violation{Kind: kind, Statement: stmt})
	}

	if index > 0 && opts.GroupThirdPartyModules {
		switch {
		case spec.HasRoot && (!s.HasLastRoot || s.LastRoot != spec.Root) && s.Seen(spec.Root):
			violations = append(violations, Violation{Kind: RootShouldBeGrouped, Name: spec.Root, Statement: stmt})
		case spec.HasScope && (!s.HasLastScope || s.LastScope != spec.Scope) && s.Seen(spec.Scope):
			violations = append(violations, Violation{Kind: ScopeShouldBeGrouped, Name: spec.Scope, Statement: stmt})
		}
	}

	next.LastRoot, next.HasLastRoot = spec.Root, spec.HasRoot
	next.LastScope, next.HasLastScope = spec.Scope, spec.HasScope
	next.seen = s.withSeen(spec)

	return next, violations
}

// withSeen returns the seen set extended by the specifier's root and scope.
// The existing set is shared when nothing new is added.
func (s State) withSeen(spec Specifier) map[string]struct{} {
	addRoot := spec.HasRoot && !s.Seen(spec.Root)
	addScope := spec.HasScope && !s.Seen(spec.Scope)
	if !addRoot && !addScope {
		return s.seen
	}

	seen := maps.Clone(s.seen)
	if seen == nil {
		seen = make(map[string]struct{}, 2)
	}
	if addRoot {
		seen[spec.Root] = struct{}{}
	}
	if addScope {
		seen[spec.Scope] = struct{}{}
	}
	return seen
}

// Walk runs the state machine over a file's statements and returns the
// violations in statement order. Statements without a literal import
// specifier are skipped.
func Walk(statements []rule.Statement, opts Options) []Violation {
	var (
		violations []Violation
		state      State
		index      int
	)

	for _, stmt := range statements {
		specifier, ok := stmt.ImportSpecifier()
		if !ok {
			continue
		}

		var found []Violation
		state, found = state.Step(index, stmt, Classify(specifier), opts)
		violations = append(violations, found...)
		index++
	}

	return violations
}

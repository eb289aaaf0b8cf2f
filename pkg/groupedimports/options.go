package groupedimports

const (
	optionGroupThirdPartyModules = "groupThirdPartyModules"
	optionFirstVsThirdPartyOrder = "firstVsThirdPartyOrder"
)

// PartyOrder is the configured placement of third party imports
type PartyOrder string

const (
	OrderUnset             PartyOrder = ""
	ThirdPartyModulesFirst PartyOrder = "third-party-modules-first"
	ThirdPartyModulesLast  PartyOrder = "third-party-modules-last"
)

// leadingParty returns the party type that is allowed to open a new section
// under the order policy
func (o PartyOrder) leadingParty() PartyType {
	switch o {
	case ThirdPartyModulesFirst:
		return FirstParty
	case ThirdPartyModulesLast:
		return ThirdParty
	default:
		return PartyUnset
	}
}

// Options are the resolved rule settings
type Options struct {
	GroupThirdPartyModules bool
	FirstVsThirdPartyOrder PartyOrder
}

// DefaultOptions returns the settings used when no argument is configured
func DefaultOptions() Options {
	return Options{
		GroupThirdPartyModules: true,
		FirstVsThirdPartyOrder: OrderUnset,
	}
}

// ResolveOptions turns raw rule arguments into Options. ok is false when the
// arguments are malformed, in which case the rule must not report anything.
func ResolveOptions(args []any) (Options, bool) {
	opts := DefaultOptions()
	if len(args) == 0 {
		return opts, true
	}

	var fields map[string]any
	switch v := args[0].(type) {
	case nil, []any:
		return opts, true
	case map[string]any:
		fields = v
	case map[any]any:
		fields = make(map[string]any, len(v))
		for k, val := range v {
			if key, ok := k.(string); ok {
				fields[key] = val
			}
		}
	default:
		return Options{}, false
	}

	if group, ok := fields[optionGroupThirdPartyModules].(bool); ok {
		opts.GroupThirdPartyModules = group
	}

	if order, ok := fields[optionFirstVsThirdPartyOrder].(string); ok {
		switch PartyOrder(order) {
		case ThirdPartyModulesFirst, ThirdPartyModulesLast:
			opts.FirstVsThirdPartyOrder = PartyOrder(order)
		}
	}

	return opts, true
}

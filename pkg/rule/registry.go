package rule

import "sync"

// Registry holds rules in registration order
type Registry struct {
	mu    sync.RWMutex
	rules []Rule
	index map[string]int
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]int),
	}
}

// Register adds a rule. A rule with the same name replaces the earlier one
// and keeps its position.
func (r *Registry) Register(rl Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.index[rl.Name()]; ok {
		r.rules[i] = rl
		return
	}
	r.index[rl.Name()] = len(r.rules)
	r.rules = append(r.rules, rl)
}

// Get returns the rule with the given name
func (r *Registry) Get(name string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[name]
	if !ok {
		return Rule{}, false
	}
	return r.rules[i], true
}

// All returns the registered rules in registration order
func (r *Registry) All() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rules := make([]Rule, len(r.rules))
	copy(rules, r.rules)
	return rules
}

// Metadata returns the descriptors of all registered rules
func (r *Registry) Metadata() []Metadata {
	var metas []Metadata
	for _, rl := range r.All() {
		metas = append(metas, rl.Metadata)
	}
	return metas
}

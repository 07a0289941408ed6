package countries

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Resolver maps surface forms of country names to canonical display names.
// The lookup table is built once at construction and read-only afterwards, so
// a Resolver is safe to share across goroutines.
type Resolver struct {
	table map[string]string
}

// New builds a Resolver from the curated alias list. Two aliases normalizing
// to the same key with different canonical names is a bug in the list itself,
// guarded by tests, so New panics rather than returning an error.
func New() *Resolver {
	r, err := NewWithAliases(nil)
	if err != nil {
		panic(err)
	}
	return r
}

// NewWithAliases builds a Resolver with extra alias -> canonical pairs merged
// into the curated table. An extra alias whose key already maps to a
// different canonical name is a configuration error.
func NewWithAliases(extra map[string]string) (*Resolver, error) {
	table := make(map[string]string, len(aliasSeed)+len(extra))

	insert := func(alias, canonical string) error {
		if canonical == "" {
			return fmt.Errorf("alias %q: canonical name is empty", alias)
		}
		key := Normalize(alias)
		if key == "" {
			return fmt.Errorf("alias %q normalizes to an empty key", alias)
		}
		if existing, ok := table[key]; ok && existing != canonical {
			return fmt.Errorf("alias %q normalizes to key %q which already maps to %q (not %q)",
				alias, key, existing, canonical)
		}
		table[key] = canonical
		return nil
	}

	for _, e := range aliasSeed {
		if err := insert(e.Alias, e.Canonical); err != nil {
			return nil, err
		}
	}
	for alias, canonical := range extra {
		if err := insert(alias, canonical); err != nil {
			return nil, err
		}
	}

	return &Resolver{table: table}, nil
}

// NewWithAliasFile builds a Resolver with an extra curated alias file merged
// in. The file is a flat YAML mapping of alias to canonical name.
func NewWithAliasFile(path string) (*Resolver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alias file: %w", err)
	}

	var extra map[string]string
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("failed to parse alias file: %w", err)
	}

	return NewWithAliases(extra)
}

// Lookup returns the canonical name for an already-normalized comparison key.
func (r *Resolver) Lookup(key string) (string, bool) {
	name, ok := r.table[key]
	return name, ok
}

// Canonical maps one raw name to its canonical form if known; otherwise it
// returns the trimmed original. Aggregates and unmapped names both pass
// through unchanged; failing to resolve is a normal, silent outcome.
func (r *Resolver) Canonical(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return trimmed
	}

	key := r.lookupKey(trimmed)
	if name, ok := r.table[key]; ok {
		return name
	}
	return trimmed
}

// Resolve is Canonical lifted over nullable cells: nil in, nil out.
func (r *Resolver) Resolve(raw *string) *string {
	if raw == nil {
		return nil
	}
	out := r.Canonical(*raw)
	return &out
}

// ResolveColumn maps Resolve over a column, preserving order and length
// exactly. The input slice is never modified.
func (r *Resolver) ResolveColumn(values []*string) []*string {
	out := make([]*string, len(values))
	for i, v := range values {
		out[i] = r.Resolve(v)
	}
	return out
}

// Unmapped returns, in first-seen order, the distinct trimmed values whose
// key has no table entry and does not look like an aggregate. Intended for
// offline curation review only; the resolver itself never consults it.
func (r *Resolver) Unmapped(values []*string) []string {
	seen := make(map[string]struct{})
	var out []string

	for _, v := range values {
		if v == nil {
			continue
		}
		trimmed := strings.TrimSpace(*v)
		if trimmed == "" {
			continue
		}

		key := r.lookupKey(trimmed)
		if _, ok := r.table[key]; ok {
			continue
		}
		if IsAggregate(key) {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	return out
}

// Canonicals returns the sorted distinct canonical names the table maps to.
func (r *Resolver) Canonicals() []string {
	set := make(map[string]struct{})
	for _, name := range r.table {
		set[name] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// lookupKey normalizes a trimmed raw name and strips a leading "the " token,
// so "The Bahamas" and "Bahamas" share a key. The strip applies to the lookup
// key only, never to the passthrough value.
func (r *Resolver) lookupKey(trimmed string) string {
	key := Normalize(trimmed)
	if rest, ok := strings.CutPrefix(key, "the "); ok && rest != "" {
		key = rest
	}
	return key
}

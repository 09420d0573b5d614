package categories

import "fmt"

// SubCategory is one browsable menu section. Key names the physical
// partition its items live in.
type SubCategory struct {
	ID           string `json:"id"`
	DisplayLabel string `json:"displayLabel"`
	Key          string `json:"key"`
	Image        string `json:"image,omitempty"`
}

// MainCategory is a top-level tile on the menu landing page.
type MainCategory struct {
	ID            string        `json:"id"`
	DisplayLabel  string        `json:"displayLabel"`
	Description   string        `json:"description"`
	Subcategories []SubCategory `json:"subcategories"`
}

// Registry is the static two-level taxonomy plus an alias table for legacy
// category spellings. Built once at process start; read-only afterwards.
type Registry struct {
	mains   []MainCategory
	keys    []string // canonical keys in registry order
	byKey   map[string]SubCategory
	bySubID map[string]SubCategory
	aliases map[string]string
}

// New validates the taxonomy and builds lookup tables. It fails when two
// subcategories claim the same storage key (even under different main
// categories), when an alias shadows a canonical key, or when an alias
// points at a key that doesn't exist. These are configuration errors and
// the process must not come up with them.
func New(mains []MainCategory, aliases map[string]string) (*Registry, error) {
	r := &Registry{
		mains:   mains,
		byKey:   make(map[string]SubCategory),
		bySubID: make(map[string]SubCategory),
		aliases: make(map[string]string, len(aliases)),
	}

	for _, main := range mains {
		for _, sub := range main.Subcategories {
			if dup, ok := r.byKey[sub.Key]; ok {
				return nil, fmt.Errorf("categories: storage key %q claimed by both %q and %q", sub.Key, dup.ID, sub.ID)
			}
			r.byKey[sub.Key] = sub
			if _, ok := r.bySubID[sub.ID]; !ok {
				r.bySubID[sub.ID] = sub
			}
			r.keys = append(r.keys, sub.Key)
		}
	}

	for alias, target := range aliases {
		if _, ok := r.byKey[alias]; ok {
			return nil, fmt.Errorf("categories: alias %q shadows a canonical key", alias)
		}
		if _, ok := r.byKey[target]; !ok {
			return nil, fmt.Errorf("categories: alias %q targets unknown key %q", alias, target)
		}
		r.aliases[alias] = target
	}

	return r, nil
}

// MainCategories returns the top-level taxonomy in display order.
func (r *Registry) MainCategories() []MainCategory {
	out := make([]MainCategory, len(r.mains))
	copy(out, r.mains)
	return out
}

// FindMain looks up a main category by its id.
func (r *Registry) FindMain(id string) (MainCategory, bool) {
	for _, m := range r.mains {
		if m.ID == id {
			return m, true
		}
	}
	return MainCategory{}, false
}

// FindSub looks up a subcategory by its id across all main categories,
// returning the first match.
func (r *Registry) FindSub(id string) (SubCategory, bool) {
	sub, ok := r.bySubID[id]
	return sub, ok
}

// KeysFor returns the storage keys under one main category, or nil for an
// unknown id.
func (r *Registry) KeysFor(mainID string) []string {
	main, ok := r.FindMain(mainID)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(main.Subcategories))
	for _, sub := range main.Subcategories {
		keys = append(keys, sub.Key)
	}
	return keys
}

// Keys returns every canonical storage key in registry order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Canonical resolves a raw category string to its canonical storage key,
// accepting both canonical keys and registered legacy aliases.
func (r *Registry) Canonical(raw string) (string, bool) {
	if _, ok := r.byKey[raw]; ok {
		return raw, true
	}
	if target, ok := r.aliases[raw]; ok {
		return target, true
	}
	return "", false
}

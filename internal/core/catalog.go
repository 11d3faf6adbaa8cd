package core

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// Catalog is an ordered set of registry types.
//
// Entries are kept sorted by descending URL prefix length, ties broken by
// registration order, so a more specific prefix is always tried before a
// more general one regardless of when it was registered.
type Catalog struct {
	mu      sync.RWMutex
	entries []*RegistryType
	seq     int
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

var defaultCatalog = NewCatalog()

// Default returns the process-wide catalog populated by the site packages.
func Default() *Catalog {
	return defaultCatalog
}

// Register adds a registry type to the default catalog.
func Register(rt RegistryType) error {
	return defaultCatalog.Register(rt)
}

// MustRegister adds a registry type to the default catalog and panics on error.
// Site packages call it from init.
func MustRegister(rt RegistryType) {
	if err := defaultCatalog.Register(rt); err != nil {
		panic(err)
	}
}

// Register validates rt and inserts it into the catalog.
func (c *Catalog) Register(rt RegistryType) error {
	return c.RegisterAll(rt)
}

// RegisterAll validates every entry and inserts them in order. Either all
// entries are added or, on the first error, none are.
func (c *Catalog) RegisterAll(rts ...RegistryType) error {
	batch := make([]*RegistryType, 0, len(rts))
	for i := range rts {
		rt := rts[i]
		if err := validate(&rt); err != nil {
			return err
		}
		rt.Qualifiers = maps.Clone(rt.Qualifiers)
		batch = append(batch, &rt)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, rt := range batch {
		existing := slices.Concat(c.entries, batch[:i])
		for _, e := range existing {
			if e.ID == rt.ID {
				return &ConfigurationError{RegistryID: rt.ID, Err: errors.New("duplicate registry id")}
			}
			if e.URLPrefix == rt.URLPrefix {
				return &ConfigurationError{RegistryID: rt.ID, Err: fmt.Errorf("url prefix %q already registered by %s", rt.URLPrefix, e.ID)}
			}
		}
	}

	for _, rt := range batch {
		c.seq++
		rt.seq = c.seq

		idx := len(c.entries)
		for i, e := range c.entries {
			if len(e.URLPrefix) < len(rt.URLPrefix) {
				idx = i
				break
			}
		}
		c.entries = slices.Insert(c.entries, idx, rt)
	}
	return nil
}

func validate(rt *RegistryType) error {
	fail := func(msg string) error {
		return &ConfigurationError{RegistryID: rt.ID, Err: errors.New(msg)}
	}
	switch {
	case rt.ID == "":
		return fail("missing id")
	case rt.Ecosystem == "":
		return fail("missing ecosystem")
	case rt.URLPrefix == "":
		return fail("missing url prefix")
	case Normalize(rt.URLPrefix) != rt.URLPrefix:
		return fail("url prefix must not contain a query string or fragment")
	case rt.Pattern == nil:
		return fail("missing path pattern")
	}
	if rt.Resolve == nil && !rt.Pattern.HasGroup(GroupArtifact) && !rt.Pattern.HasGroup(GroupName) {
		return fail("path pattern has no artifactId or name group")
	}
	if vs := rt.VersionSelector; vs != nil {
		if strings.TrimSpace(vs.Selector) == "" {
			return fail("version selector is empty")
		}
		if vs.Token < 0 {
			return fail("version selector token must not be negative")
		}
	}
	return nil
}

// Match returns the first entry whose prefix matches the normalized url.
func (c *Catalog) Match(url string) (*RegistryType, bool) {
	url = Normalize(url)

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, e := range c.entries {
		if strings.HasPrefix(url, e.URLPrefix) {
			return e, true
		}
	}
	return nil, false
}

// Lookup returns the entry with the given id.
func (c *Catalog) Lookup(id string) (*RegistryType, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, e := range c.entries {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// Entries returns the catalog entries in match order.
func (c *Catalog) Entries() []*RegistryType {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.entries)
}

// Ecosystems returns the distinct ecosystems served by the catalog.
func (c *Catalog) Ecosystems() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, e := range c.entries {
		if !seen[e.Ecosystem] {
			seen[e.Ecosystem] = true
			out = append(out, e.Ecosystem)
		}
	}
	slices.Sort(out)
	return out
}

// PageURL renders the canonical page URL for coord using the earliest
// registered entry of its ecosystem that has a page template.
func (c *Catalog) PageURL(coord *Coordinate) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var best *RegistryType
	for _, e := range c.entries {
		if e.Ecosystem != coord.Ecosystem() || e.PageURL == nil {
			continue
		}
		if best == nil || e.seq < best.seq {
			best = e
		}
	}
	if best == nil {
		return ""
	}
	return best.PageURL(coord)
}

// Identify matches url against the catalog and extracts a coordinate.
func (c *Catalog) Identify(url string, dom DOM) (*Coordinate, error) {
	rt, ok := c.Match(url)
	if !ok {
		return nil, ErrNoMatch
	}
	return ExtractErr(rt, url, dom)
}

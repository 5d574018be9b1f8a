package cache

import (
	"slices"
	"sync"

	"github.com/carrierops/interpreter/pkg/core"
)

// TemplateCache holds every template defined so far, keyed by identifier.
// The interpreter reads it to resolve boom genders while the template
// handler writes to it, so all access is locked.
type TemplateCache struct {
	mu        sync.RWMutex
	templates map[core.Identifier]core.TemplateCommand
}

func NewTemplateCache() *TemplateCache {
	return &TemplateCache{
		templates: make(map[core.Identifier]core.TemplateCommand),
	}
}

// Define stores a defining command under its identifier. It reports false
// for template commands that define nothing.
func (c *TemplateCache) Define(t core.TemplateCommand) bool {
	id, ok := core.TemplateID(t)
	if !ok {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.templates[id] = t
	return true
}

// Undefine removes a template and reports whether it existed.
func (c *TemplateCache) Undefine(id core.Identifier) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.templates[id]
	delete(c.templates, id)
	return ok
}

// LookupTemplate satisfies parser.TemplateRegistry.
func (c *TemplateCache) LookupTemplate(id core.Identifier) (core.TemplateCommand, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.templates[id]
	return t, ok
}

// IDs returns the defined identifiers in sorted order.
func (c *TemplateCache) IDs() []core.Identifier {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedKeys(c.templates)
}

func (c *TemplateCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.templates)
}

func (c *TemplateCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.templates = make(map[core.Identifier]core.TemplateCommand)
}

func sortedKeys[V any](m map[core.Identifier]V) []core.Identifier {
	ids := make([]core.Identifier, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

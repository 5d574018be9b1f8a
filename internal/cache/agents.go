package cache

import (
	"sync"

	"github.com/carrierops/interpreter/pkg/core"
)

// AgentCache maps agent identifiers to the command that created them
type AgentCache struct {
	mu     sync.RWMutex
	agents map[core.Identifier]core.AgentCommand
}

// NewAgentCache creates a new AgentCache
func NewAgentCache() *AgentCache {
	return &AgentCache{
		agents: make(map[core.Identifier]core.AgentCommand),
	}
}

// Get retrieves the creating command by agent id
func (c *AgentCache) Get(id core.Identifier) (core.AgentCommand, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.agents[id]
	return a, ok
}

// Set stores the creating command under the agent id
func (c *AgentCache) Set(id core.Identifier, a core.AgentCommand) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.agents[id] = a
}

// Delete removes an agent by id
func (c *AgentCache) Delete(id core.Identifier) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.agents[id]
	delete(c.agents, id)
	return ok
}

// IDs returns every agent id in sorted order
func (c *AgentCache) IDs() []core.Identifier {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedKeys(c.agents)
}

// Len returns how many agents are currently created
func (c *AgentCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.agents)
}

// Reset clears all agents from the cache
func (c *AgentCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.agents = make(map[core.Identifier]core.AgentCommand)
}

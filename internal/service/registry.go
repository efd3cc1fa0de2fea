package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/GriffinCanCode/fileshell/internal/domain/session"
	"github.com/GriffinCanCode/fileshell/internal/shared/errs"
	"github.com/GriffinCanCode/fileshell/internal/shared/types"
)

// Provider interface for command implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, cmd types.Command, sess *session.Session) error
}

// Handler runs one parsed command
type Handler func(ctx context.Context, cmd types.Command, sess *session.Session) error

// Middleware wraps a handler; verb is the command being dispatched
type Middleware func(verb string, next Handler) Handler

type entry struct {
	provider Provider
	service  string
	tool     types.Tool
}

// Registry maps verbs to the providers that serve them
type Registry struct {
	mu         sync.RWMutex
	verbs      map[string]entry
	services   map[string]types.Service
	middleware []Middleware
}

// NewRegistry creates a new empty registry
func NewRegistry() *Registry {
	return &Registry{
		verbs:    make(map[string]entry),
		services: make(map[string]types.Service),
	}
}

// Register adds every verb of provider. Nothing is registered when the
// definition is invalid or a verb is already taken.
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.services[def.ID]; ok {
		return fmt.Errorf("service already registered: %s", def.ID)
	}
	seen := make(map[string]bool, len(def.Tools))
	for _, tool := range def.Tools {
		if tool.Verb == "" {
			return fmt.Errorf("service %s: tool verb cannot be empty", def.ID)
		}
		if existing, ok := r.verbs[tool.Verb]; ok {
			return fmt.Errorf("verb %q already registered by %s", tool.Verb, existing.service)
		}
		if seen[tool.Verb] {
			return fmt.Errorf("service %s: duplicate verb %q", def.ID, tool.Verb)
		}
		seen[tool.Verb] = true
	}

	for _, tool := range def.Tools {
		r.verbs[tool.Verb] = entry{provider: provider, service: def.ID, tool: tool}
	}
	r.services[def.ID] = def
	return nil
}

// Use appends middleware. The first registered middleware is outermost.
func (r *Registry) Use(mw ...Middleware) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.middleware = append(r.middleware, mw...)
}

// Lookup returns the tool registered for verb
func (r *Registry) Lookup(verb string) (types.Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.verbs[verb]
	return e.tool, ok
}

// List returns registered services, optionally filtered by category
func (r *Registry) List(category *types.Category) []types.Service {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var services []types.Service
	for _, def := range r.services {
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
	}
	sort.Slice(services, func(i, j int) bool {
		return services[i].ID < services[j].ID
	})
	return services
}

// Execute validates the operand count of cmd and runs it through the
// middleware chain.
func (r *Registry) Execute(ctx context.Context, cmd types.Command, sess *session.Session) error {
	r.mu.RLock()
	e, ok := r.verbs[cmd.Name]
	chain := make([]Middleware, len(r.middleware))
	copy(chain, r.middleware)
	r.mu.RUnlock()

	var h Handler
	if ok {
		h = validated(e)
	} else {
		h = func(context.Context, types.Command, *session.Session) error {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCommand, cmd.Name)
		}
	}

	verb := cmd.Name
	if !ok {
		verb = "unknown"
	}
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](verb, h)
	}
	return h(ctx, cmd, sess)
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make(map[string]int)
	for _, def := range r.services {
		categories[string(def.Category)]++
	}
	return map[string]interface{}{
		"total_services": len(r.services),
		"total_tools":    len(r.verbs),
		"categories":     categories,
	}
}

func validated(e entry) Handler {
	return func(ctx context.Context, cmd types.Command, sess *session.Session) error {
		if n := len(cmd.Args); n < e.tool.Required() {
			missing := e.tool.Parameters[n].Name
			return errs.Missing(cmd.Name, missing)
		}
		if len(cmd.Args) > e.tool.MaxArgs() {
			return fmt.Errorf("%w: %s takes at most %d operand(s), usage: %s",
				errs.ErrInvalidCommand, cmd.Name, e.tool.MaxArgs(), e.tool.Usage())
		}
		return e.provider.Execute(ctx, cmd, sess)
	}
}

// surface/surface.go
// Package surface maps logical, named output destinations to concrete
// draw targets. A surface is identified by a panel name and an optional
// tab group; resolving the same name/tab pair repeatedly yields the same
// target, so callers can re-render into it on every update.
package surface

import (
	"fmt"
	"strings"
	"sync"
)

// DefaultTab is the tab group used when a container does not name one.
const DefaultTab = "Visor"

// Container identifies where output should be drawn. Name is mandatory;
// Tab is optional and falls back to the manager's default tab.
type Container struct {
	Name string
	Tab  string
}

// ResolutionError reports that a container could not be mapped to a
// drawable region.
type ResolutionError struct {
	Container Container
	Reason    string
}

// Error returns the human-readable resolution failure message.
func (e *ResolutionError) Error() string {
	if e.Container.Name == "" {
		return fmt.Sprintf("surface resolution failed: %s", e.Reason)
	}
	return fmt.Sprintf("surface resolution failed for %q: %s", e.Container.Name, e.Reason)
}

// Target is an opaque handle to a physical region that accepts renderer
// output. Targets are created and owned by a Manager; renderers replace
// the content wholesale on each draw.
type Target struct {
	name string
	tab  string

	mu      sync.Mutex
	content string
}

// Name returns the panel name this target was resolved for.
func (t *Target) Name() string { return t.name }

// Tab returns the tab group this target belongs to.
func (t *Target) Tab() string { return t.tab }

// SetContent replaces the target's rendered content.
func (t *Target) SetContent(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.content = s
}

// Content returns the target's current rendered content.
func (t *Target) Content() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.content
}

// Manager owns the registry of surfaces. The zero value is not usable;
// create one with NewManager.
type Manager struct {
	defaultTab string

	mu       sync.Mutex
	targets  map[string]*Target
	tabOrder []string
	byTab    map[string][]*Target
}

// Option configures a Manager.
type Option func(*Manager)

// WithDefaultTab overrides the tab group used for containers that do not
// name one.
func WithDefaultTab(tab string) Option {
	return func(m *Manager) {
		if strings.TrimSpace(tab) != "" {
			m.defaultTab = tab
		}
	}
}

// NewManager creates an empty surface registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		defaultTab: DefaultTab,
		targets:    make(map[string]*Target),
		byTab:      make(map[string][]*Target),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// DefaultTab returns the tab group applied to containers without one.
func (m *Manager) DefaultTab() string {
	return m.defaultTab
}

// Resolve maps a container to its draw target, creating the tab and
// panel on first use. Resolution is idempotent: the same name/tab pair
// always yields the same target.
func (m *Manager) Resolve(container Container) (*Target, error) {
	if m == nil {
		return nil, &ResolutionError{Container: container, Reason: "no surface manager available"}
	}
	name := strings.TrimSpace(container.Name)
	if name == "" {
		return nil, &ResolutionError{Container: container, Reason: "container name is required"}
	}
	tab := strings.TrimSpace(container.Tab)
	if tab == "" {
		tab = m.defaultTab
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := tab + "\x00" + name
	if t, ok := m.targets[key]; ok {
		return t, nil
	}

	t := &Target{name: name, tab: tab}
	m.targets[key] = t
	if _, seen := m.byTab[tab]; !seen {
		m.tabOrder = append(m.tabOrder, tab)
	}
	m.byTab[tab] = append(m.byTab[tab], t)
	return t, nil
}

// Tabs returns the tab groups in creation order.
func (m *Manager) Tabs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.tabOrder))
	copy(out, m.tabOrder)
	return out
}

// TabTargets returns the targets of a tab in creation order, or nil if
// the tab does not exist.
func (m *Manager) TabTargets(tab string) []*Target {
	m.mu.Lock()
	defer m.mu.Unlock()
	targets := m.byTab[tab]
	out := make([]*Target, len(targets))
	copy(out, targets)
	return out
}

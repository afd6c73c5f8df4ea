// Package assets provides the pool of pre-loaded drawable templates. The
// simulation copies a template into each entity it creates and never loads
// anything itself.
package assets

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/vovakirdan/tidepool/internal/config"
	"github.com/vovakirdan/tidepool/internal/core"
)

// ErrNotFound is returned when a template key is not registered.
var ErrNotFound = errors.New("assets: template not found")

// Template is a drawable handle keyed by a string identifier.
type Template struct {
	Key   string
	Glyph rune
	Color core.Color
	Scale float64
}

// Pool is a concurrency-safe template registry.
type Pool struct {
	mu        sync.RWMutex
	templates map[string]Template
}

// NewPool creates an empty pool.
func NewPool() *Pool {
	return &Pool{templates: make(map[string]Template)}
}

// FromConfig builds a pool from the models section of the config.
func FromConfig(models map[string]config.ModelConfig) (*Pool, error) {
	p := NewPool()
	for key, m := range models {
		glyph, _ := utf8.DecodeRuneInString(m.Glyph)
		if utf8.RuneCountInString(m.Glyph) != 1 || glyph == utf8.RuneError {
			return nil, fmt.Errorf("assets: model %q: glyph %q is not a single character", key, m.Glyph)
		}
		color, ok := core.ParseColor(m.Color)
		if !ok {
			return nil, fmt.Errorf("assets: model %q: unknown color %q", key, m.Color)
		}
		scale := m.Scale
		if scale <= 0 {
			scale = 1
		}
		if err := p.Register(Template{Key: key, Glyph: glyph, Color: color, Scale: scale}); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Register adds a template. Registering the same key twice is an error.
func (p *Pool) Register(t Template) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.templates[t.Key]; exists {
		return fmt.Errorf("assets: template %q already registered", t.Key)
	}
	p.templates[t.Key] = t
	return nil
}

// Template returns a copy of the template registered under key.
func (p *Pool) Template(key string) (Template, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	t, ok := p.templates[key]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return t, nil
}

// Keys returns all registered keys in sorted order.
func (p *Pool) Keys() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	keys := make([]string, 0, len(p.templates))
	for k := range p.templates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package prompt

import (
	"fmt"
	"os"
	"sync"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"gopkg.in/yaml.v3"
)

// Library is a named set of templates, seeded with the built-ins.
type Library struct {
	mu        sync.RWMutex
	templates map[string]*Template
}

type libraryFile struct {
	Templates []Template `yaml:"templates"`
}

func NewLibrary() *Library {
	l := &Library{templates: make(map[string]*Template)}
	for i := range builtins {
		t := builtins[i]
		l.templates[t.Name] = &t
	}
	return l
}

// Register adds t. Registering an existing name replaces it.
func (l *Library) Register(t Template) error {
	if err := t.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.templates[t.Name] = &t
	return nil
}

func (l *Library) Get(name string) (*Template, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	t, ok := l.templates[name]
	if !ok {
		return nil, apperr.NewNotFound("template", name)
	}
	return t, nil
}

func (l *Library) Render(name string, params Params) (string, error) {
	t, err := l.Get(name)
	if err != nil {
		return "", err
	}
	return t.Render(params)
}

// List returns every template sorted by name.
func (l *Library) List() []Template {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Template, 0, len(l.templates))
	for _, name := range sortedKeys(l.templates) {
		out = append(out, *l.templates[name])
	}
	return out
}

func (l *Library) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read template library: %w", err)
	}
	return l.Load(data)
}

// Load registers every template of a YAML document:
//
//	templates:
//	  - name: review
//	    text: "Review {code}"
func (l *Library) Load(data []byte) error {
	var f libraryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse template library YAML: %w", err)
	}
	if len(f.Templates) == 0 {
		return fmt.Errorf("template library has no templates")
	}

	for i, t := range f.Templates {
		if t.Name == "" {
			return fmt.Errorf("template at index %d has no name", i)
		}
		if err := l.Register(t); err != nil {
			return err
		}
	}
	return nil
}

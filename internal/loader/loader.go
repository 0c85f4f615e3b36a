// Package loader turns YAML entity manifests into live world entities. The
// CPU-bound part, expanding per-entity templates against component
// defaults, runs on a worker pool; entity creation itself stays on the
// calling goroutine because the world is single-threaded.
package loader

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/mlange-42/ark/ecs"
	"github.com/panjf2000/ants/v2"

	"rpgkit/component"
	"rpgkit/internal/logger"
)

// Loader creates entities from manifests through a component manager.
type Loader struct {
	comps *component.Manager
	log   logger.Logger

	// Workers sizes the expansion pool.
	Workers int
}

// New creates a loader over a component manager. Every component named in
// a manifest must already be registered there.
func New(comps *component.Manager, log logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{comps: comps, log: log, Workers: 4}
}

// LoadFile parses a manifest file and creates its entities in w.
func (l *Loader) LoadFile(w *ecs.World, path string) (*Index, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("manifest %q: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	m, err := ParseManifest(bufio.NewReaderSize(file, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("manifest %q: %w", path, err)
	}
	return l.Load(w, m)
}

// Load creates the manifest's entities in w and returns the identifier
// index. Entities without an identifier get a generated one. The world is
// only touched after every definition expanded cleanly, so a bad manifest
// creates nothing.
func (l *Loader) Load(w *ecs.World, m Manifest) (*Index, error) {
	defs := make([]EntityDef, len(m.Entities))
	seen := map[string]struct{}{}
	for i, def := range m.Entities {
		merged, err := mergeTemplate(m, def)
		if err != nil {
			return nil, err
		}
		if merged.Identifier == "" {
			merged.Identifier = uuid.NewString()
		}
		if _, dup := seen[merged.Identifier]; dup {
			return nil, fmt.Errorf("manifest: duplicate identifier %q", merged.Identifier)
		}
		seen[merged.Identifier] = struct{}{}
		defs[i] = merged
	}

	tmpls, err := l.expandAll(defs)
	if err != nil {
		return nil, err
	}

	idx := NewIndex()
	for i, def := range defs {
		e := w.NewEntity()
		if err := l.bind(e, tmpls[i]); err != nil {
			return idx, fmt.Errorf("entity %q: %w", def.Identifier, err)
		}
		if err := idx.Add(def.Identifier, e); err != nil {
			return idx, err
		}
	}
	l.log.Info("entities loaded", logger.Int("count", idx.Len()))
	return idx, nil
}

// expandAll runs template expansion on an ants pool. Expansion only reads
// the component registry, so it is safe to parallelize as long as nothing
// registers components concurrently.
func (l *Loader) expandAll(defs []EntityDef) ([]component.Template, error) {
	pool, err := ants.NewPool(l.Workers, ants.WithPreAlloc(true))
	if err != nil {
		return nil, fmt.Errorf("expansion pool: %w", err)
	}
	defer pool.Release()

	tmpls := make([]component.Template, len(defs))
	errs := make([]error, len(defs))
	var wg sync.WaitGroup
	for i, def := range defs {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			tmpls[i], errs[i] = l.expand(def)
		}
		if err := pool.Submit(task); err != nil {
			// Pool refused the task; run it inline instead of losing it.
			task()
		}
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("entity %q: %w", defs[i].Identifier, err)
		}
	}
	return tmpls, nil
}

// expand overlays the definition's data onto component defaults. The
// general component is always present so every entity carries its
// identifier.
func (l *Loader) expand(def EntityDef) (component.Template, error) {
	tmpl := component.Template{}
	general := component.Record{"identifier": def.Identifier}
	for k, v := range def.Components["general"] {
		if k != "identifier" {
			general[k] = v
		}
	}
	tmpl, err := l.comps.Setup("general", general, tmpl)
	if err != nil {
		return nil, err
	}
	for name, data := range def.Components {
		if name == "general" {
			continue
		}
		tmpl, err = l.comps.Setup(name, data, tmpl)
		if err != nil {
			return nil, err
		}
	}
	return tmpl, nil
}

// bind writes an expanded template into a live entity, component by
// component in registration order so runs are deterministic.
func (l *Loader) bind(e ecs.Entity, tmpl component.Template) error {
	for _, name := range l.comps.Names() {
		rec, ok := tmpl[name]
		if !ok {
			continue
		}
		t, err := l.comps.Lookup(name)
		if err != nil {
			return err
		}
		b, ok := t.(component.Binder)
		if !ok {
			return fmt.Errorf("component %q cannot bind entities", name)
		}
		if err := b.Bind(e, rec); err != nil {
			return fmt.Errorf("component %q: %w", name, err)
		}
	}
	return nil
}

// mergeTemplate overlays def onto its base template, field by field within
// each component record.
func mergeTemplate(m Manifest, def EntityDef) (EntityDef, error) {
	if def.Template == "" {
		return def, nil
	}
	base, ok := m.Templates[def.Template]
	if !ok {
		return def, fmt.Errorf("manifest: unknown template %q", def.Template)
	}
	merged := EntityDef{
		Identifier: def.Identifier,
		Components: map[string]component.Record{},
	}
	for name, rec := range base.Components {
		merged.Components[name] = rec.Copy()
	}
	for name, rec := range def.Components {
		dst, ok := merged.Components[name]
		if !ok {
			merged.Components[name] = rec.Copy()
			continue
		}
		for k, v := range rec {
			dst[k] = v
		}
	}
	return merged, nil
}

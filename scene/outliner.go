package scene

// Outliner highlights instances under the cursor.
type Outliner interface {
	Outline(inst Instance)
	Clear()
}

// SimpleOutliner draws a fixed-style outline around every instance except
// those on its ignore list.
type SimpleOutliner struct {
	renderer Renderer
	style    Outline
	ignore   map[string]struct{}
}

// NewSimpleOutliner creates an outliner drawing through renderer. ignore
// lists instance identifiers that never get outlined, typically the player.
func NewSimpleOutliner(renderer Renderer, style Outline, ignore []string) *SimpleOutliner {
	ig := make(map[string]struct{}, len(ignore))
	for _, id := range ignore {
		ig[id] = struct{}{}
	}
	return &SimpleOutliner{renderer: renderer, style: style, ignore: ig}
}

// Outline highlights inst unless it is ignored.
func (o *SimpleOutliner) Outline(inst Instance) {
	if _, skip := o.ignore[inst.Identifier()]; skip {
		return
	}
	o.renderer.AddOutline(inst, o.style)
}

// Clear removes every outline.
func (o *SimpleOutliner) Clear() {
	o.renderer.RemoveAllOutlines()
}

// AddIgnored excludes an identifier from outlining.
func (o *SimpleOutliner) AddIgnored(identifier string) {
	o.ignore[identifier] = struct{}{}
}

// RemoveIgnored makes an identifier outlinable again.
func (o *SimpleOutliner) RemoveIgnored(identifier string) {
	delete(o.ignore, identifier)
}

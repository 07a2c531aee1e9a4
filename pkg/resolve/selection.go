package resolve

import "strings"

// SelectionKind tags the Selection union.
type SelectionKind int

const (
	SelectionNone SelectionKind = iota
	SelectionPage
	SelectionComponent
	SelectionOther
)

func (k SelectionKind) String() string {
	switch k {
	case SelectionPage:
		return "page"
	case SelectionComponent:
		return "component"
	case SelectionOther:
		return "other"
	default:
		return "none"
	}
}

// Selection is what the user currently has selected in the editor. It is a
// closed union: build one with NoSelection, PageSelection, ComponentSelection
// or OtherSelection and switch on Kind.
type Selection struct {
	kind          SelectionKind
	id            string
	componentKind string
	name          string
}

// NoSelection is the zero Selection.
func NoSelection() Selection { return Selection{} }

// PageSelection selects a whole page.
func PageSelection(id string) Selection {
	return Selection{kind: SelectionPage, id: id}
}

// ComponentSelection selects one component instance by id and kind
// ("button", "card", ...).
func ComponentSelection(id, componentKind, name string) Selection {
	return Selection{
		kind:          SelectionComponent,
		id:            id,
		componentKind: strings.ToLower(strings.TrimSpace(componentKind)),
		name:          name,
	}
}

// OtherSelection covers selections with no styling meaning (data models,
// flows). They resolve like no selection.
func OtherSelection(id, name string) Selection {
	return Selection{kind: SelectionOther, id: id, name: name}
}

func (s Selection) Kind() SelectionKind { return s.kind }
func (s Selection) ID() string { return s.id }
func (s Selection) ComponentKind() string { return s.componentKind }
func (s Selection) Name() string { return s.name }

// SelectionContext is the loosely typed selection descriptor sent by callers
// (JSON from the MCP surface, flags from the CLI).
type SelectionContext struct {
	Kind          string `json:"kind,omitempty" yaml:"kind,omitempty"`
	ID            string `json:"id,omitempty" yaml:"id,omitempty"`
	ComponentKind string `json:"componentKind,omitempty" yaml:"componentKind,omitempty"`
	Name          string `json:"name,omitempty" yaml:"name,omitempty"`
}

// FromContext converts a descriptor into a Selection. A nil or empty
// descriptor is NoSelection; a component without a kind falls back to its
// name as the kind.
func FromContext(c *SelectionContext) Selection {
	if c == nil {
		return NoSelection()
	}
	switch strings.ToLower(strings.TrimSpace(c.Kind)) {
	case "page":
		return PageSelection(c.ID)
	case "component":
		kind := c.ComponentKind
		if kind == "" {
			kind = c.Name
		}
		return ComponentSelection(c.ID, kind, c.Name)
	case "":
		return NoSelection()
	default:
		// dataModel, flow and anything newer
		return OtherSelection(c.ID, c.Name)
	}
}

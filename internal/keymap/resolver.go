package keymap

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

// Resolver maps key strings to actions.
type Resolver struct {
	actions map[string]Action
	keys    map[Action][]string
}

// NewResolver indexes bindings. A key bound twice resolves to the last binding.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.actions[key] = b.Action
		}
		r.keys[b.Action] = lo.Uniq(append(r.keys[b.Action], b.Keys...))
	}
	return r
}

// Resolve returns the action for a key, or "" if unbound.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// ResolveMsg resolves a key press.
func (r *Resolver) ResolveMsg(msg tea.KeyMsg) Action {
	return r.actions[msg.String()]
}

// KeysFor returns the keys bound to action, in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keys[action]
}

// HintItem is one entry of a one-line key hint.
type HintItem struct {
	Action Action
	Label  string
}

// Hint renders "key label" pairs using the first key bound to each action.
// Unbound actions are skipped.
func (r *Resolver) Hint(items ...HintItem) string {
	parts := lo.FilterMap(items, func(it HintItem, _ int) (string, bool) {
		keys := r.keys[it.Action]
		if len(keys) == 0 {
			return "", false
		}
		return DisplayKey(keys[0]) + " " + it.Label, true
	})
	return strings.Join(parts, "  ")
}

package keymap

import (
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/andyrewlee/qraw/internal/config"
)

// Action identifies a configurable keybinding.
type Action string

const (
	ActionQuit   Action = "quit"
	ActionExport Action = "export"
	ActionClear  Action = "clear"
	ActionCopy   Action = "copy"
	ActionHelp   Action = "help"
)

type bindingDef struct {
	action Action
	keys   []string
	desc   string
}

// KeyMap defines all keybindings for the application.
type KeyMap struct {
	Quit   key.Binding
	Export key.Binding
	Clear  key.Binding
	Copy   key.Binding
	Help   key.Binding
}

var defaults = []bindingDef{
	{action: ActionQuit, keys: []string{"q", "esc"}, desc: "quit"},
	{action: ActionExport, keys: []string{"s"}, desc: "save"},
	{action: ActionClear, keys: []string{"c"}, desc: "clear"},
	{action: ActionCopy, keys: []string{"y"}, desc: "copy"},
	{action: ActionHelp, keys: []string{"?"}, desc: "help"},
}

// New builds a keymap from defaults, applying any user overrides.
func New(cfg config.KeyMapConfig) KeyMap {
	bindings := make(map[Action]key.Binding, len(defaults))
	for _, def := range defaults {
		bindings[def.action] = bindingFromDef(cfg, def)
	}
	return KeyMap{
		Quit:   bindings[ActionQuit],
		Export: bindings[ActionExport],
		Clear:  bindings[ActionClear],
		Copy:   bindings[ActionCopy],
		Help:   bindings[ActionHelp],
	}
}

func bindingFromDef(cfg config.KeyMapConfig, def bindingDef) key.Binding {
	keys, ok := cfg.BindingFor(string(def.action))
	if !ok {
		keys = def.keys
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), def.desc),
	)
}

// Bindings returns the bindings in display order.
func (k KeyMap) Bindings() []key.Binding {
	return []key.Binding{k.Export, k.Clear, k.Copy, k.Help, k.Quit}
}

// PrimaryKey returns the first key in the binding, if present.
func PrimaryKey(binding key.Binding) string {
	keys := binding.Keys()
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

// HelpLine renders "<key> desc" pairs for every binding, e.g.
// "<s> save  <c> clear  <q/esc> quit".
func (k KeyMap) HelpLine() string {
	var parts []string
	for _, b := range k.Bindings() {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, "<"+h.Key+"> "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

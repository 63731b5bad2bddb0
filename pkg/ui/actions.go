// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tably

package ui

import (
	"sync"

	"github.com/derailed/tcell/v2"
)

// Defines printable digit key bindings.
const (
	Key0 tcell.Key = iota + 48
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

// Defines printable letter key bindings.
const (
	KeyQ tcell.Key = 113
	KeyR tcell.Key = 114
)

// ActionHandler handles a keyboard command.
type ActionHandler func(*tcell.EventKey) *tcell.EventKey

// KeyAction represents a keyboard action.
type KeyAction struct {
	Description string
	Action      ActionHandler
	Visible     bool
}

// NewKeyAction returns a new keyboard action.
func NewKeyAction(d string, a ActionHandler, visible bool) KeyAction {
	return KeyAction{Description: d, Action: a, Visible: visible}
}

// KeyMap tracks key to action mappings.
type KeyMap map[tcell.Key]KeyAction

// KeyActions tracks mappings between keystrokes and actions.
type KeyActions struct {
	actions KeyMap
	mx      sync.RWMutex
}

// NewKeyActions returns a new instance.
func NewKeyActions() *KeyActions {
	return &KeyActions{actions: make(KeyMap)}
}

// Get fetches an action for a given key.
func (a *KeyActions) Get(key tcell.Key) (KeyAction, bool) {
	a.mx.RLock()
	defer a.mx.RUnlock()

	v, ok := a.actions[key]
	return v, ok
}

// Add adds a new key action.
func (a *KeyActions) Add(key tcell.Key, action KeyAction) {
	a.mx.Lock()
	defer a.mx.Unlock()

	a.actions[key] = action
}

// Bulk adds a set of key actions.
func (a *KeyActions) Bulk(kk KeyMap) {
	a.mx.Lock()
	defer a.mx.Unlock()

	for k, v := range kk {
		a.actions[k] = v
	}
}

// Delete removes actions by key.
func (a *KeyActions) Delete(kk ...tcell.Key) {
	a.mx.Lock()
	defer a.mx.Unlock()

	for _, k := range kk {
		delete(a.actions, k)
	}
}

// Clear removes all actions.
func (a *KeyActions) Clear() {
	a.mx.Lock()
	defer a.mx.Unlock()

	for k := range a.actions {
		delete(a.actions, k)
	}
}

// Len returns the number of bindings.
func (a *KeyActions) Len() int {
	a.mx.RLock()
	defer a.mx.RUnlock()

	return len(a.actions)
}

// Hints returns menu hints for the visible bindings.
func (a *KeyActions) Hints() MenuHints {
	a.mx.RLock()
	defer a.mx.RUnlock()

	hh := make(MenuHints, 0, len(a.actions))
	for k, action := range a.actions {
		if !action.Visible {
			continue
		}
		hh = append(hh, MenuHint{
			Mnemonic:    keyName(k),
			Description: action.Description,
			Visible:     true,
		})
	}

	return hh
}

func keyName(k tcell.Key) string {
	if name, ok := tcell.KeyNames[k]; ok {
		return name
	}
	return string(rune(k))
}

package app

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/treykane/photo-settings/internal/config"
)

// Actions are the layer between key presses and behaviour: a key is looked
// up in keyToAction and the resulting action is dispatched by
// handleBrowseAction. Users rebind actions through the "keybindings" object
// in config.json or a keymap file (default ~/.photo-settings/keymap.json).
const (
	actionSectionNext     = "section.next"
	actionSectionPrev     = "section.prev"
	actionSectionAperture = "section.aperture"
	actionSectionShutter  = "section.shutter"
	actionSectionScenes   = "section.scenes"

	// actionLanguageToggle switches between Italian and English.
	actionLanguageToggle = "language.toggle"

	actionScrollUp   = "cards.scroll.up"
	actionScrollDown = "cards.scroll.down"
	actionPageUp     = "cards.scroll.page_up"
	actionPageDown   = "cards.scroll.page_down"
	actionJumpTop    = "cards.jump.top"
	actionJumpBottom = "cards.jump.bottom"

	// actionFilter opens the filter input; actionFilterClear drops an
	// applied filter from browse mode.
	actionFilter      = "cards.filter"
	actionFilterClear = "cards.filter.clear"

	actionHelp = "help.toggle"
	actionQuit = "app.quit"
)

// defaultActionKeys maps each action to its factory-default keys, in Bubble
// Tea notation ("ctrl+", "shift+", "enter", "pgup", single characters).
var defaultActionKeys = map[string][]string{
	actionSectionNext:     {"right", "l", "tab"},
	actionSectionPrev:     {"left", "h", "shift+tab"},
	actionSectionAperture: {"1"},
	actionSectionShutter:  {"2"},
	actionSectionScenes:   {"3"},
	actionLanguageToggle:  {"t"},
	actionScrollUp:        {"up", "k"},
	actionScrollDown:      {"down", "j"},
	actionPageUp:          {"pgup", "ctrl+u"},
	actionPageDown:        {"pgdown", "ctrl+d"},
	actionJumpTop:         {"g", "home"},
	actionJumpBottom:      {"shift+g", "end"},
	actionFilter:          {"/"},
	actionFilterClear:     {"esc"},
	actionHelp:            {"?"},
	actionQuit:            {"q", "ctrl+c"},
}

// loadKeybindings builds the key↔action maps from, in increasing priority:
// defaultActionKeys, cfg.Keybindings, and the keymap file at
// cfg.KeymapFile. An override replaces the action's whole default key set.
func (m *Model) loadKeybindings(cfg config.Config) error {
	m.keyForAction = map[string][]string{}
	for action, keys := range defaultActionKeys {
		m.keyForAction[action] = append([]string(nil), keys...)
	}

	for action, key := range cfg.Keybindings {
		m.applyKeybindingOverride(action, key)
	}
	overrides, err := loadKeymapFile(cfg.KeymapFile)
	for action, key := range overrides {
		m.applyKeybindingOverride(action, key)
	}

	m.rebuildActionKeyIndex()
	return err
}

// loadKeymapFile reads a flat JSON object of action → key from path. A
// missing file yields no overrides and no error.
func loadKeymapFile(path string) (map[string]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read keymap %s: %w", path, err)
	}
	overrides := map[string]string{}
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse keymap %s: %w", path, err)
	}
	return overrides, nil
}

func (m *Model) applyKeybindingOverride(action, key string) {
	action = strings.TrimSpace(action)
	key = normalizeKeyString(key)
	if action == "" || key == "" {
		return
	}
	if _, ok := defaultActionKeys[action]; !ok {
		appLog.Warn("ignore unknown keybinding action", "action", action)
		return
	}
	m.keyForAction[action] = []string{key}
}

// rebuildActionKeyIndex rebuilds keyToAction. When two actions claim the
// same key, the action that sorts first keeps it and the conflict is logged.
func (m *Model) rebuildActionKeyIndex() {
	actions := make([]string, 0, len(m.keyForAction))
	for action := range m.keyForAction {
		actions = append(actions, action)
	}
	slices.Sort(actions)

	m.keyToAction = map[string]string{}
	for _, action := range actions {
		for _, key := range m.keyForAction[action] {
			if key == "" {
				continue
			}
			if existing, ok := m.keyToAction[key]; ok && existing != action {
				appLog.Warn("keybinding conflict ignored", "key", key, "action", action, "existing_action", existing)
				continue
			}
			m.keyToAction[key] = action
		}
	}
}

// normalizeKeyString lowercases a key and turns a lone upper-case letter
// into its "shift+" form, so "Y" and "shift+y" bind the same key.
//
//	normalizeKeyString("Ctrl+U") → "ctrl+u"
//	normalizeKeyString(" G ")    → "shift+g"
func normalizeKeyString(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if len([]rune(key)) == 1 && strings.ToUpper(key) == key && strings.ToLower(key) != key {
		return "shift+" + strings.ToLower(key)
	}
	return strings.ToLower(key)
}

// actionForKey returns the action bound to key, or "".
func (m *Model) actionForKey(key string) string {
	if m.keyToAction == nil {
		return ""
	}
	return m.keyToAction[normalizeKeyString(key)]
}

func (m *Model) actionKeyLabels(action string) []string {
	keys, ok := m.keyForAction[action]
	if !ok || len(keys) == 0 {
		return nil
	}
	labels := make([]string, 0, len(keys))
	for _, key := range keys {
		label := humanizeKeyLabel(key)
		if label == "" || slices.Contains(labels, label) {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}

func (m *Model) primaryActionKey(action, fallback string) string {
	keys := m.actionKeyLabels(action)
	if len(keys) == 0 {
		return fallback
	}
	return keys[0]
}

var specialKeyLabels = map[string]string{
	"up":     "↑",
	"down":   "↓",
	"left":   "←",
	"right":  "→",
	"enter":  "Enter",
	"esc":    "Esc",
	"tab":    "Tab",
	"home":   "Home",
	"end":    "End",
	"pgup":   "PgUp",
	"pgdown": "PgDn",
	"space":  "Space",
}

func humanizeKeyLabel(key string) string {
	normalized := normalizeKeyString(key)
	if normalized == "" {
		return ""
	}
	parts := strings.Split(normalized, "+")
	for i, part := range parts {
		switch part {
		case "ctrl":
			parts[i] = "Ctrl"
		case "alt":
			parts[i] = "Alt"
		case "shift":
			parts[i] = "Shift"
		default:
			if label, ok := specialKeyLabels[part]; ok {
				parts[i] = label
				continue
			}
			if part == "" {
				parts[i] = "+"
				continue
			}
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, "+")
}

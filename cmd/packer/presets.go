package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
)

// Preset is a named, reusable pack template.
type Preset struct {
	Name        string `toml:"-"`
	Template    string `toml:"template"`
	Description string `toml:"description"`
}

// PresetSet holds the presets available to one invocation: the built-in
// defaults, overlaid by any file the user supplied.
type PresetSet struct {
	presets map[string]Preset
}

type presetsFile struct {
	Preset map[string]Preset `toml:"preset"`
}

// defaultPresets cover common wire layouts so the tool is useful without a
// config file.
var defaultPresets = map[string]Preset{
	"u16be":  {Template: "n*", Description: "16-bit big-endian integers"},
	"u16le":  {Template: "v*", Description: "16-bit little-endian integers"},
	"u32be":  {Template: "N*", Description: "32-bit big-endian integers"},
	"u32le":  {Template: "V*", Description: "32-bit little-endian integers"},
	"bytes":  {Template: "C*", Description: "raw unsigned bytes"},
	"hex":    {Template: "H*", Description: "hex digit string"},
	"base64": {Template: "m", Description: "base64 text"},
	"cstr":   {Template: "Z*", Description: "NUL-terminated string"},
	"utf8":   {Template: "U*", Description: "UTF-8 codepoints"},
}

// loadPresets returns the defaults, merged with the TOML file at path when
// one is given. File entries shadow defaults of the same name.
func loadPresets(path string) (*PresetSet, error) {
	set := &PresetSet{presets: make(map[string]Preset, len(defaultPresets))}
	for name, p := range defaultPresets {
		p.Name = name
		set.presets[name] = p
	}

	if path == "" {
		return set, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	var file presetsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	for name, p := range file.Preset {
		if p.Template == "" {
			return nil, fmt.Errorf("preset %q has no template", name)
		}
		p.Name = name
		set.presets[name] = p
	}
	return set, nil
}

// Lookup returns the preset with the given name.
func (s *PresetSet) Lookup(name string) (Preset, bool) {
	p, ok := s.presets[name]
	return p, ok
}

// Sorted returns all presets in name order.
func (s *PresetSet) Sorted() []Preset {
	out := make([]Preset, 0, len(s.presets))
	for _, p := range s.presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

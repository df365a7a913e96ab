package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPresetsDefaults(t *testing.T) {
	set, err := loadPresets("")
	if err != nil {
		t.Fatalf("loadPresets returned error: %v", err)
	}

	p, ok := set.Lookup("u32be")
	if !ok {
		t.Fatal("default preset u32be missing")
	}
	if p.Template != "N*" {
		t.Errorf("u32be template = %q, want N*", p.Template)
	}
}

func TestLoadPresetsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	content := `
[preset.header]
template = "N n C2"
description = "message header"

[preset.u32be]
template = "L>"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := loadPresets(path)
	if err != nil {
		t.Fatalf("loadPresets returned error: %v", err)
	}

	p, ok := set.Lookup("header")
	if !ok {
		t.Fatal("file preset header missing")
	}
	if p.Template != "N n C2" || p.Description != "message header" {
		t.Errorf("header = %+v, want template and description from file", p)
	}

	// File entries shadow defaults of the same name.
	p, _ = set.Lookup("u32be")
	if p.Template != "L>" {
		t.Errorf("u32be template = %q, want file override L>", p.Template)
	}

	// Defaults without overrides survive the merge.
	if _, ok := set.Lookup("cstr"); !ok {
		t.Error("default preset cstr lost during merge")
	}
}

func TestLoadPresetsRejectsEmptyTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	if err := os.WriteFile(path, []byte("[preset.bad]\ndescription = \"no template\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadPresets(path); err == nil {
		t.Error("loadPresets accepted a preset without a template")
	}
}

func TestPresetSetSorted(t *testing.T) {
	set, err := loadPresets("")
	if err != nil {
		t.Fatalf("loadPresets returned error: %v", err)
	}

	sorted := set.Sorted()
	if len(sorted) != len(defaultPresets) {
		t.Fatalf("Sorted returned %d presets, want %d", len(sorted), len(defaultPresets))
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Name >= sorted[i].Name {
			t.Fatalf("Sorted order broken at %d: %s >= %s", i, sorted[i-1].Name, sorted[i].Name)
		}
	}
}

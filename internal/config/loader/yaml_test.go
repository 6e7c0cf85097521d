package loader

import (
	"errors"
	"strings"
	"testing"
)

func TestYAMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.yaml", `
editor:
  tabSize: 8
scroll:
  yMultiplier: 3
  invertX: true
script:
  init: ~/.config/keyline/init.lua
`)

	config, err := NewYAMLLoaderWithFS(memfs, "/config.yaml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if v, _ := getByPath(config, "editor.tabSize"); v != int64(8) {
		t.Errorf("editor.tabSize = %v (%T), want int64 8", v, v)
	}
	if v, _ := getByPath(config, "scroll.yMultiplier"); v != int64(3) {
		t.Errorf("scroll.yMultiplier = %v (%T), want int64 3", v, v)
	}
	if v, _ := getByPath(config, "scroll.invertX"); v != true {
		t.Errorf("scroll.invertX = %v, want true", v)
	}
	if v, _ := getByPath(config, "script.init"); v != "~/.config/keyline/init.lua" {
		t.Errorf("script.init = %v", v)
	}
}

func TestYAMLLoader_ParseError(t *testing.T) {
	_, err := NewYAMLLoader("").LoadFromReader(strings.NewReader("editor: [unclosed\n"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if pe.Path != "<reader>" {
		t.Errorf("Path = %q, want <reader>", pe.Path)
	}
}

func TestYAMLLoader_MissingFile(t *testing.T) {
	config, err := NewYAMLLoaderWithFS(NewMemFS(), "/nope.yml").Load()
	if err != nil || config != nil {
		t.Errorf("Load = %v, %v; want nil, nil", config, err)
	}
}

package proj

import (
	"path/filepath"
	"testing"

	"gradc/common"
)

func TestInitAndLoadManifest(t *testing.T) {
	dir := t.TempDir()

	if err := InitManifest("demo", dir, true); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	m, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if m.Name != "demo" {
		t.Fatalf("manifest name = %q", m.Name)
	}

	if !m.ShouldCache {
		t.Fatal("caching flag not preserved")
	}

	wantInput := filepath.Join(dir, "demo"+common.SASTFileExt)
	if m.InputPath != wantInput {
		t.Fatalf("input path = %q, want %q", m.InputPath, wantInput)
	}

	wantOutput := filepath.Join(dir, "demo"+common.TargetFileExt)
	if m.OutputPath != wantOutput {
		t.Fatalf("output path = %q, want %q", m.OutputPath, wantOutput)
	}

	wantCache := filepath.Join(dir, common.CacheDirName, common.CacheFileName)
	if m.CachePath() != wantCache {
		t.Fatalf("cache path = %q, want %q", m.CachePath(), wantCache)
	}
}

func TestInitManifestRefusesToClobber(t *testing.T) {
	dir := t.TempDir()

	if err := InitManifest("demo", dir, false); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if err := InitManifest("demo", dir, false); err == nil {
		t.Fatal("expected an error re-initializing an existing project")
	}
}

func TestInitManifestValidatesName(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"", "9lives", "has space", "has-dash"} {
		if err := InitManifest(name, dir, false); err == nil {
			t.Fatalf("expected an error for project name %q", name)
		}
	}
}

func TestLoadManifestMissing(t *testing.T) {
	if _, err := LoadManifest(t.TempDir()); err == nil {
		t.Fatal("expected an error for a missing manifest")
	}
}

func TestIsValidIdentifier(t *testing.T) {
	cases := map[string]bool{
		"demo":   true,
		"_demo":  true,
		"demo9":  true,
		"":       false,
		"9demo":  false,
		"a b":    false,
		"kebab-": false,
	}

	for name, want := range cases {
		if got := IsValidIdentifier(name); got != want {
			t.Errorf("IsValidIdentifier(%q) = %v, want %v", name, got, want)
		}
	}
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ddushkinn/mkvsynth/internal/ast"
	"github.com/ddushkinn/mkvsynth/internal/config"
	"github.com/ddushkinn/mkvsynth/internal/interp"
	"github.com/ddushkinn/mkvsynth/internal/token"
)

func assignViaInterp(target, value *ast.Node) {
	interp.Assign(target, token.ASSIGN, value)
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "mkvsynth.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadParsesFlatYAMLDocument(t *testing.T) {
	path := writeTempConfig(t, "crf: 18\npreset: \"fast\"\nverbose: true\n")
	d, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(d))
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := config.Load("/no/such/file.yaml"); err == nil {
		t.Fatal("expected an error loading a nonexistent config file")
	}
}

func TestLoadInvalidYAMLFails(t *testing.T) {
	path := writeTempConfig(t, "crf: [this is not: valid\n")
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected an error parsing invalid YAML")
	}
}

func TestApplyDefinesEachEntryAsGlobalVar(t *testing.T) {
	env := interp.NewGlobalEnvironment()
	d := config.Defaults{
		"crf":     18,
		"preset":  "fast",
		"verbose": true,
	}
	if err := d.Apply(env, assignViaInterp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	crf := env.GetVar("crf")
	if crf == nil || crf.VarVal.Value == nil || crf.VarVal.Value.NumVal != 18 {
		t.Fatalf("expected crf=18, got %v", crf)
	}
	preset := env.GetVar("preset")
	if preset == nil || preset.VarVal.Value == nil || preset.VarVal.Value.StrVal != "fast" {
		t.Fatalf("expected preset=\"fast\", got %v", preset)
	}
	verbose := env.GetVar("verbose")
	if verbose == nil || verbose.VarVal.Value == nil || verbose.VarVal.Value.BoolVal != true {
		t.Fatalf("expected verbose=true, got %v", verbose)
	}
}

func TestApplyRejectsUnsupportedNestedValue(t *testing.T) {
	env := interp.NewGlobalEnvironment()
	d := config.Defaults{
		"nested": map[string]any{"a": 1},
	}
	if err := d.Apply(env, assignViaInterp); err == nil {
		t.Fatal("expected Apply to reject a nested map value")
	}
}

func TestApplyRejectsUnsupportedListValue(t *testing.T) {
	env := interp.NewGlobalEnvironment()
	d := config.Defaults{
		"list": []any{1, 2, 3},
	}
	if err := d.Apply(env, assignViaInterp); err == nil {
		t.Fatal("expected Apply to reject a list value")
	}
}

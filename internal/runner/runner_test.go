package runner_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/ddushkinn/mkvsynth/internal/runner"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything written to it — mirrors internal/interp/builtins' helper of
// the same name, duplicated here rather than exported across packages
// just for tests.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	w.Close()
	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func runScript(t *testing.T, src string) string {
	t.Helper()
	env := runner.NewEnvironment()
	var out string
	out = captureStdout(t, func() {
		if err := runner.Run(env, src); err != nil {
			t.Fatalf("unexpected error running script: %v", err)
		}
	})
	return out
}

func TestEndToEndArithmeticAndPrint(t *testing.T) {
	out := runScript(t, `x = 3; y = 4; print(x + y);`)
	snaps.MatchSnapshot(t, "arithmetic_and_print", out)
}

func TestEndToEndUserFunctionCall(t *testing.T) {
	out := runScript(t, `f(a, b) { return a * b; } print(f(6, 7));`)
	snaps.MatchSnapshot(t, "user_function_call", out)
}

func TestEndToEndOptionalParamDefaultAndOverride(t *testing.T) {
	out := runScript(t, `g(x, y=2) { return x ^ y; } print(g(3)); print(g(3, y=4));`)
	snaps.MatchSnapshot(t, "optional_param_default_and_override", out)
}

func TestEndToEndIfElse(t *testing.T) {
	out := runScript(t, `if (1 == 1) { print("yes"); } else { print("no"); }`)
	snaps.MatchSnapshot(t, "if_else", out)
}

func TestEndToEndRecursiveFactorial(t *testing.T) {
	out := runScript(t, `fact(n) { if (n <= 1) { return 1; } return n * fact(n - 1); } print(fact(5));`)
	snaps.MatchSnapshot(t, "recursive_factorial", out)
}

func TestEndToEndFilterChainAndGo(t *testing.T) {
	src := `
c = MKVsource("in.mkv").crop(left=8).bilinearResize(width=640, height=360);
c.x264Encode("out.264");
go();
`
	env := runner.NewEnvironment()
	if err := runner.Run(env, src); err != nil {
		t.Fatalf("expected no evaluation error for a full filter chain, got %v", err)
	}
}

func TestEndToEndScriptFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.mkvsynth")
	src := []byte(`print("from a file");`)
	if err := os.WriteFile(path, src, 0o644); err != nil {
		t.Fatalf("failed to write temp script: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read temp script: %v", err)
	}
	out := runScript(t, string(data))
	snaps.MatchSnapshot(t, "script_from_file", out)
}

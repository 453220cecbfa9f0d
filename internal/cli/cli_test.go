package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ndo-cli/internal/store"
)

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

// isolate points config lookup at empty directories and returns a scratch dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NDO_CONFIG", "")
	t.Setenv("NDO_DEBUG_LOG", "")
	t.Setenv("NO_COLOR", "")
	t.Chdir(dir)
	return dir
}

func writeList(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func trimLines(b []byte) []string {
	var out []string
	for _, ln := range strings.Split(strings.TrimRight(string(b), "\n"), "\n") {
		out = append(out, strings.TrimRight(ln, " "))
	}
	return out
}

func TestPrint_RendersList(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "todo.txt")
	writeList(t, path, "- a\n+ b\n  note\n")

	stdout, _, err := runCLI(t, []string{"print", "--width", "20", "--color", "never", path})
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	want := []string{"☐ a", "☑ b", "  ◦ note"}
	if got := trimLines(stdout); strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("expected %q; got %q", want, got)
	}
}

func TestPrint_FlagsReachRenderer(t *testing.T) {
	dir := isolate(t)
	writeList(t, filepath.Join(dir, "todo.txt"), "- a\n+ b\n")

	stdout, _, err := runCLI(t, []string{"print", "-e", "-x", "--width", "20", "--color", "never"})
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	want := []string{"1 [ ] a", "2 [x] b"}
	if got := trimLines(stdout); strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("expected %q; got %q", want, got)
	}
}

func TestPrint_MissingFile(t *testing.T) {
	isolate(t)
	_, _, err := runCLI(t, []string{"print", "nope.txt"})
	var nf notFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected notFoundError; got %v", err)
	}
}

func TestExport_JSONAndEDN(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "todo.txt")
	writeList(t, path, "-r urgent\n  + done\n")

	stdout, _, err := runCLI(t, []string{"export", path})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	var doc struct {
		Count int `json:"count"`
		Items []struct {
			Text      string `json:"text"`
			Kind      string `json:"kind"`
			Completed bool   `json:"completed"`
			Color     string `json:"color"`
			Indent    int    `json:"indent"`
		} `json:"items"`
	}
	if err := json.Unmarshal(stdout, &doc); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, stdout)
	}
	if doc.Count != 2 || doc.Items[0].Color != "red" || !doc.Items[1].Completed || doc.Items[1].Indent != 1 {
		t.Fatalf("unexpected document %#v", doc)
	}

	stdout, _, err = runCLI(t, []string{"export", "--format", "edn", path})
	if err != nil {
		t.Fatalf("export edn: %v", err)
	}
	if s := string(stdout); !strings.Contains(s, ":items") || !strings.Contains(s, `"urgent"`) {
		t.Fatalf("unexpected edn %s", s)
	}

	if _, _, err := runCLI(t, []string{"export", "--format", "xml", path}); err == nil {
		t.Fatalf("expected unknown format to fail")
	}
}

func TestRename(t *testing.T) {
	dir := isolate(t)
	from := filepath.Join(dir, "a.txt")
	to := filepath.Join(dir, "b.txt")
	writeList(t, from, "- x\n")

	if _, _, err := runCLI(t, []string{"rename", from, to}); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if _, err := os.Stat(to); err != nil {
		t.Fatalf("expected target: %v", err)
	}

	writeList(t, from, "- y\n")
	_, _, err := runCLI(t, []string{"rename", from, to})
	if !errors.Is(err, store.ErrTargetExists) {
		t.Fatalf("expected ErrTargetExists; got %v", err)
	}

	_, _, err = runCLI(t, []string{"rename", filepath.Join(dir, "missing.txt"), filepath.Join(dir, "c.txt")})
	var nf notFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected notFoundError; got %v", err)
	}
}

func TestDocs(t *testing.T) {
	isolate(t)
	stdout, _, err := runCLI(t, []string{"docs"})
	if err != nil {
		t.Fatalf("docs: %v", err)
	}
	if !strings.Contains(string(stdout), "controls") {
		t.Fatalf("expected topic list; got %q", stdout)
	}
	stdout, _, err = runCLI(t, []string{"docs", "controls"})
	if err != nil || !strings.Contains(string(stdout), "# Controls") {
		t.Fatalf("expected controls markdown; err=%v out=%q", err, stdout)
	}
	if _, _, err := runCLI(t, []string{"docs", "nope"}); err == nil {
		t.Fatalf("expected unknown topic to fail")
	}
}

func TestConfig_FlagsOverrideFile(t *testing.T) {
	dir := isolate(t)
	writeList(t, filepath.Join(dir, ".ndoconfig.yaml"), "numbering: relative\nstrikethrough: true\nindent_width: 4\n")

	stdout, _, err := runCLI(t, []string{"config", "-i", "3", "--autosave=false"})
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	s := string(stdout)
	for _, want := range []string{"numbering: relative", "strikethrough: true", "indent_width: 3", "autosave: false", "# from "} {
		if !strings.Contains(s, want) {
			t.Fatalf("expected %q in\n%s", want, s)
		}
	}

	stdout, _, err = runCLI(t, []string{"config", "-e"})
	if err != nil || !strings.Contains(string(stdout), "numbering: absolute") {
		t.Fatalf("expected -e to override numbering; err=%v\n%s", err, stdout)
	}
}

func TestConfig_InvalidFlag(t *testing.T) {
	isolate(t)
	if _, _, err := runCLI(t, []string{"config", "-i", "0"}); err == nil {
		t.Fatalf("expected indent width 0 to be rejected")
	}
}

func TestConfigInit(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "cfg", "ndo.yaml")
	t.Setenv("NDO_CONFIG", path)
	// An explicit config path must exist to be read, so create it first.
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	writeList(t, path, "title: Mine\n")

	if _, _, err := runCLI(t, []string{"config", "init", "-s"}); err == nil {
		t.Fatalf("expected init to refuse an existing file")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "-s", "--force"}); err != nil {
		t.Fatalf("config init --force: %v", err)
	}
	cfg, _, err := store.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.Strikethrough || cfg.Title != "Mine" {
		t.Fatalf("expected merged config written; got %#v", cfg)
	}
	if _, err := os.Stat(path + ".bak"); err != nil {
		t.Fatalf("expected backup of the previous file: %v", err)
	}
}

func TestDebugLog(t *testing.T) {
	dir := isolate(t)
	logPath := filepath.Join(dir, "debug.log")
	if _, _, err := runCLI(t, []string{"--debug-log", logPath, "docs"}); err != nil {
		t.Fatalf("docs: %v", err)
	}
	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "config loaded") {
		t.Fatalf("expected debug records; got %q", b)
	}
}

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	messy     = "@media screen{a{color:red}}"
	formatted = "@media screen {\n  a {\n    color: red;\n  }\n}\n"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--color", "off"}, args...))
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func tempStylesheet(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFmtCheck(t *testing.T) {
	path := tempStylesheet(t, "a.css", messy)
	stdout, _, err := execute(t, "fmt", "--check", path)
	if !errors.Is(err, errChangesPending) {
		t.Fatalf("err = %v, want errChangesPending", err)
	}
	if strings.TrimSpace(stdout) != path {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestFmtWritesFile(t *testing.T) {
	path := tempStylesheet(t, "a.css", messy)
	stdout, _, err := execute(t, "fmt", "--no-cache", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "reformatted "+path) {
		t.Errorf("stdout = %q", stdout)
	}
	data, _ := os.ReadFile(path)
	if string(data) != formatted {
		t.Errorf("file = %q", data)
	}

	// второй проход ничего не меняет
	if _, _, err := execute(t, "fmt", "--check", path); err != nil {
		t.Errorf("check after fmt: %v", err)
	}
}

func TestFmtStdoutWithOverrides(t *testing.T) {
	path := tempStylesheet(t, "a.scss", "a{b:c}")
	stdout, _, err := execute(t, "fmt", "--stdout", "--use-tabs", "--line-break", "crlf", path)
	if err != nil {
		t.Fatal(err)
	}
	if stdout != "a {\r\n\tb: c;\r\n}\r\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestFmtRejectsBadFlags(t *testing.T) {
	path := tempStylesheet(t, "a.css", messy)
	cases := [][]string{
		{"fmt", "--stdout", "--check", path},
		{"fmt", "--format", "xml", path},
		{"fmt", "--block-selector-linebreak", "sometimes", path},
		{"fmt", "--line-break", "cr", path},
	}
	for _, args := range cases {
		if _, _, err := execute(t, args...); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestFmtReportsDiagnostics(t *testing.T) {
	path := tempStylesheet(t, "broken.css", "a{color:red")
	_, stderr, err := execute(t, "fmt", path)
	if !errors.Is(err, errFormatFailed) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(stderr, "ERROR SYN") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestFmtJSON(t *testing.T) {
	path := tempStylesheet(t, "a.css", formatted)
	stdout, _, err := execute(t, "fmt", "--check", "--format", "json", path)
	if err != nil {
		t.Fatal(err)
	}
	var payload []struct {
		Path    string `json:"path"`
		Changed bool   `json:"changed"`
		Check   bool   `json:"check"`
	}
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		t.Fatalf("invalid json %q: %v", stdout, err)
	}
	if len(payload) != 1 || payload[0].Changed || !payload[0].Check {
		t.Errorf("payload = %+v", payload)
	}
}

func TestDocCommand(t *testing.T) {
	path := tempStylesheet(t, "a.css", messy)
	stdout, _, err := execute(t, "doc", "--render", path)
	if err != nil {
		t.Fatal(err)
	}
	debug, rendered, ok := strings.Cut(stdout, "---\n")
	if !ok {
		t.Fatalf("no separator in %q", stdout)
	}
	if !strings.Contains(debug, "hardline") {
		t.Errorf("debug output = %q", debug)
	}
	if rendered != formatted {
		t.Errorf("rendered = %q", rendered)
	}
}

func TestTokenizeAndParseCommands(t *testing.T) {
	path := tempStylesheet(t, "a.css", "@layer base;")

	stdout, _, err := execute(t, "tokenize", "--format", "json", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, `"kind": "AtKeyword"`) {
		t.Errorf("tokenize output = %q", stdout)
	}

	stdout, _, err = execute(t, "parse", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "Prelude[layer]: base") {
		t.Errorf("parse output = %q", stdout)
	}
}

func TestVersionJSON(t *testing.T) {
	stdout, _, err := execute(t, "version", "--format", "json", "--full")
	if err != nil {
		t.Fatal(err)
	}
	var p versionPayload
	if err := json.Unmarshal([]byte(stdout), &p); err != nil {
		t.Fatal(err)
	}
	if p.Tool != "cssfmt" || p.Version == "" || p.GitCommit == "" {
		t.Errorf("payload = %+v", p)
	}
}

func TestFmtWritesProfiles(t *testing.T) {
	path := tempStylesheet(t, "a.css", formatted)
	dir := filepath.Dir(path)
	cpu := filepath.Join(dir, "cpu.out")
	mem := filepath.Join(dir, "mem.out")
	if _, _, err := execute(t, "--cpu-profile", cpu, "--mem-profile", mem, "fmt", "--check", path); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{cpu, mem} {
		if info, err := os.Stat(p); err != nil || info.Size() == 0 {
			t.Errorf("%s: %v", filepath.Base(p), err)
		}
	}
}

func TestFmtVerify(t *testing.T) {
	path := tempStylesheet(t, "a.css", messy)
	stdout, _, err := execute(t, "fmt", "--verify", "--stdout", "--no-cache", path)
	if err != nil {
		t.Fatal(err)
	}
	if stdout != formatted {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestMinSeverityHidesWarnings(t *testing.T) {
	// "//" в .css - не комментарий: предупреждение, но файл форматируется
	const src = "a{b:1//2}"
	path := tempStylesheet(t, "a.css", src)
	_, stderr, err := execute(t, "fmt", "--no-cache", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "WARNING LEX1005") {
		t.Errorf("stderr = %q, want the LEX1005 warning", stderr)
	}
	if data, _ := os.ReadFile(path); string(data) != "a {\n  b: 1//2;\n}\n" {
		t.Errorf("file = %q", data)
	}

	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	_, stderr, err = execute(t, "--min-severity", "error", "fmt", "--no-cache", path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(stderr, "LEX1005") {
		t.Errorf("warning printed despite --min-severity error: %q", stderr)
	}

	if _, _, err := execute(t, "--min-severity", "loud", "fmt", path); err == nil || !strings.Contains(err.Error(), "min-severity") {
		t.Errorf("err = %v, want a --min-severity error", err)
	}
}

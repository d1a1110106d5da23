package gdscript

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	perrors "github.com/gdtools/gdsc/pkg/gdscript/errors"
)

// writeScript creates path under dir with the given body, making any
// intermediate directories.
func writeScript(t *testing.T, dir, path, body string) string {
	t.Helper()
	full := filepath.Join(dir, path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return full
}

func TestOSFSFindsSortedScripts(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "b.gd", "pass\n")
	writeScript(t, dir, "a.gd", "pass\n")
	writeScript(t, dir, "sub/c.gd", "pass\n")
	writeScript(t, dir, "readme.txt", "not a script\n")

	files, err := OSFS{}.FindFilesInDir(dir, ".gd")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a.gd"),
		filepath.Join(dir, "b.gd"),
		filepath.Join(dir, "sub", "c.gd"),
	}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %s, want %s", i, files[i], want[i])
		}
	}
}

func TestExcludingDropsSegments(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "game.gd", "pass\n")
	writeScript(t, dir, "addons/tool/plugin.gd", "pass\n")

	fsys := Excluding{FS: OSFS{}, Segments: []string{"addons"}}
	files, err := fsys.FindFilesInDir(dir, ".gd")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || !strings.HasSuffix(files[0], "game.gd") {
		t.Errorf("files = %v, want only game.gd", files)
	}
}

func TestParseDirReportsPerFile(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "good.gd", "var x = 1\n")
	writeScript(t, dir, "bad.gd", "var x = (\n")

	var out bytes.Buffer
	reports, serr := ParseDir(OSFS{}, dir, ".gd", &out)
	if serr != nil {
		t.Fatalf("ParseDir: %v", serr)
	}
	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(reports))
	}
	// Sorted order: bad.gd first.
	if reports[0].Err == nil {
		t.Error("bad.gd should have failed")
	}
	if reports[1].Err != nil {
		t.Errorf("good.gd failed: %v", reports[1].Err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("output = %q, want 2 lines", out.String())
	}
	if !strings.Contains(lines[0], ":ERROR:") {
		t.Errorf("first line = %q, want an ERROR status", lines[0])
	}
	if !strings.HasSuffix(lines[1], ":OK") {
		t.Errorf("second line = %q, want OK status", lines[1])
	}
	// Error details stay on one line.
	if strings.Count(lines[0], "line") == 0 {
		t.Errorf("error line lacks position detail: %q", lines[0])
	}
}

func TestParseDirFailureDoesNotAbort(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "a.gd", "var x = (\n")
	writeScript(t, dir, "z.gd", "pass\n")

	var out bytes.Buffer
	reports, serr := ParseDir(OSFS{}, dir, ".gd", &out)
	if serr != nil {
		t.Fatalf("ParseDir: %v", serr)
	}
	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2; the bad file must not stop the batch", len(reports))
	}
}

func TestParseScriptDumpsTree(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "player.gd", "var speed = 5\n")

	var out bytes.Buffer
	if serr := ParseScript(path, &out); serr != nil {
		t.Fatalf("ParseScript: %v", serr)
	}
	if !strings.Contains(out.String(), "Var(speed = 5)") {
		t.Errorf("dump = %q, want it to contain the var declaration", out.String())
	}
}

func TestParseScriptFailure(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "broken.gd", "if x\n")

	var out bytes.Buffer
	serr := ParseScript(path, &out)
	if serr == nil {
		t.Fatal("expected a parse failure")
	}
	if serr.Kind != perrors.KindParse {
		t.Errorf("Kind = %v, want KindParse", serr.Kind)
	}
	if serr.Path != path {
		t.Errorf("Path = %q, want %q", serr.Path, path)
	}
}

func TestParsePathDispatch(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "a.gd", "pass\n")

	var out bytes.Buffer
	if serr := ParsePath(OSFS{}, path, DefaultExtension, &out); serr != nil {
		t.Errorf("file dispatch: %v", serr)
	}
	out.Reset()
	if serr := ParsePath(OSFS{}, dir, DefaultExtension, &out); serr != nil {
		t.Errorf("dir dispatch: %v", serr)
	}
	if !strings.Contains(out.String(), ":OK") {
		t.Errorf("dir output = %q", out.String())
	}

	serr := ParsePath(OSFS{}, filepath.Join(dir, "missing.gd"), DefaultExtension, &out)
	if serr == nil || serr.Kind != perrors.KindMissingPath {
		t.Errorf("missing path: %v", serr)
	}
}

func TestParsePathHonorsExtension(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "a.gdscript", "pass\n")
	writeScript(t, dir, "b.gd", "pass\n")

	var out bytes.Buffer
	if serr := ParsePath(OSFS{}, dir, ".gdscript", &out); serr != nil {
		t.Fatalf("ParsePath: %v", serr)
	}
	if !strings.Contains(out.String(), "a.gdscript:OK") {
		t.Errorf("output = %q, want a.gdscript checked", out.String())
	}
	if strings.Contains(out.String(), "b.gd:") {
		t.Errorf("output = %q, want b.gd skipped", out.String())
	}
}

func TestReportStatus(t *testing.T) {
	ok := Report{Path: "a.gd"}
	if ok.Status() != "OK" {
		t.Errorf("Status() = %q, want OK", ok.Status())
	}
	bad := Report{Path: "b.gd", Err: perrors.New("expected value", 2, 3, 14)}
	s := bad.Status()
	if !strings.HasPrefix(s, "ERROR: ") || strings.Contains(s, "\n") {
		t.Errorf("Status() = %q", s)
	}
}

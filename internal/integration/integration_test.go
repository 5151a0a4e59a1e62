package integration

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"msaclean/internal/app"
)

const alignment = `>BMORI reference genome
AC--GT--
>DPLEX_01
TTTTTTTT
>PXUT_02
AAAAAAAA
`

func write(t *testing.T, fn, data string) string {
	t.Helper()
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func TestEndToEnd(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, filepath.Join(dir, "itest.fas"), alignment)
	out := filepath.Join(dir, "cleaned.fas")

	var stdout, stderr bytes.Buffer
	code := app.Run([]string{fa, "BMORI", "--out", out}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, stderr.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := ">BMORI reference genome\nAC--GT--\n>DPLEX_01\nTT--TT--\n>PXUT_02\nAA--AA--\n"
	if string(data) != want {
		t.Fatalf("output mismatch:\n got %q\nwant %q", data, want)
	}
	if !strings.Contains(stderr.String(), "wrote") {
		t.Errorf("expected progress notice, got %q", stderr.String())
	}
}

func TestDefaultOutputName(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() { _ = os.Chdir(cwd) }()

	write(t, "itest.fas", alignment)
	var stdout, stderr bytes.Buffer
	if code := app.Run([]string{"itest.fas", "BMORI", "--quiet"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run exit %d, err=%s", code, stderr.String())
	}
	if _, err := os.Stat("cleaned_loci_itest.fas"); err != nil {
		t.Fatalf("default output missing: %v", err)
	}
	if stderr.Len() != 0 {
		t.Errorf("--quiet should silence notices, got %q", stderr.String())
	}
}

func TestStdoutOutput(t *testing.T) {
	fa := write(t, filepath.Join(t.TempDir(), "itest.fas"), alignment)
	var stdout, stderr bytes.Buffer
	if code := app.Run([]string{fa, "BMORI", "--out", "-", "-q"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run exit %d, err=%s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "TT--TT--") {
		t.Fatalf("stdout output missing masked record: %q", stdout.String())
	}
}

func TestMissingInputFileExit1(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := app.Run([]string{filepath.Join(t.TempDir(), "nope.fas"), "BMORI"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("want exit 1 for missing file, got %d", code)
	}
}

func TestReferenceNotFoundLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, filepath.Join(dir, "itest.fas"), alignment)
	out := filepath.Join(dir, "cleaned.fas")

	var stdout, stderr bytes.Buffer
	code := app.Run([]string{fa, "NOSUCH", "--out", out, "-q"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("want exit 1, got %d (err=%s)", code, stderr.String())
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("no output file may be created on reference errors")
	}
}

func TestAmbiguousReferenceLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, filepath.Join(dir, "itest.fas"), alignment)
	out := filepath.Join(dir, "cleaned.fas")

	var stdout, stderr bytes.Buffer
	code := app.Run([]string{fa, "_0", "--out", out, "-q"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("want exit 1 for ambiguous reference, got %d", code)
	}
	if !strings.Contains(stderr.String(), "ambiguous") {
		t.Errorf("stderr should name the ambiguity: %q", stderr.String())
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("no output file may be created on reference errors")
	}
}

func TestMalformedInputExit1(t *testing.T) {
	fa := write(t, filepath.Join(t.TempDir(), "bad.fas"), "ACGT\n>late\nTTTT\n")
	var stdout, stderr bytes.Buffer
	if code := app.Run([]string{fa, "late", "-q"}, &stdout, &stderr); code != 1 {
		t.Fatalf("want exit 1 for malformed input, got %d", code)
	}
}

func TestCleaningIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, filepath.Join(dir, "itest.fas"), alignment)
	once := filepath.Join(dir, "once.fas")
	twice := filepath.Join(dir, "twice.fas")

	var buf bytes.Buffer
	if code := app.Run([]string{fa, "BMORI", "--out", once, "-q"}, &buf, &buf); code != 0 {
		t.Fatalf("first run failed: %s", buf.String())
	}
	if code := app.Run([]string{once, "BMORI", "--out", twice, "-q"}, &buf, &buf); code != 0 {
		t.Fatalf("second run failed: %s", buf.String())
	}
	a, _ := os.ReadFile(once)
	b, _ := os.ReadFile(twice)
	if !bytes.Equal(a, b) {
		t.Fatalf("cleaning not idempotent:\n%q\n%q", a, b)
	}
}

func TestCanceledContextExit130(t *testing.T) {
	fa := write(t, filepath.Join(t.TempDir(), "itest.fas"), alignment)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	if code := app.RunContext(ctx, []string{fa, "BMORI", "-q"}, &stdout, &stderr); code != 130 {
		t.Fatalf("want exit 130 on canceled context, got %d", code)
	}
}

func TestUsageErrorExit2(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := app.Run([]string{"onlyfile.fas"}, &stdout, &stderr); code != 2 {
		t.Fatalf("want exit 2 for usage error, got %d", code)
	}
}

func TestVersionExit0(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := app.Run([]string{"--version"}, &stdout, &stderr); code != 0 {
		t.Fatalf("version exit %d", code)
	}
	if !strings.Contains(stdout.String(), "msaclean version") {
		t.Errorf("version banner missing: %q", stdout.String())
	}
}

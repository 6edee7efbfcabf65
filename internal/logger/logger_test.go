package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveLogFilePathDefaultDir(t *testing.T) {
	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
	})
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}

	got, err := resolveLogFilePath(Options{})
	if err != nil {
		t.Fatalf("resolve default log path failed: %v", err)
	}

	realTmpDir, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("resolve tmp dir symlink failed: %v", err)
	}
	realGot, err := filepath.EvalSymlinks(filepath.Dir(got))
	if err != nil {
		t.Fatalf("resolve got dir symlink failed: %v", err)
	}
	expectedDir := filepath.Join(realTmpDir, defaultLogDirName)
	if realGot != expectedDir {
		t.Fatalf("unexpected log dir: got=%s expected=%s", realGot, expectedDir)
	}
	if filepath.Base(got) != defaultLogFilename {
		t.Fatalf("unexpected log filename: %s", filepath.Base(got))
	}
	if _, err := os.Stat(filepath.Dir(got)); err != nil {
		t.Fatalf("expected log dir to be created: %v", err)
	}
}

func TestNewReleaseWritesToConfiguredFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := Options{
		Dir:      tmpDir,
		Filename: "release.log",
	}
	log := New("release", cfg)
	log.Info("release-log-test")
	_ = log.Sync()

	content, err := os.ReadFile(filepath.Join(tmpDir, "release.log"))
	if err != nil {
		t.Fatalf("read release log failed: %v", err)
	}
	if !strings.Contains(string(content), "release-log-test") {
		t.Fatalf("expected log content to contain message, got=%s", string(content))
	}
}

func TestNewDebugDoesNotWriteFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := Options{
		Dir:      tmpDir,
		Filename: "debug.log",
	}
	log := New("debug", cfg)
	log.Info("debug-log-test")
	_ = log.Sync()

	if _, err := os.Stat(filepath.Join(tmpDir, "debug.log")); !os.IsNotExist(err) {
		t.Fatalf("debug mode should not create log file")
	}
}

func TestResolveLevel(t *testing.T) {
	cases := []struct {
		mode  string
		level string
		want  string
	}{
		{mode: "debug", level: "", want: "debug"},
		{mode: "release", level: "", want: "info"},
		{mode: "debug", level: "warn", want: "warn"},
		{mode: "release", level: "ERROR", want: "error"},
		{mode: "release", level: "verbose", want: "info"},
	}
	for _, tc := range cases {
		if got := resolveLevel(tc.mode, tc.level).String(); got != tc.want {
			t.Fatalf("resolveLevel(%q, %q) want %s got %s", tc.mode, tc.level, tc.want, got)
		}
	}
}

func TestNewReleaseRespectsLevel(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("release", Options{Dir: tmpDir, Filename: "warn.log", Level: "warn"})
	log.Info("info-should-be-dropped")
	log.Warn("warn-should-be-kept")
	_ = log.Sync()

	content, err := os.ReadFile(filepath.Join(tmpDir, "warn.log"))
	if err != nil {
		t.Fatalf("read warn log failed: %v", err)
	}
	if strings.Contains(string(content), "info-should-be-dropped") {
		t.Fatalf("info log should be filtered, got=%s", string(content))
	}
	if !strings.Contains(string(content), "warn-should-be-kept") {
		t.Fatalf("warn log should be kept, got=%s", string(content))
	}
}

package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/zedkit/internal/errors"
	"github.com/thoreinstein/zedkit/internal/logging"
	"github.com/thoreinstein/zedkit/internal/paths"
)

func TestEnsure_CreatesSettingsFile(t *testing.T) {
	projectDir := t.TempDir()

	if err := Ensure(projectDir); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}

	settingsPath := filepath.Join(projectDir, ".zed", "settings.json")
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		t.Fatalf("settings file not created: %v", err)
	}

	var doc map[string][]string
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("settings file is not valid JSON: %v", err)
	}

	globs, ok := doc["file_scan_exclusions"]
	if !ok {
		t.Fatal("settings file missing file_scan_exclusions key")
	}
	if len(globs) != len(fileScanExclusions) {
		t.Fatalf("file_scan_exclusions has %d globs, want %d", len(globs), len(fileScanExclusions))
	}
	for i, want := range fileScanExclusions {
		if globs[i] != want {
			t.Errorf("file_scan_exclusions[%d] = %q, want %q", i, globs[i], want)
		}
	}

	// The writer indents with two spaces and ends with a newline.
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("settings file should end with a trailing newline")
	}
	if !strings.Contains(string(data), "  \"file_scan_exclusions\"") {
		t.Error("settings file should be indented with two spaces")
	}
}

func TestEnsure_Idempotent(t *testing.T) {
	projectDir := t.TempDir()

	if err := Ensure(projectDir); err != nil {
		t.Fatalf("first Ensure() error = %v", err)
	}

	settingsPath := filepath.Join(projectDir, ".zed", "settings.json")
	first, err := os.ReadFile(settingsPath)
	if err != nil {
		t.Fatal(err)
	}

	if err := Ensure(projectDir); err != nil {
		t.Fatalf("second Ensure() error = %v", err)
	}

	second, err := os.ReadFile(settingsPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Error("second Ensure() modified the settings file")
	}
}

func TestEnsure_NeverOverwritesUserContent(t *testing.T) {
	projectDir := t.TempDir()
	zedDir := filepath.Join(projectDir, ".zed")
	if err := os.MkdirAll(zedDir, 0o755); err != nil {
		t.Fatal(err)
	}

	userContent := `{"file_scan_exclusions": ["my-own-globs"]}` + "\n"
	settingsPath := filepath.Join(zedDir, "settings.json")
	if err := os.WriteFile(settingsPath, []byte(userContent), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Ensure(projectDir); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}

	got, err := os.ReadFile(settingsPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != userContent {
		t.Errorf("Ensure() replaced user content:\ngot  %q\nwant %q", got, userContent)
	}
}

func TestEnsure_CreatesMissingProjectDir(t *testing.T) {
	base := t.TempDir()
	projectDir := filepath.Join(base, "new", "project")

	if err := Ensure(projectDir); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(projectDir, ".zed", "settings.json")); err != nil {
		t.Errorf("settings file not created under fresh directories: %v", err)
	}
}

func TestEnsure_EmptyProjectDir(t *testing.T) {
	err := Ensure("")
	if err == nil {
		t.Fatal("Ensure(\"\") should fail")
	}
	if !errors.Is(err, paths.ErrInvalidPath) {
		t.Errorf("error = %v, want ErrInvalidPath", err)
	}
}

func TestEnsure_DirPermissions(t *testing.T) {
	projectDir := t.TempDir()

	if err := Ensure(projectDir); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}

	info, err := os.Stat(filepath.Join(projectDir, ".zed"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != paths.ProjectDirPerm {
		t.Errorf(".zed perm = %o, want %o", info.Mode().Perm(), paths.ProjectDirPerm)
	}
}

func TestCreateExtraFiles_BestEffort(t *testing.T) {
	logger := logging.ForTest(t)

	// Invalid input must not panic or propagate.
	CreateExtraFiles("", logger)

	projectDir := t.TempDir()
	CreateExtraFiles(projectDir, logger)

	if _, err := os.Stat(filepath.Join(projectDir, ".zed", "settings.json")); err != nil {
		t.Errorf("CreateExtraFiles() did not materialize settings: %v", err)
	}
}

func TestPayload_ReturnsCopy(t *testing.T) {
	p := Payload()
	p["file_scan_exclusions"][0] = "mutated"
	p["extra"] = []string{"x"}

	fresh := Payload()
	if fresh["file_scan_exclusions"][0] == "mutated" {
		t.Error("Payload() must return an independent copy of the glob list")
	}
	if _, ok := fresh["extra"]; ok {
		t.Error("Payload() must return an independent map")
	}
}

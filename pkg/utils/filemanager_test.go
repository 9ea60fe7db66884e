package utils

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestGenerateOutputFileName(t *testing.T) {
	name := GenerateOutputFileName("receipts_{catalog}_{date}", map[string]string{
		"catalog": "grocery",
	})

	if !strings.HasPrefix(name, "receipts_grocery_") {
		t.Errorf("name = %q, want receipts_grocery_ prefix", name)
	}
	if !strings.HasSuffix(name, ".xlsx") {
		t.Errorf("name = %q, want .xlsx suffix", name)
	}
	if strings.Contains(name, "{") || strings.Contains(name, "}") {
		t.Errorf("name = %q contains unreplaced placeholders", name)
	}
}

func TestGenerateOutputFileNameUUID(t *testing.T) {
	uuidPattern := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.xlsx$`)

	name := GenerateOutputFileName("{uuid}", nil)
	if !uuidPattern.MatchString(name) {
		t.Errorf("name = %q, want a UUID file name", name)
	}

	// Two calls must not collide.
	if other := GenerateOutputFileName("{uuid}", nil); other == name {
		t.Errorf("two generated names collided: %q", name)
	}
}

func TestGenerateOutputFileNameKeepsExtension(t *testing.T) {
	name := GenerateOutputFileName("report.xlsx", nil)
	if name != "report.xlsx" {
		t.Errorf("name = %q, want report.xlsx", name)
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")
	fm := NewFileManager(dir)

	if err := fm.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("output dir not created: %v", err)
	}

	// Idempotent.
	if err := fm.EnsureDirectories(); err != nil {
		t.Errorf("EnsureDirectories second call: %v", err)
	}
}

func TestWriteSummaryLog(t *testing.T) {
	dir := t.TempDir()
	start := time.Now().Add(-2 * time.Second)

	summary := GenerationSummary{
		StartTime:     start,
		EndTime:       time.Now(),
		TotalCatalogs: 2,
		Successful:    1,
		Failed:        1,
		Runs: []GeneratedRun{{
			CatalogFile:   "grocery.yaml",
			OutputFile:    "receipts_grocery.xlsx",
			Receipts:      20,
			Events:        153,
			RealizedTotal: 5012,
			ProcessTime:   40 * time.Millisecond,
		}},
		FailedRuns: []FailedRun{{
			CatalogFile:  "broken.csv",
			ErrorMessage: "catalog validation failed",
		}},
	}

	path, err := WriteSummaryLog(summary, dir)
	if err != nil {
		t.Fatalf("WriteSummaryLog: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	content := string(data)

	for _, want := range []string{
		"Total Catalogs: 2",
		"grocery.yaml",
		"receipts_grocery.xlsx",
		"Realized Total: 5012",
		"broken.csv",
		"catalog validation failed",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("summary log missing %q", want)
		}
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()

	if FileExists(filepath.Join(dir, "absent.txt")) {
		t.Error("FileExists reported an absent file as present")
	}
	if FileExists(dir) {
		t.Error("FileExists reported a directory as a file")
	}

	path := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if !FileExists(path) {
		t.Error("FileExists missed an existing file")
	}
}

package tree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeIndex(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write index: %v", err)
	}
	return path
}

func TestLoadIndex_YAML(t *testing.T) {
	path := writeIndex(t, "index.yaml", `- compute/Virtual_Machine.svg
- `+testPrefix+`networking/DNS_Zones.svg
- compute/Virtual_Machine.svg
- "  "
`)

	got, err := LoadIndex(path, testPrefix)
	if err != nil {
		t.Fatalf("LoadIndex failed: %v", err)
	}

	want := []string{"compute/Virtual_Machine.svg", "networking/DNS_Zones.svg"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadIndex mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadIndex_JSON(t *testing.T) {
	path := writeIndex(t, "index.json", `["storage/Blob.svg", "ai/Bot.svg"]`)

	got, err := LoadIndex(path, testPrefix)
	if err != nil {
		t.Fatalf("LoadIndex failed: %v", err)
	}

	want := []string{"ai/Bot.svg", "storage/Blob.svg"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadIndex mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadIndex_NotASequence(t *testing.T) {
	path := writeIndex(t, "index.yaml", "icons: {compute: vm.svg}\n")

	if _, err := LoadIndex(path, testPrefix); err == nil {
		t.Error("LoadIndex should reject a mapping")
	}
}

func TestLoadIndex_NonExistent(t *testing.T) {
	if _, err := LoadIndex("/nonexistent/index.yaml", testPrefix); err == nil {
		t.Error("LoadIndex should return error for nonexistent file")
	}
}

package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// UpdateGoldenEnv rewrites golden files instead of comparing when set to "1".
const UpdateGoldenEnv = "MODELDOC_UPDATE_GOLDEN"

// LoadFixture reads a testdata file, failing the test when it is missing.
func LoadFixture(t testing.TB, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("load fixture %s: %v", path, err)
	}
	return data
}

// AssertGolden compares got byte for byte with the golden file at path.
func AssertGolden(t testing.TB, path string, got string) {
	t.Helper()
	if os.Getenv(UpdateGoldenEnv) == "1" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("create golden dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatalf("update golden %s: %v", path, err)
		}
		return
	}
	want := LoadFixture(t, path)
	if got != string(want) {
		t.Fatalf("output does not match %s\nwant:\n%q\ngot:\n%q", path, want, got)
	}
}

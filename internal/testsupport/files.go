package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteVocabDoc places a vocabulary document into the config's vocab
// directory, creating it on first use.
func WriteVocabDoc(t testing.TB, dir, name, content string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir vocab dir: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write vocab doc %s: %v", name, err)
	}
	return path
}

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"plinth/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	vocabDir   string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	vocabDir := filepath.Join(base, "vocab")
	testsupport.WriteVocabDoc(t, vocabDir, "10_dc.yaml", `
key: dc_comics
aliases: [dc]
characters:
  - name: poison_ivy
    aliases: ["poison ivy"]
signals:
  strong: [gotham]
`)

	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(`[paths]
library_root = %q
state_dir = %q
log_dir = %q
vocab_dir = %q

[enrich]
batch_size = 10

[logging]
format = "console"
level = "error"
`,
		filepath.Join(base, "library"),
		filepath.Join(base, "state"),
		filepath.Join(base, "logs"),
		vocabDir,
	)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{baseDir: base, configPath: configPath, vocabDir: vocabDir}
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, out, want string) {
	t.Helper()
	if !strings.Contains(out, want) {
		t.Fatalf("expected output to contain %q, got:\n%s", want, out)
	}
}

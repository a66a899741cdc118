package vocab

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"plinth/internal/logging"
)

// Stats summarizes a vocabulary load.
type Stats struct {
	Files      int
	Franchises int
	Lists      int
	Skipped    int
}

// LoadDir reads every YAML document under dir and builds a snapshot.
// Files load in lexical order, so later files win on duplicate aliases.
// Individually malformed documents are skipped with a warning; the load
// only fails on filesystem-level errors. A missing directory yields the
// built-in defaults.
func LoadDir(dir string, logger *slog.Logger) (*Snapshot, Stats, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	builder := NewBuilder()
	stats := Stats{}

	paths, err := listDocuments(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("vocabulary directory missing, using built-in defaults",
				logging.String("dir", dir))
			return builder.Build(), stats, nil
		}
		return nil, stats, err
	}

	for _, path := range paths {
		loaded, skipped, err := loadFile(builder, path, logger)
		if err != nil {
			logger.Warn("vocabulary file skipped",
				logging.String("path", path),
				logging.Error(err))
			stats.Skipped++
			continue
		}
		stats.Files++
		stats.Franchises += loaded.Franchises
		stats.Lists += loaded.Lists
		stats.Skipped += skipped
	}

	return builder.Build(), stats, nil
}

func listDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	sort.Strings(paths)
	return paths, nil
}

// loadFile decodes one YAML file, which may hold multiple documents.
func loadFile(builder *Builder, path string, logger *slog.Logger) (Stats, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return Stats{}, 0, fmt.Errorf("open vocabulary file: %w", err)
	}
	defer file.Close()

	stats := Stats{}
	skipped := 0
	decoder := yaml.NewDecoder(file)
	for {
		var node yaml.Node
		if err := decoder.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				return stats, skipped, nil
			}
			return stats, skipped, fmt.Errorf("decode yaml: %w", err)
		}
		if err := addDocument(builder, &node, path, logger); err != nil {
			if !SkippedEntry(err) {
				return stats, skipped, err
			}
			logger.Warn("vocabulary entry skipped",
				logging.String("path", path),
				logging.Error(err))
			skipped++
			continue
		}
		if isFranchiseNode(&node) {
			stats.Franchises++
		} else {
			stats.Lists++
		}
	}
}

func addDocument(builder *Builder, node *yaml.Node, path string, logger *slog.Logger) error {
	if isFranchiseNode(node) {
		var doc FranchiseDoc
		if err := node.Decode(&doc); err != nil {
			return fmt.Errorf("%w: %s: %v", errSkipEntry, path, err)
		}
		return builder.AddFranchise(doc)
	}
	var doc DomainListDoc
	if err := node.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %s: %v", errSkipEntry, path, err)
	}
	return builder.AddDomainList(doc)
}

// isFranchiseNode distinguishes a franchise manifest (has "key") from a
// generic alias list (has "domain").
func isFranchiseNode(node *yaml.Node) bool {
	mapping := unwrapDocument(node)
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == "key" {
			return true
		}
	}
	return false
}

func unwrapDocument(node *yaml.Node) *yaml.Node {
	if node == nil {
		return nil
	}
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		return node.Content[0]
	}
	return node
}

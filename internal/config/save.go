package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"argtab/internal/argtable"
	"github.com/pelletier/go-toml/v2"
)

// Save writes the explicit flags of tbl as a TOML document. Flags that only
// hold a default are skipped, as are names keep rejects; a nil keep writes
// everything else. Repeated flags become arrays.
func Save(path string, tbl *argtable.Table, keep func(name string) bool) error {
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return errors.New("config path is empty and $HOME is not set")
	}
	doc := make(map[string]any, tbl.Len())
	for _, name := range tbl.Keys() {
		key := strings.TrimPrefix(name, "-")
		if key == "" {
			continue
		}
		if src, _ := tbl.SourceOf(name); src == argtable.SourceDefault {
			continue
		}
		if keep != nil && !keep(name) {
			continue
		}
		if all := tbl.All(name); len(all) > 1 {
			doc[key] = all
			continue
		}
		doc[key] = tbl.String(name, "")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

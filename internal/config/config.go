package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"argtab/internal/argtable"
	"github.com/pelletier/go-toml/v2"
)

// EnvPath names the config file when no path is given on the command line.
const EnvPath = "ARGTAB_CONF"

// File is a loaded config file flattened into flag settings.
type File struct {
	Settings []argtable.Setting
	Source   string
}

func DefaultPath() string {
	if env := strings.TrimSpace(os.Getenv(EnvPath)); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".argtab", "argtab.toml")
}

// Load reads a TOML config file. A missing file yields an empty File.
func Load(path string) (File, error) {
	var f File
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return f, errors.New("config path is empty and $HOME is not set")
	}
	f.Source = path

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, nil
		}
		return f, err
	}

	doc := map[string]any{}
	if err := toml.Unmarshal(content, &doc); err != nil {
		return f, fmt.Errorf("parse %s: %w", path, err)
	}
	f.Settings = flatten("", doc, nil)
	return f, nil
}

// flatten turns a TOML document into settings in key order. Nested tables
// join their keys with "." and arrays repeat the key.
func flatten(prefix string, doc map[string]any, out []argtable.Setting) []argtable.Setting {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		name := k
		if prefix != "" {
			name = prefix + "." + k
		}
		switch v := doc[k].(type) {
		case map[string]any:
			out = flatten(name, v, out)
		case []any:
			for _, item := range v {
				out = append(out, argtable.Setting{Name: name, Value: formatValue(item)})
			}
		default:
			out = append(out, argtable.Setting{Name: name, Value: formatValue(v)})
		}
	}
	return out
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "1"
		}
		return "0"
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

package config

import (
	"strings"

	"argtab/internal/argtable"
)

// ApplyKVOverrides applies free-form -c key=value overrides. They are placed
// ahead of the file's own settings so they win when merged.
func ApplyKVOverrides(f File, overrides []string) File {
	if len(overrides) == 0 {
		return f
	}
	settings := make([]argtable.Setting, 0, len(overrides)+len(f.Settings))
	for _, raw := range overrides {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		if key == "" {
			continue
		}
		settings = append(settings, argtable.Setting{Name: key, Value: val})
	}
	f.Settings = append(settings, f.Settings...)
	return f
}

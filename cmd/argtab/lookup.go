package main

import (
	"io"
	"strings"

	"argtab/internal/argtable"
	"argtab/internal/options"
	"argtab/internal/render"
)

// lookupAll resolves each query with the -type kind and -default fallback.
func lookupAll(w io.Writer, tbl *argtable.Table, queries []string) error {
	kind := options.ParseKind(tbl.String("-type", ""))
	def := tbl.String("-default", "")
	for _, q := range queries {
		name := flagName(q)
		if name == "" {
			continue
		}
		if !tbl.IsSet(name) && !tbl.Negated(name) {
			entry := log.WithField("flag", name)
			if hints := options.Closest(name, tbl.Keys(), 2); len(hints) > 0 {
				entry = entry.WithField("did_you_mean", hints)
			}
			entry.Info("flag not set, using default")
		}
		if err := render.Lookup(w, name, resolve(tbl, name, kind, def)); err != nil {
			return err
		}
	}
	return nil
}

func resolve(tbl *argtable.Table, name string, kind options.Kind, def string) any {
	switch kind {
	case options.KindBool:
		return tbl.Bool(name, def != "" && argtable.ParseBool(def))
	case options.KindInt:
		return tbl.Int(name, argtable.ParseInt(def))
	default:
		return tbl.String(name, def)
	}
}

func flagName(q string) string {
	q = strings.TrimSpace(q)
	if q == "" || strings.Trim(q, "-") == "" {
		return ""
	}
	if strings.HasPrefix(q, "--") {
		return q[1:]
	}
	if !strings.HasPrefix(q, "-") {
		return "-" + q
	}
	return q
}

package options

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Kind is the lookup type an option is read with.
type Kind string

const (
	KindBool   Kind = "bool"
	KindString Kind = "string"
	KindInt    Kind = "int"
)

// Spec describes an option understood by the argtab command.
type Spec struct {
	Name    string
	Kind    Kind
	Default string
	// Repeatable options are read with Table.All; the rest keep their last value.
	Repeatable bool
	// Control options steer a single run and are never written by -saveconf.
	Control bool
}

// Specs is the option surface of the argtab command.
var Specs = []Spec{
	{Name: "-conf", Kind: KindString, Control: true},
	{Name: "-noconf", Kind: KindBool, Control: true},
	{Name: "-c", Kind: KindString, Repeatable: true, Control: true},
	{Name: "-get", Kind: KindString, Repeatable: true, Control: true},
	{Name: "-type", Kind: KindString, Default: string(KindString), Control: true},
	{Name: "-default", Kind: KindString, Control: true},
	{Name: "-saveconf", Kind: KindString, Control: true},
	{Name: "-printtoconsole", Kind: KindBool, Default: "0"},
	{Name: "-debug", Kind: KindBool, Default: "0"},
	{Name: "-color", Kind: KindBool, Default: "1"},
}

var known = func() map[string]Spec {
	m := make(map[string]Spec, len(Specs))
	for _, spec := range Specs {
		m[spec.Name] = spec
	}
	return m
}()

// IsKnown reports whether name, or the positive form of a -no name, is an
// option of the command.
func IsKnown(name string) bool {
	_, ok := Lookup(name)
	return ok
}

// Lookup returns the spec for name. A -noX name resolves to -X when -X is a
// bool option.
func Lookup(name string) (Spec, bool) {
	if spec, ok := known[name]; ok {
		return spec, true
	}
	if strings.HasPrefix(name, "-no") && len(name) > 3 {
		if spec, ok := known["-"+name[3:]]; ok && spec.Kind == KindBool {
			return spec, true
		}
	}
	return Spec{}, false
}

// Persistent reports whether name may be stored in a config file. Unknown
// flags are host settings and always persist.
func Persistent(name string) bool {
	spec, ok := Lookup(name)
	return !ok || !spec.Control
}

// ParseKind maps a -type value to a Kind, defaulting to string.
func ParseKind(v string) Kind {
	switch Kind(strings.ToLower(strings.TrimSpace(v))) {
	case KindBool:
		return KindBool
	case KindInt:
		return KindInt
	default:
		return KindString
	}
}

// Suggest returns up to limit known option names closest to name.
func Suggest(name string, limit int) []string {
	names := make([]string, 0, len(Specs))
	for _, spec := range Specs {
		names = append(names, spec.Name)
	}
	return Closest(name, names, limit)
}

// Closest fuzzy-matches name against candidate flag names, best first.
// Leading dashes are ignored on both sides.
func Closest(name string, candidates []string, limit int) []string {
	query := strings.TrimLeft(name, "-")
	if query == "" || limit <= 0 {
		return nil
	}
	keys := make([]string, 0, len(candidates))
	for _, c := range candidates {
		keys = append(keys, strings.TrimLeft(c, "-"))
	}
	matches := fuzzy.Find(query, keys)
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	out := make([]string, 0, limit)
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, "-"+m.Str)
	}
	return out
}

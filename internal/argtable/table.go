// Package argtable parses a flat argument vector into an immutable table of
// flags and serves typed lookups with defaults.
//
// Accepted forms are -name, -name=value, --name, --name=value, -noname and
// -noname=value. An explicit -name always wins over -noname.
package argtable

import (
	"fmt"
	"sort"
	"strings"
)

// Source tells where a table entry came from.
type Source string

const (
	SourceCommandLine Source = "cmdline"
	SourceConfig      Source = "config"
	SourceDefault     Source = "default"
)

// Table is the parsed argument table. It is never mutated after
// construction; derived tables are returned by WithDefault and Merge.
type Table struct {
	args        map[string]string
	multi       map[string][]string
	negated     map[string]bool
	sources     map[string]Source
	positionals []string
}

// Setting is a single name/value pair layered under a table by Merge.
type Setting struct {
	Name  string
	Value string
}

// Entry is one resolved row of the table.
type Entry struct {
	Name    string
	Value   string
	Negated bool
	Source  Source
}

// Parse builds a table from a process argument vector. argv[0] is the
// executable name and is skipped.
func Parse(argv []string) *Table {
	if len(argv) == 0 {
		return FromArgs(nil)
	}
	return FromArgs(argv[1:])
}

// FromArgs builds a table from arguments without an executable name.
// Flag parsing stops at the first token that does not start with "-";
// that token and everything after it become positionals. A bare "--"
// ends flag parsing and is dropped.
func FromArgs(args []string) *Table {
	t := newTable()
	for i, tok := range args {
		if tok == "--" {
			t.positionals = append(t.positionals, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(tok, "-") {
			t.positionals = append(t.positionals, args[i:]...)
			break
		}
		name, value, _ := strings.Cut(tok, "=")
		name = normalizeName(name)
		t.args[name] = value
		t.multi[name] = append(t.multi[name], value)
		t.sources[name] = SourceCommandLine
	}
	// Negations are resolved after every token is seen so that -X wins
	// regardless of where it appears.
	for name := range t.args {
		t.interpretNegation(name)
	}
	return t
}

func newTable() *Table {
	return &Table{
		args:    make(map[string]string),
		multi:   make(map[string][]string),
		negated: make(map[string]bool),
		sources: make(map[string]Source),
	}
}

func (t *Table) clone() *Table {
	c := newTable()
	for k, v := range t.args {
		c.args[k] = v
	}
	for k, v := range t.multi {
		c.multi[k] = append([]string(nil), v...)
	}
	for k, v := range t.negated {
		c.negated[k] = v
	}
	for k, v := range t.sources {
		c.sources[k] = v
	}
	c.positionals = append([]string(nil), t.positionals...)
	return c
}

// interpretNegation maps -noX to a boolean false for -X unless -X is set.
func (t *Table) interpretNegation(name string) {
	if len(name) <= 3 || !strings.HasPrefix(name, "-no") {
		return
	}
	positive := "-" + name[3:]
	if _, ok := t.args[positive]; ok {
		return
	}
	t.negated[positive] = !ParseBool(t.args[name])
	t.sources[positive] = t.sources[name]
}

// normalizeName collapses a leading "--" to "-" and adds a missing "-".
func normalizeName(name string) string {
	if strings.HasPrefix(name, "--") {
		return name[1:]
	}
	if !strings.HasPrefix(name, "-") {
		return "-" + name
	}
	return name
}

// IsSet reports whether name was given explicitly. A -noX flag does not
// make -X set.
func (t *Table) IsSet(name string) bool {
	_, ok := t.args[name]
	return ok
}

// Negated reports whether name is only known through a -no form.
func (t *Table) Negated(name string) bool {
	if t.IsSet(name) {
		return false
	}
	_, ok := t.negated[name]
	return ok
}

// Bool returns the boolean interpretation of name. A bare flag is true, a
// value is true when its leading integer is non-zero. When only -noX was
// given the negation decides. def is returned when the flag is absent.
func (t *Table) Bool(name string, def bool) bool {
	if v, ok := t.args[name]; ok {
		return ParseBool(v)
	}
	if v, ok := t.negated[name]; ok {
		return v
	}
	return def
}

// Flag is Bool with a false default.
func (t *Table) Flag(name string) bool {
	return t.Bool(name, false)
}

// String returns the raw value of name, which is "" for a bare flag, or
// def when the flag is absent.
func (t *Table) String(name, def string) string {
	if v, ok := t.args[name]; ok {
		return v
	}
	return def
}

// Int returns the leading integer of name's value. A present but
// non-numeric value yields 0, not def.
func (t *Table) Int(name string, def int64) int64 {
	if v, ok := t.args[name]; ok {
		return ParseInt(v)
	}
	return def
}

// All returns every value given for name, in order.
func (t *Table) All(name string) []string {
	return append([]string(nil), t.multi[name]...)
}

// SourceOf reports where name's effective value came from.
func (t *Table) SourceOf(name string) (Source, bool) {
	s, ok := t.sources[name]
	return s, ok
}

// Keys returns the explicitly given flag names, sorted.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.args))
	for k := range t.args {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len is the number of explicitly given flags.
func (t *Table) Len() int {
	return len(t.args)
}

// Positionals returns the tokens that followed the flags.
func (t *Table) Positionals() []string {
	return append([]string(nil), t.positionals...)
}

// Entries returns explicit and negated flags sorted by name.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.args)+len(t.negated))
	for name, value := range t.args {
		entries = append(entries, Entry{Name: name, Value: value, Source: t.sources[name]})
	}
	for name, value := range t.negated {
		if t.IsSet(name) {
			continue
		}
		v := "0"
		if value {
			v = "1"
		}
		entries = append(entries, Entry{Name: name, Value: v, Negated: true, Source: t.sources[name]})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// WithDefault returns a table with name set to value when name is neither
// set nor negated. The bool reports whether the default was applied.
func (t *Table) WithDefault(name, value string) (*Table, bool) {
	name = normalizeName(name)
	if t.IsSet(name) || t.Negated(name) {
		return t, false
	}
	c := t.clone()
	c.args[name] = value
	c.multi[name] = append(c.multi[name], value)
	c.sources[name] = SourceDefault
	c.interpretNegation(name)
	return c, true
}

// WithBoolDefault is WithDefault for boolean flags.
func (t *Table) WithBoolDefault(name string, value bool) (*Table, bool) {
	if value {
		return t.WithDefault(name, "1")
	}
	return t.WithDefault(name, "0")
}

// Merge layers settings under the table. Flags already present, explicitly
// or through a negation, keep their value; every setting still extends the
// repeated values returned by All.
func (t *Table) Merge(settings []Setting) *Table {
	if len(settings) == 0 {
		return t
	}
	c := t.clone()
	for _, s := range settings {
		name := normalizeName(s.Name)
		if !c.IsSet(name) && !c.Negated(name) {
			c.args[name] = s.Value
			c.sources[name] = SourceConfig
			c.interpretNegation(name)
		}
		c.multi[name] = append(c.multi[name], s.Value)
	}
	return c
}

// GoString is the debug form printed by %#v. String is taken by the
// string lookup.
func (t *Table) GoString() string {
	return fmt.Sprintf("Table{Args=%v, Negated=%v, Positionals=%v}", t.args, t.negated, t.positionals)
}

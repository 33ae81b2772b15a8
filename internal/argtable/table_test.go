package argtable

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetArgs splits a command line on whitespace and parses it with a dummy
// executable name in front.
func resetArgs(line string) *Table {
	return Parse(append([]string{"testargtab"}, strings.Fields(line)...))
}

func TestBool(t *testing.T) {
	cases := []struct {
		line string
		name string
		want map[string]bool // keyed by default: "none", "false", "true"
	}{
		{"-ECHO", "-ECHO", map[string]bool{"none": true, "false": true, "true": true}},
		{"-ECHO", "-fo", map[string]bool{"none": false, "false": false, "true": true}},
		{"-ECHO", "-ECHOo", map[string]bool{"none": false, "false": false, "true": true}},
		{"-ECHO=0", "-ECHO", map[string]bool{"none": false, "false": false, "true": false}},
		{"-ECHO=1", "-ECHO", map[string]bool{"none": true, "false": true, "true": true}},
		{"-noECHO", "-ECHO", map[string]bool{"none": false, "false": false, "true": false}},
		{"-noECHO=1", "-ECHO", map[string]bool{"none": false, "false": false, "true": false}},
		{"-ECHO -noECHO", "-ECHO", map[string]bool{"none": true, "false": true, "true": true}},
		{"-ECHO=1 -noECHO=1", "-ECHO", map[string]bool{"none": true, "false": true, "true": true}},
		{"-ECHO=0 -noECHO=0", "-ECHO", map[string]bool{"none": false, "false": false, "true": false}},
		{"--ECHO=1", "-ECHO", map[string]bool{"none": true, "false": true, "true": true}},
		{"--noECHO=1", "-ECHO", map[string]bool{"none": false, "false": false, "true": false}},
	}

	for _, tc := range cases {
		t.Run(tc.line+" "+tc.name, func(t *testing.T) {
			tbl := resetArgs(tc.line)
			assert.Equal(t, tc.want["none"], tbl.Flag(tc.name), "no default")
			assert.Equal(t, tc.want["false"], tbl.Bool(tc.name, false), "default false")
			assert.Equal(t, tc.want["true"], tbl.Bool(tc.name, true), "default true")
		})
	}
}

func TestBoolNegation(t *testing.T) {
	t.Run("negated", func(t *testing.T) {
		for _, line := range []string{"-noECHO", "-noECHO=1", "--noECHO"} {
			tbl := resetArgs(line)
			require.False(t, tbl.Flag("-ECHO"), line)
			require.False(t, tbl.Bool("-ECHO", true), line)
			require.False(t, tbl.Bool("-ECHO", false), line)
		}
	})

	t.Run("double negation", func(t *testing.T) {
		tbl := resetArgs("-noECHO=0")
		require.True(t, tbl.Flag("-ECHO"))
		require.True(t, tbl.Bool("-ECHO", true))
		require.True(t, tbl.Bool("-ECHO", false))
	})

	t.Run("explicit flag wins regardless of order", func(t *testing.T) {
		for _, line := range []string{
			"-ECHO --noECHO",
			"-noECHO -ECHO",
			"-noECHO=1 -ECHO=1",
			"--noECHO -ECHO=7",
		} {
			require.True(t, resetArgs(line).Flag("-ECHO"), line)
		}
		require.False(t, resetArgs("-noECHO=0 -ECHO=0").Bool("-ECHO", true))
	})

	t.Run("negation keeps its own key", func(t *testing.T) {
		tbl := resetArgs("-noECHO=1")
		require.True(t, tbl.IsSet("-noECHO"))
		require.Equal(t, "1", tbl.String("-noECHO", "x"))
		require.False(t, tbl.IsSet("-ECHO"))
		require.True(t, tbl.Negated("-ECHO"))
	})

	t.Run("negation does not touch string or int lookups", func(t *testing.T) {
		tbl := resetArgs("-noECHO")
		require.Equal(t, "eleven", tbl.String("-ECHO", "eleven"))
		require.Equal(t, int64(11), tbl.Int("-ECHO", 11))
	})

	t.Run("bare -no is an ordinary flag", func(t *testing.T) {
		tbl := resetArgs("-no")
		require.True(t, tbl.Flag("-no"))
		require.Len(t, tbl.Entries(), 1)
		require.False(t, tbl.Negated("-"))
	})
}

func TestString(t *testing.T) {
	cases := []struct {
		line string
		def  string
		want string
	}{
		{"", "", ""},
		{"", "eleven", "eleven"},
		{"-ECHO -bar", "", ""},
		{"-ECHO -bar", "eleven", ""},
		{"-ECHO=", "", ""},
		{"-ECHO=", "eleven", ""},
		{"-ECHO=11", "", "11"},
		{"-ECHO=11", "eleven", "11"},
		{"-ECHO=eleven", "", "eleven"},
		{"-ECHO=eleven", "eleven", "eleven"},
		{"-ECHO=a=b", "", "a=b"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, resetArgs(tc.line).String("-ECHO", tc.def), "line %q default %q", tc.line, tc.def)
	}
}

func TestInt(t *testing.T) {
	cases := []struct {
		line string
		name string
		def  int64
		want int64
	}{
		{"", "-ECHO", 11, 11},
		{"", "-ECHO", 0, 0},
		{"-ECHO -bar", "-ECHO", 11, 0},
		{"-ECHO -bar", "-bar", 11, 0},
		{"-ECHO=11 -bar=12", "-ECHO", 0, 11},
		{"-ECHO=11 -bar=12", "-bar", 11, 12},
		{"-ECHO=NaN -bar=NotANumber", "-ECHO", 1, 0},
		{"-ECHO=NaN -bar=NotANumber", "-bar", 11, 0},
		{"-ECHO=-42", "-ECHO", 1, -42},
		{"-ECHO=+7x", "-ECHO", 1, 7},
		{"-ECHO=99999999999999999999", "-ECHO", 1, 9223372036854775807},
		{"-ECHO=-99999999999999999999", "-ECHO", 1, -9223372036854775808},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, resetArgs(tc.line).Int(tc.name, tc.def), "line %q name %q", tc.line, tc.name)
	}
}

func TestDoubleDash(t *testing.T) {
	tbl := resetArgs("--ECHO")
	require.True(t, tbl.Flag("-ECHO"))

	tbl = resetArgs("--ECHO=verbose --bar=1")
	require.Equal(t, "verbose", tbl.String("-ECHO", ""))
	require.Equal(t, int64(1), tbl.Int("-bar", 0))
	require.False(t, tbl.IsSet("--ECHO"))
}

func TestParseResetsState(t *testing.T) {
	first := resetArgs("-ECHO=1 -noFOO")
	require.True(t, first.Flag("-ECHO"))

	second := resetArgs("-bar")
	require.False(t, second.IsSet("-ECHO"))
	require.True(t, second.Bool("-FOO", true))
	require.Equal(t, []string{"-bar"}, second.Keys())

	// the first table is unaffected by the second parse
	require.True(t, first.Flag("-ECHO"))
}

func TestParseTolerance(t *testing.T) {
	t.Run("empty argv", func(t *testing.T) {
		require.Zero(t, Parse(nil).Len())
		require.Zero(t, Parse([]string{"bin"}).Len())
	})

	t.Run("empty token stops flags", func(t *testing.T) {
		tbl := Parse([]string{"bin", "", "-ECHO"})
		require.False(t, tbl.IsSet("-ECHO"))
		require.Equal(t, []string{"", "-ECHO"}, tbl.Positionals())
	})

	t.Run("bare equals", func(t *testing.T) {
		tbl := FromArgs([]string{"-ECHO", "="})
		require.True(t, tbl.Flag("-ECHO"))
		require.Equal(t, []string{"="}, tbl.Positionals())
	})

	t.Run("dash with empty name", func(t *testing.T) {
		tbl := FromArgs([]string{"-=x", "-"})
		require.Equal(t, "", tbl.String("-", "def"))
		require.Equal(t, []string{"x", ""}, tbl.All("-"))
	})

	t.Run("double dash terminator", func(t *testing.T) {
		tbl := FromArgs([]string{"-a", "--", "-b", "c"})
		require.True(t, tbl.Flag("-a"))
		require.False(t, tbl.IsSet("-b"))
		require.Equal(t, []string{"-b", "c"}, tbl.Positionals())
	})

	t.Run("positional stops flags", func(t *testing.T) {
		tbl := FromArgs([]string{"-a=1", "file.txt", "-b"})
		require.Equal(t, []string{"-a"}, tbl.Keys())
		require.Equal(t, []string{"file.txt", "-b"}, tbl.Positionals())
	})
}

func TestRepeatedFlags(t *testing.T) {
	tbl := resetArgs("-addnode=a -addnode=b --addnode=c")
	require.Equal(t, []string{"a", "b", "c"}, tbl.All("-addnode"))
	require.Equal(t, "c", tbl.String("-addnode", ""))
	require.Nil(t, tbl.All("-connect"))
}

func TestWithDefault(t *testing.T) {
	base := resetArgs("-ECHO=5 -noFOO")

	got, applied := base.WithDefault("-ECHO", "9")
	require.False(t, applied)
	require.Same(t, base, got)

	got, applied = base.WithDefault("-FOO", "1")
	require.False(t, applied, "negated flags count as set")
	require.False(t, got.Flag("-FOO"))

	got, applied = base.WithDefault("-bar", "abc")
	require.True(t, applied)
	require.Equal(t, "abc", got.String("-bar", ""))
	require.False(t, base.IsSet("-bar"), "original table is unchanged")
	src, ok := got.SourceOf("-bar")
	require.True(t, ok)
	require.Equal(t, SourceDefault, src)

	got, applied = base.WithBoolDefault("listen", false)
	require.True(t, applied)
	require.False(t, got.Bool("-listen", true))
}

func TestMerge(t *testing.T) {
	base := resetArgs("-ECHO=cmd -noFOO -addnode=a")
	merged := base.Merge([]Setting{
		{Name: "ECHO", Value: "file"},
		{Name: "FOO", Value: "1"},
		{Name: "addnode", Value: "b"},
		{Name: "nobar", Value: ""},
		{Name: "bar", Value: "1"},
		{Name: "rpcport", Value: "8332"},
	})

	require.Equal(t, "cmd", merged.String("-ECHO", ""), "command line wins")
	require.False(t, merged.Flag("-FOO"), "command line negation wins")
	require.Equal(t, []string{"a", "b"}, merged.All("-addnode"))
	require.False(t, merged.Bool("-bar", true), "file negation seen before explicit value")
	require.Equal(t, int64(8332), merged.Int("-rpcport", 0))

	src, _ := merged.SourceOf("-rpcport")
	require.Equal(t, SourceConfig, src)
	src, _ = merged.SourceOf("-ECHO")
	require.Equal(t, SourceCommandLine, src)

	require.False(t, base.IsSet("-rpcport"))
	require.Same(t, base, base.Merge(nil))
}

func TestEntries(t *testing.T) {
	tbl := resetArgs("-b=2 -noa --c")
	entries := tbl.Entries()
	require.Equal(t, []Entry{
		{Name: "-a", Value: "0", Negated: true, Source: SourceCommandLine},
		{Name: "-b", Value: "2", Source: SourceCommandLine},
		{Name: "-c", Value: "", Source: SourceCommandLine},
		{Name: "-noa", Value: "", Source: SourceCommandLine},
	}, entries)
}

func TestGoString(t *testing.T) {
	tbl := FromArgs([]string{"-a=1", "-nob", "rest"})
	require.Equal(t,
		"Table{Args=map[-a:1 -nob:], Negated=map[-b:false], Positionals=[rest]}",
		fmt.Sprintf("%#v", tbl))
}

// Package symgen turns the symbol list in symbols.toml into the static
// symbol table of package salad.
package symgen

import (
	"fmt"
	"go/format"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
)

// File is the layout of symbols.toml.
type File struct {
	Groups []GroupConfig `toml:"group"`
}

// GroupConfig describes one block of entry points.
type GroupConfig struct {
	Name      string   `toml:"name"`
	Const     string   `toml:"const"`
	Header    string   `toml:"header"`
	Extension string   `toml:"extension"`
	Required  bool     `toml:"required"`
	Procs     []string `toml:"procs"`
}

// Load reads and parses the symbol list at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	syms, err := Parse(data)
	if err != nil {
		return syms, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return syms, nil
}

// Parse decodes and validates a symbol list.
func Parse(data []byte) (File, error) {
	var syms File
	if err := toml.Unmarshal(data, &syms); err != nil {
		return syms, err
	}
	if len(syms.Groups) == 0 {
		return syms, fmt.Errorf("no groups defined")
	}

	seen := make(map[string]string)
	for i, g := range syms.Groups {
		if g.Name == "" || g.Const == "" {
			return syms, fmt.Errorf("group %d: name and const are required", i)
		}
		if !isSymbol(g.Const) {
			return syms, fmt.Errorf("group %s: invalid const name %q", g.Name, g.Const)
		}
		if len(g.Procs) == 0 {
			return syms, fmt.Errorf("group %s: no procs", g.Name)
		}
		for _, p := range g.Procs {
			if !isSymbol(p) {
				return syms, fmt.Errorf("group %s: invalid symbol name %q", g.Name, p)
			}
			if prev, ok := seen[p]; ok {
				return syms, fmt.Errorf("group %s: %s already listed in group %s", g.Name, p, prev)
			}
			seen[p] = g.Name
		}
	}
	return syms, nil
}

// Count returns the number of procs in s.
func (s File) Count() int {
	var n int
	for _, g := range s.Groups {
		n += len(g.Procs)
	}
	return n
}

func isSymbol(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}

// constName turns an exported C symbol into the Go constant naming it.
func constName(symbol string) string {
	r, n := utf8.DecodeRuneInString(symbol)
	return string(unicode.ToUpper(r)) + symbol[n:]
}

// Generate returns the formatted Go source of the salad symbol table.
func Generate(syms File) ([]byte, error) {
	var b strings.Builder

	b.WriteString("// Code generated by tools/generate from symbols.toml - DO NOT EDIT.\n\n")
	b.WriteString("package salad\n\n")

	b.WriteString("// Symbol groups, in resolution order.\n")
	b.WriteString("const (\n")
	for i, g := range syms.Groups {
		if i == 0 {
			b.WriteString(fmt.Sprintf("\t%s Group = iota\n", g.Const))
			continue
		}
		b.WriteString(fmt.Sprintf("\t%s\n", g.Const))
	}
	b.WriteString("\n\tnumGroups\n")
	b.WriteString(")\n\n")

	b.WriteString("// OpenAL entry points, in resolution order.\n")
	b.WriteString("const (\n")
	first := true
	for _, g := range syms.Groups {
		b.WriteString(fmt.Sprintf("\t// %s: %s\n", g.Name, g.Header))
		for _, p := range g.Procs {
			if first {
				b.WriteString(fmt.Sprintf("\t%s Proc = iota\n", constName(p)))
				first = false
				continue
			}
			b.WriteString(fmt.Sprintf("\t%s\n", constName(p)))
		}
	}
	b.WriteString("\n\tnumProcs\n")
	b.WriteString(")\n\n")

	b.WriteString("var procNames = [numProcs]string{\n")
	for _, g := range syms.Groups {
		for _, p := range g.Procs {
			b.WriteString(fmt.Sprintf("\t%q,\n", p))
		}
	}
	b.WriteString("}\n\n")

	b.WriteString("var groupBounds = [numGroups][2]Proc{\n")
	for i, g := range syms.Groups {
		end := "numProcs"
		if i+1 < len(syms.Groups) {
			end = constName(syms.Groups[i+1].Procs[0])
		}
		b.WriteString(fmt.Sprintf("\t{%s, %s},\n", constName(g.Procs[0]), end))
	}
	b.WriteString("}\n\n")

	b.WriteString("var groupInfo = [numGroups]groupMeta{\n")
	for _, g := range syms.Groups {
		b.WriteString(fmt.Sprintf("\t{name: %q, header: %q, extension: %q, required: %t},\n",
			g.Name, g.Header, g.Extension, g.Required))
	}
	b.WriteString("}\n")

	code, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return code, nil
}

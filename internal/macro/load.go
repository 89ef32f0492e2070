package macro

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/shilop/internal/fileinput"
)

// FormatError reports a malformed definition line.
type FormatError struct {
	fileinput.Line
}

func (err *FormatError) Error() string {
	return fmt.Sprintf("%v: invalid macro definition %q, expected a name followed by a space and its words",
		err.Location, err.Text)
}

// Definition is one parsed macro definition line.
type Definition struct {
	fileinput.Location
	Name string
	Body []string
}

// ParseDefinitions reads macro definitions, one per line: the macro name is
// everything before the first space, its body the space separated words
// after it. Blank lines are skipped; any other line that does not start with
// a name followed by a space is a *FormatError.
func ParseDefinitions(r io.Reader, name string) ([]Definition, error) {
	in := fileinput.Input{Queue: []io.Reader{fileinput.Named(name, r)}}
	var defs []Definition
	for in.Next() {
		line := in.Scan
		if strings.TrimSpace(line.Text) == "" {
			continue
		}
		i := strings.IndexByte(line.Text, ' ')
		if i <= 0 {
			return nil, &FormatError{line}
		}
		defs = append(defs, Definition{
			Location: line.Location,
			Name:     line.Text[:i],
			Body:     strings.Fields(line.Text[i+1:]),
		})
	}
	return defs, in.Err()
}

// Parse reads macro definitions into a mapping suitable for Build. A later
// definition of a name replaces any earlier one.
func Parse(r io.Reader, name string) (map[string][]string, error) {
	defs, err := ParseDefinitions(r, name)
	if err != nil {
		return nil, err
	}
	entries := make(map[string][]string, len(defs))
	for _, def := range defs {
		entries[def.Name] = def.Body
	}
	return entries, nil
}

// Load parses and builds a Table from r.
func Load(r io.Reader, name string) (*Table, error) {
	entries, err := Parse(r, name)
	if err != nil {
		return nil, err
	}
	return Build(entries)
}

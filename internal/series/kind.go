package series

import "fmt"

// Kind identifies a target's output-format family and selects its parser.
type Kind int

const (
	// KindSemp is the output of a semi-empirical parameter optimization:
	// whitespace-delimited numeric columns, one auxiliary test-set file.
	KindSemp Kind = iota
	// KindPbqff is the output of a QFF run: phase-segmented "[iter ..."
	// progress lines.
	KindPbqff
)

// parser converts the fetched primary (and, for kinds that use one,
// auxiliary) file contents into an ordered set of named series.
type parser func(primary, aux string) ([]Series, error)

// parsers is the dispatch table for the known kinds. Adding a kind means
// adding one constant and one entry here; call sites dispatch through Parse.
var parsers = map[Kind]parser{
	KindSemp:  parseSemp,
	KindPbqff: parsePbqff,
}

// ParseKind converts a config string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "semp":
		return KindSemp, nil
	case "pbqff":
		return KindPbqff, nil
	}
	return 0, fmt.Errorf("unknown target kind %q", s)
}

// String returns the config spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindSemp:
		return "semp"
	case KindPbqff:
		return "pbqff"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// NeedsCompanion reports whether the kind requires the auxiliary companion
// file to be fetched alongside the primary one.
func (k Kind) NeedsCompanion() bool {
	return k == KindSemp
}

// Parse runs the kind's parser over the fetched contents.
func Parse(k Kind, primary, aux string) ([]Series, error) {
	p, ok := parsers[k]
	if !ok {
		return nil, fmt.Errorf("no parser registered for kind %v", k)
	}
	return p(primary, aux)
}

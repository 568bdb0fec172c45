package diag

import "fmt"

// Category groups rules by the kind of style concern they cover.
type Category uint8

const (
	// CatNaming covers identifier shape rules.
	CatNaming Category = iota
	// CatSpacing covers horizontal whitespace rules.
	CatSpacing
	// CatStructure covers layout rules: blank lines, braces, indentation.
	CatStructure
	// CatIdiom covers language idiom rules.
	CatIdiom
	// CatText covers raw text rules independent of the token grammar.
	CatText
	// CatTool is reserved for engine failures (parse failures, rule faults,
	// fix non-convergence); no rule may register under it.
	CatTool
)

func (c Category) String() string {
	switch c {
	case CatNaming:
		return "naming"
	case CatSpacing:
		return "spacing"
	case CatStructure:
		return "structure"
	case CatIdiom:
		return "idiom"
	case CatText:
		return "text"
	case CatTool:
		return "tool-error"
	}
	return "unknown"
}

// ParseCategory maps a configuration string to a rule category. The tool
// category is not accepted: it cannot be configured.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "naming":
		return CatNaming, nil
	case "spacing":
		return CatSpacing, nil
	case "structure":
		return CatStructure, nil
	case "idiom":
		return CatIdiom, nil
	case "text":
		return CatText, nil
	}
	return CatNaming, fmt.Errorf("unknown category %q", s)
}

// MarshalText renders the category by name in JSON output.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

package checker

import (
	"strings"

	"sgstyle/internal/diag"
	"sgstyle/internal/srcmodel"
	"sgstyle/internal/token"
)

const (
	disableDirective         = "sgstyle:disable"
	disableNextLineDirective = "sgstyle:disable-next-line"
)

// suppressions maps 1-based line numbers to suppressed rule ids. A nil set
// suppresses every rule on that line.
type suppressions map[uint32]map[string]bool

// collectSuppressions scans line comments for disable directives.
// "// sgstyle:disable id1,id2" acts on the comment's own line,
// "// sgstyle:disable-next-line id1" on the following line. A directive
// without ids suppresses all rules.
func collectSuppressions(m *srcmodel.Model) suppressions {
	var sup suppressions
	for i := 0; i < m.Len(); i++ {
		tok := m.At(i)
		if tok.Kind != token.LineComment {
			continue
		}
		body := strings.TrimSpace(strings.TrimPrefix(tok.Text, "//"))

		var rest string
		line := m.File.Position(tok.Span.Start).Line
		switch {
		case hasDirective(body, disableNextLineDirective):
			rest = body[len(disableNextLineDirective):]
			line++
		case hasDirective(body, disableDirective):
			rest = body[len(disableDirective):]
		default:
			continue
		}

		if sup == nil {
			sup = make(suppressions)
		}
		ids := parseRuleIDs(rest)
		if ids == nil {
			sup[line] = nil // all rules
			continue
		}
		if existing, ok := sup[line]; ok {
			if existing == nil {
				continue
			}
			for id := range ids {
				existing[id] = true
			}
			continue
		}
		sup[line] = ids
	}
	return sup
}

// hasDirective reports whether body is the directive, optionally followed
// by rule ids separated from it by whitespace.
func hasDirective(body, directive string) bool {
	if !strings.HasPrefix(body, directive) {
		return false
	}
	rest := body[len(directive):]
	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

func parseRuleIDs(rest string) map[string]bool {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return nil
	}
	ids := make(map[string]bool)
	for _, part := range strings.Split(rest, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids[id] = true
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return ids
}

func filterSuppressed(m *srcmodel.Model, vs []diag.Violation) []diag.Violation {
	sup := collectSuppressions(m)
	if len(sup) == 0 {
		return vs
	}
	kept := vs[:0]
	for _, v := range vs {
		line := m.File.Position(v.Span.Start).Line
		ids, ok := sup[line]
		if ok && (ids == nil || ids[v.Rule]) {
			continue
		}
		kept = append(kept, v)
	}
	return kept
}

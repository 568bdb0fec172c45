package checker_test

import (
	"strings"
	"testing"

	"sgstyle/internal/checker"
	"sgstyle/internal/config"
	"sgstyle/internal/diag"
	"sgstyle/internal/rule"
	"sgstyle/internal/scan"
	"sgstyle/internal/source"
	"sgstyle/internal/srcmodel"
	"sgstyle/internal/testkit"
	"sgstyle/internal/token"
)

func modelFor(t *testing.T, content string) *srcmodel.Model {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.sg", []byte(content)))
	toks, err := scan.New().Tokens(file)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	m, err := srcmodel.Build(file, toks, 0)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return m
}

func registryFor(t *testing.T, builtins ...rule.Rule) *rule.Registry {
	t.Helper()
	reg, err := rule.Load(builtins, config.Default())
	if err != nil {
		t.Fatalf("rule.Load failed: %v", err)
	}
	return reg
}

// tabFlagger flags every tab-bearing space token.
type tabFlagger struct{}

func (tabFlagger) Meta() rule.Meta {
	return rule.Meta{
		ID:              "no-tabs",
		Title:           "flag tab characters",
		Category:        diag.CatText,
		DefaultSeverity: diag.SevWarning,
		DefaultEnabled:  true,
	}
}

func (tabFlagger) Kinds() []token.Kind { return []token.Kind{token.Space} }

func (tabFlagger) CheckToken(ctx *rule.Context, i int) []diag.Violation {
	if !strings.Contains(ctx.Model.Text(i), "\t") {
		return nil
	}
	return []diag.Violation{ctx.Violation(ctx.Model.At(i).Span, "tab character")}
}

// identFlagger flags every identifier, used to exercise ordering.
type identFlagger struct{}

func (identFlagger) Meta() rule.Meta {
	return rule.Meta{
		ID:              "every-ident",
		Title:           "flag identifiers",
		Category:        diag.CatNaming,
		DefaultSeverity: diag.SevInfo,
		DefaultEnabled:  true,
	}
}

func (identFlagger) Kinds() []token.Kind { return []token.Kind{token.Ident} }

func (identFlagger) CheckToken(ctx *rule.Context, i int) []diag.Violation {
	return []diag.Violation{ctx.Violation(ctx.Model.At(i).Span, "identifier")}
}

// wholeFile flags the file once at offset zero.
type wholeFile struct{}

func (wholeFile) Meta() rule.Meta {
	return rule.Meta{
		ID:              "whole-file",
		Title:           "flag the file",
		Category:        diag.CatStructure,
		DefaultSeverity: diag.SevWarning,
		DefaultEnabled:  true,
	}
}

func (wholeFile) Check(ctx *rule.Context) []diag.Violation {
	span := source.Span{File: ctx.File.ID, Start: 0, End: 0}
	return []diag.Violation{ctx.Violation(span, "file checked")}
}

// panicky panics at the second token it sees, after emitting one violation.
type panicky struct{}

func (panicky) Meta() rule.Meta {
	return rule.Meta{
		ID:              "panicky",
		Title:           "panics mid-file",
		Category:        diag.CatIdiom,
		DefaultSeverity: diag.SevWarning,
		DefaultEnabled:  true,
	}
}

func (panicky) Kinds() []token.Kind { return []token.Kind{token.Ident} }

func (panicky) CheckToken(ctx *rule.Context, i int) []diag.Violation {
	if ctx.Model.Text(i) == "boom" {
		panic("rule exploded")
	}
	return []diag.Violation{ctx.Violation(ctx.Model.At(i).Span, "fine")}
}

// panickyFile panics during the whole-file pass.
type panickyFile struct{}

func (panickyFile) Meta() rule.Meta {
	return rule.Meta{
		ID:              "panicky-file",
		Title:           "panics on file",
		Category:        diag.CatIdiom,
		DefaultSeverity: diag.SevWarning,
		DefaultEnabled:  true,
	}
}

func (panickyFile) Check(*rule.Context) []diag.Violation {
	panic("file rule exploded")
}

func TestCheckCanonicalOrder(t *testing.T) {
	m := modelFor(t, "alpha\tbeta\n")
	reg := registryFor(t, tabFlagger{}, identFlagger{}, wholeFile{})

	vs, faults := checker.Check(m, reg, config.Default())
	if len(faults) != 0 {
		t.Fatalf("unexpected faults: %+v", faults)
	}
	if err := testkit.CheckViolationOrder(vs); err != nil {
		t.Fatalf("ordering invariant breached: %v", err)
	}

	// alpha at 0, whole-file at 0, tab at 5, beta at 6; ties at offset 0
	// break on rule id: every-ident < whole-file.
	want := []struct {
		rule  string
		start uint32
	}{
		{"every-ident", 0},
		{"whole-file", 0},
		{"no-tabs", 5},
		{"every-ident", 6},
	}
	if len(vs) != len(want) {
		t.Fatalf("expected %d violations, got %d: %+v", len(want), len(vs), vs)
	}
	for i, w := range want {
		if vs[i].Rule != w.rule || vs[i].Span.Start != w.start {
			t.Errorf("position %d: expected %s@%d, got %s@%d",
				i, w.rule, w.start, vs[i].Rule, vs[i].Span.Start)
		}
	}
}

func TestCheckIsolatesPanickingTokenRule(t *testing.T) {
	m := modelFor(t, "ok boom after\n")
	reg := registryFor(t, panicky{}, identFlagger{})

	vs, faults := checker.Check(m, reg, config.Default())

	if len(faults) != 1 {
		t.Fatalf("expected 1 fault record, got %d", len(faults))
	}
	fault := faults[0]
	if fault.RuleID != diag.ToolRuleFault || fault.Category != diag.CatTool {
		t.Errorf("unexpected fault record: %+v", fault)
	}
	if !strings.Contains(fault.Message, "panicky") {
		t.Errorf("fault must name the rule, got %q", fault.Message)
	}

	// The faulted rule's findings are discarded; the healthy rule's remain.
	for _, v := range vs {
		if v.Rule == "panicky" {
			t.Errorf("faulted rule's violation leaked: %+v", v)
		}
	}
	identCount := 0
	for _, v := range vs {
		if v.Rule == "every-ident" {
			identCount++
		}
	}
	if identCount != 3 {
		t.Errorf("healthy rule must still see all 3 identifiers, got %d", identCount)
	}
}

func TestCheckIsolatesPanickingFileRule(t *testing.T) {
	m := modelFor(t, "x\n")
	reg := registryFor(t, panickyFile{}, identFlagger{})

	vs, faults := checker.Check(m, reg, config.Default())
	if len(faults) != 1 {
		t.Fatalf("expected 1 fault record, got %d", len(faults))
	}
	if len(vs) != 1 || vs[0].Rule != "every-ident" {
		t.Fatalf("healthy rule output malformed: %+v", vs)
	}
}

func TestSuppressSameLine(t *testing.T) {
	m := modelFor(t, "keep\nhush // sgstyle:disable every-ident\n")
	reg := registryFor(t, identFlagger{})

	vs, _ := checker.Check(m, reg, config.Default())
	if len(vs) != 1 {
		t.Fatalf("expected 1 violation, got %d: %+v", len(vs), vs)
	}
	if start := vs[0].Span.Start; start != 0 {
		t.Errorf("surviving violation must be the first line's, got offset %d", start)
	}
}

func TestSuppressNextLine(t *testing.T) {
	m := modelFor(t, "// sgstyle:disable-next-line every-ident\nhush\nkeep\n")
	reg := registryFor(t, identFlagger{})

	vs, _ := checker.Check(m, reg, config.Default())
	if len(vs) != 1 {
		t.Fatalf("expected 1 violation, got %d: %+v", len(vs), vs)
	}
	if m.File.Position(vs[0].Span.Start).Line != 3 {
		t.Errorf("only line 3 must survive, got line %d",
			m.File.Position(vs[0].Span.Start).Line)
	}
}

func TestSuppressAllRulesWhenNoIDGiven(t *testing.T) {
	m := modelFor(t, "hush\ttoo // sgstyle:disable\n")
	reg := registryFor(t, identFlagger{}, tabFlagger{})

	vs, _ := checker.Check(m, reg, config.Default())
	if len(vs) != 0 {
		t.Fatalf("bare disable must suppress everything, got %+v", vs)
	}
}

func TestSuppressListsSeveralIDs(t *testing.T) {
	m := modelFor(t, "hush\ttoo // sgstyle:disable every-ident, no-tabs\n")
	reg := registryFor(t, identFlagger{}, tabFlagger{})

	vs, _ := checker.Check(m, reg, config.Default())
	if len(vs) != 0 {
		t.Fatalf("both listed rules must be suppressed, got %+v", vs)
	}
}

func TestSuppressOtherRuleStillReported(t *testing.T) {
	m := modelFor(t, "hush\ttoo // sgstyle:disable no-tabs\n")
	reg := registryFor(t, identFlagger{}, tabFlagger{})

	vs, _ := checker.Check(m, reg, config.Default())
	// Identifiers on the line still violate; only the tab is forgiven.
	for _, v := range vs {
		if v.Rule == "no-tabs" {
			t.Errorf("no-tabs must be suppressed, got %+v", v)
		}
	}
	if len(vs) == 0 {
		t.Error("unlisted rules must keep reporting")
	}
}

func TestSuppressIgnoresLookalikeDirective(t *testing.T) {
	m := modelFor(t, "hush // sgstyle:disablefoo\n")
	reg := registryFor(t, identFlagger{})

	vs, _ := checker.Check(m, reg, config.Default())
	if len(vs) != 1 {
		t.Fatalf("malformed directive must not suppress, got %+v", vs)
	}
}

func TestClassify(t *testing.T) {
	styleErr := diag.Record{Severity: diag.SevError, Category: diag.CatNaming}
	styleWarnFixed := diag.Record{Severity: diag.SevWarning, Category: diag.CatSpacing, Fixed: true}
	toolFault := diag.RuleFaultRecord("f.sg", "r", "boom")
	convergence := diag.FixNotConvergedRecord("f.sg", 10)

	cases := []struct {
		name    string
		records []diag.Record
		applied int
		want    checker.Outcome
	}{
		{"no records", nil, 0, checker.OutcomeClean},
		{"all fixed", []diag.Record{styleWarnFixed}, 1, checker.OutcomeFixed},
		{"unfixed remain", []diag.Record{styleErr}, 0, checker.OutcomeViolationsRemain},
		{"fixed plus remaining", []diag.Record{styleWarnFixed, styleErr}, 1, checker.OutcomeViolationsRemain},
		{"tool fault wins", []diag.Record{styleErr, toolFault}, 0, checker.OutcomeToolError},
		{"convergence warning alone", []diag.Record{convergence}, 3, checker.OutcomeFixed},
	}
	for _, tc := range cases {
		if got := checker.Classify(tc.records, tc.applied); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

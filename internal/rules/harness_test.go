package rules_test

import (
	"testing"

	"sgstyle/internal/checker"
	"sgstyle/internal/config"
	"sgstyle/internal/diag"
	"sgstyle/internal/fixer"
	"sgstyle/internal/rule"
	"sgstyle/internal/scan"
	"sgstyle/internal/source"
	"sgstyle/internal/srcmodel"
	"sgstyle/internal/testkit"
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

// check runs one rule over content and fails the test on rule faults.
func check(t *testing.T, r rule.Rule, cfg *config.Config, content string) []diag.Violation {
	t.Helper()
	reg, err := rule.Load([]rule.Rule{r}, cfg)
	if err != nil {
		t.Fatalf("rule.Load failed: %v", err)
	}
	vs, faults := checker.Check(modelFor(t, content), reg, cfg)
	if len(faults) != 0 {
		t.Fatalf("expected no faults, got %d: %v", len(faults), faults)
	}
	return vs
}

// fixOnce applies a single round of accepted fixes.
func fixOnce(t *testing.T, r rule.Rule, cfg *config.Config, content string) string {
	t.Helper()
	plan := fixer.Resolve(check(t, r, cfg, content))
	if err := testkit.CheckPlanDisjoint(plan); err != nil {
		t.Fatalf("plan invariant breached: %v", err)
	}
	out, err := fixer.Apply(content, plan.Accepted)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	return out
}

// fixAll reapplies fixes until the text settles.
func fixAll(t *testing.T, r rule.Rule, cfg *config.Config, content string) string {
	t.Helper()
	for i := 0; i < 10; i++ {
		next := fixOnce(t, r, cfg, content)
		if next == content {
			return content
		}
		content = next
	}
	t.Fatalf("fixes did not settle, text is now %q", content)
	return ""
}

func single(t *testing.T, vs []diag.Violation) diag.Violation {
	t.Helper()
	if len(vs) != 1 {
		t.Fatalf("expected exactly 1 violation, got %d", len(vs))
	}
	return vs[0]
}

func wantClean(t *testing.T, r rule.Rule, cfg *config.Config, content string) {
	t.Helper()
	if vs := check(t, r, cfg, content); len(vs) != 0 {
		t.Fatalf("expected no violations for %q, got %d (first: %s at %d)",
			content, len(vs), vs[0].Message, vs[0].Span.Start)
	}
}

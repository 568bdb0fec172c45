package rule

import (
	"errors"
	"testing"

	"sgstyle/internal/config"
	"sgstyle/internal/diag"
)

type stubRule struct {
	meta Meta
}

func (r stubRule) Meta() Meta                      { return r.meta }
func (r stubRule) Check(*Context) []diag.Violation { return nil }

// bareRule implements neither FileRule nor TokenRule.
type bareRule struct{ meta Meta }

func (r bareRule) Meta() Meta { return r.meta }

func stub(id string, cat diag.Category) Rule {
	return stubRule{meta: Meta{
		ID:              id,
		Title:           id,
		Category:        cat,
		DefaultSeverity: diag.SevWarning,
		DefaultEnabled:  true,
	}}
}

func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func TestLoadOrdersLexicographically(t *testing.T) {
	builtins := []Rule{
		stub("zulu", diag.CatSpacing),
		stub("alpha", diag.CatNaming),
		stub("mike", diag.CatIdiom),
	}
	reg, err := Load(builtins, config.Default())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := []string{"alpha", "mike", "zulu"}
	active := reg.Active()
	if len(active) != len(want) {
		t.Fatalf("expected %d active rules, got %d", len(want), len(active))
	}
	for i, id := range want {
		if active[i].Meta.ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, active[i].Meta.ID)
		}
		if active[i].Order != i {
			t.Errorf("rule %s: expected order %d, got %d", id, i, active[i].Order)
		}
	}
}

func TestLoadCategoryAndRuleOverrides(t *testing.T) {
	builtins := []Rule{
		stub("colon-spacing", diag.CatSpacing),
		stub("comma-spacing", diag.CatSpacing),
		stub("type-naming", diag.CatNaming),
	}
	cfg := config.Default()
	cfg.Categories = map[string]config.CategoryConfig{
		"spacing": {Enabled: boolPtr(false), Severity: strPtr("info")},
	}
	cfg.Rules = map[string]config.RuleConfig{
		// Per-rule override wins over its category.
		"comma-spacing": {Enabled: boolPtr(true), Severity: strPtr("error")},
	}

	reg, err := Load(builtins, cfg)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if reg.Enabled("colon-spacing") {
		t.Error("category override must disable colon-spacing")
	}
	if !reg.Enabled("comma-spacing") {
		t.Error("rule override must re-enable comma-spacing")
	}
	if !reg.Enabled("type-naming") {
		t.Error("unrelated category must stay enabled")
	}
	for _, ar := range reg.Active() {
		if ar.Meta.ID == "comma-spacing" && ar.Severity != diag.SevError {
			t.Errorf("expected error severity, got %v", ar.Severity)
		}
	}
}

func TestLoadRejectsUnknownRuleID(t *testing.T) {
	cfg := config.Default()
	cfg.Rules = map[string]config.RuleConfig{"no-such-rule": {}}
	_, err := Load([]Rule{stub("alpha", diag.CatNaming)}, cfg)
	var cerr *config.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *config.Error, got %v", err)
	}
}

func TestLoadRejectsUnknownCategory(t *testing.T) {
	cfg := config.Default()
	cfg.Categories = map[string]config.CategoryConfig{"braces": {}}
	_, err := Load([]Rule{stub("alpha", diag.CatNaming)}, cfg)
	var cerr *config.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *config.Error, got %v", err)
	}
}

func TestLoadRejectsBadSeverity(t *testing.T) {
	cfg := config.Default()
	cfg.Rules = map[string]config.RuleConfig{
		"alpha": {Severity: strPtr("fatal")},
	}
	_, err := Load([]Rule{stub("alpha", diag.CatNaming)}, cfg)
	var cerr *config.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *config.Error, got %v", err)
	}
}

func TestLoadRejectsUnknownParamKey(t *testing.T) {
	builtin := stubRule{meta: Meta{
		ID:              "indent-style",
		Category:        diag.CatStructure,
		DefaultSeverity: diag.SevWarning,
		DefaultEnabled:  true,
		ParamKeys:       []string{"style"},
	}}
	cfg := config.Default()
	cfg.Rules = map[string]config.RuleConfig{
		"indent-style": {Params: map[string]any{"stile": "spaces"}},
	}
	_, err := Load([]Rule{builtin}, cfg)
	var cerr *config.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *config.Error, got %v", err)
	}
}

func TestLoadRejectsDuplicateID(t *testing.T) {
	_, err := Load([]Rule{
		stub("alpha", diag.CatNaming),
		stub("alpha", diag.CatNaming),
	}, config.Default())
	if err == nil {
		t.Fatal("expected duplicate id to fail")
	}
}

func TestLoadRejectsRuleWithoutCheckSurface(t *testing.T) {
	bare := bareRule{meta: Meta{ID: "alpha", DefaultEnabled: true}}
	if _, err := Load([]Rule{bare}, config.Default()); err == nil {
		t.Fatal("expected rule without a check surface to fail")
	}
}

func TestHashTracksConfiguration(t *testing.T) {
	builtins := []Rule{stub("alpha", diag.CatNaming), stub("beta", diag.CatSpacing)}

	r1, err := Load(builtins, config.Default())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	r2, err := Load(builtins, config.Default())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if r1.Hash() != r2.Hash() {
		t.Error("identical configuration must hash identically")
	}

	cfg := config.Default()
	cfg.Rules = map[string]config.RuleConfig{
		"beta": {Severity: strPtr("error")},
	}
	r3, err := Load(builtins, cfg)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if r3.Hash() == r1.Hash() {
		t.Error("severity override must change the registry hash")
	}

	cfg2 := config.Default()
	cfg2.LineLength = 80
	r4, err := Load(builtins, cfg2)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if r4.Hash() == r1.Hash() {
		t.Error("global knobs must feed the registry hash")
	}
}

func TestParamsAccessors(t *testing.T) {
	p := Params{
		"style": "spaces",
		"limit": int64(100),
		"flag":  true,
	}
	if got := p.String("style", "tabs"); got != "spaces" {
		t.Errorf("expected spaces, got %q", got)
	}
	if got := p.String("missing", "tabs"); got != "tabs" {
		t.Errorf("expected default, got %q", got)
	}
	if got := p.Int("limit", 4); got != 100 {
		t.Errorf("expected 100, got %d", got)
	}
	if got := p.Int("style", 4); got != 4 {
		t.Errorf("wrong type must fall back to default, got %d", got)
	}
	if !p.Bool("flag", false) {
		t.Error("expected flag true")
	}
	if p.Bool("missing", false) {
		t.Error("expected default false")
	}
}

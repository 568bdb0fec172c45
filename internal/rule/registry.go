package rule

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	"sgstyle/internal/config"
	"sgstyle/internal/diag"
)

// ActiveRule is one enabled rule with its effective configuration applied.
type ActiveRule struct {
	Rule     Rule
	Meta     Meta
	Severity diag.Severity
	Params   Params
	// Order is the rule's index in the lexicographic active list. It is the
	// tie-break key for fix conflicts and survives for one invocation only.
	Order int
}

// Registry is the resolved rule set for one invocation. Read-only after
// Load, so workers share it without locking.
type Registry struct {
	active []ActiveRule
	all    []Meta
	hash   string
}

// Load resolves built-in rules against the configuration. Category
// overrides apply first, per-rule overrides win. The active list is ordered
// lexicographically by rule id regardless of registration order.
func Load(builtins []Rule, cfg *config.Config) (*Registry, error) {
	byID := make(map[string]Rule, len(builtins))
	metas := make([]Meta, 0, len(builtins))
	for _, r := range builtins {
		meta := r.Meta()
		if _, dup := byID[meta.ID]; dup {
			return nil, fmt.Errorf("duplicate rule id %q", meta.ID)
		}
		if meta.Category == diag.CatTool {
			return nil, fmt.Errorf("rule %q registered under the reserved tool category", meta.ID)
		}
		switch r.(type) {
		case FileRule, TokenRule:
		default:
			return nil, fmt.Errorf("rule %q implements neither FileRule nor TokenRule", meta.ID)
		}
		byID[meta.ID] = r
		metas = append(metas, meta)
	}
	sort.Slice(metas, func(i, j int) bool { return metas[i].ID < metas[j].ID })

	catEnabled := make(map[diag.Category]*bool)
	catSeverity := make(map[diag.Category]*diag.Severity)
	for name, cc := range cfg.Categories {
		cat, err := diag.ParseCategory(name)
		if err != nil {
			return nil, config.Errorf(cfg.Path, "[categories.%s]: %v", name, err)
		}
		if cc.Enabled != nil {
			catEnabled[cat] = cc.Enabled
		}
		if cc.Severity != nil {
			sev, err := diag.ParseSeverity(*cc.Severity)
			if err != nil {
				return nil, config.Errorf(cfg.Path, "[categories.%s]: %v", name, err)
			}
			catSeverity[cat] = &sev
		}
	}

	for id, rc := range cfg.Rules {
		r, ok := byID[id]
		if !ok {
			return nil, config.Errorf(cfg.Path, "[rules.%s]: unknown rule id", id)
		}
		if rc.Severity != nil {
			if _, err := diag.ParseSeverity(*rc.Severity); err != nil {
				return nil, config.Errorf(cfg.Path, "[rules.%s]: %v", id, err)
			}
		}
		meta := r.Meta()
		for key := range rc.Params {
			if !meta.hasParam(key) {
				return nil, config.Errorf(cfg.Path, "[rules.%s.params]: unknown key %q", id, key)
			}
		}
	}

	reg := &Registry{all: metas}
	for _, meta := range metas {
		enabled := meta.DefaultEnabled
		severity := meta.DefaultSeverity
		if v, ok := catEnabled[meta.Category]; ok {
			enabled = *v
		}
		if v, ok := catSeverity[meta.Category]; ok {
			severity = *v
		}
		var params Params
		if rc, ok := cfg.Rules[meta.ID]; ok {
			if rc.Enabled != nil {
				enabled = *rc.Enabled
			}
			if rc.Severity != nil {
				sev, _ := diag.ParseSeverity(*rc.Severity)
				severity = sev
			}
			if len(rc.Params) > 0 {
				params = Params(rc.Params)
			}
		}
		if !enabled {
			continue
		}
		reg.active = append(reg.active, ActiveRule{
			Rule:     byID[meta.ID],
			Meta:     meta,
			Severity: severity,
			Params:   params,
			Order:    len(reg.active),
		})
	}

	reg.hash = computeHash(reg.active, cfg)
	return reg, nil
}

// Active returns the enabled rules in canonical order.
// Callers must not modify the returned slice.
func (r *Registry) Active() []ActiveRule {
	return r.active
}

// All returns the metadata of every built-in rule, enabled or not, in
// canonical order.
func (r *Registry) All() []Meta {
	return r.all
}

// Enabled reports whether the rule with the given id is active.
func (r *Registry) Enabled(id string) bool {
	for i := range r.active {
		if r.active[i].Meta.ID == id {
			return true
		}
	}
	return false
}

// Hash is a digest of the effective configuration: active rule ids,
// severities, params and the global knobs. Cache entries keyed by it are
// invalidated whenever the configuration changes behavior.
func (r *Registry) Hash() string {
	return r.hash
}

func computeHash(active []ActiveRule, cfg *config.Config) string {
	h := sha256.New()
	fmt.Fprintf(h, "globals:%d:%d:%d\n",
		cfg.MaxFixIterations, cfg.LineLength, cfg.IndentWidth)
	for _, ar := range active {
		fmt.Fprintf(h, "rule:%s:%d\n", ar.Meta.ID, ar.Severity)
		keys := make([]string, 0, len(ar.Params))
		for k := range ar.Params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(h, "param:%s=%v\n", k, ar.Params[k])
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Package checker runs the active rules over one source model revision.
//
// All token rules share a single traversal: each registers the token kinds
// it cares about and is invoked at every matching token. Whole-file rules
// run once after the traversal. A panicking rule is isolated: its output
// for the file is discarded, a single rule-fault record is emitted, and
// every other rule keeps running.
package checker

import (
	"sgstyle/internal/config"
	"sgstyle/internal/diag"
	"sgstyle/internal/rule"
	"sgstyle/internal/srcmodel"
	"sgstyle/internal/token"
)

// Check evaluates every active rule against the model. Violations come back
// in canonical order: start offset ascending, rule id breaking ties.
// Suppressed violations are already filtered out. Faults carries one
// tool-category record per rule that panicked.
func Check(m *srcmodel.Model, reg *rule.Registry, cfg *config.Config) (violations []diag.Violation, faults []diag.Record) {
	active := reg.Active()

	// Violations are collected per rule so a fault can discard exactly the
	// faulted rule's findings.
	perRule := make([][]diag.Violation, len(active))
	faulted := make([]bool, len(active))
	ctxs := make([]*rule.Context, len(active))
	for i, ar := range active {
		ctxs[i] = rule.NewContext(m, ar, cfg.LineLength, cfg.IndentWidth)
	}

	// Kind dispatch table for the combined traversal.
	var byKind map[token.Kind][]int
	for i, ar := range active {
		tr, ok := ar.Rule.(rule.TokenRule)
		if !ok {
			continue
		}
		if byKind == nil {
			byKind = make(map[token.Kind][]int)
		}
		for _, k := range tr.Kinds() {
			byKind[k] = append(byKind[k], i)
		}
	}

	if byKind != nil {
		for ti := 0; ti < m.Len(); ti++ {
			indices, ok := byKind[m.At(ti).Kind]
			if !ok {
				continue
			}
			for _, ri := range indices {
				if faulted[ri] {
					continue
				}
				vs, fault := invokeToken(ctxs[ri], active[ri].Rule.(rule.TokenRule), ti)
				if fault != nil {
					faulted[ri] = true
					perRule[ri] = nil
					faults = append(faults, diag.RuleFaultRecord(m.File.Path, active[ri].Meta.ID, fault))
					continue
				}
				perRule[ri] = append(perRule[ri], vs...)
			}
		}
	}

	for ri, ar := range active {
		fr, ok := ar.Rule.(rule.FileRule)
		if !ok || faulted[ri] {
			continue
		}
		vs, fault := invokeFile(ctxs[ri], fr)
		if fault != nil {
			faulted[ri] = true
			perRule[ri] = nil
			faults = append(faults, diag.RuleFaultRecord(m.File.Path, ar.Meta.ID, fault))
			continue
		}
		perRule[ri] = append(perRule[ri], vs...)
	}

	for _, vs := range perRule {
		violations = append(violations, vs...)
	}
	violations = filterSuppressed(m, violations)
	diag.SortViolations(violations)
	return violations, faults
}

func invokeToken(ctx *rule.Context, tr rule.TokenRule, i int) (vs []diag.Violation, fault any) {
	defer func() {
		if r := recover(); r != nil {
			vs, fault = nil, r
		}
	}()
	return tr.CheckToken(ctx, i), nil
}

func invokeFile(ctx *rule.Context, fr rule.FileRule) (vs []diag.Violation, fault any) {
	defer func() {
		if r := recover(); r != nil {
			vs, fault = nil, r
		}
	}()
	return fr.Check(ctx), nil
}

package driver

import (
	"errors"
	"os"

	"sgstyle/internal/checker"
	"sgstyle/internal/config"
	"sgstyle/internal/diag"
	"sgstyle/internal/fixer"
	"sgstyle/internal/rule"
	"sgstyle/internal/source"
	"sgstyle/internal/srcmodel"
)

// runFile loads one file, consults the cache, and runs the check-fix
// loop. The boolean reports whether the result came from the cache. Every
// worker gets its own FileSet: fix passes mint new revisions and FileSet
// is not safe for concurrent use.
func runFile(parser srcmodel.Parser, reg *rule.Registry, cfg *config.Config, cache *Cache, path string, fix bool) (checker.RunResult, bool) {
	fileSet := source.NewFileSet()
	id, err := fileSet.Load(path)
	if err != nil {
		records := []diag.Record{
			diag.IOErrorRecord(path, "failed to read file: "+err.Error()),
		}
		return checker.RunResult{
			Path:    path,
			Records: records,
			Outcome: checker.Classify(records, 0),
		}, false
	}
	file := fileSet.Get(id)

	// Fix runs rewrite content, so only check-only results are cacheable.
	var key CacheKey
	if cache != nil && !fix {
		key = Key(file.Hash, reg.Hash())
		if payload, ok := cache.Get(key); ok {
			return resultFromPayload(path, payload), true
		}
	}

	res := checkLoop(parser, reg, cfg, fileSet, file, fix)
	if cache != nil && !fix {
		cache.Put(key, payloadFromResult(res))
	}
	return res, false
}

// checkLoop alternates checking and fixing until a pass accepts no edits.
// The iteration bound turns mutually non-converging fixes into a
// fix-not-converged warning instead of an endless loop. Records carry
// positions resolved against the revision they were found in, so a fixed
// violation keeps pointing at the text the user actually saw.
func checkLoop(parser srcmodel.Parser, reg *rule.Registry, cfg *config.Config, fileSet *source.FileSet, file *source.File, fix bool) checker.RunResult {
	path := file.Path
	res := checker.RunResult{Path: path}

	// Fixed records are held aside until the loop ends: if a later pass
	// breaks, the file is left untouched on disk and they flip to unfixed.
	var fixedRecords []diag.Record
	rounds := 0
	broken := false

	for {
		res.Passes++

		tokens, err := parser.Tokens(file)
		if err != nil {
			res.Records = append(res.Records, parseFailure(file, err))
			broken = true
			break
		}
		model, err := srcmodel.Build(file, tokens, rounds)
		if err != nil {
			res.Records = append(res.Records, parseFailure(file, err))
			broken = true
			break
		}

		violations, faults := checker.Check(model, reg, cfg)
		res.Records = append(res.Records, faults...)

		var plan fixer.Plan
		if fix {
			plan = fixer.Resolve(violations)
		}
		if plan.Empty() {
			// Nothing (left) to apply: whatever remains is reported as is.
			for _, v := range violations {
				res.Records = append(res.Records, diag.FromViolation(file, v, false))
			}
			break
		}
		if rounds == cfg.MaxFixIterations {
			res.Records = append(res.Records, diag.FixNotConvergedRecord(path, cfg.MaxFixIterations))
			for _, v := range violations {
				res.Records = append(res.Records, diag.FromViolation(file, v, false))
			}
			break
		}

		text, err := fixer.Apply(string(file.Content), plan.Accepted)
		if err != nil {
			res.Records = append(res.Records, applyFailure(path, err))
			broken = true
			break
		}
		applied := fixer.Applied(plan, violations)
		for i, v := range violations {
			if applied[i] {
				fixedRecords = append(fixedRecords, diag.FromViolation(file, v, true))
			}
		}
		res.AppliedEdits += len(plan.Accepted)
		rounds++

		id := fileSet.AddVirtual(path, []byte(text))
		file = fileSet.Get(id)
	}

	if fix && res.AppliedEdits > 0 {
		if broken {
			// The rewritten text failed a later pass; keep the file on
			// disk as it was and report the fixes as not applied.
			res.AppliedEdits = 0
			for i := range fixedRecords {
				fixedRecords[i].Fixed = false
			}
		} else if err := writeBack(path, file.Content); err != nil {
			res.Records = append(res.Records,
				diag.IOErrorRecord(path, "failed to write fixes: "+err.Error()))
			res.AppliedEdits = 0
			for i := range fixedRecords {
				fixedRecords[i].Fixed = false
			}
		}
	}

	res.Records = append(res.Records, fixedRecords...)
	diag.SortRecords(res.Records)
	res.Outcome = checker.Classify(res.Records, res.AppliedEdits)
	return res
}

func parseFailure(file *source.File, err error) diag.Record {
	var pe *srcmodel.ParseError
	if errors.As(err, &pe) {
		return diag.ParseFailureRecord(file.Path, file.Position(pe.Span.Start), pe.Msg)
	}
	return diag.ParseFailureRecord(file.Path, source.LineCol{}, err.Error())
}

// applyFailure covers a plan that no longer matches its snapshot. The
// resolver and the applier work on the same revision, so this only fires
// on a rule emitting edits outside the file or with a wrong OldText.
func applyFailure(path string, err error) diag.Record {
	return diag.Record{
		Path:     path,
		Line:     1,
		Col:      1,
		Severity: diag.SevError,
		Category: diag.CatTool,
		RuleID:   diag.ToolRuleFault,
		Message:  "fix application failed: " + err.Error(),
	}
}

// writeBack rewrites path with the fixed content. WriteFile keeps the
// existing permission bits of a file that already exists.
func writeBack(path string, content []byte) error {
	return os.WriteFile(path, content, 0o644)
}

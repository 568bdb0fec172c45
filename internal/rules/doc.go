// Package rules ships the built-in rule corpus.
//
// Every rule is pure per file: it reads one source model revision and
// returns violations, some carrying structured fixes. Rules never look at
// other files, other rules' output, or anything outside the model and their
// declared parameters. Register new rules in Builtins; the registry orders
// them by id, so registration order here is cosmetic.
package rules

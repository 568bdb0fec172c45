package rules

import (
	"golang.org/x/text/unicode/norm"

	"sgstyle/internal/diag"
	"sgstyle/internal/rule"
	"sgstyle/internal/source"
)

// UnicodeNFC requires source text to be NFC-normalized so that visually
// identical identifiers compare equal byte-wise. The check runs per line;
// NFC never recomposes across a '\n' so the line-wise result matches
// normalizing the whole file.
type UnicodeNFC struct{}

func (UnicodeNFC) Meta() rule.Meta {
	return rule.Meta{
		ID:              "unicode-nfc",
		Title:           "NFC-normalized source text",
		Category:        diag.CatText,
		DefaultSeverity: diag.SevError,
		DefaultEnabled:  true,
		CanFix:          true,
	}
}

func (UnicodeNFC) Check(ctx *rule.Context) []diag.Violation {
	f := ctx.File
	var vs []diag.Violation
	for l := uint32(1); l <= f.NumLines(); l++ {
		text := f.GetLine(l)
		if norm.NFC.IsNormalString(text) {
			continue
		}
		// QuickSpanString returns a normalization boundary, so the tail can
		// be normalized on its own without changing the combined result.
		n := norm.NFC.QuickSpanString(text)
		tail := text[n:]
		span := source.Span{
			File:  f.ID,
			Start: f.LineStart(l) + uint32(n),
			End:   f.LineStart(l) + uint32(len(text)),
		}
		v := ctx.Violation(span, "text is not NFC-normalized")
		vs = append(vs, v.WithFix("normalize to NFC",
			diag.Replace(span, tail, norm.NFC.String(tail))))
	}
	return vs
}

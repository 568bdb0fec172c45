// Package token defines the lexical token kinds of the Surge style stream.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - The stream is lossless: whitespace, newlines, and comments are
//     ordinary tokens, and concatenating every Token.Text reproduces the
//     file byte for byte.
//   - Attributes are lexed as '@' (Kind: At) + Ident; no per-attribute
//     token kinds.
//   - Built-in type names (int, uint32, float64, ...) are identifiers.
package token

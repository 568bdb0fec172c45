package srcmodel

import (
	"fmt"

	"sgstyle/internal/source"
	"sgstyle/internal/token"
)

// Parser turns one file revision into its token stream. The engine never
// tokenizes on its own; a Parser is the external collaborator behind every
// Model. Implementations must produce a lossless stream: concatenating
// every token's text reproduces the file, and the final token is EOF.
type Parser interface {
	Tokens(file *source.File) ([]token.Token, error)
}

// ParseError reports that a file could not be turned into a usable token
// stream. It is file-local: checking continues for other files, and the
// failed file surfaces as a tool-error record instead of style findings.
type ParseError struct {
	Path string
	Span source.Span
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: parse error: %s", e.Path, e.Msg)
}

// ParseErrorf builds a ParseError for the given file and span.
func ParseErrorf(file *source.File, span source.Span, format string, args ...any) *ParseError {
	return &ParseError{
		Path: file.Path,
		Span: span,
		Msg:  fmt.Sprintf(format, args...),
	}
}

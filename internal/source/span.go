package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) inside one file revision.
type Span struct {
	File  FileID
	Start uint32 // inclusive
	End   uint32 // exclusive
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover extends the span to include other. Spans from different files are
// left untouched.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Contains reports whether the byte offset falls inside the span.
func (s Span) Contains(off uint32) bool {
	return off >= s.Start && off < s.End
}

// ZeroideToStart collapses the span to a zero-width span at its start.
func (s Span) ZeroideToStart() Span {
	s.End = s.Start
	return s
}

// ZeroideToEnd collapses the span to a zero-width span at its end.
func (s Span) ZeroideToEnd() Span {
	s.Start = s.End
	return s
}

// ShiftLeft moves the span n bytes toward the file start. A shift that
// would underflow returns the span unchanged.
func (s Span) ShiftLeft(n uint32) Span {
	if n > s.Start {
		return s
	}
	return Span{
		File:  s.File,
		Start: s.Start - n,
		End:   s.End - n,
	}
}

// ShiftRight moves the span n bytes toward the file end. Shifts larger
// than the span's own length return the span unchanged.
func (s Span) ShiftRight(n uint32) Span {
	if n > s.Len() {
		return s
	}
	return Span{
		File:  s.File,
		Start: s.Start + n,
		End:   s.End + n,
	}
}

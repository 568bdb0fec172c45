package config

import "fmt"

// Error is a fatal configuration problem. The run halts before any file is
// checked; configuration errors never become per-file records.
type Error struct {
	Path string
	Msg  string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return "config: " + e.Msg
	}
	return fmt.Sprintf("config %s: %s", e.Path, e.Msg)
}

// Errorf builds an Error bound to the given config file path.
func Errorf(path, format string, args ...any) *Error {
	return &Error{Path: path, Msg: fmt.Sprintf(format, args...)}
}

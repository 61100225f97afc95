package domain

import "fmt"

// ConfigUnavailableError signals that configuration resolution was attempted
// but nothing could be located or parsed. At batch level it aborts one
// kind's run; at the top level it aborts everything.
type ConfigUnavailableError struct {
	Path string // config path or search description
	Err  error
}

func (e *ConfigUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config unavailable at %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("config unavailable at %s", e.Path)
}

func (e *ConfigUnavailableError) Unwrap() error { return e.Err }

// ContentInvalidError signals that a single file failed content validation.
// The detail is opaque to the core; it is only rendered for the user.
type ContentInvalidError struct {
	Detail string
	Line   int // 1-based, 0 when unknown
}

func (e *ContentInvalidError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Detail)
	}
	return e.Detail
}

// FileReadError signals that a single file could not be read. It aggregates
// exactly like ContentInvalidError: the file fails, the batch continues.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

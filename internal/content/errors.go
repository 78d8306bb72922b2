package content

import "fmt"

// ParseError is a content file that could not be read or decoded.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse content: %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse content: %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError is content that decoded but is unusable. Field is the path of the
// offending value, e.g. "projects[1].repo_url".
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field == "" {
		return "invalid content: " + e.Message
	}
	return fmt.Sprintf("invalid content: %s: %s", e.Field, e.Message)
}

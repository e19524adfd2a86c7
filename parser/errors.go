package parser

import "fmt"

// ParseError represents an error that occurred during tokenization.
// It includes line number and context for better error reporting.
type ParseError struct {
	// Line is the line number where the error occurred (1-based)
	Line int

	// Message describes what went wrong
	Message string

	// Context provides the actual line content that caused the error
	Context string

	// Err is the underlying error, if any
	Err error
}

// InvalidLevelError reports a level token that matched the grammar
// but failed integer conversion or exceeded a configured depth cap.
type InvalidLevelError struct {
	Raw    string
	Reason string
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid level %q: %s", e.Raw, e.Reason)
}

// UnmatchedLineError reports a non-blank line that matched no record.
// Only produced in strict mode; the default policy skips such lines.
type UnmatchedLineError struct {
	Text string
}

func (e *UnmatchedLineError) Error() string {
	return fmt.Sprintf("unmatched line %q", e.Text)
}

func (e *ParseError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("line %d: %s (context: %q)", e.Line, e.Message, e.Context)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// wrapParseError wraps an underlying error with parse context.
func wrapParseError(line int, message, context string, err error) error {
	return &ParseError{
		Line:    line,
		Message: message,
		Context: context,
		Err:     err,
	}
}

func enrichParseError(err error, prevLine, currentLine string) error {
	parseErr, ok := err.(*ParseError)
	if !ok {
		return err
	}

	context := currentLine
	if prevLine != "" {
		context = fmt.Sprintf("prev: %s | line: %s", prevLine, currentLine)
	}

	return &ParseError{
		Line:    parseErr.Line,
		Message: parseErr.Message,
		Context: context,
		Err:     parseErr.Err,
	}
}

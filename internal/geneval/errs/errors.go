package errs

import "fmt"

// Error represents a fatal evaluation error, or (when Category is
// CategoryPolicy) a non-fatal policy warning, with enough context to format
// a useful diagnostic.
type Error struct {
	Category   Category
	Message    string
	Expression string
	Policy     string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Expression != "" {
		return fmt.Sprintf("%s error in %s: %s", e.Category, e.Expression, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Category, e.Message)
}

// New creates a fatal error in the given category.
func New(category Category, expr string, format string, args ...interface{}) *Error {
	return &Error{
		Category:   category,
		Message:    fmt.Sprintf(format, args...),
		Expression: expr,
	}
}

// NewSyntax creates a syntax/arity error.
func NewSyntax(expr, format string, args ...interface{}) *Error {
	return New(CategorySyntax, expr, format, args...)
}

// NewSemantic creates a semantic error.
func NewSemantic(expr, format string, args ...interface{}) *Error {
	return New(CategorySemantic, expr, format, args...)
}

// NewGraph creates a graph (DAG) error.
func NewGraph(expr, format string, args ...interface{}) *Error {
	return New(CategoryGraph, expr, format, args...)
}

// NewPolicyWarning creates a non-fatal policy warning.
func NewPolicyWarning(policy, expr, format string, args ...interface{}) *Error {
	return &Error{
		Category:   CategoryPolicy,
		Message:    fmt.Sprintf(format, args...),
		Expression: expr,
		Policy:     policy,
	}
}

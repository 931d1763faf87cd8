package tw

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a CompileError.
type ErrorKind int

const (
	ClassNotFound ErrorKind = iota + 1
	VariantNotFound
	UnsupportedModifier
	ConfigMissing
	ConflictingVariants
)

func (k ErrorKind) String() string {
	switch k {
	case ClassNotFound:
		return "class not found"
	case VariantNotFound:
		return "variant not found"
	case UnsupportedModifier:
		return "unsupported modifier"
	case ConfigMissing:
		return "config missing"
	case ConflictingVariants:
		return "conflicting variants"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. They match any CompileError of the same kind.
var (
	ErrClassNotFound       = &CompileError{Kind: ClassNotFound}
	ErrVariantNotFound     = &CompileError{Kind: VariantNotFound}
	ErrUnsupportedModifier = &CompileError{Kind: UnsupportedModifier}
	ErrConfigMissing       = &CompileError{Kind: ConfigMissing}
	ErrConflictingVariants = &CompileError{Kind: ConflictingVariants}
)

// Suggestion is a candidate class or variant with its similarity rating.
type Suggestion struct {
	Target string
	Rating float64
}

// CompileError is returned for any class string that cannot be compiled.
// Compilation stops at the first failing token.
type CompileError struct {
	Kind        ErrorKind
	Class       string // offending token as written
	Variant     string // offending variant, for variant errors
	Scale       string // theme scale(s) consulted, for config errors
	Reason      string // short machine-friendly reason, e.g. "negative"
	Message     string
	Hint        string
	Suggestions []Suggestion
}

func (e *CompileError) Error() string {
	if e == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(e.Message)
	if sb.Len() == 0 {
		fmt.Fprintf(&sb, "%s: %q", e.Kind, e.Class)
	}
	switch len(e.Suggestions) {
	case 0:
	case 1:
		fmt.Fprintf(&sb, "\n\nDid you mean %s?", e.Suggestions[0].Target)
	default:
		sb.WriteString("\n\nTry one of these:")
		for _, s := range e.Suggestions {
			sb.WriteString("\n  ")
			sb.WriteString(s.Target)
		}
	}
	if e.Hint != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Hint)
	}
	return sb.String()
}

// Is matches sentinels by kind.
func (e *CompileError) Is(target error) bool {
	t, ok := target.(*CompileError)
	if !ok || e == nil || t == nil {
		return false
	}
	return t.Kind == e.Kind && t.Class == ""
}

// Targets lists the suggestion targets, best first.
func (e *CompileError) Targets() []string {
	if e == nil {
		return nil
	}
	out := make([]string, len(e.Suggestions))
	for i, s := range e.Suggestions {
		out[i] = s.Target
	}
	return out
}

func errClassNotFound(tok ClassToken, suggestions []Suggestion) *CompileError {
	return &CompileError{
		Kind:        ClassNotFound,
		Class:       tok.Raw,
		Message:     fmt.Sprintf("%q was not found", tok.BaseName),
		Suggestions: suggestions,
	}
}

func errUnsupported(tok ClassToken, reason, message string) *CompileError {
	return &CompileError{
		Kind:    UnsupportedModifier,
		Class:   tok.Raw,
		Reason:  reason,
		Message: message,
	}
}

func errConfigMissing(tok ClassToken, scale, message string) *CompileError {
	return &CompileError{
		Kind:    ConfigMissing,
		Class:   tok.Raw,
		Scale:   scale,
		Message: message,
	}
}

package scaffold

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dockscaffold/cli/internal/document"
)

// ValidationError is a single rule violation.
type ValidationError struct {
	// Field is the dotted path of the offending field.
	Field string
	// Kind is the kind of rule that failed.
	Kind RuleKind
	// Message describes the problem and the expected constraint.
	Message string
	// Value is the offending value rendered as text, when there is one.
	Value string
	// Allowed is the permitted set for enumeration failures.
	Allowed []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("configuration validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate applies rules in order to cfg and returns every violation.
// An empty result means cfg is valid. Evaluation never stops early.
func Validate(cfg *document.Map, rules []Rule) ValidationErrors {
	var errs ValidationErrors
	for _, r := range rules {
		errs = append(errs, r.Check(cfg)...)
	}
	return errs
}

// Check evaluates a single rule against cfg.
func (r Rule) Check(cfg *document.Map) []ValidationError {
	v, present := document.Lookup(cfg, r.Field)

	switch r.Kind {
	case RequiredNonEmpty:
		return r.checkRequired(v, present)
	case EnumeratedValue:
		if !present {
			return nil
		}
		return r.checkEnumerated(v)
	default:
		return []ValidationError{{
			Field:   r.Field.String(),
			Kind:    r.Kind,
			Message: fmt.Sprintf("unknown rule kind %q", r.Kind),
		}}
	}
}

func (r Rule) checkRequired(v document.Value, present bool) []ValidationError {
	field := r.Field.String()
	if !present {
		return []ValidationError{{
			Field:   field,
			Kind:    RequiredNonEmpty,
			Message: fmt.Sprintf("%s is required: %s not found", r.label(), field),
		}}
	}
	if isEmpty(v) {
		return []ValidationError{{
			Field:   field,
			Kind:    RequiredNonEmpty,
			Message: fmt.Sprintf("%s is required: %s is empty", r.label(), field),
		}}
	}
	return nil
}

func (r Rule) checkEnumerated(v document.Value) []ValidationError {
	field := r.Field.String()
	allowed := strings.Join(r.Allowed, ", ")

	switch {
	case v.IsSequence():
		items := v.Items()
		if len(items) == 0 {
			return []ValidationError{{
				Field:   field,
				Kind:    EnumeratedValue,
				Message: fmt.Sprintf("%s must be a non-empty list; allowed values: %s", field, allowed),
				Allowed: r.Allowed,
			}}
		}
		var errs []ValidationError
		for i, item := range items {
			if r.allows(item) {
				continue
			}
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("%s[%d]", field, i),
				Kind:    EnumeratedValue,
				Message: fmt.Sprintf("invalid %s %q; allowed values: %s", strings.ToLower(r.label()), item.Scalar(), allowed),
				Value:   item.Scalar(),
				Allowed: r.Allowed,
			})
		}
		return errs
	case v.IsMapping():
		return []ValidationError{{
			Field:   field,
			Kind:    EnumeratedValue,
			Message: fmt.Sprintf("%s must be a value or list of values, found a mapping; allowed values: %s", field, allowed),
			Allowed: r.Allowed,
		}}
	default:
		if r.allows(v) {
			return nil
		}
		return []ValidationError{{
			Field:   field,
			Kind:    EnumeratedValue,
			Message: fmt.Sprintf("invalid %s %q; allowed values: %s", strings.ToLower(r.label()), v.Scalar(), allowed),
			Value:   v.Scalar(),
			Allowed: r.Allowed,
		}}
	}
}

// allows reports whether a scalar is one of the rule's literals.
// Only strings can match; the literal sets are all strings.
func (r Rule) allows(v document.Value) bool {
	s, ok := v.AsString()
	return ok && slices.Contains(r.Allowed, s)
}

// isEmpty reports whether a present value counts as missing content.
// Booleans and numbers are never empty.
func isEmpty(v document.Value) bool {
	switch v.Kind() {
	case document.KindNull:
		return true
	case document.KindString:
		s, _ := v.AsString()
		return strings.TrimSpace(s) == ""
	case document.KindSequence, document.KindMapping:
		return v.Len() == 0
	default:
		return false
	}
}

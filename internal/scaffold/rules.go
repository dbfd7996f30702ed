package scaffold

import (
	"fmt"

	"github.com/dockscaffold/cli/internal/document"
)

// RuleKind is the kind of check a Rule performs.
type RuleKind string

const (
	// RequiredNonEmpty requires the field to be present and non-empty.
	RequiredNonEmpty RuleKind = "required-nonempty"
	// EnumeratedValue requires a present field, or every element of a
	// present sequence, to be one of a fixed set of literals.
	EnumeratedValue RuleKind = "enumerated-value"
)

// Rule is a single declarative check against the merged configuration.
type Rule struct {
	// Field is the dotted path of the checked field.
	Field document.Path
	// Kind selects the check.
	Kind RuleKind
	// Allowed is the permitted literal set for EnumeratedValue rules.
	Allowed []string
	// Label is a human name for the field, used in messages.
	Label string
}

// Platforms are the supported build platform identifiers.
var Platforms = []string{
	"linux/amd64",
	"linux/arm64",
	"linux/arm/v7",
	"linux/arm/v6",
	"linux/386",
	"linux/ppc64le",
	"linux/s390x",
}

// DefaultRules returns the built-in rule table in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		Required("image.name", "Image name"),
		Required("image.description", "Image description"),
		OneOf("build.platforms", "Build platform", Platforms...),
	}
}

// Required builds a RequiredNonEmpty rule. It panics on a malformed path,
// which is a programming error in a rule table.
func Required(field, label string) Rule {
	return Rule{Field: document.MustParsePath(field), Kind: RequiredNonEmpty, Label: label}
}

// OneOf builds an EnumeratedValue rule. It panics on a malformed path.
func OneOf(field, label string, allowed ...string) Rule {
	return Rule{Field: document.MustParsePath(field), Kind: EnumeratedValue, Allowed: allowed, Label: label}
}

// RequiredFields parses user-supplied field paths into RequiredNonEmpty rules.
func RequiredFields(fields []string) ([]Rule, error) {
	rules := make([]Rule, 0, len(fields))
	for _, f := range fields {
		p, err := document.ParsePath(f)
		if err != nil {
			return nil, fmt.Errorf("required field: %w", err)
		}
		rules = append(rules, Rule{Field: p, Kind: RequiredNonEmpty})
	}
	return rules, nil
}

// AllowedValues parses a user-supplied field path into an EnumeratedValue rule.
func AllowedValues(field string, values []string) (Rule, error) {
	p, err := document.ParsePath(field)
	if err != nil {
		return Rule{}, fmt.Errorf("allowed values: %w", err)
	}
	if len(values) == 0 {
		return Rule{}, fmt.Errorf("allowed values for %s: at least one value is required", field)
	}
	return Rule{Field: p, Kind: EnumeratedValue, Allowed: append([]string(nil), values...)}, nil
}

func (r Rule) label() string {
	if r.Label != "" {
		return r.Label
	}
	return r.Field.String()
}

package templates

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxProjectNameLength is the longest accepted project name.
const MaxProjectNameLength = 100

var (
	projectNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-_]*$`)
	emailRegex       = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// ValidateProjectName checks that a project name can be used as an image name.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}

	if !projectNameRegex.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must start with an alphanumeric character and contain only alphanumeric characters, hyphens, or underscores", name)
	}

	if len(name) > MaxProjectNameLength {
		return fmt.Errorf("invalid project name: must be at most %d characters, got %d", MaxProjectNameLength, len(name))
	}

	return nil
}

// ValidateEmail checks the maintainer email format.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format: %q", email)
	}
	return nil
}

// DeriveProjectName turns a directory name into a project name by replacing
// unsupported characters with hyphens and trimming leading separators.
func DeriveProjectName(dirname string) string {
	var b strings.Builder
	for _, r := range dirname {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	name := strings.TrimLeft(b.String(), "-_")
	if len(name) > MaxProjectNameLength {
		name = name[:MaxProjectNameLength]
	}
	return name
}

package launchref

import (
	"fmt"
	"regexp"
	"strings"
)

// segmentRegex validates one segment of a reference. Segments follow the
// naming rules of installed packages: letters, digits, and underscores,
// starting with a letter.
var segmentRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// Ref is the structured representation of a built-in launch description
// reference.
type Ref struct {
	// Package is the installed package that owns the description.
	Package string

	// Name is the description's name within the package.
	Name string
}

// Parse creates a Ref by parsing its canonical "package/launch_name" form.
func Parse(raw string) (Ref, error) {
	if raw == "" {
		return Ref{}, fmt.Errorf("launch reference cannot be empty")
	}

	parts := strings.Split(raw, "/")
	if len(parts) != 2 {
		return Ref{}, fmt.Errorf("invalid launch reference %q: expected package/launch_name", raw)
	}
	for _, part := range parts {
		if !segmentRegex.MatchString(part) {
			return Ref{}, fmt.Errorf("invalid launch reference segment %q in %q", part, raw)
		}
	}

	return Ref{Package: parts[0], Name: parts[1]}, nil
}

// String returns the canonical string form of the reference.
func (r Ref) String() string {
	return r.Package + "/" + r.Name
}

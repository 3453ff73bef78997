package index

import (
	"fmt"
	"strings"
)

// PackageNotFoundError reports that no searched prefix contains a share
// directory for the named package.
type PackageNotFoundError struct {
	Package  string
	Prefixes []string
}

// Error implements the error interface for PackageNotFoundError.
func (e *PackageNotFoundError) Error() string {
	if len(e.Prefixes) == 0 {
		return fmt.Sprintf("package %q not found: no install prefixes configured (set %s)", e.Package, EnvPrefixPath)
	}
	return fmt.Sprintf("package %q not found in prefixes: %s", e.Package, strings.Join(e.Prefixes, ", "))
}

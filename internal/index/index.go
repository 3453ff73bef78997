package index

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvPrefixPath is the environment variable holding the colon-separated
// list of install prefixes to search.
const EnvPrefixPath = "GOLAUNCH_PREFIX_PATH"

// Index resolves package resource paths against an ordered list of install
// prefixes.
type Index struct {
	prefixes []string
}

// New creates an Index over the given prefixes, searched in order. Empty
// entries are dropped.
func New(prefixes ...string) *Index {
	cleaned := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return &Index{prefixes: cleaned}
}

// FromEnv creates an Index from the GOLAUNCH_PREFIX_PATH environment
// variable. An unset or empty variable yields an Index with no prefixes;
// every lookup against it fails with a PackageNotFoundError.
func FromEnv() *Index {
	return New(filepath.SplitList(os.Getenv(EnvPrefixPath))...)
}

// Prefixes returns the prefixes the Index searches, in order.
func (ix *Index) Prefixes() []string {
	copied := make([]string, len(ix.prefixes))
	copy(copied, ix.prefixes)
	return copied
}

// ShareDir resolves a package name to its share directory, searching each
// prefix in order for <prefix>/share/<pkg>. The first existing directory
// wins.
func (ix *Index) ShareDir(pkg string) (string, error) {
	if pkg == "" || strings.ContainsRune(pkg, filepath.Separator) {
		return "", fmt.Errorf("invalid package name %q", pkg)
	}
	for _, prefix := range ix.prefixes {
		dir := filepath.Join(prefix, "share", pkg)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}
	return "", &PackageNotFoundError{Package: pkg, Prefixes: ix.Prefixes()}
}

// ShareFile resolves a package's share directory and joins the given path
// elements onto it. The file itself is not checked for existence; a missing
// resource surfaces when the consuming runtime opens it.
func (ix *Index) ShareFile(pkg string, elem ...string) (string, error) {
	dir, err := ix.ShareDir(pkg)
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{dir}, elem...)...), nil
}

// LaunchDir resolves the launch-file directory of a package, which by
// convention is the launch/ subdirectory of its share directory.
func (ix *Index) LaunchDir(pkg string) (string, error) {
	return ix.ShareFile(pkg, "launch")
}

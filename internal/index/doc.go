// Package index resolves installed-package resource paths.
//
// Installed packages live under one or more install prefixes, each with a
// share/<package> directory holding the package's data files (maps, viewer
// configurations, launch files). The Index searches its prefixes in order
// and resolves a package to the first share directory that exists, the same
// first-match rule a PATH lookup uses.
package index

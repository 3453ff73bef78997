// Package plan turns launch descriptions into composed launch plans ready
// for an external orchestration runtime.
//
// Composition is a thin step: it stamps the description with an identity
// and provenance but leaves its directives untouched, include directives
// included. Flattening additionally loads every included launch file and
// splices its directives in place, depth-first, so that runtimes that do
// not resolve includes themselves receive a plan of plain node directives.
package plan

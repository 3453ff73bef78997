// Package launch defines the core domain model: launch directives and the
// ordered descriptions that collect them.
//
// A Description is the unit of composition. It is an ordered sequence of
// directives, where each directive either names a pre-built executable to
// start (Node) or pulls in another launch description by file path
// (Include). Descriptions carry no lifecycle of their own: once built they
// are handed, unchanged, to whatever runtime consumes the composed plan.
//
// Why keep the model this thin?
//
// Everything that makes a launched process interesting (supervision,
// restarts, transport between processes) deliberately lives outside this
// tool, in the external orchestration runtime and in the executables the
// directives name. The model therefore only has to be faithful about three
// things: the ordering of directives, the literal values of parameters, and
// the resolved resource paths baked into them at composition time.
package launch

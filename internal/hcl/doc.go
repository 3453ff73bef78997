// Package hcl provides the concrete HCL implementation of the launch.Loader
// interface. It is responsible for parsing .launch.hcl files, evaluating
// their expressions against the resource-resolution functions, and
// translating the decoded blocks into the launch model.
package hcl

package launch

import "context"

// Description is an ordered, immutable sequence of launch directives.
type Description struct {
	directives []Directive
}

// NewDescription builds a Description from the given directives. The slice
// is copied so later mutation by the caller cannot reorder the description.
func NewDescription(directives ...Directive) *Description {
	copied := make([]Directive, len(directives))
	copy(copied, directives)
	return &Description{directives: copied}
}

// Directives returns the description's directives in declaration order. The
// returned slice is a copy; callers may not mutate the description through it.
func (d *Description) Directives() []Directive {
	copied := make([]Directive, len(d.directives))
	copy(copied, d.directives)
	return copied
}

// Len returns the number of directives in the description.
func (d *Description) Len() int {
	return len(d.directives)
}

// Loader loads a launch description from a file or directory path. The HCL
// loader is the production implementation; tests substitute their own.
type Loader interface {
	Load(ctx context.Context, path string) (*Description, error)
}

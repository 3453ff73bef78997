package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/golaunch/internal/ctxlog"
	"github.com/vk/golaunch/internal/fsutil"
	"github.com/vk/golaunch/internal/index"
	"github.com/vk/golaunch/internal/launch"
	"github.com/vk/golaunch/internal/schema"
)

// Extension is the file extension launch files carry.
const Extension = ".launch.hcl"

// Loader parses .launch.hcl files into launch descriptions. It implements
// the launch.Loader interface.
type Loader struct {
	ix *index.Index
}

// NewLoader creates a Loader that resolves package resources through the
// given index.
func NewLoader(ix *index.Index) *Loader {
	return &Loader{ix: ix}
}

// Load reads a launch description from a path. A file path loads that file;
// a directory path loads every launch file beneath it in sorted order and
// concatenates their directives.
func (l *Loader) Load(ctx context.Context, path string) (*launch.Description, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading launch description.", "path", path)

	files := []string{path}
	if fsutil.IsDir(path) {
		found, err := fsutil.FindFilesByExtension(path, Extension)
		if err != nil {
			return nil, fmt.Errorf("failed to find launch files in %s: %w", path, err)
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("no %s files found in %s", Extension, path)
		}
		files = found
	}

	parser := hclparse.NewParser()
	var directives []launch.Directive
	for _, file := range files {
		fileDirectives, err := l.loadFile(ctx, parser, file)
		if err != nil {
			return nil, err
		}
		directives = append(directives, fileDirectives...)
	}

	logger.Debug("Launch description loaded.", "path", path, "directive_count", len(directives))
	return launch.NewDescription(directives...), nil
}

// loadFile parses a single launch file and returns its directives in source
// order.
func (l *Loader) loadFile(ctx context.Context, parser *hclparse.Parser, filePath string) ([]launch.Directive, error) {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse launch file %s: %w", filePath, diags)
	}

	// Body.Content keeps blocks of different types interleaved in source
	// order, which gohcl struct decoding would lose.
	content, diags := hclFile.Body.Content(schema.FileSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode launch file %s: %w", filePath, diags)
	}

	evalCtx := l.evalContext()
	directives := make([]launch.Directive, 0, len(content.Blocks))
	for _, block := range content.Blocks {
		switch block.Type {
		case "node":
			node, err := l.translateNode(block, evalCtx)
			if err != nil {
				return nil, fmt.Errorf("in launch file %s: %w", filePath, err)
			}
			directives = append(directives, node)
		case "include":
			include, err := l.translateInclude(block, filePath, evalCtx)
			if err != nil {
				return nil, fmt.Errorf("in launch file %s: %w", filePath, err)
			}
			directives = append(directives, include)
		}
	}

	return directives, nil
}

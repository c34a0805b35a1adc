// Package pipeline provides the complete decode → tree → report flow for
// assembling a collection and summarizing its hierarchy. Centralizing the
// stages keeps CLI, service, and test entry points behaving identically.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Decode: Build the collection from a TOML manifest or take one as-is
//  2. Tree: Organize the flat item list into the nested tab hierarchy
//  3. Report: Produce a human-readable summary of the hierarchy
//
// An optional fourth stage renders every item through a configured backend.
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Manifest: data})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(result.Summary)
package pipeline

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/chartdeck/chartdeck/pkg/deck"
	"github.com/chartdeck/chartdeck/pkg/deck/tree"
	"github.com/chartdeck/chartdeck/pkg/render"
)

// Options contains all configuration for a pipeline run.
type Options struct {
	// Manifest is a TOML collection definition. Exactly one of Manifest
	// and Collection must be set.
	Manifest []byte

	// Collection is a prebuilt collection to organize and summarize.
	Collection *deck.Collection

	// RenderItems enables the render stage; the runner's renderer
	// produces one artifact per item in traversal order.
	RenderItems bool

	// Logger receives the stage logs for this run. Nil means the
	// runner's own logger is used.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent; calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Manifest == nil && o.Collection == nil {
		return fmt.Errorf("manifest or collection is required")
	}
	if o.Manifest != nil && o.Collection != nil {
		return fmt.Errorf("manifest and collection are mutually exclusive")
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Collection is the assembled collection.
	Collection deck.Collection

	// Tree is the tab hierarchy built from the collection's items.
	Tree *tree.Node

	// Summary is the reporter's rendering of the hierarchy.
	Summary string

	// Artifacts holds one rendered output per item, in traversal order.
	// Empty unless Options.RenderItems is set.
	Artifacts []render.Artifact

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ItemCount  int
	NodeCount  int
	MaxDepth   int
	DecodeTime time.Duration
	TreeTime   time.Duration
	ReportTime time.Duration
	RenderTime time.Duration
}

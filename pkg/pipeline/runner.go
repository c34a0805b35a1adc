package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/chartdeck/chartdeck/pkg/deck"
	"github.com/chartdeck/chartdeck/pkg/deck/tabpath"
	"github.com/chartdeck/chartdeck/pkg/deck/tree"
	"github.com/chartdeck/chartdeck/pkg/manifest"
	"github.com/chartdeck/chartdeck/pkg/observability"
	"github.com/chartdeck/chartdeck/pkg/render"
	"github.com/chartdeck/chartdeck/pkg/report"
)

// Runner encapsulates pipeline execution. It is stateless except for its
// collaborators, so multiple goroutines can safely share one Runner with
// different options.
type Runner struct {
	Reporter report.Reporter
	Renderer render.Renderer
	Logger   *log.Logger
}

// NewRunner creates a runner with the given reporter.
// If reporter is nil, the plain-text reporter is used.
// If logger is nil, the default logger is used.
func NewRunner(reporter report.Reporter, logger *log.Logger) *Runner {
	if reporter == nil {
		reporter = report.Text{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Reporter: reporter,
		Renderer: render.JSON{},
		Logger:   logger,
	}
}

// Execute runs the complete decode → tree → report pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Decode
	decodeStart := time.Now()
	c, err := r.decode(opts)
	result.Stats.DecodeTime = time.Since(decodeStart)
	observability.Pipeline().OnDecodeComplete(c.Len(), result.Stats.DecodeTime, err)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	result.Collection = c
	result.Stats.ItemCount = c.Len()

	opts.Logger.Info("assembled collection",
		"items", c.Len(),
		"duration", result.Stats.DecodeTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Tree
	treeStart := time.Now()
	root := tree.Build(c.Items())
	result.Tree = root
	result.Stats.TreeTime = time.Since(treeStart)
	result.Stats.NodeCount = root.NodeCount()
	result.Stats.MaxDepth = root.Depth()
	observability.Pipeline().OnTreeComplete(root.NodeCount(), root.Depth(), result.Stats.TreeTime)

	opts.Logger.Info("built hierarchy",
		"nodes", root.NodeCount(),
		"depth", root.Depth(),
		"duration", result.Stats.TreeTime)

	// Stage 3: Report
	reportStart := time.Now()
	summary, err := r.Reporter.Summarize(root, c.TabgroupLabels())
	result.Stats.ReportTime = time.Since(reportStart)
	observability.Pipeline().OnReportComplete(len(summary), result.Stats.ReportTime, err)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	result.Summary = summary

	opts.Logger.Info("generated summary",
		"size", len(summary),
		"duration", result.Stats.ReportTime)

	// Stage 4: Render (optional)
	if opts.RenderItems {
		renderStart := time.Now()
		artifacts, err := r.renderAll(ctx, root, c.AttachedData())
		result.Stats.RenderTime = time.Since(renderStart)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		result.Artifacts = artifacts

		opts.Logger.Info("rendered items",
			"artifacts", len(artifacts),
			"duration", result.Stats.RenderTime)
	}

	return result, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// decode produces the collection from whichever source the options carry.
func (r *Runner) decode(opts Options) (deck.Collection, error) {
	if opts.Collection != nil {
		return *opts.Collection, nil
	}
	return manifest.Decode(opts.Manifest, deck.WithLogger(opts.Logger))
}

// renderAll walks the tree in traversal order and renders every item.
func (r *Runner) renderAll(ctx context.Context, root *tree.Node, data any) ([]render.Artifact, error) {
	var artifacts []render.Artifact
	err := root.Walk(func(path tabpath.Path, node *tree.Node) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, item := range node.Items {
			artifact, err := r.Renderer.Render(item, data)
			if err != nil {
				return fmt.Errorf("item %d (%s): %w", item.Index, item.Kind, err)
			}
			artifacts = append(artifacts, artifact)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}

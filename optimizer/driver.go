// Package optimizer runs a configured plugin pipeline over a document to a
// multipass fixed point, dispatching independent subtrees to a bounded
// worker pool when the document is large enough to be worth the overhead.
package optimizer

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/arturoeanton/svgo/ast"
	"github.com/arturoeanton/svgo/diagnostic"
	"github.com/arturoeanton/svgo/plugin"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// ParallelConfig gates and bounds subtree-parallel plugin dispatch. A
// document must meet both thresholds before the independence analyzer even
// runs; below them, every plugin always applies to the whole document on
// one goroutine. The zero value disables parallel dispatch.
type ParallelConfig struct {
	// SizeThreshold is the minimum input size (Config.InputSize), in bytes,
	// below which parallel dispatch never triggers. Zero disables the
	// size gate (falls through to the element-count gate alone).
	SizeThreshold int64

	// ElementThreshold is the minimum element count below which parallel
	// dispatch never triggers.
	ElementThreshold int

	// NumWorkers bounds the number of subtree groups processed
	// concurrently. Zero means runtime.GOMAXPROCS(0).
	NumWorkers int
}

// DefaultParallelConfig matches the default preset's thresholds: a
// document has to be both at least 1 MiB and at least 1000 elements before
// parallel dispatch is considered worthwhile.
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		SizeThreshold:    1 << 20,
		ElementThreshold: 1000,
	}
}

// Config configures one optimization run.
type Config struct {
	// Multipass enables iterating the plugin pipeline to a fixed point
	// instead of running it exactly once.
	Multipass bool

	// MaxPasses caps the number of passes when Multipass is set. Zero
	// means 10.
	MaxPasses int

	// InputSize is the byte length of the source document being
	// optimized, as measured by the caller before parsing. It feeds the
	// parallel size gate directly instead of re-deriving an estimate
	// from the live tree on every plugin call.
	InputSize int64

	Parallel ParallelConfig

	// Logger receives Debug-level pass counts and per-plugin timings, and
	// a Warn on cancellation. Nil disables logging.
	Logger *slog.Logger
}

// Result reports what a Run call did.
type Result struct {
	Passes    int
	Cancelled bool
	// Timings sums each plugin's Apply duration across every pass, keyed
	// by plugin name.
	Timings map[string]time.Duration
}

// Run applies plugins, in order, to doc. When cfg.Multipass is set it
// repeats the whole pipeline until two consecutive passes produce the same
// fingerprint (or MaxPasses is reached), so simplifications that one plugin
// enables for another, or for itself, are carried through. ctx is checked
// between passes and between plugins within a pass; a cancellation surfaces
// as a Cancelled diagnostic and a Result with Cancelled set, and doc keeps
// whatever changes the plugins already applied made to it.
func Run(ctx context.Context, doc *ast.Document, plugins []plugin.Plugin, cfg Config) (Result, error) {
	maxPasses := 1
	if cfg.Multipass {
		maxPasses = cfg.MaxPasses
		if maxPasses <= 0 {
			maxPasses = 10
		}
	}

	var prev uint64
	passes := 0
	timings := make(map[string]time.Duration)
	for pass := 0; pass < maxPasses; pass++ {
		if err := ctx.Err(); err != nil {
			doc.Metadata["optimizer.passes"] = passes
			logWarn(cfg.Logger, "optimizer run cancelled", "pass", pass)
			return Result{Passes: passes, Cancelled: true, Timings: timings}, cancelledDiagnostic()
		}

		if err := runPass(ctx, doc, plugins, cfg, timings); err != nil {
			if cancelled(err) {
				doc.Metadata["optimizer.passes"] = passes
				logWarn(cfg.Logger, "optimizer run cancelled", "pass", pass)
				return Result{Passes: passes, Cancelled: true, Timings: timings}, err
			}
			return Result{Passes: passes, Timings: timings}, err
		}
		passes++

		fp := fingerprint(doc)
		if pass > 0 && fp == prev {
			break
		}
		prev = fp
	}

	doc.Metadata["optimizer.passes"] = passes
	logDebug(cfg.Logger, "optimizer run complete", "passes", passes)
	return Result{Passes: passes, Timings: timings}, nil
}

// runPass applies every plugin once, in order, accumulating each plugin's
// duration into timings.
func runPass(ctx context.Context, doc *ast.Document, plugins []plugin.Plugin, cfg Config, timings map[string]time.Duration) error {
	for _, p := range plugins {
		if err := ctx.Err(); err != nil {
			return cancelledDiagnostic()
		}
		start := time.Now()
		err := applyPlugin(ctx, doc, p, cfg)
		elapsed := time.Since(start)
		timings[p.Name()] += elapsed
		logDebug(cfg.Logger, "plugin applied", "plugin", p.Name(), "duration", elapsed)
		if err != nil {
			return &diagnostic.Diagnostic{
				Kind:     diagnostic.KindPlugin,
				Message:  fmt.Sprintf("plugin %q failed: %v", p.Name(), err),
				Severity: diagnostic.Error,
			}
		}
	}
	return nil
}

func logDebug(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
}

func logWarn(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// applyPlugin runs p over doc, either on the whole tree or, when eligible,
// fanned out across independent top-level subtree groups.
func applyPlugin(ctx context.Context, doc *ast.Document, p plugin.Plugin, cfg Config) error {
	if !eligibleForParallel(doc, p, cfg) {
		return p.Apply(doc)
	}

	groups := partition(doc.Root)
	var work [][]*ast.Element
	var rest []*ast.Element
	for _, g := range groups {
		if len(g) > 10 {
			work = append(work, g)
		} else {
			rest = append(rest, g...)
		}
	}

	if len(work) < 2 {
		// Nothing meaningfully independent to split; run normally.
		return p.Apply(doc)
	}

	workers := cfg.Parallel.NumWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Every original top-level element is assigned to exactly one group
	// (a dispatched work group, or the sequential rest group), so the
	// nodes each group's Apply call ends up with can be mapped back to
	// where that group's elements originally sat in doc.Root.Children.
	allGroups := work
	restGroupID := -1
	if len(rest) > 0 {
		restGroupID = len(work)
		allGroups = append(allGroups, rest)
	}
	groupOf := make(map[*ast.Element]int, doc.CountNodes())
	for gid, group := range allGroups {
		for _, e := range group {
			groupOf[e] = gid
		}
	}
	results := make([][]ast.Node, len(allGroups))

	sem := semaphore.NewWeighted(int64(workers))
	g, gctx := errgroup.WithContext(ctx)
	for gid, group := range work {
		gid, group := gid, group
		g.Go(func() error {
			if err := sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			wrapper := ast.NewElement("__optimizer_group")
			wrapper.SetChildren(elementsToNodes(group))
			sub := &ast.Document{Root: wrapper, Metadata: make(map[string]any)}
			if err := p.Apply(sub); err != nil {
				return err
			}
			results[gid] = wrapper.Children
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Elements outside any eligible group still need this plugin applied;
	// they just aren't worth a separate goroutine. Run them through the
	// same wrapper-reparent approach as the dispatched groups, inline.
	if restGroupID >= 0 {
		wrapper := ast.NewElement("__optimizer_group")
		wrapper.SetChildren(elementsToNodes(rest))
		sub := &ast.Document{Root: wrapper, Metadata: make(map[string]any)}
		if err := p.Apply(sub); err != nil {
			return err
		}
		results[restGroupID] = wrapper.Children
	}

	doc.Root.SetChildren(mergeGroupResults(doc.Root.Children, groupOf, results))
	return nil
}

// mergeGroupResults rebuilds doc.Root's children from the per-group node
// lists each dispatched Apply call produced. Non-element top-level nodes
// (text, comments) pass through untouched, since partition never assigns
// them to a group. The first original element from a given group marks
// where that group's final nodes are spliced in; later originals from the
// same group are skipped, since that splice already accounts for them. This
// is what lets a plugin add, remove, or reorder a group's top-level
// elements and have the change actually land in doc.Root.
func mergeGroupResults(original []ast.Node, groupOf map[*ast.Element]int, results [][]ast.Node) []ast.Node {
	out := make([]ast.Node, 0, len(original))
	emitted := make(map[int]bool, len(results))
	for _, n := range original {
		el, ok := n.(*ast.Element)
		if !ok {
			out = append(out, n)
			continue
		}
		gid, inGroup := groupOf[el]
		if !inGroup {
			out = append(out, n)
			continue
		}
		if emitted[gid] {
			continue
		}
		emitted[gid] = true
		out = append(out, results[gid]...)
	}
	return out
}

// eligibleForParallel reports whether p may run fanned out across
// independent subtrees instead of over the whole document.
func eligibleForParallel(doc *ast.Document, p plugin.Plugin, cfg Config) bool {
	if p.RequiresWholeDocument() {
		return false
	}
	if doc.Root == nil {
		return false
	}
	pcfg := cfg.Parallel
	if pcfg == (ParallelConfig{}) {
		return false
	}
	if pcfg.ElementThreshold > 0 {
		elements := 0
		doc.WalkElements(func(*ast.Element) { elements++ })
		if elements < pcfg.ElementThreshold {
			return false
		}
	}
	if pcfg.SizeThreshold > 0 && cfg.InputSize < pcfg.SizeThreshold {
		return false
	}
	return true
}

func elementsToNodes(elems []*ast.Element) []ast.Node {
	nodes := make([]ast.Node, len(elems))
	for i, e := range elems {
		nodes[i] = e
	}
	return nodes
}

func cancelledDiagnostic() error {
	return &diagnostic.Diagnostic{
		Kind:     diagnostic.KindCancelled,
		Message:  "optimization run cancelled",
		Severity: diagnostic.Error,
	}
}

func cancelled(err error) bool {
	d, ok := err.(*diagnostic.Diagnostic)
	return ok && d.Kind == diagnostic.KindCancelled
}

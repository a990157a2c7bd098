package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/alnah/go-mdcontent/internal/logging"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// RenderResult holds the outcome of a single page.
type RenderResult struct {
	Filename   string
	OutputPath string
	Skipped    bool // Draft page left out
	Err        error
	Duration   time.Duration
}

// renderBatch renders jobs concurrently, one builder per worker.
// Results keep the order of jobs.
func renderBatch(ctx context.Context, pool Pool, jobs []renderJob, includeDrafts bool) []RenderResult {
	if len(jobs) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(jobs))

	results := make([]RenderResult, len(jobs))
	var wg sync.WaitGroup
	queue := make(chan int, len(jobs))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			builder, err := pool.Acquire()
			if err != nil {
				// Builder creation failed, mark this worker's share as failed
				for idx := range queue {
					results[idx] = RenderResult{
						Filename: jobs[idx].Filename,
						Err:      fmt.Errorf("%w: %v", ErrBuilderInit, err),
					}
				}
				return
			}
			defer pool.Release(builder)

			for idx := range queue {
				if ctx.Err() != nil {
					results[idx] = RenderResult{
						Filename: jobs[idx].Filename,
						Err:      ctx.Err(),
					}
					continue
				}
				results[idx] = renderFile(ctx, builder, jobs[idx], includeDrafts)
			}
		}()
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)

	wg.Wait()
	return results
}

// renderFile builds one page and writes it to job.OutputPath.
func renderFile(ctx context.Context, builder PageRenderer, job renderJob, includeDrafts bool) RenderResult {
	start := time.Now()
	result := RenderResult{
		Filename:   job.Filename,
		OutputPath: job.OutputPath,
	}

	page, err := builder.Build(ctx, job.Filename)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if page.Meta.Draft && !includeDrafts {
		logging.FromContext(ctx).Debug("draft skipped", logging.FieldFile, job.Filename)
		result.Skipped = true
		result.Duration = time.Since(start)
		return result
	}

	if err := writeOutput(job.OutputPath, page.HTML); err != nil {
		result.Err = err
	}
	result.Duration = time.Since(start)
	return result
}

// writeOutput writes content to path, creating parent directories.
func writeOutput(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: creating directory: %v", ErrWriteOutput, err)
	}
	// #nosec G306 -- HTML and markdown output is meant to be readable
	if err := os.WriteFile(path, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// ResultSummary holds the count of rendered, skipped and failed pages.
type ResultSummary struct {
	Succeeded int
	Skipped   int
	Failed    int
}

// countResults tallies rendered, skipped and failed pages.
func countResults(results []RenderResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Skipped:
			summary.Skipped++
		default:
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs render results and returns the failure count.
func printResults(results []RenderResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.Filename, r.Err, hintFor(r.Err))
			continue
		}

		if quiet {
			continue
		}

		switch {
		case r.Skipped && verbose:
			fmt.Fprintf(env.Stdout, "Skipped %s (draft)\n", r.Filename)
		case r.Skipped:
		case verbose:
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.Filename, r.OutputPath, r.Duration.Round(time.Millisecond))
		default:
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d skipped, %d failed\n", summary.Succeeded, summary.Skipped, summary.Failed)
	}

	return summary.Failed
}

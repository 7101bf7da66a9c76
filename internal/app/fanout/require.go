package fanout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Task is a named unit of work for RequireAll.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// TaskResult records how a single task ended.
type TaskResult struct {
	Name     string
	Required bool
	Err      error
	Duration time.Duration
}

// Report is the outcome of a RequireAll call, required tasks first.
type Report struct {
	Results []TaskResult
}

// Result returns the result for the named task.
func (r Report) Result(name string) (TaskResult, bool) {
	for _, res := range r.Results {
		if res.Name == name {
			return res, true
		}
	}
	return TaskResult{}, false
}

// RequireAll starts every required and optional task at once and waits for
// all of them. The shared ctx is never canceled on a task failure, so one
// failing task does not interrupt the others.
//
// The returned error joins the failures of required tasks, each prefixed
// with the task name; optional failures only show up in the Report and in
// a WARN log line.
func RequireAll(ctx context.Context, logger *slog.Logger, required, optional []Task) (Report, error) {
	type job struct {
		task     Task
		required bool
	}

	jobs := make([]job, 0, len(required)+len(optional))
	for _, t := range required {
		jobs = append(jobs, job{task: t, required: true})
	}
	for _, t := range optional {
		jobs = append(jobs, job{task: t})
	}

	results := Run(ctx, len(jobs), jobs, func(ctx context.Context, j job) (TaskResult, error) {
		start := time.Now()
		err := j.task.Run(ctx)
		return TaskResult{Name: j.task.Name, Required: j.required, Err: err, Duration: time.Since(start)}, nil
	})

	report := Report{Results: make([]TaskResult, len(jobs))}
	var failed []error
	for i, r := range results {
		tr := r.Value
		if r.Err != nil {
			// Panicked or never started.
			tr = TaskResult{Name: jobs[i].task.Name, Required: jobs[i].required, Err: r.Err}
		}
		report.Results[i] = tr

		if tr.Err == nil {
			continue
		}
		if tr.Required {
			failed = append(failed, fmt.Errorf("%s: %w", tr.Name, tr.Err))
			continue
		}
		if logger != nil {
			logger.WarnContext(ctx, "optional task failed",
				slog.String("task", tr.Name),
				slog.Duration("duration", tr.Duration),
				slog.String("error", tr.Err.Error()),
			)
		}
	}

	return report, errors.Join(failed...)
}

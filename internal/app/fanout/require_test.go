package fanout_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/app/fanout"
)

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRequireAll_AllSucceed(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ok := func(context.Context) error { calls.Add(1); return nil }

	report, err := fanout.RequireAll(context.Background(), nil,
		[]fanout.Task{{Name: "email", Run: ok}},
		[]fanout.Task{{Name: "crm", Run: ok}},
	)
	if err != nil {
		t.Fatalf("RequireAll() error = %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("tasks run = %d, want 2", calls.Load())
	}
	if len(report.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(report.Results))
	}
	if r := report.Results[0]; r.Name != "email" || !r.Required {
		t.Errorf("Results[0] = %+v, want required email first", r)
	}
}

func TestRequireAll_OptionalFailureIsLoggedNotReturned(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	errCRM := errors.New("crm unavailable")

	report, err := fanout.RequireAll(context.Background(), bufferLogger(&buf),
		[]fanout.Task{{Name: "email", Run: func(context.Context) error { return nil }}},
		[]fanout.Task{{Name: "crm", Run: func(context.Context) error { return errCRM }}},
	)
	if err != nil {
		t.Fatalf("RequireAll() error = %v, want nil", err)
	}

	res, ok := report.Result("crm")
	if !ok || !errors.Is(res.Err, errCRM) {
		t.Errorf("crm result = %+v, want %v", res, errCRM)
	}
	if !strings.Contains(buf.String(), "optional task failed") || !strings.Contains(buf.String(), "task=crm") {
		t.Errorf("log output missing optional failure: %s", buf.String())
	}
}

func TestRequireAll_RequiredFailureDoesNotCancelOptional(t *testing.T) {
	t.Parallel()

	errSend := errors.New("send failed")
	var optionalFinished atomic.Bool

	report, err := fanout.RequireAll(context.Background(), nil,
		[]fanout.Task{{Name: "email", Run: func(context.Context) error { return errSend }}},
		[]fanout.Task{{Name: "crm", Run: func(ctx context.Context) error {
			select {
			case <-time.After(30 * time.Millisecond):
				optionalFinished.Store(true)
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}}},
	)

	if !errors.Is(err, errSend) {
		t.Fatalf("RequireAll() error = %v, want %v", err, errSend)
	}
	if !strings.HasPrefix(err.Error(), "email: ") {
		t.Errorf("error %q should name the failing task", err)
	}
	if !optionalFinished.Load() {
		t.Error("optional task was interrupted by the required failure")
	}
	if res, _ := report.Result("crm"); res.Err != nil {
		t.Errorf("crm result error = %v, want nil", res.Err)
	}
}

func TestRequireAll_RunsConcurrently(t *testing.T) {
	t.Parallel()

	const delay = 50 * time.Millisecond
	slow := func(context.Context) error { time.Sleep(delay); return nil }

	start := time.Now()
	_, err := fanout.RequireAll(context.Background(), nil,
		[]fanout.Task{{Name: "admin", Run: slow}, {Name: "user", Run: slow}},
		[]fanout.Task{{Name: "crm", Run: slow}},
	)
	if err != nil {
		t.Fatalf("RequireAll() error = %v", err)
	}

	if elapsed := time.Since(start); elapsed >= 3*delay {
		t.Errorf("elapsed %v suggests tasks ran sequentially", elapsed)
	}
}

func TestRequireAll_JoinsRequiredFailures(t *testing.T) {
	t.Parallel()

	errA := errors.New("admin failed")
	errB := errors.New("user failed")

	_, err := fanout.RequireAll(context.Background(), nil,
		[]fanout.Task{
			{Name: "admin", Run: func(context.Context) error { return errA }},
			{Name: "user", Run: func(context.Context) error { return errB }},
		},
		nil,
	)

	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("RequireAll() error = %v, want both failures joined", err)
	}
}

func TestRequireAll_PanickingTaskCountsAsFailure(t *testing.T) {
	t.Parallel()

	_, err := fanout.RequireAll(context.Background(), nil,
		[]fanout.Task{{Name: "email", Run: func(context.Context) error { panic("nil transport") }}},
		nil,
	)

	if !errors.Is(err, fanout.ErrPanic) {
		t.Errorf("RequireAll() error = %v, want ErrPanic", err)
	}
}

func TestRequireAll_NoTasks(t *testing.T) {
	t.Parallel()

	report, err := fanout.RequireAll(context.Background(), nil, nil, nil)
	if err != nil || len(report.Results) != 0 {
		t.Errorf("RequireAll() = (%+v, %v), want empty report and nil", report, err)
	}
}

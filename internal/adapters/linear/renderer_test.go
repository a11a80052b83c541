package linear_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cook/internal/adapters/linear"
	"go.trai.ch/cook/internal/core/domain"
)

func TestRenderer_OnProgress(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	r := linear.NewRenderer(&stdout, &stderr)
	require.NoError(t, r.Start(context.Background()))

	base := domain.Progress{Session: "book_1", Phase: domain.BulkRunning, State: domain.StateCooking, Total: 10}
	steps := []domain.Progress{
		base,
		with(base, func(p *domain.Progress) { p.Cooked = 1; p.Pending = 9 }),
		with(base, func(p *domain.Progress) { p.Cooked = 1; p.Pending = 9 }),
		with(base, func(p *domain.Progress) { p.Cooked = 2; p.Failed = 1; p.Pending = 7 }),
		with(base, func(p *domain.Progress) { p.Cooked = 2; p.Failed = 1; p.Pending = 7; p.State = domain.StateGCPause }),
		with(base, func(p *domain.Progress) { p.Phase = domain.BulkFinishing; p.Cooked = 9; p.Failed = 1 }),
	}
	for _, p := range steps {
		r.OnProgress(p)
	}

	want := "[book_1] phase: running (10 packages)\n" +
		"[book_1] ● 1/10 cooked, 0 failed, 9 pending\n" +
		"[book_1] ✗ 2/10 cooked, 1 failed, 7 pending\n" +
		"[book_1] ~ paused for garbage collection\n" +
		"[book_1] phase: finishing (10 packages)\n" +
		"[book_1] ✗ 9/10 cooked, 1 failed, 0 pending\n"
	assert.Equal(t, want, stderr.String())
	assert.Empty(t, stdout.String())
}

func TestRenderer_OnProgress_IgnoresIdle(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var stderr bytes.Buffer
	r := linear.NewRenderer(&bytes.Buffer{}, &stderr)
	r.OnProgress(domain.Progress{})
	assert.Empty(t, stderr.String())
}

func TestRenderer_OnProgress_Children(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var stderr bytes.Buffer
	r := linear.NewRenderer(&bytes.Buffer{}, &stderr)
	r.OnProgress(domain.Progress{Session: "book_2", Phase: domain.BulkRunning, Total: 0, Children: 3})

	assert.Equal(t, "[book_2] phase: running (0 packages)\n[book_2] 3 child cookers running\n", stderr.String())
}

func TestRenderer_OnReport(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	var stdout bytes.Buffer
	r := linear.NewRenderer(&stdout, &bytes.Buffer{}).WithClock(func() time.Time { return now })
	require.NoError(t, r.Start(context.Background()))
	now = now.Add(90 * time.Second)

	r.OnReport(domain.CookReport{Session: "book_1", Attempted: 3})
	require.NoError(t, r.Stop())
	require.NoError(t, r.Wait())

	assert.Contains(t, stdout.String(), "Cook session book_1")
	assert.Contains(t, stdout.String(), "Finished in 1m30s")
}

func with(p domain.Progress, fn func(*domain.Progress)) domain.Progress {
	fn(&p)
	return p
}

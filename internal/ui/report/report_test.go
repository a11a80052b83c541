package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/ui/output"
	"go.trai.ch/cook/internal/ui/report"
)

func TestWrite_Golden(t *testing.T) {
	tests := []struct {
		name    string
		report  domain.CookReport
		elapsed time.Duration
	}{
		{
			name: "report_success",
			report: domain.CookReport{
				Session:              "book_1",
				Attempted:            12,
				SkippedUpToDate:      3,
				KeptFromPreviousCook: 5,
			},
			elapsed: 1500 * time.Millisecond,
		},
		{
			name: "report_failed",
			report: domain.CookReport{
				Session:       "book_2",
				Attempted:     1234,
				Failed:        domain.NewPackageIDs([]string{"/Game/A", "/Game/B"}),
				ChildFailures: []int{0, 2},
				Cancelled:     true,
			},
			elapsed: 2*time.Minute + 3*time.Second,
		},
		{
			name: "report_single",
			report: domain.CookReport{
				Session:   "book_3",
				Attempted: 1,
				Failed:    domain.NewPackageIDs([]string{"/Game/A"}),
			},
			elapsed: 40 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")
			var buf bytes.Buffer
			require.NoError(t, report.Write(output.New(&buf), tt.report, tt.elapsed))

			g := goldie.New(t)
			g.Assert(t, tt.name, buf.Bytes())
		})
	}
}

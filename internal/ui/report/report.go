// Package report renders the summary of a cook-by-the-book session.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/ui/style"
)

// Write renders r to out.
func Write(out *termenv.Output, r domain.CookReport, elapsed time.Duration) error {
	paint := func(s string, c string) string {
		return out.String(s).Foreground(termenv.RGBColor(c)).String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Cook session %s\n", r.Session)
	fmt.Fprintf(&b, "  %s %s attempted\n", paint(style.Progress, string(style.Ember)), count(r.Attempted, "package"))
	fmt.Fprintf(&b, "  %s %s up to date, %s kept from previous cook\n",
		paint(style.Pause, string(style.Ash)),
		humanize.Comma(int64(r.SkippedUpToDate)),
		humanize.Comma(int64(r.KeptFromPreviousCook)))

	if len(r.Failed) > 0 {
		fmt.Fprintf(&b, "  %s %s failed\n", paint(style.Failed, string(style.Burnt)), count(len(r.Failed), "package"))
		for _, pkg := range r.Failed {
			fmt.Fprintf(&b, "    %s %s\n", style.Next, pkg)
		}
	}
	if len(r.ChildFailures) > 0 {
		idx := make([]string, len(r.ChildFailures))
		for i, c := range r.ChildFailures {
			idx[i] = strconv.Itoa(c)
		}
		fmt.Fprintf(&b, "  %s child cookers failed: %s\n", paint(style.Failed, string(style.Burnt)), strings.Join(idx, ", "))
	}
	if r.Cancelled {
		fmt.Fprintf(&b, "  %s cancelled\n", paint(style.Warn, string(style.Simmer)))
	}

	result := paint("success", string(style.Done))
	if !r.Succeeded() {
		result = paint("failed", string(style.Burnt))
	}
	fmt.Fprintf(&b, "Finished in %s: %s\n", elapsed.Round(time.Millisecond), result)

	_, err := out.WriteString(b.String())
	return err
}

func count(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return humanize.Comma(int64(n)) + " " + noun + "s"
}

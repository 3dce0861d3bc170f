package budget

import (
	"fmt"
	"log/slog"
	"time"
)

// Window is one rate ceiling: at most Limit requests may be spent within
// Span. CostFactor scales the per-tick account cost for windows where each
// tick also spends secondary calls (media lookups) against the same budget.
type Window struct {
	Name       string
	Span       time.Duration
	Limit      int
	CostFactor int
}

// DefaultWindows returns the upstream API's two ceilings: the 15-minute
// timeline-lookup window and the 24-hour window, where every tick costs
// twice per account (timeline fetch plus media expansion).
func DefaultWindows() []Window {
	return []Window{
		{Name: "short", Span: 15 * time.Minute, Limit: 1500, CostFactor: 1},
		{Name: "long", Span: 24 * time.Hour, Limit: 50000, CostFactor: 2},
	}
}

// Check projects the request volume implied by the poll interval and account
// count against each window and fails if any ceiling would be exceeded. It is
// a static precondition, run once before the scheduler starts.
func Check(logger *slog.Logger, interval time.Duration, accounts int, windows []Window) error {
	if interval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", interval)
	}
	if accounts < 1 {
		return fmt.Errorf("at least one account is required, got %d", accounts)
	}

	for _, w := range windows {
		ticks := w.Span.Seconds() / interval.Seconds()
		projected := ticks * float64(accounts*w.CostFactor)

		logger.Info("projected request volume",
			"window", w.Name,
			"span", w.Span,
			"projected", projected,
			"limit", w.Limit,
		)

		if projected > float64(w.Limit) {
			return fmt.Errorf(
				"projected %.0f requests per %s exceed the %s-window limit of %d; increase the poll interval or watch fewer accounts",
				projected, w.Span, w.Name, w.Limit,
			)
		}
	}

	return nil
}

package budget

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func shortOnly() []Window {
	return []Window{
		{Name: "short", Span: 15 * time.Minute, Limit: 1500, CostFactor: 1},
	}
}

func TestCheck_UnderBudget(t *testing.T) {
	// 900s window / 60s interval * 10 accounts = 150 <= 1500
	err := Check(testLogger(), 60*time.Second, 10, shortOnly())
	assert.NoError(t, err)
}

func TestCheck_OverBudget(t *testing.T) {
	// 900 ticks * 200 accounts = 180000 > 1500
	err := Check(testLogger(), 1*time.Second, 200, shortOnly())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "short-window limit")
}

func TestCheck_ExactlyAtLimitPasses(t *testing.T) {
	// 900 ticks * 1 account * factor 1 = 900 <= 900
	windows := []Window{{Name: "short", Span: 15 * time.Minute, Limit: 900, CostFactor: 1}}
	err := Check(testLogger(), 1*time.Second, 1, windows)
	assert.NoError(t, err)
}

func TestCheck_CostFactorWeighsLongWindow(t *testing.T) {
	// 10 ticks * 5 accounts * factor 2 = 100 > 99
	windows := []Window{{Name: "long", Span: 10 * time.Minute, Limit: 99, CostFactor: 2}}
	err := Check(testLogger(), 1*time.Minute, 5, windows)
	assert.Error(t, err)
}

func TestCheck_DefaultWindows(t *testing.T) {
	err := Check(testLogger(), 60*time.Second, 10, DefaultWindows())
	assert.NoError(t, err)

	err = Check(testLogger(), 1*time.Second, 200, DefaultWindows())
	assert.Error(t, err)
}

func TestCheck_RejectsNonPositiveInterval(t *testing.T) {
	err := Check(testLogger(), 0, 10, DefaultWindows())
	assert.Error(t, err)

	err = Check(testLogger(), -time.Second, 10, DefaultWindows())
	assert.Error(t, err)
}

func TestCheck_RejectsZeroAccounts(t *testing.T) {
	err := Check(testLogger(), time.Minute, 0, DefaultWindows())
	assert.Error(t, err)
}

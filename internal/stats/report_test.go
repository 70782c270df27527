package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/bjtrainer/internal/strategy"
)

func sampleTracker() *Tracker {
	tr := NewTracker()
	tr.RecordAttempt(strategy.Hard, strategy.Weak, true)
	tr.RecordAttempt(strategy.Hard, strategy.Weak, false)
	tr.RecordAttempt(strategy.Hard, strategy.Weak, true)
	tr.RecordAttempt(strategy.Soft, strategy.Strong, false)
	tr.RecordAttempt(strategy.Pair, strategy.Medium, true)
	return tr
}

func TestMostPracticed(t *testing.T) {
	tr := sampleTracker()
	assert.Equal(t, []string{"hard-weak", "soft-strong", "pair-medium"}, MostPracticed(tr, 0))
	assert.Equal(t, []string{"hard-weak"}, MostPracticed(tr, 1))
	assert.Nil(t, MostPracticed(NewTracker(), 3))
}

func TestWeakestCategories(t *testing.T) {
	tr := sampleTracker()
	assert.Equal(t, []string{"soft-strong", "hard-weak"}, WeakestCategories(tr, 0))
	assert.Equal(t, []string{"soft-strong"}, WeakestCategories(tr, 1))
	assert.Empty(t, WeakestCategories(NewTracker(), 3))
}

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSummary(&buf, NewTracker(), 80))
	assert.Equal(t, "No practice attempts yet this session.\n", buf.String())
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSummary(&buf, sampleTracker(), 80))
	out := buf.String()

	assert.Contains(t, out, "Overall: 3/5 (60.0%)")
	assert.Contains(t, out, "  Hard: 2/3 (66.7%)")
	assert.Contains(t, out, "  Soft: 0/1 (0.0%)")
	assert.Contains(t, out, "  Medium: 1/1 (100.0%)")
	assert.NotContains(t, out, "  Hard: 0/0")
	assert.Contains(t, out, "Focus next on: soft-strong, hard-weak")
	assert.Contains(t, out, sparkLabel)

	lines := strings.Split(out, "\n")
	var header int
	for i, line := range lines {
		if strings.HasPrefix(line, "Category") {
			header = i
			break
		}
	}
	require.NotZero(t, header)
	assert.True(t, strings.HasPrefix(lines[header+1], "hard-weak"))
	assert.Contains(t, lines[header+1], "66.7%")
}

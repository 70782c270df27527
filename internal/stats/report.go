package stats

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

const (
	defaultRollingWindow = 5
	terminalWidthBackup  = 80
	sparkLabel           = "Rolling accuracy: "
	weakSpotCount        = 3
)

// SummaryLine formats the overall score, e.g. "2/3 (66.7%)".
func SummaryLine(c CategoryStats) string {
	return fmt.Sprintf("%d/%d (%.1f%%)", c.Correct, c.Total, c.Accuracy()*100)
}

// Rows builds the per-category table rows in MostPracticed order.
func Rows(t *Tracker) [][]string {
	keys := MostPracticed(t, 0)
	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		c := t.byKey[key]
		rows = append(rows, []string{
			key,
			fmt.Sprintf("%d/%d", c.Correct, c.Total),
			fmt.Sprintf("%.1f%%", c.Accuracy()*100),
			formatResponse(c.MeanResponse()),
		})
	}
	return rows
}

// RowHeaders names the columns returned by Rows.
var RowHeaders = []string{"Category", "Score", "Accuracy", "Avg Time"}

func formatResponse(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// RenderSummary prints overall, per-hand-type, per-dealer-strength and
// per-category results plus a rolling accuracy line. width <= 0 uses the
// terminal width.
func RenderSummary(w io.Writer, t *Tracker, width int) error {
	overall := t.Overall()
	if overall.Total == 0 {
		_, err := fmt.Fprintln(w, "No practice attempts yet this session.")
		return err
	}
	if width <= 0 {
		width = terminalWidth()
	}

	lines := []string{fmt.Sprintf("Overall: %s", SummaryLine(overall)), "", "By Hand Type:"}
	for _, h := range []string{"hard", "soft", "pair"} {
		c, _ := t.Category(h)
		if c.Total > 0 {
			lines = append(lines, fmt.Sprintf("  %s: %s", strings.ToUpper(h[:1])+h[1:], SummaryLine(c)))
		}
	}
	lines = append(lines, "", "By Dealer Strength:")
	for _, s := range []string{"weak", "medium", "strong"} {
		c, _ := t.Category(s)
		if c.Total > 0 {
			lines = append(lines, fmt.Sprintf("  %s: %s", strings.ToUpper(s[:1])+s[1:], SummaryLine(c)))
		}
	}
	lines = append(lines, "")
	lines = append(lines, FormatTable(RowHeaders, Rows(t), map[int]bool{1: true, 2: true, 3: true})...)

	if spark := RollingSparkline(t, width-len(sparkLabel)); spark != "" {
		lines = append(lines, "", sparkLabel+spark)
	}
	if weak := WeakestCategories(t, weakSpotCount); len(weak) > 0 {
		lines = append(lines, "", "Focus next on: "+strings.Join(weak, ", "))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RollingSparkline renders the rolling accuracy of the answer history,
// resampled to at most width characters.
func RollingSparkline(t *Tracker, width int) string {
	history := t.History()
	if len(history) < 2 {
		return ""
	}
	return Sparkline(Resample(RollingAccuracy(history, defaultRollingWindow), width), 0, 100)
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return terminalWidthBackup
}

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/verte-zerg/bjtrainer/internal/stats"
	"github.com/verte-zerg/bjtrainer/internal/strategy"
)

// renderChart prints one grid per hand type: rows are player totals,
// columns are dealer up-cards, cells are action codes.
func renderChart(w io.Writer, chart *strategy.Chart) error {
	dealers := make([]strategy.Card, 0, int(strategy.Ace-strategy.MinCard)+1)
	for d := strategy.MinCard; d <= strategy.Ace; d++ {
		dealers = append(dealers, d)
	}
	rightAlign := map[int]bool{}
	for i := range dealers {
		rightAlign[i+1] = true
	}

	for i, ht := range strategy.HandTypes {
		headers := []string{ht.Title()}
		for _, d := range dealers {
			headers = append(headers, d.String())
		}
		totals := chart.Totals(ht)
		rows := make([][]string, 0, len(totals))
		for _, total := range totals {
			row := []string{rowLabel(ht, total)}
			for _, d := range dealers {
				row = append(row, string(chart.CorrectAction(ht, total, d).Code()))
			}
			rows = append(rows, row)
		}
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		for _, line := range stats.FormatTable(headers, rows, rightAlign) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, "\nH=HIT S=STAND D=DOUBLE P=SPLIT")
	return err
}

func rowLabel(ht strategy.HandType, total int) string {
	switch ht {
	case strategy.Soft:
		return fmt.Sprintf("%d (A,%s)", total, strategy.Card(total-int(strategy.Ace)))
	case strategy.Pair:
		c := strategy.Card(total)
		return c.String() + "," + c.String()
	default:
		return strconv.Itoa(total)
	}
}

// Package report renders analysis results for the terminal.
package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/crashwatch/internal/engine"
	"github.com/san-kum/crashwatch/internal/series"
)

// Summary renders both detector outputs as a compact table.
func Summary(result *engine.Result) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("crashwatch analysis"))
	fmt.Fprintf(&b, "  %s\n\n", subtleStyle.Render(
		fmt.Sprintf("%d observations", result.Provenance.Observations)))

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	if c := result.CSD; c != nil {
		fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("status"), StatusBadge(c.Status))
		fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("current AR(1)"),
			valueStyle.Render(fmt.Sprintf("%.4f", c.CurrentAR1)))
		fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("kendall tau"),
			valueStyle.Render(fmt.Sprintf("%.4f", c.KendallTau)))
		fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("current variance"),
			valueStyle.Render(fmt.Sprintf("%.6f", c.CurrentVariance)))
		fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("AR(1) trail"),
			Sparkline(c.AR1.Defined(), 40))
	}

	l := result.LPPL
	bubble := "no"
	if l.IsBubble {
		bubble = alertStyle.Render("YES")
	}
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("bubble signature"), bubble)
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("confidence"),
		valueStyle.Render(fmt.Sprintf("%.2f", l.Confidence)))
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("fit R²"),
		valueStyle.Render(fmt.Sprintf("%.4f", l.R2)))
	if l.Fit != nil {
		fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("critical time"),
			valueStyle.Render(fmt.Sprintf("%d steps ahead", l.TCDays)))
		fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("m / omega / phi"),
			valueStyle.Render(fmt.Sprintf("%.2f / %.1f / %.2f", l.Fit.M, l.Fit.Omega, l.Fit.Phi)))
	}
	w.Flush()

	return b.String()
}

// Charts plots the price series with its trend, and each defined
// indicator series.
func Charts(prices series.Series, result *engine.Result) string {
	var b strings.Builder

	plot := func(data []float64, caption string) {
		if len(data) < 2 {
			return
		}
		b.WriteString(asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		))
		b.WriteString("\n\n")
	}

	plot(prices, "price")
	if c := result.CSD; c != nil {
		plot(c.Trend, "trend (gaussian kernel)")
		plot(c.AR1.Defined(), "rolling AR(1)")
		plot(c.Variance.Defined(), "rolling variance")
	}
	return b.String()
}

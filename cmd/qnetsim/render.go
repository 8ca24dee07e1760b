// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/qnetsim/core"
	"github.com/katalvlaran/qnetsim/protocol"
)

// topUsed bounds the usage table in the run summary.
const topUsed = 5

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Width(18)

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	statsBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(0, 1)
)

func row(label string, value any) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render(label), valueStyle.Render(fmt.Sprint(value)))
}

// renderResult formats a run summary with the most used nodes of g.
func renderResult(res *protocol.Result, g *core.Graph) string {
	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s · %s", res.Protocol, res.Strategy)),
		row("run", res.RunID.String()),
		row("users", strings.Join(res.Users, " ")),
		row("trials", fmt.Sprintf("%d × %d timesteps", res.Reps, res.Timesteps)),
		row("seed", res.Seed),
		row("rate", fmt.Sprintf("%.6f GHZ/timestep", res.Rate)),
		row("successes", fmt.Sprintf("%d/%d", res.Successes, res.Reps)),
		row("mean time", fmt.Sprintf("%.3f", res.MeanSuccessTime)),
		row("avg links used", fmt.Sprintf("%.3f", res.AvgLinksUsed)),
		row("duration", res.Duration.Round(time.Microsecond)),
	}
	if used := mostUsed(g, topUsed); len(used) > 0 {
		lines = append(lines, "", titleStyle.Render("most used nodes"))
		for _, n := range used {
			lines = append(lines, row(n.ID, fmt.Sprintf("%.3f", n.UsageFraction)))
		}
	}

	return statsBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// mostUsed returns up to k nodes with positive usage, highest first.
func mostUsed(g *core.Graph, k int) []*core.Node {
	var out []*core.Node
	for _, n := range g.NodeList() {
		if n.UsageCount > 0 {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].UsageFraction > out[j].UsageFraction })
	if len(out) > k {
		out = out[:k]
	}

	return out
}

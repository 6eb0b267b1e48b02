package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/m-mizutani/pipesched/pkg/domain/model"
)

var statusColors = map[model.Status]text.Colors{
	model.StatusApplied:  {text.FgGreen},
	model.StatusDryRun:   {text.FgCyan},
	model.StatusNoop:     {text.FgHiBlack},
	model.StatusConflict: {text.FgYellow},
	model.StatusFailed:   {text.FgRed},
	model.StatusSkipped:  {text.FgHiBlack},
}

func renderSummary(w io.Writer, results []*model.RepoResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"REPOSITORY", "IN DEVELOPMENT", "ACTION", "STATUS", "REASON"})

	for _, r := range results {
		inDev := "-"
		if r.InDevelopment != nil {
			inDev = "no"
			if *r.InDevelopment {
				inDev = "yes"
			}
		}

		status := string(r.Status)
		if colors, ok := statusColors[r.Status]; ok {
			status = colors.Sprint(status)
		}

		t.AppendRow(table.Row{r.Repo, inDev, r.Action, status, r.Reason})
	}

	counts := model.Summarize(results)
	t.AppendFooter(table.Row{"TOTAL", len(results), "", "", formatCounts(counts)})
	t.Render()
}

func formatCounts(counts map[model.Status]int) string {
	var parts []string
	for _, status := range []model.Status{
		model.StatusApplied,
		model.StatusDryRun,
		model.StatusNoop,
		model.StatusConflict,
		model.StatusFailed,
		model.StatusSkipped,
	} {
		if n := counts[status]; n > 0 {
			parts = append(parts, string(status)+"="+strconv.Itoa(n))
		}
	}
	return strings.Join(parts, " ")
}

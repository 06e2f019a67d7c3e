// SPDX-License-Identifier: MIT

// Package report renders teampath runs for the terminal: the input matrix,
// the worker partition, per-round connect traces and the final distances.
//
// Styling uses a lipgloss renderer bound to the destination writer, so
// colors are dropped automatically when the output is not a terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/teampath/matrix"
	"github.com/katalvlaran/teampath/parallel"
	"github.com/katalvlaran/teampath/partition"
)

var (
	primaryColor = lipgloss.Color("#A78BFA")
	successColor = lipgloss.Color("#10B981")
	errorColor   = lipgloss.Color("#F87171")
	mutedColor   = lipgloss.Color("#9CA3AF")
)

// Printer writes report sections to one writer. Sections are written
// synchronously; Connect may be used as a parallel.WithOnConnect hook because
// that hook only ever runs on one goroutine at a time.
type Printer struct {
	w io.Writer

	title   lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)

	return &Printer{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(primaryColor),
		label:   r.NewStyle().Foreground(primaryColor),
		muted:   r.NewStyle().Foreground(mutedColor),
		success: r.NewStyle().Bold(true).Foreground(successColor),
		failure: r.NewStyle().Bold(true).Foreground(errorColor),
	}
}

// Matrix prints the distance matrix, one row per line, "Inf" for missing edges.
func (p *Printer) Matrix(m *matrix.Distance) {
	n := m.Size()
	width := 3
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if l := len(matrix.FormatWeight(m.Weight(i, j))); l > width {
				width = l
			}
		}
	}

	fmt.Fprintf(p.w, "\n  %s\n\n", p.title.Render("Distance matrix:"))
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.Reset()
		for j := 0; j < n; j++ {
			w := m.Weight(i, j)
			cell := fmt.Sprintf("%*s", width, matrix.FormatWeight(w))
			if w == matrix.Inf {
				cell = p.muted.Render(cell)
			}
			sb.WriteString("  ")
			sb.WriteString(cell)
		}
		fmt.Fprintln(p.w, sb.String())
	}
}

// Begin announces the team size.
func (p *Printer) Begin(workers int) {
	fmt.Fprintf(p.w, "\n  %s: Parallel region begins with %d workers.\n\n", p.label.Render("P0"), workers)
}

// Plan prints each worker's node range. Idle workers (empty range) are marked.
func (p *Printer) Plan(worker int, r partition.Range) {
	line := fmt.Sprintf("  %s:  First=%d  Last=%d", p.label.Render(workerTag(worker)), r.Start, r.End)
	if r.Empty() {
		line += " " + p.muted.Render("(idle)")
	}
	fmt.Fprintln(p.w, line)
}

// Connect prints one connect step.
func (p *Printer) Connect(e parallel.Event) {
	fmt.Fprintf(p.w, "  %s: Connecting node %d %s\n",
		p.label.Render(workerTag(e.Worker)), e.Node,
		p.muted.Render(fmt.Sprintf("(round %d, distance %s)", e.Round, matrix.FormatWeight(e.Distance))))
}

// End closes the parallel section.
func (p *Printer) End() {
	fmt.Fprintf(p.w, "\n  %s: Exiting parallel region.\n", p.label.Render("P0"))
}

// Result prints the distance table and the run summary.
func (p *Printer) Result(res *parallel.Result) {
	fmt.Fprintf(p.w, "\n  %s\n\n", p.title.Render(fmt.Sprintf("Minimum distances from node %d:", res.Source())))

	idx := len(strconv.Itoa(res.Len() - 1))
	if idx < 2 {
		idx = 2
	}
	for i := 0; i < res.Len(); i++ {
		d := matrix.FormatWeight(res.Distance(i))
		if !res.Reachable(i) {
			d = p.muted.Render(d)
		}
		fmt.Fprintf(p.w, "  %*d  %2s\n", idx, i, d)
	}

	fmt.Fprintf(p.w, "\n  %s %s\n", p.label.Render("distances:"), res.String())
	fmt.Fprintf(p.w, "  %s\n", p.muted.Render(fmt.Sprintf(
		"workers=%d rounds=%d connected=%d/%d elapsed=%s",
		res.Workers(), res.Rounds(), res.Connected(), res.Len(), res.Elapsed().Round(time.Microsecond))))
}

// Verified prints the outcome of the comparison against the sequential
// reference; mismatches lists the disagreeing nodes.
func (p *Printer) Verified(mismatches []int) {
	if len(mismatches) == 0 {
		fmt.Fprintf(p.w, "  %s\n", p.success.Render("verified against sequential reference"))
		return
	}
	fmt.Fprintf(p.w, "  %s %v\n", p.failure.Render("MISMATCH against sequential reference at nodes"), mismatches)
}

// Partition prints a standalone partition table.
func (p *Printer) Partition(n int, ranges []partition.Range) {
	fmt.Fprintf(p.w, "\n  %s\n\n", p.title.Render(fmt.Sprintf("Partition of %d nodes over %d workers:", n, len(ranges))))
	for k, r := range ranges {
		p.Plan(k, r)
	}
}

// Footer prints the normal-termination line.
func (p *Printer) Footer() {
	fmt.Fprintf(p.w, "\n%s\n  Normal end of execution.\n", p.title.Render("TEAMPATH"))
}

func workerTag(k int) string { return "P" + strconv.Itoa(k) }

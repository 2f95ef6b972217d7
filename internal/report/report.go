// Package report prints the summary of a renamer run.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mibal-ua/cyrillic-file-renamer/internal/db"
	"github.com/mibal-ua/cyrillic-file-renamer/internal/renamer"
)

var outcomes = []renamer.Outcome{renamer.Renamed, renamer.Skipped, renamer.Unsupported, renamer.Exists, renamer.Failed}

type styles struct {
	title   lipgloss.Style
	ok      lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
	dim     lipgloss.Style
	outcome map[renamer.Outcome]lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	s := styles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		ok:    r.NewStyle().Foreground(lipgloss.Color("82")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("214")),
		err:   r.NewStyle().Foreground(lipgloss.Color("196")),
		dim:   r.NewStyle().Foreground(lipgloss.Color("241")),
	}
	s.outcome = map[renamer.Outcome]lipgloss.Style{
		renamer.Renamed:     s.ok,
		renamer.Skipped:     s.dim,
		renamer.Unsupported: s.warn,
		renamer.Exists:      s.warn,
		renamer.Failed:      s.err,
	}
	return s
}

// Write prints a totals block followed by one line per file that was not
// renamed. Colors are used only when w is a terminal.
func Write(w io.Writer, s renamer.Summary) error {
	st := newStyles(lipgloss.NewRenderer(w))
	var b strings.Builder

	title := fmt.Sprintf("Transliterated %s (%s)", s.Dir, s.Variant)
	if s.DryRun {
		title += " [dry run]"
	}
	b.WriteString(st.title.Render(title))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "  Files:       %d\n", len(s.Results))
	for _, o := range outcomes {
		n := s.Count(o)
		if n == 0 && o != renamer.Renamed {
			continue
		}
		fmt.Fprintf(&b, "  %-12s %s\n", label(o)+":", st.outcome[o].Render(fmt.Sprint(n)))
	}
	if !s.DryRun && s.Count(renamer.Renamed) > 0 {
		fmt.Fprintf(&b, "  Output:      %s\n", s.OutDir)
	}
	if s.RunID != 0 {
		fmt.Fprintf(&b, "  Journal run: %d\n", s.RunID)
	}

	if problems := s.Problems(); len(problems) > 0 {
		b.WriteString("\n")
		for _, p := range problems {
			line := fmt.Sprintf("  %-11s %s", p.Outcome, p.Source)
			if p.Err != nil {
				line += st.dim.Render(" - " + p.Err.Error())
			}
			b.WriteString(st.outcome[p.Outcome].Render(line))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteRun prints a run read back from the journal: when it ran, the totals
// per outcome and the entries that were not renamed.
func WriteRun(w io.Writer, run db.Run, counts map[string]int64, entries []db.Entry) error {
	st := newStyles(lipgloss.NewRenderer(w))
	var b strings.Builder

	title := fmt.Sprintf("Run %d: %s (%s)", run.ID, run.Dir, run.Variant)
	if run.DryRun {
		title += " [dry run]"
	}
	b.WriteString(st.title.Render(title))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "  Started:     %s\n", run.StartedAt.Local().Format(time.DateTime))
	if run.FinishedAt.Valid {
		fmt.Fprintf(&b, "  Finished:    %s\n", run.FinishedAt.Time.Local().Format(time.DateTime))
	} else {
		fmt.Fprintf(&b, "  Finished:    %s\n", st.warn.Render("never"))
	}

	var total int64
	for _, n := range counts {
		total += n
	}
	fmt.Fprintf(&b, "  Files:       %d\n", total)
	for _, o := range outcomes {
		n := counts[string(o)]
		if n == 0 && o != renamer.Renamed {
			continue
		}
		fmt.Fprintf(&b, "  %-12s %s\n", label(o)+":", st.outcome[o].Render(fmt.Sprint(n)))
	}

	first := true
	for _, e := range entries {
		o := renamer.Outcome(e.Outcome)
		if o == renamer.Renamed {
			continue
		}
		if first {
			b.WriteString("\n")
			first = false
		}
		style, ok := st.outcome[o]
		if !ok {
			style = st.dim
		}
		line := fmt.Sprintf("  %-11s %s", o, e.Source)
		if e.Error.Valid {
			line += st.dim.Render(" - " + e.Error.String)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func label(o renamer.Outcome) string {
	s := string(o)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Package render formats task boards for the terminal.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/phrazzld/tasktrack/internal/domain"
	"github.com/phrazzld/tasktrack/internal/session"
)

// TimeLayout is used for creation and completion times on a board.
const TimeLayout = "15:04:05"

// Renderer formats tasks, optionally with colour. The zero value renders
// plain text.
type Renderer struct {
	color bool
	loc   *time.Location
}

// New returns a Renderer. With color disabled every style is skipped and the
// output is plain text.
func New(color bool) *Renderer {
	return &Renderer{color: color, loc: time.Local}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// Badge renders the priority label, e.g. "[High]" in plain mode.
func (r *Renderer) Badge(p domain.Priority) string {
	if !r.color {
		return "[" + p.Label() + "]"
	}
	return badgeStyle.Background(PriorityColor(p)).Render(p.Label())
}

// PendingTask renders one pending task line.
func (r *Renderer) PendingTask(t domain.Task) string {
	return fmt.Sprintf("%s #%d %s %s",
		r.Badge(t.Priority),
		t.ID,
		t.Name,
		r.style(mutedStyle, "added "+r.clock(t.CreatedAt)))
}

// CompletedTask renders one completed task line with the name struck through.
func (r *Renderer) CompletedTask(t domain.Task) string {
	name := t.Name
	if r.color {
		name = doneStyle.Render(name)
	} else {
		name = "~" + name + "~"
	}

	line := fmt.Sprintf("%s #%d %s", r.Badge(t.Priority), t.ID, name)
	if t.CompletedAt != nil {
		line += " " + r.style(mutedStyle, "done "+r.clock(*t.CompletedAt))
	}
	return line
}

// PendingBoard renders the pending tasks under a heading, in the order given.
func (r *Renderer) PendingBoard(tasks []domain.Task) string {
	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, r.PendingTask(t))
	}
	return r.board(fmt.Sprintf("Pending (%d)", len(tasks)), lines, "No pending tasks. Add one with: add <1-5> <name>")
}

// CompletedBoard renders the completed tasks under a heading, in the order given.
func (r *Renderer) CompletedBoard(tasks []domain.Task) string {
	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, r.CompletedTask(t))
	}
	return r.board(fmt.Sprintf("Completed (%d)", len(tasks)), lines, "Nothing completed yet.")
}

func (r *Renderer) board(title string, lines []string, empty string) string {
	var b strings.Builder
	b.WriteString(r.style(titleStyle, title))
	b.WriteString("\n")

	if len(lines) == 0 {
		lines = []string{r.style(mutedStyle, empty)}
	}
	body := strings.Join(lines, "\n")
	if r.color {
		body = boardStyle.Render(body)
	} else {
		body = indent(body, "  ")
	}
	b.WriteString(body)
	return b.String()
}

// Stats renders the session metrics and the pending count per priority.
func (r *Renderer) Stats(s session.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s   %s %s",
		r.style(mutedStyle, "Pending:"), r.style(metricStyle, fmt.Sprint(s.Pending)),
		r.style(mutedStyle, "Completed:"), r.style(metricStyle, fmt.Sprint(s.Completed)))

	for p := domain.PriorityCritical; p <= domain.PriorityVeryLow; p++ {
		n := s.PendingByPriority[p]
		if n == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n  %s %d", r.Badge(p), n)
	}
	return b.String()
}

// Success renders a confirmation message.
func (r *Renderer) Success(msg string) string {
	return r.style(successStyle, msg)
}

// Error renders an error message.
func (r *Renderer) Error(msg string) string {
	return r.style(errorStyle, "error: "+msg)
}

// Muted renders secondary text such as help.
func (r *Renderer) Muted(msg string) string {
	return r.style(mutedStyle, msg)
}

func (r *Renderer) clock(t time.Time) string {
	if r.loc != nil {
		t = t.In(r.loc)
	}
	return t.Format(TimeLayout)
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

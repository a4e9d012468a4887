package progrock

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"github.com/vito/progrock"
	"go.trai.ch/extprune/internal/ui/output"
	"go.trai.ch/extprune/internal/ui/style"
)

// Journal is a progrock.Writer that keeps the latest state and output of
// every vertex in order of first appearance.
type Journal struct {
	mu       sync.Mutex
	order    []string
	vertices map[string]*progrock.Vertex
	logs     map[string]*strings.Builder
}

var _ progrock.Writer = (*Journal)(nil)

// NewJournal creates an empty Journal.
func NewJournal() *Journal {
	return &Journal{
		vertices: make(map[string]*progrock.Vertex),
		logs:     make(map[string]*strings.Builder),
	}
}

// WriteStatus merges a status update into the journal.
func (j *Journal) WriteStatus(update *progrock.StatusUpdate) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, v := range update.Vertexes {
		if _, ok := j.vertices[v.Id]; !ok {
			j.order = append(j.order, v.Id)
		}
		j.vertices[v.Id] = v
	}

	for _, l := range update.Logs {
		buf, ok := j.logs[l.Vertex]
		if !ok {
			buf = &strings.Builder{}
			j.logs[l.Vertex] = buf
		}
		buf.Write(l.Data)
	}

	return nil
}

// Close implements progrock.Writer. Recorded vertices remain readable.
func (j *Journal) Close() error {
	return nil
}

// WriteTo renders one line per vertex with its status icon, name, logged
// output and error.
func (j *Journal) WriteTo(w io.Writer) (int64, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if len(j.order) == 0 {
		return 0, nil
	}

	out := output.New(w)
	var b strings.Builder
	b.WriteString("\nRemoval progress:\n")
	for _, id := range j.order {
		b.WriteString("  " + j.line(out, id) + "\n")
	}

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func (j *Journal) line(out *termenv.Output, id string) string {
	v := j.vertices[id]

	var icon, color string
	switch {
	case v.Cached:
		icon, color = style.Tilde, string(style.Slate)
	case v.Completed != nil && v.Error != nil:
		icon, color = style.Cross, string(style.Red)
	case v.Completed != nil:
		icon, color = style.Check, string(style.Green)
	default:
		icon, color = style.Dot, string(style.Yellow)
	}

	line := output.Paint(out, icon, color) + " " + v.Name
	if logged := loggedLines(j.logs[id]); len(logged) > 0 {
		line += " (" + strings.Join(logged, "; ") + ")"
	}
	if v.Error != nil {
		line += fmt.Sprintf(": %s", *v.Error)
	}
	return line
}

func loggedLines(buf *strings.Builder) []string {
	if buf == nil {
		return nil
	}

	var lines []string
	for l := range strings.SplitSeq(buf.String(), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// Package linear prints xclean state as plain lines for pipes, CI logs and
// one-shot commands.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
	"go.trai.ch/xclean/internal/core/domain"
	"go.trai.ch/xclean/internal/core/ports"
	"go.trai.ch/xclean/internal/ui/output"
	"go.trai.ch/xclean/internal/ui/style"
)

var _ ports.Presenter = (*Presenter)(nil)

// Presenter implements ports.Presenter for non-interactive output. Results go
// to stdout, failures to stderr.
type Presenter struct {
	stdout *termenv.Output
	stderr *termenv.Output

	mu       sync.Mutex
	snapshot domain.Snapshot
}

// NewPresenter creates a Presenter. Nil writers mean os.Stdout and os.Stderr.
func NewPresenter(stdout, stderr io.Writer) *Presenter {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Presenter{
		stdout: output.NewWithProfile(stdout, output.ColorProfileANSI),
		stderr: output.NewWithProfile(stderr, output.ColorProfileANSI),
	}
}

// OnSnapshot keeps the latest snapshot.
func (p *Presenter) OnSnapshot(snapshot domain.Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snapshot = snapshot
}

// OnEntrySized does nothing; sizes are read when the table is printed.
func (p *Presenter) OnEntrySized(*domain.Entry) {}

// OnDeleteFailed prints the failure to stderr.
func (p *Presenter) OnDeleteFailed(op domain.Operation, err error) {
	symbol := p.stderr.String(style.Cross).Foreground(termenv.ANSIRed).String()
	_, _ = fmt.Fprintf(p.stderr, "%s %s failed: %v\n", symbol, op, err)
}

// OnUnavailable prints that op was skipped.
func (p *Presenter) OnUnavailable(op domain.Operation) {
	symbol := p.stderr.String(style.Warning).Foreground(termenv.ANSIYellow).String()
	_, _ = fmt.Fprintf(p.stderr, "%s %s skipped: the DerivedData location is unavailable\n", symbol, op)
}

// Snapshot returns the latest published snapshot.
func (p *Presenter) Snapshot() domain.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot
}

// Table prints entries as aligned columns followed by a total. Zombies are
// marked when isZombie is not nil.
func (p *Presenter) Table(entries []*domain.Entry, isZombie func(*domain.Entry) bool) {
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(p.stdout, p.stdout.String("No DerivedData entries found.").Faint())
		return
	}

	w := tabwriter.NewWriter(p.stdout, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tSIZE\tPROJECT")

	var total uint64
	for _, e := range entries {
		name := e.Name()
		if isZombie != nil && isZombie(e) {
			name += " " + style.Zombie
		}

		size, loading := e.Sizing()
		sizeText := humanize.Bytes(size)
		if loading {
			sizeText = "…"
		}
		total += size

		project := e.ProjectPath()
		if project == "" {
			project = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", name, sizeText, project)
	}
	_ = w.Flush()

	summary := fmt.Sprintf("%d %s, %s total", len(entries), plural(len(entries)), humanize.Bytes(total))
	_, _ = fmt.Fprintln(p.stdout, p.stdout.String(summary).Faint())
}

// Removed reports a finished deletion.
func (p *Presenter) Removed(count int, freed uint64) {
	p.Done(fmt.Sprintf("Removed %d %s, freed %s", count, plural(count), humanize.Bytes(freed)))
}

// Done prints a success line.
func (p *Presenter) Done(msg string) {
	symbol := p.stdout.String(style.Check).Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(p.stdout, "%s %s\n", symbol, msg)
}

// Preferences prints the stored preferences.
func (p *Presenter) Preferences(autoClean bool, lastStart time.Time, started bool) {
	state := "off"
	if autoClean {
		state = "on"
	}
	last := "never"
	if started {
		last = lastStart.UTC().Format(time.RFC3339)
	}

	w := tabwriter.NewWriter(p.stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "auto-clean:\t%s\n", state)
	_, _ = fmt.Fprintf(w, "last start:\t%s\n", last)
	_ = w.Flush()
}

func plural(n int) string {
	if n == 1 {
		return "entry"
	}
	return "entries"
}

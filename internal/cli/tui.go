package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pumlex/pumlex/pkg/errors"
	"github.com/pumlex/pumlex/pkg/export"
)

// spinnerFrames are the animation frames for files still being exported.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// fileStatus is the lifecycle state of one file in the progress view.
type fileStatus int

const (
	statusPending fileStatus = iota
	statusDone
	statusFailed
)

// resultMsg carries one finished export into the model.
type resultMsg export.Event

// finishedMsg signals that every export task has been drained.
type finishedMsg struct{}

// tickMsg advances the spinner animation.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// exportModel is the bubbletea model showing live per-file export status.
type exportModel struct {
	paths  []string
	index  map[string]int // path → position in paths
	status []fileStatus
	errs   []string
	done   int
	frame  int
}

func newExportModel(paths []string) exportModel {
	index := make(map[string]int, len(paths))
	for i, p := range paths {
		index[p] = i
	}
	return exportModel{
		paths:  paths,
		index:  index,
		status: make([]fileStatus, len(paths)),
		errs:   make([]string, len(paths)),
	}
}

func (m exportModel) Init() tea.Cmd {
	return tick()
}

func (m exportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case resultMsg:
		if i, ok := m.index[msg.Path]; ok {
			if msg.Err != nil {
				m.status[i] = statusFailed
				m.errs[i] = errors.UserMessage(msg.Err)
			} else {
				m.status[i] = statusDone
			}
			m.done++
		}
	case finishedMsg:
		return m, tea.Quit
	case tickMsg:
		m.frame++
		return m, tick()
	}
	return m, nil
}

func (m exportModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Exporting diagrams"))
	b.WriteString("\n\n")

	for i, path := range m.paths {
		switch m.status[i] {
		case statusDone:
			b.WriteString(styleIconSuccess.Render(iconSuccess) + " " + StyleValue.Render(path))
		case statusFailed:
			b.WriteString(styleIconError.Render(iconError) + " " + StyleValue.Render(path))
			b.WriteString("\n  " + StyleDim.Render(m.errs[i]))
		default:
			frame := spinnerFrames[m.frame%len(spinnerFrames)]
			b.WriteString(styleIconSpinner.Render(frame) + " " + StyleDim.Render(path))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.done, len(m.paths))))
	b.WriteString("\n")

	return b.String()
}

// runExportTUI runs the export with a live progress view. The program quits
// once every task has finished; quitting the view early (q, ctrl+c) still
// waits for in-flight exports to drain before returning.
func runExportTUI(ctx context.Context, runner *export.Runner, paths []string) error {
	p := tea.NewProgram(newExportModel(paths), tea.WithContext(ctx), tea.WithOutput(os.Stderr))

	runner.OnResult = func(ev export.Event) {
		p.Send(resultMsg(ev))
	}

	done := make(chan error, 1)
	go func() {
		done <- runner.ExportAll(ctx, paths)
		p.Send(finishedMsg{})
	}()

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}

	exportErr := <-done
	if exportErr != nil {
		return exportErr
	}
	printSuccess("Exported %d diagram(s)", len(paths))
	return nil
}

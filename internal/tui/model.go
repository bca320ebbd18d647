package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/focustime/internal/config"
	"github.com/akyairhashvil/focustime/internal/database"
	"github.com/akyairhashvil/focustime/internal/models"
	"github.com/akyairhashvil/focustime/internal/timer"
	"github.com/akyairhashvil/focustime/internal/util"
)

// TickMsg drives the once-a-second redraw and countdown-expiry check.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// MainModel is the root bubbletea model: one timer pane plus a notes
// input overlay.
type MainModel struct {
	mgr    *timer.Manager
	db     *database.Database
	theme  Theme
	prog   progress.Model
	notes  textinput.Model
	labels []models.Label

	notesActive bool
	labelIndex  int
	status      string
	width       int
	height      int
}

func NewMainModel(mgr *timer.Manager, db *database.Database) MainModel {
	ctx := context.Background()
	labels, err := db.GetLabels(ctx)
	util.LogError("tui: load labels", err)

	ti := textinput.New()
	ti.Placeholder = "What did you work on?"
	ti.CharLimit = 200
	ti.Width = 48

	themeName, _ := db.GetSetting(ctx, "theme")
	return MainModel{
		mgr:    mgr,
		db:     db,
		theme:  GetTheme(themeName),
		prog:   progress.New(progress.WithDefaultGradient()),
		notes:  ti,
		labels: labels,
	}
}

func (m MainModel) Init() tea.Cmd {
	return tea.Batch(tickCmd(), textinput.Blink)
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prog.Width = util.Clamp(msg.Width-12, 20, 60)
		return m, nil

	case TickMsg:
		// The tick doubles as the platform alarm: a countdown that ran out
		// finishes itself and may auto-chain into the next phase.
		data := m.mgr.Data()
		if data.Label.IsCountdown && data.Runtime.State == models.TimerRunning && m.mgr.Remaining() <= 0 {
			m.mgr.Finish(models.ActionAuto)
		}
		return m, tickCmd()

	case EventMsg:
		m.status = describeEvent(msg.Event)
		return m, nil

	case tea.KeyMsg:
		if m.notesActive {
			return m.updateNotes(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m MainModel) updateNotes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.mgr.UpdateLastSessionNotes(m.notes.Value())
		m.notes.SetValue("")
		m.notes.Blur()
		m.notesActive = false
		m.status = "notes saved"
		return m, nil
	case tea.KeyEsc:
		m.notes.SetValue("")
		m.notes.Blur()
		m.notesActive = false
		return m, nil
	}
	var cmd tea.Cmd
	m.notes, cmd = m.notes.Update(msg)
	return m, cmd
}

func (m MainModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "s":
		m.mgr.Start(models.TypeFocus)
	case "b":
		m.mgr.Start(models.TypeBreak)
	case " ":
		m.mgr.Toggle()
	case "+":
		m.mgr.AddOneMinute()
	case "f":
		m.mgr.Finish(models.ActionForceFinish)
	case "n":
		m.mgr.Next(models.ActionSkip)
	case "r":
		m.mgr.Reset(models.ActionManualReset)
	case "d":
		m.mgr.Reset(models.ActionDump)
		m.status = "session discarded"
	case "l":
		m = m.cycleLabel()
	case "N":
		m.notesActive = true
		m.notes.Focus()
		return m, textinput.Blink
	case "e":
		m.status = m.exportSessions()
	case "p":
		m.status = m.generateReport()
	}
	return m, nil
}

func (m MainModel) cycleLabel() MainModel {
	if len(m.labels) < 2 {
		m.status = "no other labels"
		return m
	}
	m.labelIndex = (m.labelIndex + 1) % len(m.labels)
	label := m.labels[m.labelIndex]
	m.mgr.SetActiveLabel(label)
	m.status = fmt.Sprintf("label: %s", label.Name)
	return m
}

func (m MainModel) exportSessions() string {
	path := filepath.Join(util.DataDir(config.AppName), "sessions_export.json")
	f, err := os.Create(path)
	if err != nil {
		util.LogError("tui: create export", err)
		return "export failed"
	}
	defer f.Close()
	if err := m.db.ExportSessions(context.Background(), f, ""); err != nil {
		util.LogError("tui: export sessions", err)
		return "export failed"
	}
	return fmt.Sprintf("exported to %s", path)
}

func (m MainModel) generateReport() string {
	path, err := GeneratePDFReport(context.Background(), m.db)
	if err != nil {
		util.LogError("tui: pdf report", err)
		return "report failed"
	}
	return fmt.Sprintf("report: %s", path)
}

func describeEvent(e timer.Event) string {
	switch ev := e.(type) {
	case timer.StartEvent:
		kind := "break"
		if ev.IsFocus {
			kind = "focus"
		}
		if ev.AutoStarted {
			return fmt.Sprintf("auto-started %s", kind)
		}
		return fmt.Sprintf("started %s", kind)
	case timer.PauseEvent:
		return "paused"
	case timer.AddOneMinuteEvent:
		return "+1 minute"
	case timer.FinishedEvent:
		if ev.AutostartNextSession {
			return fmt.Sprintf("%s finished, next starting", ev.Type)
		}
		return fmt.Sprintf("%s finished", ev.Type)
	case timer.ResetEvent:
		return "reset"
	case timer.UpdateActiveLabelEvent:
		return "label changed"
	}
	return ""
}

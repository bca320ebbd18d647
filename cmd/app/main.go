package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/akyairhashvil/focustime/internal/config"
	"github.com/akyairhashvil/focustime/internal/database"
	"github.com/akyairhashvil/focustime/internal/timekeeper"
	"github.com/akyairhashvil/focustime/internal/timer"
	"github.com/akyairhashvil/focustime/internal/tui"
	"github.com/akyairhashvil/focustime/internal/util"
)

func main() {
	exportPath := flag.String("export", "", "export sessions to the given file and exit")
	encrypt := flag.Bool("encrypt", false, "encrypt the export with a passphrase")
	flag.Parse()

	ctx := context.Background()

	// 1. Open the database.
	dbRoot := util.DataDir(config.AppName)
	_ = os.MkdirAll(dbRoot, 0o755)
	dbPath := filepath.Join(dbRoot, config.DBFileName)
	db, err := database.Open(ctx, dbPath)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if *exportPath != "" {
		runExport(ctx, db, *exportPath, *encrypt)
		return
	}

	// 2. Build the timer core: time source, stores, state machine.
	tp := timekeeper.NewSystemTime()
	store := database.NewTimerStore(db)
	mgr := timer.NewManager(tp, store, store)

	label, err := db.EnsureDefaultLabel(ctx)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	mgr.Init(label,
		db.GetLongBreakData(ctx),
		db.GetBreakBudgetData(ctx),
		db.GetBoolSetting(ctx, config.KeyAutoStartWork, false),
		db.GetBoolSetting(ctx, config.KeyAutoStartBreak, false))

	// 3. Restore state persisted before the last process death, before any
	// listener or user interaction can observe the timer.
	snapshot, err := store.LoadTimerState()
	util.LogError("main: load timer state", err)
	if rt, ok := timer.RestoreRuntime(snapshot, tp); ok {
		mgr.Restore(rt)
	} else if snapshot != nil {
		util.LogError("main: clear stale timer state", store.ClearTimerState())
	}

	// 4. Register listeners, then start the program.
	notifier := tui.NewNotifier()
	mgr.AddListener(timer.NewPersistenceListener(store, tp))
	mgr.AddListener(notifier)

	p := tea.NewProgram(tui.NewMainModel(mgr, db), tea.WithAltScreen())
	notifier.SetProgram(p)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}

func runExport(ctx context.Context, db *database.Database, path string, encrypt bool) {
	passphrase := ""
	if encrypt {
		var err error
		passphrase, err = promptForPassphrase()
		if err != nil {
			fmt.Printf("Alas, there's been an error: %v\n", err)
			os.Exit(1)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := db.ExportSessions(ctx, f, passphrase); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Sessions exported to %s\n", path)
}

func promptForPassphrase() (string, error) {
	for {
		fmt.Fprint(os.Stderr, "Export passphrase: ")
		pass, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		trimmed := strings.TrimSpace(string(pass))
		if err := util.ValidatePassphrase(trimmed); err != nil {
			fmt.Fprintf(os.Stderr, "Passphrase too weak: %v\n", err)
			continue
		}
		return trimmed, nil
	}
}

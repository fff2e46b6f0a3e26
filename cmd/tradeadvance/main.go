package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tinytelemetry/tradeadvance/internal/backup"
	"github.com/tinytelemetry/tradeadvance/internal/journal"
	"github.com/tinytelemetry/tradeadvance/internal/locale"
	"github.com/tinytelemetry/tradeadvance/internal/logging"
	"github.com/tinytelemetry/tradeadvance/internal/nav"
	"github.com/tinytelemetry/tradeadvance/internal/platform"
	"github.com/tinytelemetry/tradeadvance/internal/savedata"
	"github.com/tinytelemetry/tradeadvance/internal/screens"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var saveDir string
	var script string
	var showVersion bool
	var showHistory bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/tradeadvance/config.yml)")
	flag.StringVar(&saveDir, "save-dir", "", "override the directory saves are read from")
	flag.StringVar(&script, "script", "", "replay keys headlessly, e.g. \"down,enter,esc\", and print every frame")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.BoolVar(&showHistory, "history", false, "print the trade history and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("Trade Advance\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if saveDir != "" {
		cfg.SaveDir = saveDir
	}

	if showHistory {
		if err := printHistory(cfg.HistoryPath, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, script, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// drivers is the backend set chosen at startup.
type drivers struct {
	console platform.Console
	input   platform.Input
	sleep   platform.Sleeper
	close   func()
}

func openDrivers(cfg appConfig, script string) (drivers, error) {
	if script != "" {
		in, err := platform.ParseScript(script)
		if err != nil {
			return drivers{}, fmt.Errorf("script: %w", err)
		}
		return drivers{console: platform.NewRecorder(), input: in, sleep: &platform.NoSleep{}, close: func() {}}, nil
	}

	tty := platform.NewTerminal(os.Stdin, os.Stdout, platform.DefaultKeyMap())
	d := drivers{console: tty, input: tty, sleep: platform.RealSleeper{}, close: func() {}}
	if cfg.Backend == backendEvdev {
		dev, err := platform.OpenEvdev(cfg.EvdevDevice)
		if err != nil {
			return drivers{}, err
		}
		d.input = dev
		d.close = func() { _ = dev.Close() }
	}
	return d, nil
}

func run(cfg appConfig, script string, stdout io.Writer) error {
	level := new(slog.LevelVar)
	level.Set(logging.ParseLevel(cfg.LogLevel))
	log, closeLog := logging.Open(cfg.LogPath, level)
	defer closeLog()

	text, err := locale.New(cfg.Language)
	if err != nil {
		return err
	}

	home, _ := os.UserHomeDir()
	theme, err := screens.LoadTheme(skinPath(home, cfg.Skin))
	if err != nil {
		log.Warn("skin not loaded, using default", "skin", cfg.Skin, "err", err)
	}

	d, err := openDrivers(cfg, script)
	if err != nil {
		return err
	}
	defer d.close()

	fs := platform.OSFS{}
	backups, err := backup.NewManager(fs, backup.Config{Enabled: cfg.Backup, Dir: cfg.BackupDir, KeepLast: cfg.BackupKeep}, log)
	if err != nil {
		return err
	}

	var history *journal.Journal
	if cfg.HistoryPath != "" {
		history, err = journal.Open(cfg.HistoryPath)
		if err != nil {
			log.Warn("trade history unavailable", "path", cfg.HistoryPath, "err", err)
		} else {
			defer history.Close()
		}
	}

	if err := d.console.Init(); err != nil {
		return fmt.Errorf("console: %w", err)
	}

	env := &screens.Env{
		Console: d.console,
		Input:   d.input,
		Sleep:   d.sleep,
		Keys:    platform.DefaultKeyMap(),
		Store: &savedata.Store{
			FS:    fs,
			Codec: savedata.YAMLCodec{},
			Dir:   cfg.SaveDir,
			Ext:   cfg.SaveExt,
		},
		Text:           text,
		Theme:          theme,
		Log:            log,
		Version:        version,
		FPS:            cfg.FPS,
		SkipAnimations: cfg.SkipAnimations,
	}
	if backups != nil {
		env.Backup = backups
	}
	if history != nil {
		env.History = history
	}
	log.Info("starting", "version", version, "backend", cfg.Backend, "save_dir", cfg.SaveDir, "language", text.Tag().String())

	runErr := nav.New(screens.NewSplash(env), env.NavOptions()).Run()
	if !errors.Is(runErr, platform.ErrInterrupted) {
		_ = nav.New(screens.NewExit(env), env.NavOptions()).Run()
	}

	if err := d.console.Dispose(); err != nil {
		log.Warn("console dispose failed", "err", err)
	}

	if rec, ok := d.console.(*platform.Recorder); ok {
		for i, frame := range rec.Frames {
			fmt.Fprintf(stdout, "--- frame %d ---\n%s\n", i, frame)
		}
	}

	if runErr != nil && !platform.IsShutdown(runErr) {
		return runErr
	}
	log.Info("bye")
	return nil
}

func printHistory(path string, w io.Writer) error {
	if path == "" {
		return errors.New("history-path is not set")
	}
	j, err := journal.Open(path)
	if err != nil {
		return err
	}
	defer j.Close()

	n := 0
	err = j.Replay(func(seq uint64, t journal.Trade) error {
		n++
		_, err := fmt.Fprintf(w, "#%d %s  %s (%s) gave %s, %s (%s) gave %s\n",
			seq, t.Time.Local().Format("2006-01-02 15:04"),
			t.Trainers[0], t.Saves[0], t.Species[0],
			t.Trainers[1], t.Saves[1], t.Species[1])
		return err
	})
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Fprintln(w, "no trades yet")
	}
	return nil
}

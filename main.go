package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"tsuika/internal/config"
	"tsuika/internal/demo"
	"tsuika/internal/discovery"
	"tsuika/internal/drawable"
	"tsuika/internal/eventbus"
	"tsuika/internal/itemfile"
	"tsuika/internal/ui"
)

var version = "dev"

func main() {
	// Parse command line arguments
	var (
		configPath  string
		itemsPath   string
		logPath     string
		usePager    bool
		writeConfig bool
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "Path to the config file (default: user config dir)")
	flag.StringVar(&itemsPath, "items", "", "TOML file of [[item]] tables, or a directory of them, to show instead of the demo items")
	flag.StringVar(&logPath, "log", "", "Log file (overrides log.file from the config)")
	flag.BoolVar(&usePager, "pager", false, "Show the rendered items in the ov pager")
	flag.BoolVar(&writeConfig, "write-config", false, "Write the effective config to the config path and exit")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("tsuika %s\n", version)
		return
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration with event bus support
	configSvc := config.NewConfigServiceWithBus(bus, configPath)
	cfg, configErr := configSvc.Load()
	if configErr != nil {
		cfg = config.DefaultConfig()
	}

	if writeConfig {
		if err := writeEffectiveConfig(configSvc, cfg, configErr); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", configSvc.Path())
		return
	}

	// Create context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	// Set up logging
	if logPath == "" {
		logPath = cfg.Log.File
	}
	if logPath != "" {
		logFile, err := tea.LogToFile(logPath, "tsuika")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
			os.Exit(1)
		}
		defer logFile.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	subscribeSessionLog(bus)
	defer bus.Close()

	if configErr != nil {
		log.Printf("Error loading config, using defaults: %v", configErr)
	} else {
		log.Printf("Config loaded from %s", configSvc.Path())
	}

	// Remaining args are extra item paths
	var roots []string
	if itemsPath != "" {
		roots = append(roots, itemsPath)
	}
	roots = append(roots, flag.Args()...)

	registry, err := buildRegistry(ctx, bus, roots)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading items: %v\n", err)
		os.Exit(1)
	}

	if usePager {
		if err := ui.ShowRegistryInPager(registry); err != nil {
			log.Printf("Error running pager: %v", err)
			fmt.Fprintf(os.Stderr, "Error running pager: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Without a terminal there is nothing to navigate; print everything
	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Printf("Not a terminal, printing %d items", registry.Len())
		fmt.Print(registry.Draw())
		return
	}

	// Run the UI
	log.Printf("Starting UI...")
	if err := ui.Run(ctx, registry, cfg, bus); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Printf("UI stopped by signal")
			return
		}
		log.Printf("Error running program: %v", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// writeEffectiveConfig saves cfg through the service. It refuses when the
// existing file could not be loaded, since cfg would then be the defaults and
// saving would overwrite the user's settings.
func writeEffectiveConfig(configSvc config.ConfigService, cfg *config.Config, loadErr error) error {
	if loadErr != nil && !errors.Is(loadErr, config.ErrNotFound) {
		return fmt.Errorf("refusing to overwrite %s: %w", configSvc.Path(), loadErr)
	}
	return configSvc.Save(cfg)
}

// buildRegistry loads every item file under roots, or the demo items when
// no roots are given
func buildRegistry(ctx context.Context, bus eventbus.EventBus, roots []string) (*drawable.Registry, error) {
	if len(roots) == 0 {
		return demo.Registry(), nil
	}

	files, err := discovery.NewScanner(bus).Scan(ctx, roots)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no item files found in %s", strings.Join(roots, ", "))
	}

	registry := drawable.NewRegistry()
	for _, path := range files {
		items, err := itemfile.Load(path)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			registry.Add(item)
		}
		log.Printf("Loaded %d items from %s", len(items), path)
	}
	return registry, nil
}

// subscribeSessionLog writes session events to the log
func subscribeSessionLog(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			log.Printf("Config saved to %s", event.Path)
		}
	})
	bus.Subscribe(eventbus.EventScanCompleted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ScanCompletedEvent); ok {
			log.Printf("Found %d item files in %v", event.FilesFound, event.Roots)
		}
	})
	bus.Subscribe(eventbus.EventModeChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ModeChangedEvent); ok {
			log.Printf("Mode %s -> %s", event.From, event.To)
		}
	})
	bus.Subscribe(eventbus.EventCursorMoved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.CursorMovedEvent); ok {
			log.Printf("Cursor %d -> %d", event.OldIndex, event.NewIndex)
		}
	})
	bus.Subscribe(eventbus.EventPageChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PageChangedEvent); ok {
			if event.Clamped {
				log.Printf("Page %d clamped to %d", event.OldPage, event.NewPage)
			} else {
				log.Printf("Page %d -> %d", event.OldPage, event.NewPage)
			}
		}
	})
	bus.Subscribe(eventbus.EventSessionEnded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SessionEndedEvent); ok && event.Err != nil {
			log.Printf("Session ended with error: %v", event.Err)
		}
	})
}

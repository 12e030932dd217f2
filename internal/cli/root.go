package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"imgswipe/internal/config"
	"imgswipe/internal/eventbus"
	"imgswipe/internal/library"
	"imgswipe/internal/logging"
	"imgswipe/internal/ui"
)

// Version is set at build time with -ldflags "-X imgswipe/internal/cli.Version=..."
var Version = "dev"

var log = logging.NewLogger("cli")

// Options holds the root command flags
type Options struct {
	Dir        string
	ConfigFile string
	LogLevel   string
	LogFile    string
}

// NewRootCommand builds the imgswipe command
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "imgswipe [files...]",
		Short: "Browse photos in the terminal and swipe between them",
		Long: `imgswipe shows one photo at a time from your picture library.
Pick one photo or several, then move through the selection with the
arrow keys or by dragging the mouse across the image.

Image files given as arguments open directly as a selection.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Dir, "dir", "d", "", "Directory to use as the photo library")
	cmd.Flags().StringVar(&opts.ConfigFile, "config", "", "Path to config file (default "+config.DefaultPath()+")")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "Write logs to this file")

	return cmd
}

// Execute runs the root command with signal handling and returns the process exit code
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(opts *Options) (*config.Config, config.ConfigService, eventbus.EventBus, error) {
	bus := eventbus.New()
	configSvc := config.NewConfigServiceWithBus(opts.ConfigFile, bus)
	cfg, err := configSvc.Load()
	if cfg == nil {
		bus.Close()
		return nil, nil, nil, fmt.Errorf("failed to load config %s: %w", configSvc.Path(), err)
	}
	if err != nil {
		// Defaults are usable even when they could not be written back.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if opts.Dir != "" {
		abs, err := filepath.Abs(config.ExpandPath(opts.Dir))
		if err != nil {
			bus.Close()
			return nil, nil, nil, fmt.Errorf("failed to resolve %s: %w", opts.Dir, err)
		}
		cfg.LibraryDir = abs
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFile != "" {
		cfg.Log.File = opts.LogFile
	}
	if cfg.Log.File == "" {
		cfg.Log.File = logging.DefaultLogFile()
	}

	return cfg, configSvc, bus, nil
}

func run(ctx context.Context, opts *Options, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg, configSvc, bus, err := loadConfig(opts)
	if err != nil {
		return err
	}
	defer bus.Close()

	closer, err := logging.Setup(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return err
	}
	defer closer.Close()

	root := cfg.LibraryRoot()
	log.WithFields(logrus.Fields{
		"config":  configSvc.Path(),
		"library": root,
		"version": Version,
	}).Info("starting imgswipe")

	scanner := library.NewScanner(bus, library.Options{
		Extensions: cfg.Extensions,
		MaxDepth:   cfg.MaxDepth,
	})
	defer scanner.StopScan()

	if cfg.Watch {
		watcher, err := library.NewWatcher(bus, scanner, root, cfg.MaxDepth)
		if err != nil {
			log.WithError(err).Warn("library watch disabled")
		} else {
			go watcher.Run(ctx)
		}
	}

	model := ui.NewModel(bus, cfg)
	if len(args) > 0 {
		refs := library.Resolve(scanner, args)
		if len(refs) == 0 {
			return fmt.Errorf("none of the given files is an image")
		}
		model.SetInitialSelection(refs)
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	model.SetProgram(p)

	forward := newForwarder(p)
	for _, eventType := range []eventbus.EventType{
		eventbus.EventScanStarted,
		eventbus.EventScanCompleted,
		eventbus.EventLibraryChanged,
		eventbus.EventError,
		eventbus.EventConfigSaved,
	} {
		bus.Subscribe(eventType, forward.send)
	}
	go forward.run()

	if err := scanner.StartScan(ctx, root); err != nil {
		log.WithError(err).Warn("initial scan not started")
	}

	_, runErr := p.Run()
	interrupted := ctx.Err() != nil

	// The bus must stop dispatching before the forwarder channel closes.
	cancel()
	scanner.StopScan()
	bus.Close()
	forward.close()

	if runErr != nil && !interrupted {
		log.WithError(runErr).Error("program exited with error")
		return fmt.Errorf("error running program: %w", runErr)
	}
	log.Info("imgswipe exited")
	return nil
}

// forwarder hands bus events to the program without blocking the bus
type forwarder struct {
	program *tea.Program
	events  chan eventbus.DomainEvent
}

func newForwarder(p *tea.Program) *forwarder {
	return &forwarder{program: p, events: make(chan eventbus.DomainEvent, 100)}
}

func (f *forwarder) send(e eventbus.DomainEvent) {
	select {
	case f.events <- e:
	default:
		log.WithField("event", e.Type()).Warn("event channel full, dropping event")
	}
}

func (f *forwarder) run() {
	for event := range f.events {
		f.program.Send(ui.EventMsg{Event: event})
	}
}

func (f *forwarder) close() {
	close(f.events)
}

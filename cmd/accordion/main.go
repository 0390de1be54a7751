package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-isatty"
	"github.com/mmcdole/accordion/internal/accordion"
	"github.com/mmcdole/accordion/internal/adapter"
	"github.com/mmcdole/accordion/internal/document"
	"github.com/mmcdole/accordion/internal/domain"
	"github.com/mmcdole/accordion/internal/store"
	"github.com/mmcdole/accordion/internal/tui"
	"github.com/mmcdole/accordion/internal/tui/components"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

// defaultPrintWidth is used when stdout is not a terminal
const defaultPrintWidth = 80

// flags holds command line overrides. Unset flags leave the config alone.
type flags struct {
	configFile string
	active     string
	radio      bool
	closeAll   bool
	animate    bool
	printOnly  bool
	reset      bool
	resetAll   bool
	saveConfig bool
	version    bool
	set        map[string]bool
}

func parseFlags(args []string) (*flags, []string, error) {
	f := &flags{set: make(map[string]bool)}
	fs := flag.NewFlagSet("accordion", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: accordion [flags] <document.{md,yaml,toml}>\n")
		fmt.Fprintf(fs.Output(), "       accordion [-save-config] [-reset-all] [flags]\n\n")
		fs.PrintDefaults()
	}

	fs.StringVar(&f.configFile, "config", "", "config file (default ~/.config/accordion/config.yaml)")
	fs.StringVar(&f.active, "active", "", "section index to expand at start (negative counts from the end)")
	fs.BoolVar(&f.radio, "radio", false, "allow only one open section")
	fs.BoolVar(&f.closeAll, "close-all", true, "allow every section to be closed")
	fs.BoolVar(&f.animate, "animate", false, "animate opening and closing")
	fs.BoolVar(&f.printOnly, "print", false, "print the expanded document instead of starting the TUI")
	fs.BoolVar(&f.reset, "reset", false, "forget saved panel state for the document")
	fs.BoolVar(&f.resetAll, "reset-all", false, "forget saved panel state for every document")
	fs.BoolVar(&f.saveConfig, "save-config", false, "write the config merged with these flags back to the config file")
	fs.BoolVar(&f.version, "v", false, "print version")
	fs.BoolVar(&f.version, "version", false, "print version")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, fs.Args(), nil
}

// apply overlays explicitly set flags onto the config
func (f *flags) apply(cfg *adapter.Config) {
	if f.set["active"] {
		cfg.Accordion.ActiveIndex = f.active
	}
	if f.set["radio"] {
		cfg.Accordion.Radio = f.radio
	}
	if f.set["close-all"] {
		cfg.Accordion.CloseAll = f.closeAll
	}
	if f.set["animate"] {
		cfg.Accordion.Animate = f.animate
	}
}

func main() {
	f, args, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	if f.version {
		fmt.Printf("accordion %s\n", Version)
		return
	}

	// Maintenance flags may run without a document
	maintenance := f.saveConfig || f.resetAll
	if len(args) > 1 || (len(args) == 0 && !maintenance) {
		fmt.Fprintln(os.Stderr, "Usage: accordion [flags] <document.{md,yaml,toml}>")
		os.Exit(2)
	}

	var docPath string
	if len(args) == 1 {
		docPath = args[0]
	}

	if err := run(f, docPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(f *flags, docPath string) error {
	// Load configuration
	cfg, err := adapter.LoadConfig(f.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	f.apply(cfg)

	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	// Setup logger
	logger, closer, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	} else {
		defer closer.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting accordion", "version", Version, "document", docPath)

	panelStore, err := store.NewPanelStore(cfg.Store.Dir)
	if err != nil {
		logger.Warn("panel state unavailable, using memory only", "error", err)
		panelStore, _ = store.NewPanelStore("")
	}
	defer panelStore.Close()

	if err := maintain(f, cfg, panelStore, logger); err != nil {
		return err
	}
	if docPath == "" {
		return nil
	}

	doc, err := document.Load(docPath)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	interactive := !f.printOnly && isatty.IsTerminal(os.Stdout.Fd())
	if !interactive {
		// Static output never animates
		opts.Animate = false
	}

	if f.reset {
		if err := panelStore.Delete(doc.Path); err != nil {
			return fmt.Errorf("failed to reset panel state: %w", err)
		}
	}

	// Build the accordion: renderer first, then the coordinator over it
	renderer := components.NewPanelRenderer(len(doc.Sections))
	events := tui.NewTransitionLog()
	coord, err := accordion.New(renderer, opts, logger, events)
	if err != nil {
		return err
	}

	if cfg.Store.Restore && !opts.ActiveIndex.IsSet() && !f.reset {
		if state, ok := panelStore.Load(doc.Path); ok {
			n := tui.RestoreState(coord, state, logger)
			logger.Info("restored panel state", "panels", n)
		}
	}
	events.Drain()

	if !interactive {
		return printDocument(os.Stdout, doc, coord, renderer)
	}

	zones := zone.New()
	defer zones.Close()

	acc := components.NewAccordion(doc.Sections, coord, renderer, zones)
	model := tui.NewModel(doc, acc, events, panelStore, zones, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// maintain handles -save-config and -reset-all
func maintain(f *flags, cfg *adapter.Config, st *store.PanelStore, logger *slog.Logger) error {
	if f.saveConfig {
		if err := adapter.SaveConfig(cfg, f.configFile); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		logger.Info("config saved", "file", f.configFile)
	}
	if f.resetAll {
		if err := st.Clear(); err != nil {
			return fmt.Errorf("failed to reset panel state: %w", err)
		}
		logger.Info("cleared all panel state")
	}
	return nil
}

// outputWidth returns the terminal width of w, or defaultPrintWidth when w
// is not a terminal
func outputWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok {
		return defaultPrintWidth
	}
	fd := int(file.Fd())
	if !term.IsTerminal(fd) {
		return defaultPrintWidth
	}
	if tw, _, err := term.GetSize(fd); err == nil && tw > 0 {
		return tw
	}
	return defaultPrintWidth
}

// printDocument writes the document with the current expansion state
func printDocument(w io.Writer, doc *domain.Document, coord *accordion.Coordinator, renderer *components.PanelRenderer) error {
	acc := components.NewAccordion(doc.Sections, coord, renderer, nil)
	acc.SetFocused(false)
	acc.SetSize(outputWidth(w), 0)

	_, err := fmt.Fprintln(w, acc.Content())
	return err
}

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/pacer/internal/adapters/driving/tui"
	"github.com/custodia-labs/pacer/internal/core/ports/driving"
	"github.com/custodia-labs/pacer/internal/logger"
)

// ReadConfig holds configuration for the read command.
type ReadConfig struct {
	Advance   driving.AdvanceController
	Collector driving.CadenceCollector
	Documents driving.DocumentService
	Readiness driving.ReadyWaiter

	// Follow reloads the document when it changes on disk.
	Follow bool

	// LogFile is the default log destination while the TUI owns the terminal.
	LogFile string
}

// readConfig holds the current read configuration.
var readConfig *ReadConfig

// readNoWatch disables reloading for one run.
var readNoWatch bool

// isTerminal reports whether fd is a terminal.
var isTerminal = term.IsTerminal

// runApp runs the TUI. Replaced in tests.
var runApp = func(app *tui.App) error { return app.Run() }

// readCmd represents the read command.
var readCmd = &cobra.Command{
	Use:   "read <file>",
	Short: "Open a document in the reader",
	Long: `Open a text or PDF document in the terminal reader.

Text pages are separated by form feeds, or split every viewer.lines_per_page
lines. PDF files show one page per PDF page.

Controls:
  →/space, ←  - Next / previous page
  g, G        - First / last page
  a           - Auto-advance (asks for seconds per page)
  m           - Menu
  f           - Full screen
  esc         - Leave full screen (stops auto-advance)
  ?           - Help
  q           - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

// SetReadConfig sets the configuration for the read command.
func SetReadConfig(config *ReadConfig) {
	readConfig = config
}

func init() {
	readCmd.Flags().BoolVar(&readNoWatch, "no-watch", false, "do not reload the document when it changes")
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("reader crashed: %v", r)
		}
	}()

	if readConfig == nil {
		return errors.New("reader not configured")
	}
	if !isTerminal(int(os.Stdout.Fd())) {
		return errors.New("read needs an interactive terminal")
	}

	if logger.IsVerbose() {
		path := logFile
		if path == "" {
			path = readConfig.LogFile
		}
		if path != "" {
			f, err := logger.OpenFile(path)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			// Log file lines carry a timestamp.
			logger.SetTimestamps(true)
			defer func() {
				logger.SetTimestamps(false)
				logger.SetOutput(os.Stderr)
				_ = f.Close()
			}()
		}
	}

	ports := &tui.Ports{
		Advance:   readConfig.Advance,
		Collector: readConfig.Collector,
		Documents: readConfig.Documents,
		Readiness: readConfig.Readiness,
	}

	// Create the TUI app
	app, err := tui.NewApp(ports, args[0])
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context()).WithFollow(readConfig.Follow && !readNoWatch)

	detach, err := readConfig.Advance.Attach(app.Host())
	if err != nil {
		return fmt.Errorf("attach viewer: %w", err)
	}
	defer func() {
		detach()
		_ = readConfig.Advance.Close()
	}()

	logger.Section("read " + args[0])
	if err := runApp(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

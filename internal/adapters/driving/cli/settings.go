package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pacer/internal/core/domain"
	"github.com/custodia-labs/pacer/internal/core/ports/driving"
)

// settingsService is injected from main.
var settingsService driving.SettingsService

// SetSettingsService sets the service used by the settings commands.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change pacer settings.

The cadence chosen in the auto-advance dialog only lasts for the current
session. advance.initial_cadence is what the dialog is pre-filled with.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long:  "Change a single setting.",
	Args:  cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)

	// The key list comes from the service, which is injected after init.
	defaultHelp := settingsSetCmd.HelpFunc()
	settingsSetCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		cmd.Long = settingsSetLong()
		defaultHelp(cmd, args)
	})
}

func settingsSetLong() string {
	if settingsService == nil {
		return "Change a single setting."
	}

	defaults := settingsService.GetDefaults()
	var b strings.Builder
	b.WriteString("Change a single setting.\n\nKeys:")
	for _, key := range settingsService.Keys() {
		fmt.Fprintf(&b, "\n  %-24s %s", key, describeKey(key, defaults))
	}
	return b.String()
}

// describeKey returns the help line for key, including its default.
func describeKey(key string, d domain.AppSettings) string {
	switch key {
	case "advance.initial_cadence":
		return fmt.Sprintf("seconds per page, %s to %s (default %s)",
			domain.MinCadence, domain.MaxCadence, d.Advance.InitialCadence)
	case "advance.settle_delay_ms":
		return fmt.Sprintf("delay before the first page turn (default %d)", d.Advance.SettleDelay.Milliseconds())
	case "viewer.lines_per_page":
		return fmt.Sprintf("lines per text page without form feeds (default %d)", d.Viewer.LinesPerPage)
	case "viewer.watch":
		return fmt.Sprintf("reload the document when it changes (default %t)", d.Viewer.Watch)
	default:
		return ""
	}
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	defaults := settingsService.GetDefaults()

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Advance]")
	cmd.Printf("  Initial cadence: %ss per page%s\n", settings.Advance.InitialCadence,
		changed(settings.Advance.InitialCadence, defaults.Advance.InitialCadence))
	cmd.Printf("  Settle delay: %s%s\n", settings.Advance.SettleDelay,
		changed(settings.Advance.SettleDelay, defaults.Advance.SettleDelay))
	cmd.Println()

	cmd.Println("[Viewer]")
	cmd.Printf("  Lines per page: %d%s\n", settings.Viewer.LinesPerPage,
		changed(settings.Viewer.LinesPerPage, defaults.Viewer.LinesPerPage))
	cmd.Printf("  Watch for changes: %s%s\n", yesNo(settings.Viewer.Watch),
		changed(yesNo(settings.Viewer.Watch), yesNo(defaults.Viewer.Watch)))
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.Path())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrUnknownSetting) {
			return fmt.Errorf("%w (known keys: %s)", err, strings.Join(settingsService.Keys(), ", "))
		}
		return err
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

// changed returns a default marker when value differs from its default.
func changed[T comparable](value, def T) string {
	if value == def {
		return ""
	}
	return fmt.Sprintf(" (default %v)", def)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

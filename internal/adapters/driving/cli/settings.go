package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/meridian-sci/svomap-cli/internal/core/services"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure persisted defaults for input sources, output
location, vocabulary files and model parameters.`,
	RunE: runSettingsList,
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all settings",
	RunE:  runSettingsList,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Set one setting",
	Long: `Set a single configuration key. Keys use dot notation, e.g.
'svomap settings set model.topics 8'.

When setting github.token without a value argument, the token is read
from the terminal without echo.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsListCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsList(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	for _, key := range settingsService.Keys() {
		value, ok := settingsService.GetKey(key)
		if !ok {
			cmd.Printf("%-22s (not set)\n", key)
			continue
		}
		cmd.Printf("%-22s %s\n", key, displayValue(key, value))
	}
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key := args[0]
	value, ok := settingsService.GetKey(key)
	if !ok {
		cmd.Printf("%s is not set\n", key)
		return nil
	}
	cmd.Println(displayValue(key, value))
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key := args[0]
	var raw string
	if len(args) == 2 {
		raw = args[1]
	} else if key == services.KeyGitHubToken {
		cmd.Print("Enter token: ")
		raw = readPassword()
		cmd.Println()
	} else {
		return errors.New("missing value")
	}

	value, err := coerceValue(key, raw)
	if err != nil {
		return err
	}
	if err := settingsService.SetKey(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	cmd.Printf("%s = %s\n", key, displayValue(key, value))
	return nil
}

// coerceValue converts the raw CLI string into the type the key holds.
func coerceValue(key, raw string) (any, error) {
	switch key {
	case services.KeyTopics, services.KeyVocabCap, services.KeyIterations,
		services.KeySeed, services.KeyWorkers, services.KeyTopTerms:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s expects a number, got %q", key, raw)
		}
		return n, nil
	case services.KeyInputInclude, services.KeyInputExclude:
		parts := strings.Split(raw, ",")
		patterns := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				patterns = append(patterns, p)
			}
		}
		return patterns, nil
	default:
		return raw, nil
	}
}

// displayValue renders a setting for output, masking the token.
func displayValue(key string, value any) string {
	if key == services.KeyGitHubToken {
		if s, ok := value.(string); ok && s != "" {
			return maskToken(s)
		}
	}
	switch v := value.(type) {
	case []string:
		return strings.Join(v, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

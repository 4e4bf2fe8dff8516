package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"dupe/internal/app"
	"dupe/internal/config"
	"dupe/internal/dupe"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file named by the defaults, falling back to
// default values when it does not exist.
func loadConfig() (*config.Config, string, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, "", fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.Load(defaults["config_path"], defaults["base_dir"])
	if err != nil {
		return nil, "", fmt.Errorf("reading config: %w", err)
	}
	return cfg, defaults["config_path"], nil
}

var rootCmd = &cobra.Command{
	Use:          "dupe",
	Short:        "Find and interactively delete duplicate files",
	SilenceUsage: true,
}

var scanCmd = &cobra.Command{
	Use:   "scan [PATH...]",
	Short: "Scan directories for duplicate files",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Please pass the paths to check as parameters")
			return nil
		}

		dryRun, _ := cmd.Flags().GetBool("dry-run")
		verbose, _ := cmd.Flags().GetBool("verbose")

		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}

		a, err := app.NewDupeApp(cfg, app.Options{DryRun: dryRun, Verbose: verbose})
		if err != nil {
			return fmt.Errorf("initializing app: %w", err)
		}
		defer a.Close()

		report, err := a.Scan(args)
		if report != nil {
			printReport(report)
		}
		return err
	},
}

func printReport(r *dupe.Report) {
	fmt.Println()
	fmt.Printf("Scanned %d file(s) in %s\n", r.FilesScanned, r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond))
	fmt.Printf("Duplicate groups: %d (%s reclaimable)\n", r.DuplicateGroups, formatSize(r.Reclaimable))

	d := r.Deletion
	if d == nil || !d.Confirmed {
		fmt.Printf("Selected %d file(s), nothing deleted\n", len(r.Selected))
		return
	}

	verb := "Deleted"
	if d.DryRun {
		verb = "Would delete"
	}
	fmt.Printf("%s %d file(s), %s freed\n", verb, len(d.Removed), formatSize(d.BytesFreed()))
	for _, f := range d.Failed {
		fmt.Printf("  failed: %s: %v\n", f.Entry.Path, f.Err)
	}
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg := config.NewConfig(defaults["base_dir"])
		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Base Dir: %s\n", cfg.BaseDir)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := loadConfig()
		if err != nil {
			return err
		}

		fmt.Printf("Configuration from %s:\n\n", path)
		fmt.Printf("Base Dir:        %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:         %s\n", cfg.LogDir)
		fmt.Printf("Algorithm:       %s\n", cfg.Hash.Algorithm)
		fmt.Printf("Prefix Size:     %d\n", cfg.Hash.PrefixSize)
		fmt.Printf("Chunk Size:      %d\n", cfg.Hash.ChunkSize)
		fmt.Printf("Ignore:          %s\n", strings.Join(cfg.Filesystem.Ignore, ", "))
		fmt.Printf("Bulk Default:    %s\n", cfg.Prompt.BulkDefault)
		fmt.Printf("Confirm Default: %s\n", cfg.Prompt.ConfirmDefault)
		return nil
	},
}

func init() {
	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	// root commands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().Bool("dry-run", false, "Ask as usual but do not remove anything")
	scanCmd.Flags().BoolP("verbose", "v", false, "Print debug logs to stderr")
}

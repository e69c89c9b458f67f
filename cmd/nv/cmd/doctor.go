package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/tormodhaugland/nv/internal/config"
	"github.com/tormodhaugland/nv/internal/doctor"
	"github.com/tormodhaugland/nv/internal/tui"
)

var (
	doctorYes    bool
	doctorDryRun bool
	doctorJSON   bool
)

type doctorResult struct {
	ConfigPath string         `json:"config_path,omitempty"`
	Checks     []doctor.Check `json:"checks"`
	Planned    string         `json:"planned,omitempty"`
	Created    string         `json:"created,omitempty"`
	Errors     []string       `json:"errors,omitempty"`
	DryRun     bool           `json:"dry_run"`
}

var doctorCmd = &cobra.Command{
	Use:   "doctor [dir]",
	Short: "Check the environment nv runs in",
	Long: `Checks the config file, the start directory, the log location, clipboard
support and the terminal colour profile.
If no config file exists, you can have a default one written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, loadErr := config.Load(cfgFile)
		if loadErr != nil {
			cfg = config.DefaultConfig()
		}
		if logFile != "" {
			cfg.LogFile = logFile
		}
		path, found := config.Locate(cfgFile)

		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		result := doctorResult{
			ConfigPath: path,
			DryRun:     doctorDryRun,
			Checks: doctor.Diagnose(doctor.Input{
				Config:     cfg,
				ConfigPath: path,
				LoadErr:    loadErr,
				Dir:        dir,
				Profile:    termenv.NewOutput(os.Stderr).EnvColorProfile(),
			}),
		}

		if !found {
			target := cfgFile
			if target == "" {
				target = config.DefaultPath()
			}
			if err := offerDefaultConfig(&result, target); err != nil {
				return err
			}
		}

		if doctorJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				return err
			}
		} else {
			printDoctorReport(result)
		}

		if n := doctor.Failures(result.Checks) + len(result.Errors); n > 0 {
			return fmt.Errorf("doctor found %d problem(s)", n)
		}
		return nil
	},
}

func init() {
	doctorCmd.Flags().BoolVarP(&doctorYes, "yes", "y", false, "write a default config without prompting")
	doctorCmd.Flags().BoolVar(&doctorDryRun, "dry-run", false, "report what would be written without writing")
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")
	rootCmd.AddCommand(doctorCmd)
}

func offerDefaultConfig(result *doctorResult, target string) error {
	if doctorDryRun {
		result.Planned = target
		return nil
	}

	if !doctorYes {
		if doctorJSON {
			return nil
		}
		confirm, err := tui.RunConfirm(fmt.Sprintf("Write a default config to %s?", target))
		if err != nil {
			return fmt.Errorf("prompt failed: %w", err)
		}
		if confirm.Aborted {
			return fmt.Errorf("aborted")
		}
		if !confirm.Confirmed {
			return nil
		}
	}

	if err := config.DefaultConfig().Save(target); err != nil {
		msg := fmt.Sprintf("%s: %v", target, err)
		result.Errors = append(result.Errors, msg)
		fmt.Fprintln(os.Stderr, "Error:", msg)
		return nil
	}
	result.Created = target
	return nil
}

func printDoctorReport(result doctorResult) {
	for _, c := range result.Checks {
		line := fmt.Sprintf("[%-4s] %s", c.Status, c.Name)
		if c.Detail != "" {
			line += ": " + c.Detail
		}
		fmt.Println(line)
	}

	if result.Planned != "" {
		fmt.Printf("Dry run - would write default config to %s\n", result.Planned)
	}
	if result.Created != "" {
		fmt.Printf("Wrote default config to %s\n", result.Created)
	}
	if len(result.Errors) > 0 {
		fmt.Printf("Errors: %d (see stderr)\n", len(result.Errors))
	}
}

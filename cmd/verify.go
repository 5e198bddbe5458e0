package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"commander/config"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [path]",
	Short: "Verify that the configuration is valid",
	Long:  `Verify parses and validates the HCL configuration files. Path can be a file or directory and defaults to --config.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := configPath
		if len(args) == 1 {
			path = args[0]
		}
		cfg, err := config.LoadAndValidate(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		// Check for unset variables
		var warnings []string
		for _, v := range cfg.Variables {
			resolved, _ := config.ResolveVariableValue(&v)
			if resolved == "" && v.Default == "" {
				warnings = append(warnings, fmt.Sprintf("variable '%s' has no default and no value set", v.Name))
			}
		}

		fmt.Printf("Configuration is valid!\n")
		if len(cfg.Files) == 0 {
			fmt.Printf("No HCL files found, using defaults\n")
		} else {
			fmt.Printf("Loaded %d file(s)\n", len(cfg.Files))
			for _, f := range cfg.Files {
				fmt.Printf("  - %s\n", f)
			}
		}
		fmt.Printf("Found %d variable(s)\n", len(cfg.Variables))
		for _, v := range cfg.Variables {
			resolved, _ := config.ResolveVariableValue(&v)
			if v.Secret {
				if resolved != "" {
					fmt.Printf("  - %s (secret, set)\n", v.Name)
				} else {
					fmt.Printf("  - %s (secret, not set)\n", v.Name)
				}
			} else {
				fmt.Printf("  - %s = %q\n", v.Name, resolved)
			}
		}
		fmt.Printf("Logging: level %s\n", cfg.Logging.Level)
		fmt.Printf("Researcher: max_content_chars %d, max_links %d, top_words %d, link_timeout %ds\n",
			cfg.Researcher.MaxContentChars, cfg.Researcher.MaxLinks, cfg.Researcher.TopWords, cfg.Researcher.LinkTimeout)

		f := cfg.Fetcher
		if f.Backend == "browser" {
			fmt.Printf("Fetcher: browser (%s, headless: %t), timeout %ds\n", f.BrowserType, f.IsHeadless(), f.Timeout)
		} else {
			fmt.Printf("Fetcher: http, timeout %ds, %g req/s, max %d bytes\n", f.Timeout, f.RequestsPerSecond, f.MaxPageBytes)
		}

		switch cfg.Storage.Backend {
		case "sqlite":
			fmt.Printf("Storage: sqlite (%s)\n", cfg.Storage.Path)
		default:
			fmt.Printf("Storage: %s\n", cfg.Storage.Backend)
		}

		if len(warnings) > 0 {
			fmt.Printf("\nWarnings:\n")
			for _, w := range warnings {
				fmt.Printf("  - %s\n", w)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// GlobalFlags holds the persistent flag values shared by all commands.
type GlobalFlags struct {
	ConfigFile string
	Verbose    bool
	Output     string
}

// RegisterGlobalFlags attaches the persistent flags to the root command.
func RegisterGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "path to config file (default ~/.itrade/config.yaml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().StringP("output", "o", "text", "output format: text or json")
}

// ParseGlobalFlags reads the persistent flags from the command.
func ParseGlobalFlags(cmd *cobra.Command) (*GlobalFlags, error) {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}
	if output != "text" && output != "json" {
		return nil, fmt.Errorf("invalid output format %q: must be text or json", output)
	}

	return &GlobalFlags{
		ConfigFile: configFile,
		Verbose:    verbose,
		Output:     output,
	}, nil
}

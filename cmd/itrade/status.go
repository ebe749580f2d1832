package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Armib20/iTradeDemo/cmd/itrade/internal"
	"github.com/Armib20/iTradeDemo/internal/types"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check connectivity of the LLM provider and the knowledge graph",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	flags, err := ParseGlobalFlags(cmd)
	if err != nil {
		return err
	}
	formatter := internal.NewFormatter(internal.OutputFormat(flags.Output), os.Stdout)

	graphHealth := checkGraphHealth(cmd)
	llmHealth := checkProviderHealth(cmd)

	rows := [][]string{
		{"graph", cfg.Graph.URI, graphHealth.State.String(), graphHealth.Message},
		{"llm", string(cfg.LLM.Type), llmHealth.State.String(), llmHealth.Message},
	}
	if err := formatter.PrintTable([]string{"component", "target", "state", "message"}, rows); err != nil {
		return err
	}

	return statusError(graphHealth, llmHealth)
}

// statusError converts the component health checks into the command result.
// Degraded components report but do not fail the command.
func statusError(graphHealth, llmHealth types.HealthStatus) error {
	if graphHealth.IsUnhealthy() || llmHealth.IsUnhealthy() {
		return internal.NewCLIError(internal.ExitError, "one or more components are unhealthy")
	}
	return nil
}

func checkGraphHealth(cmd *cobra.Command) types.HealthStatus {
	client, cleanup, err := connectGraph(cmd.Context())
	if err != nil {
		return types.Unhealthy(err.Error())
	}
	defer cleanup()

	return client.Health(cmd.Context())
}

func checkProviderHealth(cmd *cobra.Command) types.HealthStatus {
	provider, err := newProvider()
	if err != nil {
		return types.Unhealthy(err.Error())
	}
	return provider.Health(cmd.Context())
}

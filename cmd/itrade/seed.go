package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Armib20/iTradeDemo/cmd/itrade/internal"
	"github.com/Armib20/iTradeDemo/internal/catalog"
)

var (
	seedFile string
	seedWipe bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load canonical products into the knowledge graph",
	Long: `Seed upserts canonical products into Neo4j, merging by canonical_id
so repeated runs are idempotent. Without --file the built-in demo dataset
is loaded. With --wipe the whole graph is cleared first.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "YAML product dataset (default: built-in demo dataset)")
	seedCmd.Flags().BoolVar(&seedWipe, "wipe", false, "delete all existing graph data before seeding")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	products := catalog.DefaultProducts()
	if seedFile != "" {
		var err error
		products, err = catalog.LoadProductsFile(seedFile)
		if err != nil {
			return err
		}
	}

	flags, err := ParseGlobalFlags(cmd)
	if err != nil {
		return err
	}

	client, cleanup, err := connectGraph(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := catalog.NewSeeder(client, logger).Seed(ctx, products, seedWipe)
	if err != nil {
		return err
	}

	formatter := internal.NewFormatter(internal.OutputFormat(flags.Output), os.Stdout)
	message := fmt.Sprintf("seeded %d products", result.Upserted)
	if result.Wiped {
		message += " (graph wiped first)"
	}
	return formatter.PrintSuccess(message)
}

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Armib20/iTradeDemo/cmd/itrade/internal"
	"github.com/Armib20/iTradeDemo/internal/catalog"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Explore the knowledge graph contents",
	Long: `Explore inspects the canonical catalog: aggregate counts, the full
product list, and the brand and product-type vocabularies with their
product counts.`,
}

var exploreStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show node and relationship counts",
	RunE:  runExploreStats,
}

var exploreProductsCmd = &cobra.Command{
	Use:   "products",
	Short: "List all canonical products",
	RunE:  runExploreProducts,
}

var exploreBrandsCmd = &cobra.Command{
	Use:   "brands",
	Short: "List brands with product counts",
	RunE:  runExploreBrands,
}

var exploreProductTypesCmd = &cobra.Command{
	Use:   "product-types",
	Short: "List product types with product counts",
	RunE:  runExploreProductTypes,
}

var exploreQueryCmd = &cobra.Command{
	Use:   "query <cypher>",
	Short: "Run a read-only Cypher query",
	Long: `Query runs an arbitrary Cypher statement inside a read transaction.
Statements that attempt writes are rejected by the database.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExploreQuery,
}

func init() {
	exploreCmd.AddCommand(exploreStatsCmd)
	exploreCmd.AddCommand(exploreProductsCmd)
	exploreCmd.AddCommand(exploreBrandsCmd)
	exploreCmd.AddCommand(exploreProductTypesCmd)
	exploreCmd.AddCommand(exploreQueryCmd)
	rootCmd.AddCommand(exploreCmd)
}

// withStore connects the graph client, builds the read-only store and the
// output formatter, and runs fn with both.
func withStore(cmd *cobra.Command, fn func(store catalog.Store, formatter internal.Formatter) error) error {
	flags, err := ParseGlobalFlags(cmd)
	if err != nil {
		return err
	}

	client, cleanup, err := connectGraph(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	formatter := internal.NewFormatter(internal.OutputFormat(flags.Output), os.Stdout)
	return fn(catalog.NewGraphStore(client), formatter)
}

func runExploreStats(cmd *cobra.Command, args []string) error {
	return withStore(cmd, func(store catalog.Store, formatter internal.Formatter) error {
		stats, err := store.Stats(cmd.Context())
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(stats.NodeCounts)+len(stats.RelationshipCounts))
		for _, nc := range stats.NodeCounts {
			rows = append(rows, []string{"node", nc.Label, strconv.Itoa(nc.Count)})
		}
		for _, rc := range stats.RelationshipCounts {
			rows = append(rows, []string{"relationship", rc.Label, strconv.Itoa(rc.Count)})
		}

		return formatter.PrintTable([]string{"kind", "label", "count"}, rows)
	})
}

func runExploreProducts(cmd *cobra.Command, args []string) error {
	return withStore(cmd, func(store catalog.Store, formatter internal.Formatter) error {
		products, err := store.ListProducts(cmd.Context())
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(products))
		for _, p := range products {
			rows = append(rows, []string{
				strconv.FormatInt(p.CanonicalID, 10),
				p.Description,
				p.Brand,
				p.ProductType,
				fmt.Sprintf("%d/%g%s", p.PackQuantity, p.PackSize, p.UOM),
			})
		}

		return formatter.PrintTable(
			[]string{"canonical_id", "description", "brand", "product_type", "pack"},
			rows)
	})
}

func runExploreBrands(cmd *cobra.Command, args []string) error {
	return withStore(cmd, func(store catalog.Store, formatter internal.Formatter) error {
		brands, err := store.ListBrandsDetailed(cmd.Context())
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(brands))
		for _, b := range brands {
			rows = append(rows, []string{b.Name, strconv.Itoa(b.ProductCount)})
		}

		return formatter.PrintTable([]string{"brand", "products"}, rows)
	})
}

func runExploreQuery(cmd *cobra.Command, args []string) error {
	flags, err := ParseGlobalFlags(cmd)
	if err != nil {
		return err
	}

	client, cleanup, err := connectGraph(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	cypher := strings.Join(args, " ")
	result, err := client.Query(cmd.Context(), cypher, nil)
	if err != nil {
		return err
	}

	formatter := internal.NewFormatter(internal.OutputFormat(flags.Output), os.Stdout)

	rows := make([][]string, 0, len(result.Records))
	for _, record := range result.Records {
		row := make([]string, 0, len(result.Columns))
		for _, column := range result.Columns {
			row = append(row, fmt.Sprintf("%v", record[column]))
		}
		rows = append(rows, row)
	}

	return formatter.PrintTable(result.Columns, rows)
}

func runExploreProductTypes(cmd *cobra.Command, args []string) error {
	return withStore(cmd, func(store catalog.Store, formatter internal.Formatter) error {
		productTypes, err := store.ListProductTypesDetailed(cmd.Context())
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(productTypes))
		for _, pt := range productTypes {
			rows = append(rows, []string{pt.Name, strconv.Itoa(pt.ProductCount)})
		}

		return formatter.PrintTable([]string{"product_type", "products"}, rows)
	})
}

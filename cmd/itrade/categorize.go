package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Armib20/iTradeDemo/cmd/itrade/internal"
	"github.com/Armib20/iTradeDemo/internal/catalog"
	"github.com/Armib20/iTradeDemo/internal/match"
	"github.com/Armib20/iTradeDemo/internal/pipeline"
)

var categorizeCmd = &cobra.Command{
	Use:   "categorize <description>",
	Short: "Categorize a raw product description against the knowledge graph",
	Long: `Categorize runs the extraction pipeline for one product description:
the LLM extracts structured attributes, the brand is fuzzy-matched against
the known-brand vocabulary, the product type is reduced to its singular
form, and the result is matched exactly against canonical products.

Exit codes: 0 match, 2 no match, 3 ambiguous, >=10 hard failure.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCategorize,
}

func init() {
	rootCmd.AddCommand(categorizeCmd)
}

func runCategorize(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	description := strings.TrimSpace(strings.Join(args, " "))

	flags, err := ParseGlobalFlags(cmd)
	if err != nil {
		return err
	}

	client, cleanup, err := connectGraph(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	store := catalog.NewGraphStore(client)
	pipe, err := newPipeline(store)
	if err != nil {
		return err
	}

	result, err := pipe.Run(ctx, description)
	if err != nil {
		printPartialResult(cmd, result, flags.Output)
		return err
	}

	if flags.Output == "json" {
		return printRunResultJSON(cmd, result)
	}

	printRawAttributes(cmd, result)
	printNormalized(cmd, result)

	switch result.Match.Outcome {
	case match.OutcomeMatched:
		p := result.Match.Product
		cmd.Println("Match found:")
		cmd.Printf("  canonical_id: %d\n", p.CanonicalID)
		cmd.Printf("  description:  %s\n", p.Description)
		cmd.Printf("  brand:        %s\n", p.Brand)
		cmd.Printf("  product_type: %s\n", p.ProductType)
		cmd.Printf("  pack:         %d/%g%s\n", p.PackQuantity, p.PackSize, p.UOM)
		return nil

	case match.OutcomeAmbiguous:
		cmd.Printf("Ambiguous match: %d canonical products share these attributes:\n",
			len(result.Match.Candidates))
		for _, c := range result.Match.Candidates {
			cmd.Printf("  canonical_id %d: %s\n", c.CanonicalID, c.Description)
		}
		return internal.NewCLIError(internal.ExitAmbiguous,
			"ambiguous match requires human disambiguation")

	default:
		cmd.Println("No exact match found in the knowledge graph.")
		return internal.NewCLIError(internal.ExitNoMatch,
			"no canonical product matched all attributes")
	}
}

// printPartialResult shows whatever stages completed before a failure,
// in the selected output format.
func printPartialResult(cmd *cobra.Command, result *pipeline.RunResult, output string) {
	if result == nil || result.Raw == nil {
		return
	}

	if output == "json" {
		payload := map[string]any{
			"description": result.Description,
			"raw":         result.Raw,
		}
		if result.Normalized != nil {
			payload["normalized"] = result.Normalized
		}
		if data, err := json.MarshalIndent(payload, "", "  "); err == nil {
			cmd.Println(string(data))
		}
		return
	}

	printRawAttributes(cmd, result)
	printNormalized(cmd, result)
}

func printRawAttributes(cmd *cobra.Command, result *pipeline.RunResult) {
	cmd.Println("Extracted attributes:")
	cmd.Printf("  brand:         %s\n", orNull(result.Raw.Brand))
	cmd.Printf("  product_type:  %s\n", orNull(result.Raw.ProductType))
	if result.Raw.PackQuantity != nil {
		cmd.Printf("  pack_quantity: %d\n", *result.Raw.PackQuantity)
	} else {
		cmd.Println("  pack_quantity: null")
	}
	if result.Raw.PackSize != nil {
		cmd.Printf("  pack_size:     %g\n", *result.Raw.PackSize)
	} else {
		cmd.Println("  pack_size:     null")
	}
	cmd.Printf("  uom:           %s\n", orNull(result.Raw.UOM))
}

func printNormalized(cmd *cobra.Command, result *pipeline.RunResult) {
	if result.Normalized == nil {
		return
	}
	cmd.Printf("Standardized brand: %s (confidence %d%%)\n",
		result.Normalized.Brand, result.Normalized.BrandConfidence)
	if result.Normalized.ProductType != "" {
		cmd.Printf("Product type lemma: %s\n", result.Normalized.ProductType)
	}
}

func printRunResultJSON(cmd *cobra.Command, result *pipeline.RunResult) error {
	payload := map[string]any{
		"description": result.Description,
		"raw":         result.Raw,
		"normalized":  result.Normalized,
		"outcome":     result.Match.Outcome,
	}
	if result.Match.Product != nil {
		payload["product"] = result.Match.Product
	}
	if len(result.Match.Candidates) > 0 {
		payload["candidates"] = result.Match.Candidates
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(data))

	switch result.Match.Outcome {
	case match.OutcomeAmbiguous:
		return internal.NewCLIError(internal.ExitAmbiguous,
			"ambiguous match requires human disambiguation")
	case match.OutcomeNoMatch:
		return internal.NewCLIError(internal.ExitNoMatch,
			"no canonical product matched all attributes")
	}
	return nil
}

func orNull(s *string) string {
	if s == nil {
		return "null"
	}
	return *s
}

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"triage/internal/classify"
)

// validateCmd checks that a batch is made of record-shaped mappings
var validateCmd = &cobra.Command{
	Use:   "validate [records-file]",
	Short: "Validate that every item in a batch is a record",
	Long: `Reads a JSON array and verifies that every element is an object.
Exits non-zero when the batch contains anything else.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to parse records: %w", err)
	}

	classifier := classify.New(classify.Options{Logger: logger})
	if !classifier.ValidateBatch(items) {
		return fmt.Errorf("batch contains items that are not records")
	}

	logger.Debug("batch validated", zap.Int("count", len(items)))
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d records\n", len(items))
	return nil
}

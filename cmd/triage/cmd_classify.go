package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"triage/internal/classify"
	"triage/internal/record"
)

var strictFlag bool

// classifyCmd classifies a batch of records
var classifyCmd = &cobra.Command{
	Use:   "classify [records-file]",
	Short: "Classify records from a JSON file or stdin",
	Long: `Reads a JSON array of records and prints one classification result
per record. Records that classify to nothing (empty records, or inactive
records in strict mode) are printed as null.

Example:
  triage classify records.json
  cat records.json | triage classify --strict`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().BoolVar(&strictFlag, "strict", false, "Discard inactive records entirely")
}

func runClassify(cmd *cobra.Command, args []string) error {
	runID := uuid.NewString()
	log := logger.With(zap.String("run_id", runID))

	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	var recs []record.Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return fmt.Errorf("failed to parse records: %w", err)
	}

	strict := cfg.Classify.Strict
	if cmd.Flags().Changed("strict") {
		strict = strictFlag
	}

	classifier := classify.New(classify.Options{
		FollowChains: cfg.Classify.FollowChains,
		Logger:       log,
	})

	log.Info("classifying records",
		zap.Int("count", len(recs)),
		zap.Bool("strict", strict))

	results := make([]record.Result, len(recs))
	classified := 0
	for i, rec := range recs {
		if dups := record.Duplicates(rec.Tags()); len(dups) > 0 {
			log.Warn("record carries duplicate tags",
				zap.Int("index", i),
				zap.String("tags", record.JoinList(dups, cfg.Output.Separator)))
		}

		res, ok := classifier.Classify(rec, strict)
		if !ok {
			continue
		}
		results[i] = res
		classified++
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if cfg.Output.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	log.Info("classification complete",
		zap.Int("classified", classified),
		zap.Int("discarded", len(recs)-classified))
	return nil
}

// readInput returns the contents of the file named in args, or stdin when
// no file is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	return data, nil
}

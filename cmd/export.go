package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/khrees2412/talentflow/internal/app"
	"github.com/khrees2412/talentflow/internal/candidate"
	"github.com/khrees2412/talentflow/pkg/models"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the board as JSON or YAML",
	Example: `  talentflow export > board.json
  talentflow export --format yaml --output board.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		data, err := encodeCandidates(a.Store.List(), format)
		if err != nil {
			return err
		}

		if output == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		cmd.PrintErrf("✓ Exported %d candidates to %s\n", a.Store.Len(), output)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add candidates from a JSON or YAML export",
	Long: `Add candidates from a file written by 'talentflow export'. Every record
gets a fresh ID and keeps its stage, skill and rating. Records without a
name, role or known stage are skipped. The rest are saved in one write.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import: %w", err)
		}

		records, skipped, err := decodeCandidates(data, formatForPath(args[0]))
		if err != nil {
			return err
		}

		added, err := a.Store.Import(records)
		if err != nil {
			return fmt.Errorf("import candidates: %w", err)
		}
		imported := len(added)

		cmd.Printf("✓ Imported %d candidates", imported)
		if skipped > 0 {
			cmd.Printf(" (%d skipped)", skipped)
		}
		cmd.Println()
		return nil
	},
}

func encodeCandidates(list []models.Candidate, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", "json":
		stored := make([]models.StoredCandidate, len(list))
		for i, c := range list {
			stored[i] = c.Stored()
		}
		data, err := json.MarshalIndent(stored, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml", "yml":
		data, err := yaml.Marshal(list)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q, use json or yaml", app.ErrInvalidArgument, format)
	}
}

// decodeCandidates parses an export and normalizes its records the same
// way a stored list is normalized on load.
func decodeCandidates(data []byte, format string) ([]models.Candidate, int, error) {
	if format == "yaml" {
		var stored []models.StoredCandidate
		if err := yaml.Unmarshal(data, &stored); err != nil {
			return nil, 0, fmt.Errorf("decode yaml: %w", err)
		}
		out, dropped := candidate.Normalize(stored)
		return out, dropped, nil
	}

	out, dropped, err := candidate.Decode(data)
	if err != nil {
		return nil, 0, fmt.Errorf("decode json: %w", err)
	}
	return out, dropped, nil
}

func formatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	}
	return "json"
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)

	exportCmd.Flags().StringP("format", "f", "json", "Output format: json or yaml")
	exportCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
}

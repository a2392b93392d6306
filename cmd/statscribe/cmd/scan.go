package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tomecraft/statscribe/internal/extract"
	"github.com/tomecraft/statscribe/internal/statblock"
	"github.com/tomecraft/statscribe/internal/utils"
)

const (
	outputFormatJSON = "json"
	outputFormatYAML = "yaml"
	outputFormatText = "text"
)

// scanCmd represents the scan command.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan statblock photos into monster records",
	Long: `Scan one or more photographed statblocks and print the parsed monster
records.

Supported formats: JPEG, PNG, BMP

Examples:
  statscribe scan goblin.jpg
  statscribe scan *.png --format json
  statscribe scan dragon.jpg --output dragon.yaml --format yaml`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("no input files provided")
		}

		cfg := GetConfig()

		format := cfg.Output.Format
		if cmd.Flags().Changed("format") {
			format, _ = cmd.Flags().GetString("format")
		}
		outputFile := cfg.Output.File
		if cmd.Flags().Changed("output") {
			outputFile, _ = cmd.Flags().GetString("output")
		}
		if err := validateOutputFormat(format); err != nil {
			return err
		}

		extractor, err := buildExtractor(cmd)
		if err != nil {
			return fmt.Errorf("failed to build extractor: %w", err)
		}

		var outputs []string
		for _, pth := range args {
			img, meta, err := utils.LoadImage(pth)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", pth, err)
			}
			slog.Debug("loaded image",
				"path", meta.Path,
				"format", meta.Format,
				"size_bytes", meta.SizeBytes,
				"width", meta.Width,
				"height", meta.Height)

			res, err := extractor.ExtractImage(cmd.Context(), img)
			if err != nil {
				return fmt.Errorf("scan failed for %s: %w", pth, err)
			}

			out, err := formatResult(res, format)
			if err != nil {
				return err
			}
			outputs = append(outputs, out)
		}

		return writeOutputs(cmd, outputs, outputFile)
	},
}

// buildExtractor assembles an extractor from the resolved configuration plus
// per-invocation flag overrides.
func buildExtractor(cmd *cobra.Command) (*extract.Extractor, error) {
	cfg := GetConfig()

	b := extract.NewBuilder().WithConfig(cfg.ToExtractConfig())

	if cmd.Flags().Changed("language") {
		lang, _ := cmd.Flags().GetString("language")
		b = b.WithLanguage(lang)
	}
	if cmd.Flags().Changed("tessdata-prefix") {
		prefix, _ := cmd.Flags().GetString("tessdata-prefix")
		b = b.WithTessdataPrefix(prefix)
	}
	if cmd.Flags().Changed("workers") {
		workers, _ := cmd.Flags().GetInt("workers")
		b = b.WithWorkers(workers)
	}
	if cmd.Flags().Changed("debug-dir") {
		dir, _ := cmd.Flags().GetString("debug-dir")
		b = b.WithDebugDir(dir)
	}

	return b.Build()
}

func validateOutputFormat(format string) error {
	validFormats := []string{outputFormatText, outputFormatJSON, outputFormatYAML}
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be one of: %s)", format, strings.Join(validFormats, ", "))
}

// formatResult renders one extraction result in the requested format.
func formatResult(res *extract.Result, format string) (string, error) {
	switch format {
	case outputFormatJSON:
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal result: %w", err)
		}
		return string(data), nil
	case outputFormatYAML:
		data, err := yaml.Marshal(res.Record)
		if err != nil {
			return "", fmt.Errorf("failed to marshal result: %w", err)
		}
		return string(data), nil
	default:
		return formatRecordText(res), nil
	}
}

// formatRecordText renders a record the way it reads on the page.
func formatRecordText(res *extract.Result) string {
	r := res.Record
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s\n", r.Name)
	fmt.Fprintf(&sb, "%s %s, %s\n", r.Size, r.Type, r.Alignment)
	fmt.Fprintf(&sb, "Armor Class %d", r.ArmorClass)
	if r.ArmorType != "" {
		fmt.Fprintf(&sb, " (%s)", r.ArmorType)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Hit Points %d", r.HitPoints)
	if r.HitDice != "" {
		fmt.Fprintf(&sb, " (%s)", r.HitDice)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Speed %s\n", r.Speed)

	fmt.Fprintf(&sb, "STR %d (%s)  DEX %d (%s)  CON %d (%s)\n",
		r.Strength, statblock.FormatSavingThrow(statblock.AbilityModifier(r.Strength)),
		r.Dexterity, statblock.FormatSavingThrow(statblock.AbilityModifier(r.Dexterity)),
		r.Constitution, statblock.FormatSavingThrow(statblock.AbilityModifier(r.Constitution)))
	fmt.Fprintf(&sb, "INT %d (%s)  WIS %d (%s)  CHA %d (%s)\n",
		r.Intelligence, statblock.FormatSavingThrow(statblock.AbilityModifier(r.Intelligence)),
		r.Wisdom, statblock.FormatSavingThrow(statblock.AbilityModifier(r.Wisdom)),
		r.Charisma, statblock.FormatSavingThrow(statblock.AbilityModifier(r.Charisma)))

	writeIfSet(&sb, "Skills", r.Skills)
	writeIfSet(&sb, "Senses", r.Senses)
	writeIfSet(&sb, "Languages", r.Languages)
	writeIfSet(&sb, "Damage Vulnerabilities", r.DamageVulnerabilities)
	writeIfSet(&sb, "Damage Resistances", r.DamageResistances)
	writeIfSet(&sb, "Damage Immunities", r.DamageImmunities)
	writeIfSet(&sb, "Condition Immunities", r.ConditionImmunities)
	if r.ChallengeRating != "" {
		fmt.Fprintf(&sb, "Challenge %s", r.ChallengeRating)
		if r.XP > 0 {
			fmt.Fprintf(&sb, " (%d XP)", r.XP)
		}
		sb.WriteString("\n")
	}

	writeSection(&sb, "Traits", r.SpecialAbilities)
	writeSection(&sb, "Actions", r.Actions)
	writeSection(&sb, "Bonus Actions", r.BonusActions)
	writeSection(&sb, "Reactions", r.Reactions)
	writeSection(&sb, "Legendary Actions", r.LegendaryActions)
	writeSection(&sb, "Lair Actions", r.LairActions)
	writeSection(&sb, "Mythic Actions", r.MythicActions)

	if !res.Complete {
		sb.WriteString("\n[warning] some required fields could not be read\n")
	}

	return sb.String()
}

func writeIfSet(sb *strings.Builder, label, value string) {
	if value != "" {
		fmt.Fprintf(sb, "%s %s\n", label, value)
	}
}

func writeSection(sb *strings.Builder, heading, body string) {
	if body != "" {
		fmt.Fprintf(sb, "\n%s\n%s\n", heading, body)
	}
}

// writeOutputs sends the rendered results to a file or stdout.
func writeOutputs(cmd *cobra.Command, outputs []string, outputFile string) error {
	combined := strings.Join(outputs, "\n")
	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(combined+"\n"), 0o600); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", outputFile, err)
		}
		return nil
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), combined)
	return err
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringP("format", "f", "text", "output format (text, json, yaml)")
	scanCmd.Flags().StringP("output", "o", "", "write results to file instead of stdout")
	scanCmd.Flags().StringP("language", "l", "", "OCR language code (e.g. eng, deu)")
	scanCmd.Flags().String("tessdata-prefix", "", "override tesseract data directory")
	scanCmd.Flags().Int("workers", 0, "number of parallel OCR workers (default: number of CPUs)")
	scanCmd.Flags().String("debug-dir", "", "directory for debug images when OCR output is poor")
}

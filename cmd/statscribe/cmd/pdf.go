package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tomecraft/statscribe/internal/extract"
	"github.com/tomecraft/statscribe/internal/pdf"
)

// pdfCmd represents the pdf command.
var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Scan statblocks out of scanned sourcebook PDFs",
	Long: `Extract the embedded page images of a PDF and scan each one for a
monster statblock.

Examples:
  statscribe pdf bestiary.pdf
  statscribe pdf bestiary.pdf --pages 12-20
  statscribe pdf bestiary.pdf --pages 3,7 --format json`,
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

		pages, _ := cmd.Flags().GetString("pages")

		extractor, err := buildExtractor(cmd)
		if err != nil {
			return fmt.Errorf("failed to build extractor: %w", err)
		}

		var outputs []string
		for _, pth := range args {
			pageImages, err := pdf.ExtractPageImages(pth, pages)
			if err != nil {
				return fmt.Errorf("failed to extract page images from %s: %w", pth, err)
			}
			if len(pageImages) == 0 {
				slog.Warn("no embedded images found", "file", pth, "pages", pages)
				continue
			}

			for _, pi := range pageImages {
				res, err := extractor.ExtractImage(cmd.Context(), pi.Image)
				if err != nil {
					if errors.Is(err, extract.ErrNoText) {
						slog.Debug("page image had no readable text", "file", pth, "page", pi.Page)
						continue
					}
					return fmt.Errorf("scan failed for %s page %d: %w", pth, pi.Page, err)
				}

				out, err := formatResult(res, format)
				if err != nil {
					return err
				}
				outputs = append(outputs, fmt.Sprintf("# %s page %d\n%s", pth, pi.Page, out))
			}
		}

		if len(outputs) == 0 {
			return errors.New("no statblocks found")
		}

		return writeOutputs(cmd, outputs, outputFile)
	},
}

func init() {
	rootCmd.AddCommand(pdfCmd)
	pdfCmd.Flags().StringP("format", "f", "text", "output format (text, json, yaml)")
	pdfCmd.Flags().StringP("output", "o", "", "write results to file instead of stdout")
	pdfCmd.Flags().StringP("pages", "p", "", "page range to scan (e.g. 3, 1-5, 1,3,7-9)")
	pdfCmd.Flags().StringP("language", "l", "", "OCR language code (e.g. eng, deu)")
	pdfCmd.Flags().String("tessdata-prefix", "", "override tesseract data directory")
	pdfCmd.Flags().Int("workers", 0, "number of parallel OCR workers (default: number of CPUs)")
	pdfCmd.Flags().String("debug-dir", "", "directory for debug images when OCR output is poor")
}

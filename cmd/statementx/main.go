package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/statement-extractor/internal/batch"
	"github.com/joseph-ayodele/statement-extractor/internal/common"
	"github.com/joseph-ayodele/statement-extractor/internal/export"
	"github.com/joseph-ayodele/statement-extractor/internal/extract"
	"github.com/joseph-ayodele/statement-extractor/internal/ingest"
	"github.com/joseph-ayodele/statement-extractor/internal/ocr"
	processor "github.com/joseph-ayodele/statement-extractor/internal/pipeline"
)

var version = "0.1.0"

func main() {
	// a missing .env is fine; the environment may already be set
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "statementx",
		Short: "Extract key fields from page one of card statements",
		Long: `statementx reads page one of a bank or credit-card statement PDF and reports
the cardholder name, statement date, payment due date, total amount due and
card last 4 digits. Scanned pages fall back to OCR (pdftoppm + tesseract).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(batchCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, common.ErrMalformedDocument) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// setup loads configuration and wires the processor.
func setup() (*common.Config, *slog.Logger, *processor.Processor, error) {
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	opts := &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	ocrx := ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.Lang,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
		PSM:           cfg.OCR.PSM,
		OEM:           cfg.OCR.OEM,
		MinTextChars:  cfg.OCR.MinText,
		MinOCRChars:   cfg.OCR.MinOCRText,
	}, logger)
	textExtractor := extract.NewOCRAdapter(ocrx, logger)

	p := processor.NewProcessor(logger,
		processor.NewOCRStage(textExtractor, logger),
		processor.NewParseStage(nil, logger),
	)
	return cfg, logger, p, nil
}

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract fields from one statement PDF",
		Long: `Extract fields from one statement PDF and print the result as JSON.

Example:
  statementx extract --file october.pdf
  statementx extract --file scan.pdf --no-ocr --candidates`,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			noOCR, _ := cmd.Flags().GetBool("no-ocr")
			withCandidates, _ := cmd.Flags().GetBool("candidates")

			if file == "" {
				return fmt.Errorf("--file flag is required")
			}
			cfg, _, p, err := setup()
			if err != nil {
				return err
			}

			ctx, cancel := common.WithTimeout(cmd.Context(), cfg.Batch.DocumentTimeout)
			defer cancel()
			res, err := p.Process(ctx, file, cfg.OCR.Enabled && !noOCR)
			if err != nil {
				return err
			}

			out, err := resultJSON(res, withCandidates)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringP("file", "f", "", "Statement PDF to read (required)")
	cmd.Flags().Bool("no-ocr", false, "Disable the OCR fallback for scanned pages")
	cmd.Flags().Bool("candidates", false, "Include the raw date, amount and masked-number candidates")
	return cmd
}

func resultJSON(res extract.Result, withCandidates bool) ([]byte, error) {
	if withCandidates {
		return json.MarshalIndent(res, "", "  ")
	}
	raw, err := json.Marshal(res)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	delete(m, "candidates")
	return json.MarshalIndent(m, "", "  ")
}

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Extract fields from every statement PDF under a directory",
		Long: `Walk a directory, extract every PDF independently and write an XLSX report.
A document that cannot be read is reported in its row; the batch carries on.

Example:
  statementx batch --dir ./statements --out results.xlsx --workers 8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			outPath, _ := cmd.Flags().GetString("out")
			workers, _ := cmd.Flags().GetInt("workers")
			noOCR, _ := cmd.Flags().GetBool("no-ocr")
			includeHidden, _ := cmd.Flags().GetBool("include-hidden")

			if dir == "" {
				return fmt.Errorf("--dir flag is required")
			}
			cfg, logger, p, err := setup()
			if err != nil {
				return err
			}
			if workers <= 0 {
				workers = cfg.Batch.Workers
			}

			paths, walkStats, err := ingest.FindPDFs(dir, !includeHidden)
			if err != nil {
				return err
			}
			for _, werr := range walkStats.Errors {
				logger.Warn("batch.walk.error", "error", werr)
			}
			logger.Info("batch.start", "dir", dir, "documents", len(paths), "workers", workers)

			runner := batch.NewRunner(p, logger,
				batch.WithWorkers(workers),
				batch.WithDocumentTimeout(cfg.Batch.DocumentTimeout),
			)
			items, stats := runner.Run(cmd.Context(), paths, cfg.OCR.Enabled && !noOCR)

			data, err := export.NewService(logger).ExportXLSX(items)
			if err != nil {
				return err
			}
			if dirName := filepath.Dir(outPath); dirName != "." {
				if err := os.MkdirAll(dirName, 0o755); err != nil {
					return fmt.Errorf("create output directory: %w", err)
				}
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Processed %d documents: %d succeeded, %d failed, %d degraded\n",
				stats.Total, stats.Succeeded, stats.Failed, stats.Degraded)
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outPath)
			return nil
		},
	}
	cmd.Flags().StringP("dir", "d", "", "Directory to scan for PDFs (required)")
	cmd.Flags().StringP("out", "o", "results.xlsx", "XLSX report path")
	cmd.Flags().IntP("workers", "w", 0, "Concurrent documents (default BATCH_WORKERS)")
	cmd.Flags().Bool("no-ocr", false, "Disable the OCR fallback for scanned pages")
	cmd.Flags().Bool("include-hidden", false, "Also read hidden files and directories")
	return cmd
}

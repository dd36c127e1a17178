package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"stylebook/adapters/excel"
	"stylebook/adapters/postgres"
	"stylebook/internal/config"
	"stylebook/ports"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	rootCmd := &cobra.Command{
		Use:   "stylebook",
		Short: "Stylebook CLI for exporting analysis results to styled Excel workbooks",
	}

	rootCmd.AddCommand(
		newExportCmd(),
		newDumpCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newExportCmd() *cobra.Command {
	var input string
	var output string
	var fromDB bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export analysis results to a styled Excel workbook",
		Long: `Export analysis results to a styled single-sheet Excel workbook.

Results come from a CSV/xlsx input file (--input or INPUT_FILE) or from
Postgres (--from-db with DATABASE_URL). An existing output file is backed up
before being overwritten.

Example: stylebook export --input results.csv --out output/styles.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if output == "" {
				output = cfg.Paths.OutputFile
			}

			records, err := loadRecords(cmd.Context(), cfg, input, fromDB)
			if err != nil {
				return err
			}

			exporter, err := excel.NewExporter(excel.DefaultExportConfig())
			if err != nil {
				return err
			}

			path, err := exporter.ExportToFile(records, output)
			if err != nil {
				return err
			}

			fmt.Printf("Exported %d results to %s\n", len(records), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "CSV or xlsx file holding results to export")
	cmd.Flags().StringVar(&output, "out", "", "output xlsx path (defaults to OUTPUT_FILE)")
	cmd.Flags().BoolVar(&fromDB, "from-db", false, "load results from Postgres (DATABASE_URL)")
	return cmd
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [file]",
		Short: "Print the rows of an exported result sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := excel.NewResultReader(args[0]).ReadSheet()
			if err != nil {
				return err
			}

			fmt.Println(strings.Join(data.Headers, "\t"))
			for _, row := range data.Rows {
				cells := make([]string, len(data.Headers))
				for i, header := range data.Headers {
					cells[i] = row[header]
				}
				fmt.Println(strings.Join(cells, "\t"))
			}
			return nil
		},
	}
}

// loadRecords resolves the record source: Postgres when --from-db is set,
// otherwise a CSV/xlsx input file
func loadRecords(ctx context.Context, cfg *config.Config, input string, fromDB bool) ([]ports.ResultRecord, error) {
	if fromDB {
		if cfg.Database.URL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required with --from-db")
		}
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		return postgres.NewResultRepository(db).ListResults(ctx)
	}

	if input == "" {
		input = cfg.Paths.InputFile
	}
	if input == "" {
		return nil, fmt.Errorf("no input file specified (use --input or INPUT_FILE)")
	}
	return excel.NewResultReader(input).ReadResults()
}

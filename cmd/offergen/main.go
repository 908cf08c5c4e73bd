// Package main provides the CLI entry point for offergen.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ukaji3/offergen-go/pkg/offergen"
	"github.com/ukaji3/offergen-go/pkg/offergen/config"
	"github.com/ukaji3/offergen-go/pkg/offergen/docx"
	"github.com/ukaji3/offergen-go/pkg/offergen/models"
	"github.com/ukaji3/offergen-go/pkg/offergen/output"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// read / scan / cell
	outputPath string
	pretty     bool
	jsonOut    bool
	sheetNames []string
	sheetName  string

	// generate
	templates  []string
	outDir     string
	mode       string
	rows       []int
	fieldArgs  []string
	fieldsPath string

	logger *zap.Logger
	cfg    *config.Config
)

func main() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// execute runs the command tree and flushes the logger, failed runs included.
func execute(root *cobra.Command) error {
	err := root.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	return err
}

var newLogger = func(verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "offergen",
		Short: "Generate offer-request letters from procedure workbooks",
		Long: `offergen reads the procedure data of a purchase workbook (.xlsx) and
fills Word templates (.docx) with it, one letter per template and record.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger(verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "offergen.yaml", "Config file (missing file means defaults)")

	rootCmd.AddCommand(newInitCmd(), newReadCmd(), newScanCmd(), newCellCmd(), newFieldsCmd(), newGenerateCmd())
	return rootCmd
}

func newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration to the config path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(configPath); err == nil && !force {
				return fmt.Errorf("config %s already exists (use --force to overwrite)", configPath)
			}
			if err := config.DefaultConfig().Save(configPath); err != nil {
				return err
			}
			logger.Info("config written", zap.String("path", configPath))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config")
	return cmd
}

func newReadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read [input.xlsx]",
		Short: "Extract the procedure and offers sheets as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := offergen.OptionsFromConfig(cfg, logger)
			opts.Sheets = sheetNames

			wb, err := offergen.Extract(args[0], opts)
			if err != nil {
				return fmt.Errorf("extraction failed: %w", err)
			}

			data, err := output.ToJSON(wb, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return writeOutput(cmd, data)
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringSliceVar(&sheetNames, "sheet", nil, "Sheets to read (default: procedure and offers sheets)")
	return cmd
}

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [input.xlsx]",
		Short: "List every non-blank text cell of a sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet, err := offergen.Scan(args[0], sheetName)
			if err != nil {
				return err
			}
			if !jsonOut {
				return output.RenderVariables(cmd.OutOrStdout(), sheet)
			}
			data, err := output.SheetToJSON(sheet, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return writeOutput(cmd, data)
		},
	}
	cmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet to scan (default: active sheet)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print JSON instead of a listing")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}

func newCellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cell [input.xlsx] [coordinate]",
		Short: "Print the value and type of one cell",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := offergen.Inspect(args[0], sheetName, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s!%s = %s (%s)\n",
				info.Sheet, info.Coordinate, models.Display(info.Value), info.Type)
			return nil
		},
	}
	cmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet to read (default: active sheet)")
	return cmd
}

func newFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields [template.docx...]",
		Short: "List the placeholders a template expects",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				names, err := docx.Placeholders(path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", path)
				for _, name := range names {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
				}
			}
			return nil
		},
	}
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [input.xlsx]",
		Short: "Fill the templates with the workbook data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMode(mode)
			if err != nil {
				return err
			}

			sess, err := newSession(cfg.Fields, fieldsPath, fieldArgs)
			if err != nil {
				return err
			}

			gen := offergen.NewGenerator(cfg, logger)
			report, err := gen.Generate(offergen.Request{
				Workbook:  args[0],
				Templates: templates,
				OutputDir: outDir,
				Mode:      m,
				Rows:      rows,
			}, sess)
			if err != nil {
				return err
			}

			if jsonOut {
				data, err := output.ReportToJSON(report, pretty)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				if err := writeOutput(cmd, data); err != nil {
					return err
				}
			} else if err := output.RenderReport(cmd.OutOrStdout(), report); err != nil {
				return err
			}

			if n := len(report.Failures()); n > 0 {
				return fmt.Errorf("%d of %d documents failed", n, len(report.Outcomes))
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&templates, "template", "t", nil, "Template file (repeatable)")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory (default: from config)")
	cmd.Flags().StringVar(&mode, "mode", string(offergen.ModeProcedure), "Data source: procedura or offerte")
	cmd.Flags().IntSliceVar(&rows, "rows", nil, "Offers sheet rows to generate (offerte mode)")
	cmd.Flags().StringArrayVarP(&fieldArgs, "field", "f", nil, "Field value as name=value (repeatable)")
	cmd.Flags().StringVar(&fieldsPath, "fields", "", "YAML file of field values")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the report as JSON")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func writeOutput(cmd *cobra.Command, data []byte) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

// Package main provides the CLI entry point for jsonxl-go.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ukaji3/jsonxl-go/pkg/jsonxl"
	"github.com/ukaji3/jsonxl-go/pkg/jsonxl/tree"
)

var (
	outputPath string
	verbose    bool

	log = logrus.New()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jsonxl",
		Short: "Convert between nested JSON and flat xlsx tables",
		Long: `jsonxl flattens uniform-depth JSON documents into xlsx spreadsheets
and rebuilds the original nesting from the spreadsheet columns.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	toXlsxCmd := &cobra.Command{
		Use:   "to-xlsx [input.json]",
		Short: "Flatten a JSON document into an xlsx spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE:  runToXlsx,
	}
	toXlsxCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output xlsx path (default: input name with .xlsx)")

	toJSONCmd := &cobra.Command{
		Use:   "to-json [input.xlsx]",
		Short: "Rebuild a nested JSON document from an xlsx spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE:  runToJSON,
	}
	toJSONCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output JSON path")
	cobra.CheckErr(toJSONCmd.MarkFlagRequired("output"))

	verifyCmd := &cobra.Command{
		Use:   "verify [input.json]",
		Short: "Round-trip a JSON document through xlsx and compare",
		Args:  cobra.ExactArgs(1),
		RunE:  runVerify,
	}

	rootCmd.AddCommand(toXlsxCmd, toJSONCmd, verifyCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runToXlsx(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	conv, err := jsonxl.New(jsonxl.Config{
		JSONFile:  inputPath,
		ExcelFile: outputPath,
		Log:       log,
	})
	if err != nil {
		return err
	}
	if err := conv.TreeToTable(); err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	log.Debugf("flattened %s", inputPath)
	return nil
}

func runToJSON(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	conv, err := jsonxl.New(jsonxl.Config{
		ExcelFile:      inputPath,
		OutputJSONFile: outputPath,
		Log:            log,
	})
	if err != nil {
		return err
	}
	if err := conv.TableToTree(); err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	log.Debugf("rebuilt %s into %s", inputPath, outputPath)
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	original, err := tree.DecodeFile(inputPath)
	if err != nil {
		return err
	}

	tmpDir, err := os.MkdirTemp("", "jsonxl-verify-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	xlsxPath := filepath.Join(tmpDir, "roundtrip.xlsx")
	jsonPath := filepath.Join(tmpDir, "roundtrip.json")

	toTable, err := jsonxl.New(jsonxl.Config{JSONFile: inputPath, ExcelFile: xlsxPath, Log: log})
	if err != nil {
		return err
	}
	if err := toTable.TreeToTable(); err != nil {
		return fmt.Errorf("flatten failed: %w", err)
	}
	log.Debugf("wrote %s", xlsxPath)

	toTree, err := jsonxl.New(jsonxl.Config{ExcelFile: xlsxPath, OutputJSONFile: jsonPath, Log: log})
	if err != nil {
		return err
	}
	if err := toTree.TableToTree(); err != nil {
		return fmt.Errorf("rebuild failed: %w", err)
	}

	rebuilt, err := tree.DecodeFile(jsonPath)
	if err != nil {
		return err
	}
	if !tree.Equal(original, rebuilt) {
		return fmt.Errorf("round trip mismatch for %s", inputPath)
	}
	fmt.Println("Conversion is ok.")
	return nil
}

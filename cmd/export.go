// =============================================================================
// Trucking Delivery Tracker - Export Command
// =============================================================================
//
// COMMAND USAGE:
//   tracker export [--format xlsx|xml] [--output PATH] [--xsd]
//
// FORMATS:
//   xlsx : Deliveries sheet plus a Summary sheet (default)
//   xml  : <deliveries><delivery n="1">...</delivery></deliveries>
//
// The default file name comes from export_file_format inside export_dir, with
// the extension matching the format. --xsd also writes the XML schema next
// to an XML export.
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/trucking-delivery-tracker/internal/xlsxexport"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/xmlwriter"
	"github.com/ginjaninja78/trucking-delivery-tracker/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// exportPath overrides the generated export file name.
var exportPath string

// exportFormat selects the output format.
var exportFormat string

// writeXSD writes a schema file alongside an XML export.
var writeXSD bool

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export deliveries to an Excel workbook or XML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(exportFormat)
		if format != "xlsx" && format != "xml" {
			return fmt.Errorf("unknown export format %q (want xlsx or xml)", exportFormat)
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		table, err := a.store.Load()
		if err != nil {
			return err
		}

		path := exportPath
		if path == "" {
			name := utils.GenerateOutputFileName(a.cfg.ExportFileFormat, nil)
			name = strings.TrimSuffix(name, filepath.Ext(name)) + "." + format
			path = filepath.Join(a.cfg.ExportDir, name)
		}

		switch format {
		case "xlsx":
			err = xlsxexport.Export(table, path)
		case "xml":
			err = xmlwriter.WriteFile(table, path)
		}
		if err != nil {
			return err
		}

		a.logger.Info("exported %d record(s) to %s", table.Len(), path)
		fmt.Printf("Exported %d deliveries to %s\n", table.Len(), path)

		if writeXSD && format == "xml" {
			xsdPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".xsd"
			err := utils.WriteFileAtomic(xsdPath, func(w io.Writer) error {
				_, err := w.Write(xmlwriter.GenerateXSD())
				return err
			})
			if err != nil {
				return err
			}
			fmt.Printf("Schema written to %s\n", xsdPath)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(
		&exportPath,
		"output",
		"o",
		"",
		"Output path (default: export_dir/export_file_format)",
	)

	exportCmd.Flags().StringVarP(
		&exportFormat,
		"format",
		"f",
		"xlsx",
		"Export format: xlsx or xml",
	)

	exportCmd.Flags().BoolVar(
		&writeXSD,
		"xsd",
		false,
		"Also write an XSD schema next to an XML export",
	)
}

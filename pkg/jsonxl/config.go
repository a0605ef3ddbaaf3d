// Package jsonxl converts between nested JSON documents and flat xlsx
// tables. Nesting is encoded into column names as dotted root-to-leaf
// paths, and the encoding is reversible for trees whose leaves all sit at
// the same depth.
package jsonxl

import (
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ukaji3/jsonxl-go/pkg/jsonxl/tree"
)

// Config enumerates the supported input and output sources for a
// conversion. Exactly one of JSONFile and Data feeds the JSON side of
// TreeToTable; ExcelFile is the spreadsheet path for both directions.
type Config struct {
	// JSONFile is the input JSON document path.
	JSONFile string
	// Data is an in-memory tree used instead of reading JSONFile.
	Data tree.Node
	// ExcelFile is the spreadsheet path: output for TreeToTable, input for
	// TableToTree. For TreeToTable it defaults to the JSON file's base name
	// with an .xlsx extension.
	ExcelFile string
	// OutputJSONFile is the reconstructed JSON output path for TableToTree.
	OutputJSONFile string
	// Log receives debug diagnostics (row and column counts, derived
	// paths). Nil disables logging.
	Log logrus.FieldLogger
}

func (c Config) validate() error {
	if c.JSONFile == "" && c.Data == nil && c.ExcelFile == "" && c.OutputJSONFile == "" {
		return ErrEmptyConfig
	}
	if c.JSONFile != "" && c.Data != nil {
		return ErrConflictingSources
	}
	return nil
}

// excelPath resolves the spreadsheet path, deriving it from the JSON input
// name when unset.
func (c Config) excelPath() string {
	if c.ExcelFile != "" {
		return c.ExcelFile
	}
	if c.JSONFile != "" {
		base := strings.TrimSuffix(filepath.Base(c.JSONFile), filepath.Ext(c.JSONFile))
		return base + ".xlsx"
	}
	return ""
}

package jsonxl

import (
	"github.com/ukaji3/jsonxl-go/pkg/jsonxl/flatten"
	"github.com/ukaji3/jsonxl-go/pkg/jsonxl/tree"
	"github.com/ukaji3/jsonxl-go/pkg/jsonxl/xlsx"
)

// Converter runs conversions for a single Config. A conversion is a pure
// in-memory transform bracketed by file reads and writes; nothing is cached
// between calls and no output file is touched when a conversion fails.
type Converter struct {
	cfg Config
}

// New validates the configuration eagerly and returns a Converter.
func New(cfg Config) (*Converter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Converter{cfg: cfg}, nil
}

func (c *Converter) debugf(format string, args ...interface{}) {
	if c.cfg.Log != nil {
		c.cfg.Log.Debugf(format, args...)
	}
}

// TreeToTable flattens the configured JSON source into a spreadsheet. The
// tree is depth-validated before flattening; trees with leaves at mixed
// depths fail with *tree.DepthMismatchError and nothing is written.
func (c *Converter) TreeToTable() error {
	n := c.cfg.Data
	if n == nil {
		if c.cfg.JSONFile == "" {
			return ErrNoSource
		}
		loaded, err := tree.DecodeFile(c.cfg.JSONFile)
		if err != nil {
			return err
		}
		n = loaded
	}
	out := c.cfg.excelPath()
	if out == "" {
		return ErrMissingExcelPath
	}
	if c.cfg.ExcelFile == "" {
		c.debugf("derived spreadsheet path %s", out)
	}

	if err := tree.ValidateDepth(n); err != nil {
		return err
	}
	rs, err := flatten.Flatten(n)
	if err != nil {
		return err
	}
	c.debugf("flattened tree into %d rows across %d columns", len(rs.Rows), len(rs.Columns))
	return xlsx.WriteFile(out, rs)
}

// TableToTree reads the spreadsheet back into a nested tree and writes it
// as indented JSON. The reconstructed tree is depth-validated before
// anything is written.
func (c *Converter) TableToTree() error {
	if c.cfg.ExcelFile == "" {
		return ErrMissingExcelPath
	}
	if c.cfg.OutputJSONFile == "" {
		return ErrMissingOutputPath
	}

	rs, err := xlsx.ReadFile(c.cfg.ExcelFile)
	if err != nil {
		return err
	}
	c.debugf("read %d rows across %d columns from %s", len(rs.Rows), len(rs.Columns), c.cfg.ExcelFile)
	n, err := flatten.Unflatten(rs)
	if err != nil {
		return err
	}
	if err := tree.ValidateDepth(n); err != nil {
		return err
	}
	return tree.EncodeFile(c.cfg.OutputJSONFile, n)
}

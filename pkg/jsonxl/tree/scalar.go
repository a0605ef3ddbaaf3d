package tree

// ScalarKind discriminates the scalar variants a JSON leaf or spreadsheet
// cell can hold.
type ScalarKind int

const (
	// ScalarNull is the JSON null value.
	ScalarNull ScalarKind = iota
	// ScalarString is a text value.
	ScalarString
	// ScalarNumber is a numeric value.
	ScalarNumber
	// ScalarBool is a boolean value.
	ScalarBool
)

// Scalar is a tagged scalar value. Kind selects which field is meaningful;
// the zero value is null.
type Scalar struct {
	Kind ScalarKind
	Str  string
	Num  float64
	B    bool
}

// Null is the null scalar.
var Null = Scalar{Kind: ScalarNull}

// String returns a string scalar.
func String(s string) Scalar { return Scalar{Kind: ScalarString, Str: s} }

// Number returns a numeric scalar.
func Number(f float64) Scalar { return Scalar{Kind: ScalarNumber, Num: f} }

// Boolean returns a boolean scalar.
func Boolean(b bool) Scalar { return Scalar{Kind: ScalarBool, B: b} }

// Interface returns the native Go value for JSON serialization or
// spreadsheet writing. Null maps to nil.
func (s Scalar) Interface() interface{} {
	switch s.Kind {
	case ScalarString:
		return s.Str
	case ScalarNumber:
		return s.Num
	case ScalarBool:
		return s.B
	}
	return nil
}

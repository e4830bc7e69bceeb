package numeric

// FloatFormat tags a floating value with the IEEE format it was produced
// in. Only the two formats the C data model maps to float and double are
// representable.
type FloatFormat int

//go:generate go tool stringer -type=FloatFormat -output=float_format_string.go

const (
	_ FloatFormat = iota // zero value stays invalid

	FormatSingle
	FormatDouble
)

type Float struct {
	format FloatFormat
	value  float64
}

func NewSingle(v float32) Float {
	return Float{format: FormatSingle, value: float64(v)}
}

func NewDouble(v float64) Float {
	return Float{format: FormatDouble, value: v}
}

func (f Float) Format() FloatFormat { return f.format }

// Value returns the value widened to float64; every single-precision value
// is exactly representable there.
func (f Float) Value() float64 { return f.value }

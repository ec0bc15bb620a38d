package units

import (
	"fmt"
	"strings"
)

// Quantity is a scalar or homogeneous vector of values tagged with a
// unit. The zero Quantity is "unset" and is how optional configuration
// fields signal that a default should apply.
type Quantity struct {
	values []float64
	unit   Unit
	tagged bool
}

// Scalar wraps a bare number with no unit. Validation sites interpret
// untagged quantities as already expressed in the field's canonical unit.
func Scalar(v float64) Quantity {
	return Quantity{values: []float64{v}}
}

// Vector wraps a bare slice with no unit.
func Vector(vs ...float64) Quantity {
	c := make([]float64, len(vs))
	copy(c, vs)
	return Quantity{values: c}
}

// New wraps a value with a unit.
func New(v float64, u Unit) Quantity {
	return Quantity{values: []float64{v}, unit: u, tagged: true}
}

// NewVector wraps a slice with a unit.
func NewVector(vs []float64, u Unit) Quantity {
	c := make([]float64, len(vs))
	copy(c, vs)
	return Quantity{values: c, unit: u, tagged: true}
}

// IsZero reports whether the quantity is unset.
func (q Quantity) IsZero() bool { return q.values == nil }

// Tagged reports whether the quantity carries a unit.
func (q Quantity) Tagged() bool { return q.tagged }

// Unit returns the quantity's unit; the zero Unit for untagged values.
func (q Quantity) Unit() Unit { return q.unit }

// Dim returns the quantity's dimension; Dimensionless for untagged values.
func (q Quantity) Dim() Dimension { return q.unit.Dim }

// Len returns the number of elements.
func (q Quantity) Len() int { return len(q.values) }

// Value returns the first element. It panics on an unset quantity,
// matching slice-index semantics.
func (q Quantity) Value() float64 { return q.values[0] }

// At returns the i-th element, repeating a scalar for any index so
// scalars broadcast against vectors.
func (q Quantity) At(i int) float64 {
	if len(q.values) == 1 {
		return q.values[0]
	}
	return q.values[i]
}

// Values returns a copy of all elements.
func (q Quantity) Values() []float64 {
	c := make([]float64, len(q.values))
	copy(c, q.values)
	return c
}

// In converts the quantity to another unit of the same dimension.
func (q Quantity) In(u Unit) (Quantity, error) {
	if !q.tagged {
		return Quantity{}, fmt.Errorf("units: cannot convert untagged quantity: %w", ErrDimensionMismatch)
	}
	if q.unit.Dim != u.Dim {
		return Quantity{}, &MismatchError{Expected: u.Dim, Got: q.unit.Dim}
	}
	out := make([]float64, len(q.values))
	for i, v := range q.values {
		canonical := v*q.unit.Factor + q.unit.Offset
		out[i] = (canonical - u.Offset) / u.Factor
	}
	return Quantity{values: out, unit: u, tagged: true}, nil
}

// Canonicalize returns q expressed in dim's canonical unit. Tagged
// quantities are dimension-checked and converted element-wise; untagged
// quantities adopt the canonical unit as-is.
func Canonicalize(q Quantity, dim Dimension) (Quantity, error) {
	if !q.tagged {
		return Quantity{values: q.Values(), unit: dim.Canonical(), tagged: true}, nil
	}
	if q.unit.Dim != dim {
		return Quantity{}, &MismatchError{Expected: dim, Got: q.unit.Dim}
	}
	return q.In(dim.Canonical())
}

func (q Quantity) String() string {
	if q.IsZero() {
		return "<unset>"
	}
	var b strings.Builder
	if len(q.values) == 1 {
		fmt.Fprintf(&b, "%g", q.values[0])
	} else {
		b.WriteByte('[')
		for i, v := range q.values {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%g", v)
		}
		b.WriteByte(']')
	}
	if q.tagged && q.unit.Name != "" {
		b.WriteByte(' ')
		b.WriteString(q.unit.Name)
	}
	return b.String()
}

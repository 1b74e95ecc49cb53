// ABOUTME: Record model and BMI category classification.
// ABOUTME: Computes BMI once at construction; records are immutable after insert.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// DefaultName is stored when no name is supplied for a record.
const DefaultName = "unknown"

var (
	// ErrMissingArgs is returned when height or weight is not supplied.
	ErrMissingArgs = errors.New("missing parameters")
	// ErrInvalidNumber is returned when height or weight is not a number.
	ErrInvalidNumber = errors.New("height and weight must be numbers")
)

// Record is a single stored BMI entry.
type Record struct {
	ID       int64   `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	HeightCm float64 `json:"height_cm" yaml:"height_cm"`
	WeightKg float64 `json:"weight_kg" yaml:"weight_kg"`
	BMI      float64 `json:"bmi" yaml:"bmi"`
}

// NewRecord creates a Record with BMI derived from height and weight.
// An empty name is replaced by DefaultName. Height is not range checked,
// so a zero height yields +Inf.
//
// ParseArgs bypasses the empty-name default: a name given on the command
// line is stored as typed.
func NewRecord(heightCm, weightKg float64, name string) *Record {
	if name == "" {
		name = DefaultName
	}
	return &Record{
		Name:     name,
		HeightCm: heightCm,
		WeightKg: weightKg,
		BMI:      ComputeBMI(heightCm, weightKg),
	}
}

// ComputeBMI returns weight / (height in metres)^2.
func ComputeBMI(heightCm, weightKg float64) float64 {
	m := heightCm / 100
	return weightKg / (m * m)
}

// ParseArgs turns positional "<height_cm> <weight_kg> [name]" arguments into
// a Record. Extra arguments after name are ignored.
func ParseArgs(args []string) (*Record, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%w: expected <height_cm> <weight_kg>", ErrMissingArgs)
	}

	height, err := parseNumber(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid height %q", ErrInvalidNumber, args[0])
	}
	weight, err := parseNumber(args[1])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid weight %q", ErrInvalidNumber, args[1])
	}

	r := NewRecord(height, weight, DefaultName)
	if len(args) > 2 {
		r.Name = args[2]
	}
	return r, nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number: %s", s)
	}
	return v, nil
}

// FiniteBMI returns the BMI, or nil when it is NaN or infinite.
func (r *Record) FiniteBMI() *float64 {
	if math.IsNaN(r.BMI) || math.IsInf(r.BMI, 0) {
		return nil
	}
	bmi := r.BMI
	return &bmi
}

// MarshalJSON encodes a non-finite BMI (zero height) as null.
func (r Record) MarshalJSON() ([]byte, error) {
	type plain Record
	return json.Marshal(struct {
		plain
		BMI *float64 `json:"bmi"`
	}{plain: plain(r), BMI: r.FiniteBMI()})
}

// Category is a BMI classification bucket.
type Category string

const (
	CategoryUnderweight  Category = "underweight"
	CategoryNormal       Category = "normal"
	CategoryOverweight   Category = "overweight"
	CategoryUnclassified Category = "unclassified"
)

// Category boundaries. Values strictly between NormalMax and OverweightMin
// fall in no bucket.
const (
	UnderweightBelow = 18.5
	NormalMax        = 24.9
	OverweightMin    = 25.0
)

// Classify returns the category for a BMI value.
func Classify(bmi float64) Category {
	switch {
	case bmi < UnderweightBelow:
		return CategoryUnderweight
	case bmi <= NormalMax:
		return CategoryNormal
	case bmi >= OverweightMin:
		return CategoryOverweight
	default:
		return CategoryUnclassified
	}
}

// Category returns the record's BMI category.
func (r *Record) Category() Category {
	return Classify(r.BMI)
}

// Extreme is the client holding a maximum value (height or weight).
type Extreme struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// String renders "name, value" with the shortest exact value representation.
func (e *Extreme) String() string {
	if e == nil {
		return "-"
	}
	return e.Name + ", " + strconv.FormatFloat(e.Value, 'f', -1, 64)
}

// Stats is the aggregate report over all records.
type Stats struct {
	TotalRecords int64    `json:"total_records" yaml:"total_records"`
	Underweight  int64    `json:"underweight" yaml:"underweight"`
	Normal       int64    `json:"normal" yaml:"normal"`
	Overweight   int64    `json:"overweight" yaml:"overweight"`
	Tallest      *Extreme `json:"tallest_client,omitempty" yaml:"tallest_client,omitempty"`
	Heaviest     *Extreme `json:"heaviest_client,omitempty" yaml:"heaviest_client,omitempty"`
}

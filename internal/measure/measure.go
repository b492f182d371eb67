package measure

import (
	"fmt"
	"math"
	"strconv"
)

const (
	InchesPerFoot      = 12
	SixteenthsPerInch  = 16
	SixteenthsPerFoot  = InchesPerFoot * SixteenthsPerInch
	maxSixteenthsValue = SixteenthsPerInch - 1
)

// Measurement is a length in architectural units. Feet is always a whole
// number; it is a float64 so that lengths beyond the int range still format.
type Measurement struct {
	Feet       float64
	Inches     int
	Sixteenths int
}

// DecimalFeet returns the length as a real number of feet.
func (m Measurement) DecimalFeet() float64 {
	return m.Feet + float64(m.Inches)/InchesPerFoot + float64(m.Sixteenths)/SixteenthsPerFoot
}

// String renders canonical notation, dropping trailing zero components.
func (m Measurement) String() string {
	feet := strconv.FormatFloat(m.Feet, 'f', 0, 64)
	switch {
	case m.Sixteenths == 0 && m.Inches == 0:
		return feet + "'"
	case m.Sixteenths == 0:
		return fmt.Sprintf("%s'-%d\"", feet, m.Inches)
	default:
		return fmt.Sprintf("%s'-%d %d/16\"", feet, m.Inches, m.Sixteenths)
	}
}

// FromFeet splits decimal feet into feet, inches and the nearest sixteenth,
// carrying a full inch or a full foot when rounding overflows.
func FromFeet(decimalFeet float64) (Measurement, error) {
	if !validLength(decimalFeet) {
		return Measurement{}, invalidInput("feet to architectural", decimalFeet)
	}
	decimalFeet = positiveZero(decimalFeet)
	feet := math.Floor(decimalFeet)
	totalInches := (decimalFeet - feet) * InchesPerFoot
	inches := math.Floor(totalInches)
	sixteenths := roundSixteenths((totalInches - inches) * SixteenthsPerInch)

	m := Measurement{Feet: feet, Inches: int(inches), Sixteenths: sixteenths}
	if m.Sixteenths == SixteenthsPerInch {
		m.Sixteenths = 0
		m.Inches++
	}
	if m.Inches == InchesPerFoot {
		m.Inches = 0
		m.Feet++
	}
	return m, nil
}

// FeetToArchitectural renders decimal feet as architectural notation.
func FeetToArchitectural(decimalFeet float64) (string, error) {
	m, err := FromFeet(decimalFeet)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}

// FeetToInches multiplies by twelve.
func FeetToInches(decimalFeet float64) (float64, error) {
	if !validLength(decimalFeet) {
		return 0, invalidInput("feet to inches", decimalFeet)
	}
	return positiveZero(decimalFeet) * InchesPerFoot, nil
}

// InchesToFeet divides by twelve.
func InchesToFeet(decimalInches float64) (float64, error) {
	if !validLength(decimalInches) {
		return 0, invalidInput("inches to feet", decimalInches)
	}
	return positiveZero(decimalInches) / InchesPerFoot, nil
}

// ArchitecturalToFeet parses strict notation and returns decimal feet.
func ArchitecturalToFeet(notation string) (float64, error) {
	m, err := Parse(notation)
	if err != nil {
		return 0, err
	}
	return m.DecimalFeet(), nil
}

// roundSixteenths rounds half away from zero. Inputs are never negative, so
// this is the same as rounding half up.
func roundSixteenths(v float64) int {
	return int(math.Round(v))
}

func validLength(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// positiveZero folds -0 into 0 so it never renders as "-0".
func positiveZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

// FormatFeet renders decimal feet for display, e.g. "5.250 ft".
func FormatFeet(v float64) string {
	return fmt.Sprintf("%.3f ft", v)
}

// FormatInches renders decimal inches for display, e.g. `63.000"`.
func FormatInches(v float64) string {
	return fmt.Sprintf("%.3f\"", v)
}

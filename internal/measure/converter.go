package measure

import (
	"errors"
	"fmt"
)

// Source names the representation a conversion starts from.
type Source int

const (
	SourceFeet Source = iota
	SourceArchitectural
	SourceInches
)

func (s Source) String() string {
	switch s {
	case SourceFeet:
		return "feet"
	case SourceArchitectural:
		return "architectural"
	case SourceInches:
		return "inches"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

// ParseSource maps the names accepted on the command line onto a Source.
func ParseSource(name string) (Source, error) {
	switch name {
	case "feet", "ft", "decimal-feet":
		return SourceFeet, nil
	case "arch", "architectural":
		return SourceArchitectural, nil
	case "inches", "in", "decimal-inches":
		return SourceInches, nil
	default:
		return 0, fmt.Errorf("measure: unknown source %q (want feet, arch or inches)", name)
	}
}

// Request carries every input value plus one trigger per source. Only one
// trigger is honoured: feet, then architectural, then inches.
type Request struct {
	Feet          float64
	Architectural string
	Inches        float64

	FromFeet          bool
	FromArchitectural bool
	FromInches        bool
}

// NewRequest builds a Request with the trigger for source set.
func NewRequest(source Source, feet float64, architectural string, inches float64) Request {
	return Request{
		Feet:              feet,
		Architectural:     architectural,
		Inches:            inches,
		FromFeet:          source == SourceFeet,
		FromArchitectural: source == SourceArchitectural,
		FromInches:        source == SourceInches,
	}
}

// Result holds all three representations of one length.
type Result struct {
	Source        Source
	Feet          float64
	Architectural string
	Inches        float64
}

// FeetText returns the decimal-feet column as displayed.
func (r Result) FeetText() string { return FormatFeet(r.Feet) }

// InchesText returns the decimal-inches column as displayed.
func (r Result) InchesText() string { return FormatInches(r.Inches) }

// Converter dispatches requests to the conversion functions.
type Converter struct {
	Mode ParseMode
}

// Convert runs the pipeline for the first trigger set on req.
func (c Converter) Convert(req Request) (Result, error) {
	switch {
	case req.FromFeet:
		return c.fromFeet(req.Feet)
	case req.FromArchitectural:
		return c.fromArchitectural(req.Architectural)
	case req.FromInches:
		return c.fromInches(req.Inches)
	default:
		return Result{}, ErrNoTrigger
	}
}

func (c Converter) fromFeet(feet float64) (Result, error) {
	arch, err := FeetToArchitectural(feet)
	if err != nil {
		return Result{}, err
	}
	inches, err := FeetToInches(feet)
	if err != nil {
		return Result{}, err
	}
	return Result{Source: SourceFeet, Feet: positiveZero(feet), Architectural: arch, Inches: inches}, nil
}

func (c Converter) fromInches(inches float64) (Result, error) {
	feet, err := InchesToFeet(inches)
	if err != nil {
		return Result{}, err
	}
	arch, err := FeetToArchitectural(feet)
	if err != nil {
		return Result{}, err
	}
	return Result{Source: SourceInches, Feet: feet, Architectural: arch, Inches: positiveZero(inches)}, nil
}

// fromArchitectural reports any failure along the way as ErrInvalidFormat.
func (c Converter) fromArchitectural(notation string) (Result, error) {
	var feet float64
	if c.Mode == ModeLenient {
		feet = ParseLenient(notation)
	} else {
		m, err := Parse(notation)
		if err != nil {
			return Result{}, err
		}
		feet = m.DecimalFeet()
	}
	inches, err := FeetToInches(feet)
	if err != nil {
		return Result{}, asInvalidFormat(notation, err)
	}
	arch, err := FeetToArchitectural(feet)
	if err != nil {
		return Result{}, asInvalidFormat(notation, err)
	}
	return Result{Source: SourceArchitectural, Feet: feet, Architectural: arch, Inches: inches}, nil
}

func asInvalidFormat(notation string, err error) error {
	if errors.Is(err, ErrInvalidFormat) {
		return err
	}
	return &ConversionError{Op: "convert architectural", Input: notation, Err: fmt.Errorf("%w: %v", ErrInvalidFormat, err)}
}

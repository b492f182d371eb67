package measure

import (
	"regexp"
	"strconv"
	"strings"
)

// ParseMode selects how architectural notation is read.
type ParseMode int

const (
	// ModeStrict accepts only F', F'-I" and F'-I S/16".
	ModeStrict ParseMode = iota
	// ModeLenient extracts each component independently and never fails.
	ModeLenient
)

func (m ParseMode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModeLenient:
		return "lenient"
	default:
		return "unknown"
	}
}

// ParseParseMode maps a config value onto a ParseMode.
func ParseParseMode(value string) (ParseMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "strict":
		return ModeStrict, nil
	case "lenient":
		return ModeLenient, nil
	default:
		return ModeStrict, &ConversionError{Op: "parse mode", Input: value, Err: ErrInvalidInput}
	}
}

// Parse reads canonical architectural notation:
//
//	feet'            5'
//	feet'-inches"    5'-3"
//	feet'-in s/16"   5'-3 8/16"
//
// Surrounding whitespace and spaces around the hyphen are allowed. Inches
// must be 0-11 and sixteenths 0-15.
func Parse(notation string) (Measurement, error) {
	s := &scanner{src: strings.TrimSpace(notation)}
	if s.src == "" {
		return Measurement{}, invalidFormat(notation, "empty input")
	}

	feetDigits := s.digits()
	if feetDigits == "" {
		return Measurement{}, invalidFormat(notation, "expected whole feet")
	}
	if !s.consume("'") {
		return Measurement{}, invalidFormat(notation, "expected ' after feet")
	}
	feet, err := strconv.ParseFloat(feetDigits, 64)
	if err != nil {
		return Measurement{}, invalidFormat(notation, "feet out of range")
	}
	m := Measurement{Feet: feet}
	if s.done() {
		return m, nil
	}

	s.spaces()
	if !s.consume("-") {
		return Measurement{}, invalidFormat(notation, "expected - between feet and inches")
	}
	s.spaces()
	if m.Inches, err = s.bounded(InchesPerFoot - 1); err != nil {
		return Measurement{}, invalidFormat(notation, "inches "+err.Error())
	}

	if !s.consume("\"") {
		if s.spaces() == 0 {
			return Measurement{}, invalidFormat(notation, "expected \" or sixteenths after inches")
		}
		if m.Sixteenths, err = s.bounded(maxSixteenthsValue); err != nil {
			return Measurement{}, invalidFormat(notation, "sixteenths "+err.Error())
		}
		if !s.consume("/16") {
			return Measurement{}, invalidFormat(notation, "expected /16 after sixteenths")
		}
		if !s.consume("\"") {
			return Measurement{}, invalidFormat(notation, "expected closing \"")
		}
	}
	if !s.done() {
		return Measurement{}, invalidFormat(notation, "unexpected trailing text "+strconv.Quote(s.rest()))
	}
	return m, nil
}

var (
	lenientFeet       = regexp.MustCompile(`(\d+)'`)
	lenientInches     = regexp.MustCompile(`-(\d+)"`)
	lenientSixteenths = regexp.MustCompile(`(\d+)/16`)
)

// ParseLenient searches for each component on its own: the first digits
// followed by ', the first digits between - and ", and the first digits
// followed by /16. Missing components count as zero, so empty or unrelated
// text yields 0. Components are read as float64 rather than int: an inches
// run too long for an int still contributes its value, and a run beyond the
// float64 range becomes +Inf, which the conversion pipeline rejects.
func ParseLenient(notation string) float64 {
	feet := lenientComponent(lenientFeet, notation)
	inches := lenientComponent(lenientInches, notation)
	sixteenths := lenientComponent(lenientSixteenths, notation)
	return feet + inches/InchesPerFoot + sixteenths/SixteenthsPerFoot
}

func lenientComponent(re *regexp.Regexp, notation string) float64 {
	match := re.FindStringSubmatch(notation)
	if match == nil {
		return 0
	}
	// digits only, so the sole possible error is ErrRange with v == +Inf
	v, _ := strconv.ParseFloat(match[1], 64)
	return v
}

type scanner struct {
	src string
	pos int
}

func (s *scanner) done() bool   { return s.pos >= len(s.src) }
func (s *scanner) rest() string { return s.src[s.pos:] }

func (s *scanner) digits() string {
	start := s.pos
	for s.pos < len(s.src) && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
		s.pos++
	}
	return s.src[start:s.pos]
}

func (s *scanner) spaces() int {
	n := 0
	for s.pos < len(s.src) && (s.src[s.pos] == ' ' || s.src[s.pos] == '\t') {
		s.pos++
		n++
	}
	return n
}

func (s *scanner) consume(token string) bool {
	if strings.HasPrefix(s.rest(), token) {
		s.pos += len(token)
		return true
	}
	return false
}

type boundError string

func (e boundError) Error() string { return string(e) }

// bounded reads digits and checks them against 0..limit.
func (s *scanner) bounded(limit int) (int, error) {
	digits := s.digits()
	if digits == "" {
		return 0, boundError("missing")
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n > limit {
		return 0, boundError("must be between 0 and " + strconv.Itoa(limit))
	}
	return n, nil
}

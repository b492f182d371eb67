// Package measure converts lengths between decimal feet, decimal inches and
// architectural notation (feet, whole inches and sixteenths of an inch, e.g.
// 5'-3 8/16"). Every conversion is a pure function that returns an explicit
// error instead of panicking; callers check the error before formatting.
//
// Sixteenths are rounded half away from zero. Parsing is strict by default:
// anything that is not canonical notation fails with ErrInvalidFormat.
// ParseLenient keeps the older partial-match behaviour where each component
// is extracted independently and missing pieces count as zero.
package measure

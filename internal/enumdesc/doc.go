// Package enumdesc turns a numbered free-text description such as
// "1红色，2绿色，3蓝色" into an ordered list of enum entries.
//
// Numeric markers are located in the text, the text between two consecutive
// markers becomes an entry label, and a caller supplied NameFunc maps every
// label to an identifier (by translation, dictionary lookup, prompting…).
//
// The package keeps no state and never logs. Absence of a result is reported
// as a nil slice with a nil error; only resolver failures surface as errors.
package enumdesc

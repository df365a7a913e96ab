// Package coerce converts arbitrary Go numeric and string-kind values into
// the representations the codec operates on.
//
// Pack accepts any value at the API boundary; directives narrow it to an
// integer, a float, or raw bytes. The conversions here are lossless: a float
// coerces to an integer only when it carries an exactly integral value, and
// unsigned magnitudes above math.MaxInt64 survive via ToUint64/ToBits64.
package coerce

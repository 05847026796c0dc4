// Package units turns raw telemetry numbers into display strings.
//
// A Spec describes the unit symbols an entry can be shown in. Format picks
// the milli/base/kilo/mega/giga symbol whose power-of-1000 threshold the
// magnitude clears, or applies the active alternate unit's conversion
// factor instead. Numbers are rendered with a fixed number of decimals and,
// for FormatNumber, English digit grouping.
//
// Non-finite values are treated as missing data and render as Placeholder.
// All functions are pure.
package units

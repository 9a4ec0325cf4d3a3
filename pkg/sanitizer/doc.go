// Package sanitizer normalizes raw spreadsheet values into the canonical
// forms the matching pipeline joins on.
//
// All normalization functions are idempotent - applying them multiple times
// produces the same result. Functions handle invalid input gracefully,
// typically by returning empty strings or zero values rather than errors.
//
// Normalization includes:
//   - Mobile numbers: reduce to a digit-only join key; spreadsheet numeric
//     cells ("9.87654321E9", "9876543210.0") render as plain integers first
//   - Order values: numeric coercion with a currency-symbol fallback
//   - Coordinates: numeric coercion with a zero fallback
//   - Strings: collapse whitespace, trim leading/trailing spaces
package sanitizer

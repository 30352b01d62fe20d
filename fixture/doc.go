// Package fixture loads assignment problems from YAML.
//
// Two document shapes are understood:
//
//   - a grid: a top-level sequence of rows, each row a sequence of numbers
//     (Load, LoadFile);
//   - a scenario list: a mapping with a "cases" sequence, each case naming
//     its matrix, mode and expected outcome (LoadCases, LoadCasesFile).
//
// Rows are decoded loosely and validated by matrix.FromAny, so a malformed
// grid surfaces the same *matrix.InputError a typed caller would get.
// Decoding problems wrap ErrDecode.
package fixture

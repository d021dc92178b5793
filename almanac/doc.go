// SPDX-License-Identifier: MIT

// Package almanac reads the plain-text almanac format into categories, a
// seed list and a default stage order.
//
// Format:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	0 15 37
//	...
//
// The first line lists seeds. Each "<name> map:" header opens a category,
// followed by one "destination source length" rule per line. The name is any
// text before " map:" without a colon, inner spaces included. A blank line
// ends the block; a rule line after it with no header of its own is a syntax
// error. Leading indentation and trailing spaces are ignored.
//
// The seed line has two readings, chosen by the caller (SeedMode):
//   - SeedValues: every number is one seed
//   - SeedRanges: numbers pair up as (start, length)
//
// Errors:
//   - ErrSyntax                 - text does not follow the format
//   - category.ErrMalformedRule - a rule line without exactly three uint64s
//   - ErrMalformedSeeds         - non-numeric seed, or odd count in range mode
//   - ErrDuplicateCategory      - the same header appears twice
//   - plus the category.Build errors, annotated with the line number
package almanac

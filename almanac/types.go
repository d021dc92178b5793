// SPDX-License-Identifier: MIT

package almanac

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/stagemap/category"
)

// Sentinel errors for almanac parsing.
var (
	// ErrSyntax indicates the text does not follow the almanac layout.
	ErrSyntax = errors.New("almanac: syntax error")

	// ErrMalformedSeeds indicates a seed that is not a uint64, or an odd
	// number of seeds in range mode.
	ErrMalformedSeeds = errors.New("almanac: malformed seeds")

	// ErrDuplicateCategory indicates two blocks with the same name.
	ErrDuplicateCategory = errors.New("almanac: duplicate category")

	// ErrUnknownMode indicates an unrecognized seed mode name.
	ErrUnknownMode = errors.New("almanac: unknown seed mode")
)

// StandardStages is the seed→location order of the classic almanac.
var StandardStages = []string{
	"seed-to-soil",
	"soil-to-fertilizer",
	"fertilizer-to-water",
	"water-to-light",
	"light-to-temperature",
	"temperature-to-humidity",
	"humidity-to-location",
}

// Almanac is a parsed almanac. Categories are immutable; Seeds and Order
// are plain slices owned by the caller.
type Almanac struct {
	// Seeds holds the numbers of the seed line, uninterpreted.
	Seeds []uint64

	// Order lists category names in the order their blocks appear.
	Order []string

	// Categories maps each block name to its built category.
	Categories map[string]*category.Category
}

// SeedMode selects how the seed line is read.
type SeedMode int

const (
	// SeedValues reads every number as one seed.
	SeedValues SeedMode = iota

	// SeedRanges reads numbers as (start, length) pairs.
	SeedRanges
)

// String returns "values" or "ranges".
func (m SeedMode) String() string {
	switch m {
	case SeedValues:
		return "values"
	case SeedRanges:
		return "ranges"
	default:
		return fmt.Sprintf("SeedMode(%d)", int(m))
	}
}

// ParseSeedMode maps "values" or "ranges" (case-insensitive) to a SeedMode.
func ParseSeedMode(name string) (SeedMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "values":
		return SeedValues, nil
	case "ranges":
		return SeedRanges, nil
	default:
		return SeedValues, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

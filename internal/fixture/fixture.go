// SPDX-License-Identifier: MIT

// Package fixture holds the standard seed→location almanac used by tests,
// examples and benchmarks across stagemap.
package fixture

import "github.com/katalvlaran/stagemap/category"

// Stages is the seed→location traversal order of the standard almanac.
var Stages = []string{
	"seed-to-soil",
	"soil-to-fertilizer",
	"fertilizer-to-water",
	"water-to-light",
	"light-to-temperature",
	"temperature-to-humidity",
	"humidity-to-location",
}

// Seeds is the seed line of the standard almanac. Read as values it yields
// 79→82, 14→43, 55→86, 13→35; read as (start, length) pairs the lowest
// location is 46.
var Seeds = []uint64{79, 14, 55, 13}

// Rules holds the rule table of every category, in declaration order.
var Rules = map[string][]category.RangeRule{
	"seed-to-soil": {
		{Destination: 50, Source: 98, Length: 2},
		{Destination: 52, Source: 50, Length: 48},
	},
	"soil-to-fertilizer": {
		{Destination: 0, Source: 15, Length: 37},
		{Destination: 37, Source: 52, Length: 2},
		{Destination: 39, Source: 0, Length: 15},
	},
	"fertilizer-to-water": {
		{Destination: 49, Source: 53, Length: 8},
		{Destination: 0, Source: 11, Length: 42},
		{Destination: 42, Source: 0, Length: 7},
		{Destination: 57, Source: 7, Length: 4},
	},
	"water-to-light": {
		{Destination: 88, Source: 18, Length: 7},
		{Destination: 18, Source: 25, Length: 70},
	},
	"light-to-temperature": {
		{Destination: 45, Source: 77, Length: 23},
		{Destination: 81, Source: 45, Length: 19},
		{Destination: 68, Source: 64, Length: 13},
	},
	"temperature-to-humidity": {
		{Destination: 0, Source: 69, Length: 1},
		{Destination: 1, Source: 0, Length: 69},
	},
	"humidity-to-location": {
		{Destination: 60, Source: 56, Length: 37},
		{Destination: 56, Source: 93, Length: 4},
	},
}

// Catalog builds every category of the standard almanac.
func Catalog() map[string]*category.Category {
	out := make(map[string]*category.Category, len(Rules))
	for name, rules := range Rules {
		out[name] = category.MustBuild(name, rules)
	}

	return out
}

// Text is the standard almanac in its text form, indented the way it is
// often pasted into tests.
const Text = `
        seeds: 79 14 55 13

        seed-to-soil map:
        50 98 2
        52 50 48

        soil-to-fertilizer map:
        0 15 37
        37 52 2
        39 0 15

        fertilizer-to-water map:
        49 53 8
        0 11 42
        42 0 7
        57 7 4

        water-to-light map:
        88 18 7
        18 25 70

        light-to-temperature map:
        45 77 23
        81 45 19
        68 64 13

        temperature-to-humidity map:
        0 69 1
        1 0 69

        humidity-to-location map:
        60 56 37
        56 93 4
`

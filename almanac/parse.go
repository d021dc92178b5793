// SPDX-License-Identifier: MIT

package almanac

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/stagemap/category"
	"github.com/katalvlaran/stagemap/interval"
	"github.com/katalvlaran/stagemap/pipeline"
)

// sourceName labels positions in syntax errors.
const sourceName = "almanac"

// Parse reads an almanac from r.
//
// Stages:
//  1. Tokenize and parse the layout (ErrSyntax).
//  2. Convert seed numbers (ErrMalformedSeeds).
//  3. Convert each block's rows (category.ErrMalformedRule) and build the
//     category (category.Build errors); names must be unique
//     (ErrDuplicateCategory).
//
// Any failure aborts the whole parse; no partial Almanac is returned.
func Parse(r io.Reader) (*Almanac, error) {
	ast, err := almanacParser.Parse(sourceName, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return fromAST(ast)
}

// ParseString is Parse over a string.
func ParseString(text string) (*Almanac, error) {
	ast, err := almanacParser.ParseString(sourceName, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return fromAST(ast)
}

// fromAST validates the parse tree and builds the categories.
func fromAST(ast *almanacAST) (*Almanac, error) {
	seeds := make([]uint64, len(ast.Seeds))
	for i, s := range ast.Seeds {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: seed #%d %q: %v", ErrMalformedSeeds, i, s, err)
		}
		seeds[i] = v
	}

	a := &Almanac{
		Seeds:      seeds,
		Order:      make([]string, 0, len(ast.Blocks)),
		Categories: make(map[string]*category.Category, len(ast.Blocks)),
	}
	for _, b := range ast.Blocks {
		name := blockName(b.Header)
		if _, dup := a.Categories[name]; dup {
			return nil, fmt.Errorf("%w: %q at line %d", ErrDuplicateCategory, name, b.Pos.Line)
		}

		rules := make([]category.RangeRule, len(b.Rows))
		for i, row := range b.Rows {
			r, err := category.ParseRule(row.Fields)
			if err != nil {
				return nil, fmt.Errorf("almanac: line %d: %w", row.Pos.Line, err)
			}
			rules[i] = r
		}
		c, err := category.Build(name, rules)
		if err != nil {
			return nil, fmt.Errorf("almanac: block at line %d: %w", b.Pos.Line, err)
		}
		a.Categories[name] = c
		a.Order = append(a.Order, name)
	}

	return a, nil
}

// blockName strips the trailing "map:" from a header token.
func blockName(header string) string {
	name := strings.TrimSpace(strings.TrimSuffix(header, ":"))

	return strings.TrimSpace(strings.TrimSuffix(name, "map"))
}

// SeedIntervals reads the seed line in the given mode.
//
//   - SeedValues: one single-identifier span per number.
//   - SeedRanges: one span per (start, length) pair; an odd count fails with
//     ErrMalformedSeeds, a zero length with interval.ErrZeroLength.
//
// No seeds yields an empty result, not an error.
func (a *Almanac) SeedIntervals(mode SeedMode) ([]interval.Interval, error) {
	switch mode {
	case SeedValues:
		out := make([]interval.Interval, len(a.Seeds))
		for i, v := range a.Seeds {
			iv, err := interval.New(v, 1)
			if err != nil {
				return nil, fmt.Errorf("almanac: seed #%d: %w", i, err)
			}
			out[i] = iv
		}
		return out, nil

	case SeedRanges:
		if len(a.Seeds)%2 != 0 {
			return nil, fmt.Errorf("%w: range mode needs (start, length) pairs, got %d numbers",
				ErrMalformedSeeds, len(a.Seeds))
		}
		out := make([]interval.Interval, 0, len(a.Seeds)/2)
		for i := 0; i < len(a.Seeds); i += 2 {
			iv, err := interval.New(a.Seeds[i], a.Seeds[i+1])
			if err != nil {
				return nil, fmt.Errorf("almanac: seed pair #%d: %w", i/2, err)
			}
			out = append(out, iv)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
}

// Chain resolves stage names against the almanac's categories. A nil or
// empty names list uses the block declaration order.
func (a *Almanac) Chain(names []string) (*pipeline.Chain, error) {
	if len(names) == 0 {
		names = a.Order
	}

	return pipeline.NewChain(names, a.Categories)
}

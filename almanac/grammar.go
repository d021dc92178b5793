// SPDX-License-Identifier: MIT

package almanac

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// almanacLexer tokenizes the almanac text. Headers are single tokens so a
// rule line can never be mistaken for one; Word catches any stray text so it
// surfaces as a malformed field instead of a lexer failure. Blank is one or
// more empty (or whitespace-only) lines and ends a block; it must come
// before EOL.
var almanacLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Seeds", Pattern: `seeds[ \t]*:`},
	{Name: "Header", Pattern: `[^\s:][^\n:]*?[ \t]+map[ \t]*:`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Blank", Pattern: `\r?\n([ \t\r]*\r?\n)+`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "Word", Pattern: `[^\s]+`},
})

// almanacAST is the whole document.
type almanacAST struct {
	Pos    lexer.Position
	Seeds  []string    `parser:"(EOL | Blank)* Seeds @(Int | Word)* (EOL | Blank)*"`
	Blocks []*blockAST `parser:"@@*"`
}

// blockAST is one "<name> map:" block. Rows start on the line after the
// header and stop at the first blank line.
type blockAST struct {
	Pos    lexer.Position
	Header string    `parser:"@Header"`
	Rows   []*rowAST `parser:"(EOL @@*)? Blank?"`
}

// rowAST is one rule line; field count is checked after parsing.
type rowAST struct {
	Pos    lexer.Position
	Fields []string `parser:"@(Int | Word)+ EOL?"`
}

// almanacParser is built once; participle parsers are safe for concurrent use.
var almanacParser = participle.MustBuild[almanacAST](
	participle.Lexer(almanacLexer),
	participle.Elide("Whitespace"),
)

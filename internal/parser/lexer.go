package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes filter expressions. Basic whitespace elision is enough for
// our grammar.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Op", Pattern: `<=|>=|==|!=|=|<|>|~`},
	{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Punct", Pattern: `[|&]`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

// Build creates the filter parser from the struct tags in `ast.go`.
func Build() *participle.Parser[Filter] {
	return participle.MustBuild[Filter](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace"),
		participle.Unquote("String"),
	)
}

// File: parse.go
// Role: Edge-list text format ↔ Graph.
//
// Format (one entry per whitespace-separated token group):
//
//	A->B            plain edge
//	A->(2.5)B       weighted edge
//	A               isolated node
//	"New York"->B   quoted name (Go string literal syntax)
//	# comment       ignored to end of line
//
// Bare names are identifiers ([A-Za-z_][A-Za-z0-9_.]*) or numbers; anything
// else must be quoted. Two names must be separated by whitespace, a comment
// or an arrow, so "2a" and "a-1" are rejected rather than split.
package core

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

const (
	identPattern  = `[A-Za-z_][A-Za-z0-9_.]*`
	numberPattern = `[-+]?\d+(\.\d+)?([eE][-+]?\d+)?`
	stringPattern = `"(\\.|[^"\\\n])*"`
)

// ParseError reports malformed edge-list text. It matches ErrParse under
// errors.Is and unwraps to the participle.Error carrying the position.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return ErrParse.Error() + ": " + e.Err.Error() }

// Is makes every ParseError match ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

func (e *ParseError) Unwrap() error { return e.Err }

type edgeListAST struct {
	Entries []*entryAST `parser:"@@*"`
}

type entryAST struct {
	Pos  lexer.Position
	From string   `parser:"@(Ident | Number | String)"`
	Link *linkAST `parser:"@@?"`
}

type linkAST struct {
	Pos    lexer.Position
	Weight *weightAST `parser:"\"->\" @@?"`
	To     string     `parser:"@(Ident | Number | String)"`
}

type weightAST struct {
	Value float64 `parser:"\"(\" @Number \")\""`
}

var edgeListLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "comment", Pattern: `#[^\n]*`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Number", Pattern: numberPattern},
	{Name: "Ident", Pattern: identPattern},
	{Name: "String", Pattern: stringPattern},
	{Name: "Punct", Pattern: `[()]`},
	{Name: "whitespace", Pattern: `\s+`},
})

var edgeListParser = participle.MustBuild[edgeListAST](
	participle.Lexer(edgeListLexer),
	participle.Elide("comment", "whitespace"),
)

// bareName matches names String writes without quotes.
var bareName = regexp.MustCompile(`^(` + identPattern + `|` + numberPattern + `)$`)

// ParseEdgeList builds a graph from edge-list text.
//
// Each distinct name becomes exactly one node, registered in first-seen
// order; edges are inserted in text order under the policy set by opts.
//
// Errors:
//   - *ParseError (matching ErrParse, wrapping a participle.Error) on
//     malformed text.
//
// Complexity:
//   - Time O(len(src)), Space O(V+E).
func ParseEdgeList(src string, opts ...GraphOption) (*Graph, error) {
	if err := checkSeparated(src); err != nil {
		return nil, &ParseError{Err: err}
	}
	ast, err := edgeListParser.ParseString("", src)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	g := NewGraph(opts...)
	byName := make(map[string]*Node)
	node := func(name string) *Node {
		if n, ok := byName[name]; ok {
			return n
		}
		n := NewNode(name)
		byName[name] = n
		_ = g.AddNode(n) // fresh pointer, cannot be a duplicate

		return n
	}

	for _, entry := range ast.Entries {
		fromName, err := unquoteName(entry.Pos, entry.From)
		if err != nil {
			return nil, &ParseError{Err: err}
		}
		from := node(fromName)
		if entry.Link == nil {
			continue
		}
		toName, err := unquoteName(entry.Link.Pos, entry.Link.To)
		if err != nil {
			return nil, &ParseError{Err: err}
		}
		to := node(toName)

		e := NewEdge(from, to)
		if entry.Link.Weight != nil {
			e = NewWeightedEdge(from, to, entry.Link.Weight.Value)
		}
		if err = g.AddEdge(e); err != nil {
			return nil, errors.Wrap(err, "parse edge list")
		}
	}

	return g, nil
}

// checkSeparated rejects two name tokens with nothing between them, which
// the lexer would otherwise split silently ("2a" → "2" "a").
func checkSeparated(src string) error {
	lex, err := edgeListLexer.LexString("", src)
	if err != nil {
		return err
	}
	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		return err
	}

	symbols := edgeListLexer.Symbols()
	isName := func(t lexer.Token) bool {
		return t.Type == symbols["Ident"] || t.Type == symbols["Number"] || t.Type == symbols["String"]
	}
	for i := 1; i < len(tokens); i++ {
		prev, cur := tokens[i-1], tokens[i]
		if isName(prev) && isName(cur) && prev.Pos.Offset+len(prev.Value) == cur.Pos.Offset {
			return participle.Errorf(cur.Pos, "name %q runs into %q; separate names or quote them", prev.Value, cur.Value)
		}
	}

	return nil
}

// unquoteName returns a bare name as is and decodes a quoted one.
func unquoteName(pos lexer.Position, raw string) (string, error) {
	if !strings.HasPrefix(raw, `"`) {
		return raw, nil
	}
	name, err := strconv.Unquote(raw)
	if err != nil {
		return "", participle.Errorf(pos, "invalid quoted name %s: %v", raw, err)
	}

	return name, nil
}

// writeName writes n's name, quoted unless it is a bare identifier or number.
func writeName(sb *strings.Builder, n *Node) {
	if n == nil {
		sb.WriteString("<nil>")
		return
	}
	if bareName.MatchString(n.name) {
		sb.WriteString(n.name)
		return
	}
	sb.WriteString(strconv.Quote(n.name))
}

// writeEdge writes "A->B", or "A->(w)B" when weighted.
func writeEdge(sb *strings.Builder, src, dst *Node, weight float64, weighted bool) {
	writeName(sb, src)
	sb.WriteString("->")
	if weighted {
		sb.WriteByte('(')
		sb.WriteString(strconv.FormatFloat(weight, 'g', -1, 64))
		sb.WriteByte(')')
	}
	writeName(sb, dst)
}

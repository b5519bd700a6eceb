package token

import "fmt"

// Type identifies the lexical kind of a token.
type Type int

const (
	Illegal Type = iota
	EOF

	Ident
	Function
	AtKeyword
	Hash
	String
	BadString
	URL
	BadURL
	Delim
	Number
	Percentage
	Dimension
	UnicodeRange

	IncludeMatch
	DashMatch
	PrefixMatch
	SuffixMatch
	SubstringMatch
	Column

	Whitespace
	CDO
	CDC

	Colon
	Semicolon
	Comma
	LBrack
	RBrack
	LParen
	RParen
	LBrace
	RBrace
)

var names = [...]string{
	Illegal:        "ILLEGAL",
	EOF:            "EOF",
	Ident:          "IDENT",
	Function:       "FUNCTION",
	AtKeyword:      "ATKEYWORD",
	Hash:           "HASH",
	String:         "STRING",
	BadString:      "BADSTRING",
	URL:            "URL",
	BadURL:         "BADURL",
	Delim:          "DELIM",
	Number:         "NUMBER",
	Percentage:     "PERCENTAGE",
	Dimension:      "DIMENSION",
	UnicodeRange:   "UNICODERANGE",
	IncludeMatch:   "INCLUDEMATCH",
	DashMatch:      "DASHMATCH",
	PrefixMatch:    "PREFIXMATCH",
	SuffixMatch:    "SUFFIXMATCH",
	SubstringMatch: "SUBSTRINGMATCH",
	Column:         "COLUMN",
	Whitespace:     "WHITESPACE",
	CDO:            "CDO",
	CDC:            "CDC",
	Colon:          "COLON",
	Semicolon:      "SEMICOLON",
	Comma:          "COMMA",
	LBrack:         "LBRACK",
	RBrack:         "RBRACK",
	LParen:         "LPAREN",
	RParen:         "RPAREN",
	LBrace:         "LBRACE",
	RBrace:         "RBRACE",
}

// String returns the name of the token type.
func (t Type) String() string {
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return ""
}

// Token is a single lexical token along with its decoded payload.
//
// Value holds the decoded text for ident-like tokens and the literal
// representation for numeric tokens. Flag distinguishes "integer"/"number"
// numerics and "id"/"unrestricted" hashes. Start and End carry the bounds
// of a unicode-range token.
type Token struct {
	Type   Type
	Value  string
	Flag   string
	Number float64
	Unit   string
	Ending rune
	Start  int
	End    int
	Pos    Pos
}

// String renders the token back to CSS source text. The rendering is
// token-equivalent to the original input, not byte-identical: escapes are
// printed in their decoded form.
func (t Token) String() string {
	switch t.Type {
	case Ident, Delim, Number, Percentage, Dimension, Whitespace:
		return t.Value
	case Function:
		return t.Value + "("
	case AtKeyword:
		return "@" + t.Value
	case Hash:
		return "#" + t.Value
	case String:
		return string(t.Ending) + t.Value + string(t.Ending)
	case BadString:
		return "''"
	case URL:
		return "url(" + t.Value + ")"
	case BadURL:
		return "url()"
	case UnicodeRange:
		if t.Start == t.End {
			return fmt.Sprintf("U+%06x", t.Start)
		}
		return fmt.Sprintf("U+%06x-U+%06x", t.Start, t.End)
	case IncludeMatch:
		return "~="
	case DashMatch:
		return "|="
	case PrefixMatch:
		return "^="
	case SuffixMatch:
		return "$="
	case SubstringMatch:
		return "*="
	case Column:
		return "||"
	case CDO:
		return "<!--"
	case CDC:
		return "-->"
	case Colon:
		return ":"
	case Semicolon:
		return ";"
	case Comma:
		return ","
	case LBrack:
		return "["
	case RBrack:
		return "]"
	case LParen:
		return "("
	case RParen:
		return ")"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	}
	return ""
}

// Pos specifies the line and character position of a token.
// The Char and Line are both zero-based indexes.
type Pos struct {
	Char int
	Line int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Char+1)
}

package parser

// TokenType enumerates lexical categories recognised by the Mesel lexer.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenNewline

	TokenIdentifier
	TokenNumber
	TokenString

	// Blocks and control flow
	TokenBegin
	TokenEnd
	TokenFor
	TokenIf
	TokenElse
	TokenWhile
	TokenBreak
	TokenContinue

	// Declarators
	TokenNumberType
	TokenStringType
	TokenBoolType

	// Turtle commands
	TokenForward
	TokenTurn
	TokenPenDown
	TokenPenUp
	TokenColor
	TokenWidth

	// Colors
	TokenRed
	TokenGreen
	TokenBlue
	TokenYellow
	TokenBlack
	TokenWhite

	TokenAssign
	TokenPrint

	// Arithmetic keywords
	TokenAdd
	TokenSubtract
	TokenMultiply
	TokenDivide
	TokenModulo
	TokenPower
	TokenIncrement

	// Logical keywords
	TokenAnd
	TokenOr
	TokenNot

	// Operators and punctuation
	TokenAssignOp     // =
	TokenPlus         // +
	TokenMinus        // -
	TokenStar         // *
	TokenSlash        // /
	TokenPercent      // %
	TokenStarStar     // **
	TokenEqualEqual   // ==
	TokenBangEqual    // !=
	TokenGreater      // >
	TokenLess         // <
	TokenGreaterEqual // >=
	TokenLessEqual    // <=
	TokenLParen       // (
	TokenRParen       // )
	TokenLBrace       // {
	TokenRBrace       // }
	TokenComma        // ,
)

func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenNewline:
		return "newline"
	case TokenIdentifier:
		return "identifier"
	case TokenNumber:
		return "number"
	case TokenString:
		return "string"
	case TokenBegin:
		return "ጀምር"
	case TokenEnd:
		return "ጨርስ"
	case TokenFor:
		return "እድግ"
	case TokenIf:
		return "ከሆነ"
	case TokenElse:
		return "ካልሆነ"
	case TokenWhile:
		return "ድገም"
	case TokenBreak:
		return "ተው"
	case TokenContinue:
		return "ቀጥል"
	case TokenNumberType:
		return "ቁጥር"
	case TokenStringType:
		return "ፊደል"
	case TokenBoolType:
		return "እውነት"
	case TokenForward:
		return "ሂድ"
	case TokenTurn:
		return "ዙር"
	case TokenPenDown:
		return "ስዕል_ጀምር"
	case TokenPenUp:
		return "ስዕል_አቁም"
	case TokenColor:
		return "ቀለም"
	case TokenWidth:
		return "ስፋት"
	case TokenRed:
		return "ቀይ"
	case TokenGreen:
		return "አረንጓዴ"
	case TokenBlue:
		return "ሰማያዊ"
	case TokenYellow:
		return "ቢጫ"
	case TokenBlack:
		return "ጥቁር"
	case TokenWhite:
		return "ነጭ"
	case TokenAssign:
		return "አስቀምጥ"
	case TokenPrint:
		return "ያሳይ"
	case TokenAdd:
		return "ደምር"
	case TokenSubtract:
		return "ቀንስ"
	case TokenMultiply:
		return "አባዛ"
	case TokenDivide:
		return "ክፈል"
	case TokenModulo:
		return "ቀሪ"
	case TokenPower:
		return "ደረጃ"
	case TokenIncrement:
		return "ጨምር"
	case TokenAnd:
		return "እና"
	case TokenOr:
		return "ወይም"
	case TokenNot:
		return "አይደለም"
	case TokenAssignOp:
		return "="
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenStar:
		return "*"
	case TokenSlash:
		return "/"
	case TokenPercent:
		return "%"
	case TokenStarStar:
		return "**"
	case TokenEqualEqual:
		return "=="
	case TokenBangEqual:
		return "!="
	case TokenGreater:
		return ">"
	case TokenLess:
		return "<"
	case TokenGreaterEqual:
		return ">="
	case TokenLessEqual:
		return "<="
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenLBrace:
		return "{"
	case TokenRBrace:
		return "}"
	case TokenComma:
		return ","
	default:
		return "unknown"
	}
}

// keywords maps every reserved Ethiopic lexeme to its token type.
// ቀንስ serves as both "subtract" and "decrement" in the language; it always
// lexes as TokenSubtract.
var keywords = map[string]TokenType{
	"ጀምር":     TokenBegin,
	"ጨርስ":     TokenEnd,
	"እድግ":     TokenFor,
	"ከሆነ":     TokenIf,
	"ካልሆነ":    TokenElse,
	"ድገም":     TokenWhile,
	"ተው":      TokenBreak,
	"ቀጥል":     TokenContinue,
	"ቁጥር":     TokenNumberType,
	"ፊደል":     TokenStringType,
	"እውነት":    TokenBoolType,
	"ሂድ":      TokenForward,
	"ዙር":      TokenTurn,
	"ስዕል_ጀምር": TokenPenDown,
	"ስዕል_አቁም": TokenPenUp,
	"ቀለም":     TokenColor,
	"ስፋት":     TokenWidth,
	"ቀይ":      TokenRed,
	"አረንጓዴ":   TokenGreen,
	"ሰማያዊ":    TokenBlue,
	"ቢጫ":      TokenYellow,
	"ጥቁር":     TokenBlack,
	"ነጭ":      TokenWhite,
	"አስቀምጥ":   TokenAssign,
	"ያሳይ":     TokenPrint,
	"ደምር":     TokenAdd,
	"ቀንስ":     TokenSubtract,
	"አባዛ":     TokenMultiply,
	"ክፈል":     TokenDivide,
	"ቀሪ":      TokenModulo,
	"ደረጃ":     TokenPower,
	"ጨምር":     TokenIncrement,
	"እና":      TokenAnd,
	"ወይም":     TokenOr,
	"አይደለም":   TokenNot,
}

func keywordToken(lexeme string) (TokenType, bool) {
	tt, ok := keywords[lexeme]
	return tt, ok
}

// IsColor reports whether tt names one of the fixed pen colors.
func (tt TokenType) IsColor() bool {
	return tt.ColorName() != ""
}

// ColorName returns the English pen color name for a color token, or ""
// for any other token type.
func (tt TokenType) ColorName() string {
	switch tt {
	case TokenRed:
		return "red"
	case TokenGreen:
		return "green"
	case TokenBlue:
		return "blue"
	case TokenYellow:
		return "yellow"
	case TokenBlack:
		return "black"
	case TokenWhite:
		return "white"
	default:
		return ""
	}
}

// Token is a single lexical unit produced by the lexer.
type Token struct {
	Type   TokenType
	Lexeme string // raw text; quotes stripped for strings, empty for EOF
	Pos    Position
}

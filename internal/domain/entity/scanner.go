// Where: internal/domain/entity/scanner.go
// What: Minimal lexical scanner for C-family source text.
// Why: Produce identifier and punctuation tokens while skipping comments and literals.
package entity

type tokenKind int

const (
	tokenIdent tokenKind = iota
	tokenPunct
)

type token struct {
	kind tokenKind
	text string
}

func tokenize(src string) []token {
	var tokens []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case isSpace(c):
			i++
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			i = skipLine(src, i)
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			i = skipBlockComment(src, i+2)
		case c == '"':
			i = skipString(src, i, false)
		case c == '@' && i+1 < len(src) && src[i+1] == '"':
			i = skipString(src, i+1, true)
		case c == '\'':
			i = skipChar(src, i)
		case c == '@' && i+1 < len(src) && isIdentStart(src[i+1]):
			// Verbatim identifiers such as @class never act as keywords.
			end := scanIdent(src, i+1)
			tokens = append(tokens, token{kind: tokenIdent, text: src[i:end]})
			i = end
		case isIdentStart(c):
			end := scanIdent(src, i)
			tokens = append(tokens, token{kind: tokenIdent, text: src[i:end]})
			i = end
		default:
			tokens = append(tokens, token{kind: tokenPunct, text: src[i : i+1]})
			i++
		}
	}
	return tokens
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func scanIdent(src string, i int) int {
	for i < len(src) && isIdentPart(src[i]) {
		i++
	}
	return i
}

func skipLine(src string, i int) int {
	for i < len(src) && src[i] != '\n' {
		i++
	}
	return i
}

func skipBlockComment(src string, i int) int {
	for i+1 < len(src) {
		if src[i] == '*' && src[i+1] == '/' {
			return i + 2
		}
		i++
	}
	return len(src)
}

// skipString skips a string literal starting at the opening quote at i.
// Raw literals (three or more quotes) end at the same run of quotes.
func skipString(src string, i int, verbatim bool) int {
	run := 0
	for i+run < len(src) && src[i+run] == '"' {
		run++
	}
	if run >= 3 {
		return skipRawString(src, i+run, run)
	}
	i++
	for i < len(src) {
		switch src[i] {
		case '\\':
			if verbatim {
				i++
				continue
			}
			i += 2
		case '"':
			if verbatim && i+1 < len(src) && src[i+1] == '"' {
				i += 2
				continue
			}
			return i + 1
		case '\n':
			if !verbatim {
				return i + 1
			}
			i++
		default:
			i++
		}
	}
	return len(src)
}

func skipRawString(src string, i, run int) int {
	for i < len(src) {
		if src[i] != '"' {
			i++
			continue
		}
		n := 0
		for i+n < len(src) && src[i+n] == '"' {
			n++
		}
		if n >= run {
			return i + n
		}
		i += n
	}
	return len(src)
}

func skipChar(src string, i int) int {
	i++
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
		case '\'', '\n':
			return i + 1
		default:
			i++
		}
	}
	return len(src)
}

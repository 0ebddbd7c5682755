// Where: internal/domain/entity/entity.go
// What: Entity descriptors and declaration-name extraction.
// Why: Find class-like declarations without a full host-language parser.
package entity

// Descriptor names one declared entity and the file it was found in.
type Descriptor struct {
	Name   string
	Source string
}

// DefaultKeywords are the declaration keywords recognized when none are configured.
var DefaultKeywords = []string{"class"}

// Modifiers lists the tokens that may precede a declaration keyword.
var Modifiers = []string{
	"public", "internal", "private", "protected",
	"sealed", "abstract", "static", "partial",
}

// ExtractNames returns every declared type name in text, in source order.
// A declaration is a keyword followed by an identifier whose body opens with
// '{' before any ';'. Comments and literals are ignored.
func ExtractNames(text string, keywords ...string) []string {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	isKeyword := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		isKeyword[kw] = true
	}

	tokens := tokenize(text)
	var names []string
	for i, tok := range tokens {
		if tok.kind != tokenIdent || !isKeyword[tok.text] {
			continue
		}
		if i > 0 && isConstraintContext(tokens[i-1]) {
			continue
		}
		if i+1 >= len(tokens) {
			break
		}
		name := tokens[i+1]
		if name.kind != tokenIdent || isKeyword[name.text] || isModifier(name.text) {
			continue
		}
		if !opensBody(tokens[i+2:]) {
			continue
		}
		names = append(names, name.text)
	}
	return names
}

// isConstraintContext reports whether the token before a keyword makes it a
// generic constraint or member access rather than a declaration.
func isConstraintContext(prev token) bool {
	if prev.kind != tokenPunct {
		return false
	}
	switch prev.text {
	case ":", ",", ".", "<", "(":
		return true
	}
	return false
}

func opensBody(rest []token) bool {
	for _, tok := range rest {
		if tok.kind != tokenPunct {
			continue
		}
		switch tok.text {
		case "{":
			return true
		case ";", "}":
			return false
		}
	}
	return false
}

func isModifier(word string) bool {
	for _, m := range Modifiers {
		if m == word {
			return true
		}
	}
	return false
}

// UniqueNames returns descriptor names with duplicates removed, keeping the
// first occurrence.
func UniqueNames(descriptors []Descriptor) []string {
	seen := make(map[string]bool, len(descriptors))
	names := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		if seen[d.Name] {
			continue
		}
		seen[d.Name] = true
		names = append(names, d.Name)
	}
	return names
}

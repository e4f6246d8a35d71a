package command

import (
	"fmt"
	"strings"

	"github.com/viant/parsly"
)

// Parse splits a command line into tokens. Tokens are separated by
// whitespace; a double-quoted token may contain spaces and \" or \\ escapes.
func Parse(line string) ([]string, error) {
	cursor := parsly.NewCursor("", []byte(line), 0)
	var tokens []string
	for {
		matched := cursor.MatchAfterOptional(whitespaceToken, quotedToken, wordToken)
		switch matched.Code {
		case quotedCode:
			tokens = append(tokens, unquote(matched.Text(cursor)))
		case wordCode:
			text := matched.Text(cursor)
			if strings.HasPrefix(text, `"`) {
				return nil, fmt.Errorf("unterminated quoted argument: %s", text)
			}
			tokens = append(tokens, text)
		case parsly.EOF:
			return tokens, nil
		default:
			return nil, cursor.NewError(quotedToken, wordToken)
		}
	}
}

func unquote(text string) string {
	text = text[1 : len(text)-1]
	if !strings.Contains(text, `\`) {
		return text
	}
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		if text[i] == '\\' && i+1 < len(text) {
			i++
		}
		b.WriteByte(text[i])
	}
	return b.String()
}

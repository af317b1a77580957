package sqltext

import (
	"strings"

	generrors "github.com/sqordia/prompt-seed/internal/errors"
)

// Unquote reads a literal produced by DollarQuote and returns its tag and the
// original text, halving every doubled dollar sign in the body.
func Unquote(literal string) (tag, text string, err error) {
	if !strings.HasPrefix(literal, "$") {
		return "", "", generrors.MalformedLiteral("missing opening tag")
	}

	end := strings.IndexByte(literal[1:], '$')
	if end < 0 {
		return "", "", generrors.MalformedLiteral("unterminated opening tag")
	}
	tag = literal[1 : end+1]
	if !ValidTag(tag) {
		return "", "", generrors.MalformedLiteral("invalid tag " + tag)
	}

	delim := delimiter(tag)
	rest := literal[len(delim):]
	closing := strings.Index(rest, delim)
	if closing < 0 {
		return "", "", generrors.MalformedLiteral("missing closing tag $" + tag + "$")
	}
	if closing+len(delim) != len(rest) {
		return "", "", generrors.MalformedLiteral("trailing data after closing tag")
	}

	text, err = unescape(rest[:closing])
	if err != nil {
		return "", "", err
	}
	return tag, text, nil
}

func unescape(body string) (string, error) {
	if !strings.Contains(body, "$") {
		return body, nil
	}

	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		if body[i] == '$' {
			if i+1 >= len(body) || body[i+1] != '$' {
				return "", generrors.MalformedLiteral("unpaired dollar sign in body")
			}
			i++
		}
		b.WriteByte(body[i])
	}
	return b.String(), nil
}

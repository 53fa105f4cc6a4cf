package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/vk/machinegen/internal/model"
	"golang.org/x/text/unicode/norm"
)

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"${", `\${`,
	"\r", `\r`,
)

// QuoteTemplateLiteral wraps s in backticks and escapes it so that a
// JavaScript parser yields s back byte for byte. Newlines stay raw; carriage
// returns are escaped because template literals normalise them.
//
// Text that is not in Unicode NFC gets its non-ASCII runes written as
// \u{...} escapes, so a template engine that normalises strings can't alter it.
func QuoteTemplateLiteral(s string) string {
	escaped := literalEscaper.Replace(s)
	if !norm.NFC.IsNormalString(escaped) {
		escaped = escapeNonASCII(escaped)
	}
	return "`" + escaped + "`"
}

func escapeNonASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
			continue
		}
		b.WriteString(`\u{`)
		b.WriteString(strconv.FormatInt(int64(r), 16))
		b.WriteByte('}')
	}
	return b.String()
}

// UnquoteTemplateLiteral reverses QuoteTemplateLiteral. It only understands
// the escapes QuoteTemplateLiteral produces and returns ok=false for anything
// else.
func UnquoteTemplateLiteral(q string) (string, bool) {
	if len(q) < 2 || q[0] != '`' || q[len(q)-1] != '`' {
		return "", false
	}
	body := q[1 : len(q)-1]

	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '`' {
			return "", false
		}
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", false
		}
		switch body[i] {
		case '\\', '`', '$':
			b.WriteByte(body[i])
		case 'r':
			b.WriteByte('\r')
		case 'u':
			end := strings.IndexByte(body[i:], '}')
			if end < 0 || i+1 >= len(body) || body[i+1] != '{' {
				return "", false
			}
			n, err := strconv.ParseInt(body[i+2:i+end], 16, 32)
			if err != nil || !utf8.ValidRune(rune(n)) {
				return "", false
			}
			b.WriteRune(rune(n))
			i += end
		default:
			return "", false
		}
	}
	return b.String(), true
}

// Key renders name as an object key: bare when it is a valid identifier,
// double-quoted otherwise. Names that are not in Unicode NFC are quoted with
// \u escapes so normalisation can't merge them with another key, and
// `__proto__` becomes a computed key so it stays an own property.
func Key(name string) string {
	switch {
	case name == "__proto__":
		return "[" + quoteKey(name) + "]"
	case !norm.NFC.IsNormalString(name):
		return quoteKey(name)
	case isIdentifier(name):
		return name
	}
	return quoteKey(name)
}

// quoteKey returns name as a double-quoted string. Non-NFC names have every
// non-ASCII rune written as a \uXXXX escape.
func quoteKey(name string) string {
	b, _ := json.Marshal(name)
	if norm.NFC.IsNormal(b) {
		return string(b)
	}

	var sb strings.Builder
	sb.Grow(len(b))
	for _, r := range string(b) {
		if r < utf8.RuneSelf {
			sb.WriteRune(r)
			continue
		}
		if r > 0xffff {
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&sb, `\u%04x\u%04x`, hi, lo)
			continue
		}
		fmt.Fprintf(&sb, `\u%04x`, r)
	}
	return sb.String()
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// Fragment renders one definition as a `key: value` entry.
func Fragment(def *model.Definition) model.Fragment {
	return model.Fragment{
		Name: def.Name,
		Text: Key(def.Name) + ": " + QuoteTemplateLiteral(def.Text),
	}
}

// Fragments renders defs in order.
func Fragments(defs []*model.Definition) []model.Fragment {
	out := make([]model.Fragment, 0, len(defs))
	for _, d := range defs {
		out = append(out, Fragment(d))
	}
	return out
}

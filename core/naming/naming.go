package naming

import "strings"

// Convention is a filename casing rule applied to target names before they
// become path segments.
type Convention string

const (
	PascalCase Convention = "PascalCase"
	CamelCase  Convention = "camelCase"
	KebabCase  Convention = "kebab-case"
	SnakeCase  Convention = "snake_case"
	LowerCase  Convention = "lowerCase"
)

// Apply transforms name according to the convention. An empty convention is
// the identity. Unknown conventions are also the identity; layout validation
// happens upstream, not here.
//
// Transforms only look at ASCII case boundaries. Names already in another
// convention (all-caps acronyms especially) can segment in surprising ways;
// that is accepted behavior, not something to special-case.
func Apply(c Convention, name string) string {
	if name == "" {
		return name
	}
	switch c {
	case PascalCase:
		return strings.ToUpper(name[:1]) + name[1:]
	case CamelCase:
		return strings.ToLower(name[:1]) + name[1:]
	case KebabCase:
		return strings.ToLower(splitBoundaries(name, '-'))
	case SnakeCase:
		return strings.ToLower(splitBoundaries(name, '_'))
	case LowerCase:
		return strings.ToLower(name)
	default:
		return name
	}
}

// splitBoundaries inserts sep at every lowercase-or-digit to uppercase
// boundary: "orderItem2X" becomes "orderItem2-X" with sep '-'.
func splitBoundaries(name string, sep byte) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i := 0; i < len(name); i++ {
		ch := name[i]
		if i > 0 && isUpper(ch) && isLowerOrDigit(name[i-1]) {
			b.WriteByte(sep)
		}
		b.WriteByte(ch)
	}
	return b.String()
}

func isUpper(ch byte) bool {
	return ch >= 'A' && ch <= 'Z'
}

func isLowerOrDigit(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9')
}

package ast

import "strings"

// String renders t fully parenthesised, e.g. "((1 - 2) + 3)".
func String(t *Tree) string {
	var b strings.Builder
	write(&b, t)
	return b.String()
}

func write(b *strings.Builder, t *Tree) {
	if t == nil {
		b.WriteString("<nil>")
		return
	}

	n := t.Key()
	if n.Kind == Number {
		b.WriteString(n.Text)
		return
	}

	b.WriteByte('(')
	write(b, t.Left())
	b.WriteByte(' ')
	b.WriteString(n.Text)
	b.WriteByte(' ')
	write(b, t.Right())
	b.WriteByte(')')
}

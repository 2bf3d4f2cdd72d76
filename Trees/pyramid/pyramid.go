// Package pyramid draws a binary tree as ASCII art, root on top and one
// row of values per level joined to their children by / and \ edges.
// It only reads the tree through the exported Trees.Node accessors.
package pyramid

import (
	"fmt"
	"io"
	"strings"

	"github.com/Erick01081/BSTArep/Trees"
)

// DefaultMaxHeight is the tallest tree Fprint draws unless WithMaxHeight
// says otherwise. The width of the drawing doubles with every level.
const DefaultMaxHeight = 8

type printer[T any] struct {
	color     func(string, ...any) string
	format    func(T) string
	w         io.Writer
	maxHeight int
}

type Option[T any] func(*printer[T])

// WithColor wraps every printed value with f, for example
// color.New(color.FgCyan).SprintfFunc().
func WithColor[T any](f func(string, ...any) string) Option[T] {
	return func(p *printer[T]) {
		p.color = f
	}
}

// WithFormat sets how values are turned into text. The default is fmt.Sprint.
func WithFormat[T any](f func(T) string) Option[T] {
	return func(p *printer[T]) {
		p.format = f
	}
}

// WithMaxHeight sets the tallest tree that is drawn. Taller trees get a
// single line saying so. h is clamped to [1, 30].
func WithMaxHeight[T any](h int) Option[T] {
	return func(p *printer[T]) {
		p.maxHeight = min(max(h, 1), 30)
	}
}

// Fprint writes the tree rooting at root to w. Values wider than one
// character push the rest of their row to the right, the layout is only
// exact for single character values. Trailing blanks are trimmed and empty
// rows are left out. A tree taller than the maximum height is reported as
// "tree too tall to draw (height N)" instead.
func Fprint[T any](w io.Writer, root *Trees.Node[T], opts ...Option[T]) error {
	p := printer[T]{
		color:     fmt.Sprintf,
		format:    func(v T) string { return fmt.Sprint(v) },
		w:         w,
		maxHeight: DefaultMaxHeight,
	}
	for _, o := range opts {
		o(&p)
	}
	if root == nil {
		_, err := io.WriteString(w, "empty tree\n")
		return err
	}
	if h := root.Height(); h > p.maxHeight {
		_, err := fmt.Fprintf(w, "tree too tall to draw (height %d)\n", h)
		return err
	}
	return p.levels([]*Trees.Node[T]{root}, 1, root.Height())
}

func (p *printer[T]) levels(nodes []*Trees.Node[T], level, maxLevel int) error {
	var b strings.Builder
	for ; !allNil(nodes); level++ {
		floor := maxLevel - level
		edgeLines := 1 << max(floor-1, 0)
		firstSpaces := 1<<floor - 1
		betweenSpaces := 1<<(floor+1) - 1

		b.Reset()
		spaces(&b, firstSpaces)
		next := make([]*Trees.Node[T], 0, len(nodes)*2)
		for _, n := range nodes {
			if n != nil {
				b.WriteString(p.color("%s", p.format(n.Value())))
				next = append(next, n.Left(), n.Right())
			} else {
				b.WriteByte(' ')
				next = append(next, nil, nil)
			}
			spaces(&b, betweenSpaces)
		}
		if err := p.line(&b); err != nil {
			return err
		}

		for i := 1; i <= edgeLines; i++ {
			b.Reset()
			for _, n := range nodes {
				spaces(&b, firstSpaces-i)
				if n == nil {
					spaces(&b, edgeLines*2+i+1)
					continue
				}
				if n.Left() != nil {
					b.WriteByte('/')
				} else {
					b.WriteByte(' ')
				}
				spaces(&b, i*2-1)
				if n.Right() != nil {
					b.WriteByte('\\')
				} else {
					b.WriteByte(' ')
				}
				spaces(&b, edgeLines*2-i)
			}
			if err := p.line(&b); err != nil {
				return err
			}
		}
		nodes = next
	}
	return nil
}

// line writes the content of b without trailing blanks. Blank lines are skipped.
func (p *printer[T]) line(b *strings.Builder) error {
	s := strings.TrimRight(b.String(), " ")
	if s == "" {
		return nil
	}
	_, err := io.WriteString(p.w, s+"\n")
	return err
}

func spaces(b *strings.Builder, n int) {
	for ; n > 0; n-- {
		b.WriteByte(' ')
	}
}

func allNil[T any](nodes []*Trees.Node[T]) bool {
	for _, n := range nodes {
		if n != nil {
			return false
		}
	}
	return true
}

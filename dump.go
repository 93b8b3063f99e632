package avltree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/avltree/avl"
	"golang.org/x/term"
)

// Fdump writes an indented representation of a tree's node structure to w,
// one element per line in tree order, children indented under their
// ancestors. Balanced nodes are printed in blue, leaning nodes in red,
// with the balance factor appended. Lines are clamped to the terminal
// width when stdout is interactive.
//
// This is a debugging helper; the output format is not stable.
func Fdump[E, I, R any](w io.Writer, tree *avl.Tree[E, I, R]) {
	width := dumpWidth()
	palette := map[bool]*color.Color{
		true:  color.New(color.FgBlue),
		false: color.New(color.FgRed),
	}
	tree.EachNode(func(v E, depth int, balance int) bool {
		line := fmt.Sprintf("%s%v (%+d)", strings.Repeat("  ", depth), v, balance)
		if len(line) > width {
			line = line[:width]
		}
		palette[balance == 0].Fprintln(w, line)
		return true
	})
}

// dumpWidth returns the terminal width for stdout, or a fixed default for
// non-interactive output.
func dumpWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// Dump writes the list's tree structure to w (debugging helper).
func (l *List[E]) Dump(w io.Writer) {
	Fdump(w, l.tree)
}

// Dump writes the set's tree structure to w (debugging helper).
func (s *Set[E]) Dump(w io.Writer) {
	Fdump(w, s.tree)
}

// Dump writes the bag's tree structure to w (debugging helper).
func (b *Bag[E]) Dump(w io.Writer) {
	Fdump(w, b.tree)
}

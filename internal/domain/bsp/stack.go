package bsp

import (
	"fmt"
	"strings"

	"github.com/bnema/bsptile/internal/domain/entity"
)

// Stack flattens the desktop's clients in pre-order, floating ones included,
// for stacking and cycling commands. The slice is sized to the desktop count
// and cached on the desktop until the next call.
func (a *Arena) Stack(d *Desktop) []entity.Client {
	if d.stack == nil || cap(d.stack) != d.Count {
		d.stack = make([]entity.Client, 0, d.Count)
	}
	d.stack = d.stack[:0]
	a.walk(d.Root, func(id NodeID) bool {
		if c := a.Client(id); c != nil && c.Window != entity.NoWindow {
			d.stack = append(d.stack, *c)
		}
		return true
	})
	return d.stack
}

// Dump renders the tree under root one node per line, indented by depth.
func (a *Arena) Dump(root NodeID) string {
	var b strings.Builder
	a.dump(&b, root, 0, "")
	return b.String()
}

func (a *Arena) dump(b *strings.Builder, id NodeID, depth int, tag string) {
	n := a.get(id)
	if n == nil {
		return
	}
	fmt.Fprintf(b, "%s%s%s #%d %s", strings.Repeat("  ", depth), tag, a.Kind(id), id, n.rect)
	switch body := n.body.(type) {
	case *leaf:
		if body.client != nil {
			fmt.Fprintf(b, " win=%s %s", body.client.Window, body.client.State)
		}
		b.WriteByte('\n')
		for _, f := range body.floating {
			a.dump(b, f, depth+1, "~")
		}
	case *split:
		b.WriteByte('\n')
		a.dump(b, body.first, depth+1, "")
		a.dump(b, body.second, depth+1, "")
	}
}

package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/bnema/bsptile/internal/domain/entity"
)

// shortIDLen is how much of a snapshot ID the list shows.
const shortIDLen = 8

// LayoutsCLIRenderer renders non-interactive output for the layouts subcommands
// (e.g. `bsptile layouts list`, `show`, `delete`).
type LayoutsCLIRenderer struct {
	theme *Theme
}

func NewLayoutsCLIRenderer(theme *Theme) *LayoutsCLIRenderer {
	return &LayoutsCLIRenderer{theme: theme}
}

func (r *LayoutsCLIRenderer) RenderEmptyList() string {
	return r.theme.Subtle.Render("No saved layouts found.")
}

// RenderList renders saved layouts as a table, newest first as given.
func (r *LayoutsCLIRenderer) RenderList(items []*entity.LayoutSnapshot) string {
	if len(items) == 0 {
		return r.RenderEmptyList()
	}

	rows := make([][]string, 0, len(items))
	for _, s := range items {
		name := s.Name
		if name == "" {
			name = "(autosave)"
		}
		rows = append(rows, []string{
			ShortID(s.ID),
			name,
			strconv.Itoa(len(s.Desktops)),
			strconv.Itoa(s.WindowCount()),
			fmt.Sprintf("%dx%d", s.Screen.Width, s.Screen.Height),
			RelativeTime(s.SavedAt),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.theme.Subtle).
		Headers("ID", "NAME", "DESKTOPS", "WINDOWS", "SCREEN", "SAVED").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return r.theme.Title.Padding(0, 1)
			case col == 0:
				return r.theme.Highlight.Padding(0, 1)
			case col == 5:
				return r.theme.Subtle.Padding(0, 1)
			default:
				return r.theme.Normal.Padding(0, 1)
			}
		})

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", r.theme.Highlight.Render(IconLayout), r.theme.Title.Render("Layouts")))
	b.WriteString(t.String())
	b.WriteString("\n")
	b.WriteString(r.theme.Subtle.Render("Tip: use `bsptile layouts browse` for the interactive browser."))
	return b.String()
}

// RenderTree renders every desktop of snap as a tree of splits and windows.
// names optionally labels windows.
func (r *LayoutsCLIRenderer) RenderTree(snap *entity.LayoutSnapshot, names map[entity.WindowID]string) string {
	title := snap.Name
	if title == "" {
		title = ShortID(snap.ID)
	}
	root := tree.Root(fmt.Sprintf("%s %s  %s",
		r.theme.Highlight.Render(IconTree),
		r.theme.Title.Render(title),
		r.theme.Subtle.Render(fmt.Sprintf("%dx%d", snap.Screen.Width, snap.Screen.Height)),
	)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(r.theme.Subtle)

	for i := range snap.Desktops {
		root.Child(r.DesktopTree(&snap.Desktops[i], names))
	}
	return root.String()
}

// DesktopTree builds the tree for a single desktop.
func (r *LayoutsCLIRenderer) DesktopTree(d *entity.DesktopSnapshot, names map[entity.WindowID]string) *tree.Tree {
	label := fmt.Sprintf("%s desktop %s  %s %s",
		r.theme.Highlight.Render(IconDesktop),
		r.theme.Title.Render(d.Name),
		r.theme.AccentBadge(d.Layout.String()),
		r.theme.MutedBadge(fmt.Sprintf("%d windows", d.Count)),
	)
	t := tree.Root(label).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(r.theme.Subtle)
	if d.Root == nil {
		return t.Child(r.theme.Subtle.Render("(empty)"))
	}
	return t.Child(r.nodeTree(d.Root, names))
}

func (r *LayoutsCLIRenderer) nodeTree(n *entity.NodeSnapshot, names map[entity.WindowID]string) any {
	if n.IsLeaf() && len(n.Floating) == 0 {
		return r.leafLabel(n, names)
	}

	var t *tree.Tree
	if n.IsLeaf() {
		t = tree.Root(r.leafLabel(n, names))
	} else {
		t = tree.Root(fmt.Sprintf("%s %s",
			r.theme.Subtle.Render(IconSplit),
			r.theme.Subtle.Render(n.Rect.String()),
		))
		t.Child(r.nodeTree(n.First, names), r.nodeTree(n.Second, names))
	}
	for _, f := range n.Floating {
		t.Child(r.leafLabel(f, names))
	}
	return t.Enumerator(tree.RoundedEnumerator).EnumeratorStyle(r.theme.Subtle)
}

func (r *LayoutsCLIRenderer) leafLabel(n *entity.NodeSnapshot, names map[entity.WindowID]string) string {
	icon := IconWindow
	if n.State == entity.StateFloating {
		icon = IconFloating
	}
	label := n.Window.String()
	if name, ok := names[n.Window]; ok {
		label = fmt.Sprintf("%s (%s)", name, n.Window)
	}
	out := fmt.Sprintf("%s %s  %s",
		r.theme.Highlight.Render(icon),
		r.theme.Normal.Render(label),
		r.theme.Subtle.Render(n.Rect.String()),
	)
	if n.State != entity.StateNormal {
		out += " " + r.theme.MutedBadge(n.State.String())
	}
	return out
}

func (r *LayoutsCLIRenderer) RenderSaved(snap *entity.LayoutSnapshot) string {
	name := snap.Name
	if name == "" {
		name = "(autosave)"
	}
	return fmt.Sprintf("%s Saved layout %s as %s (%d windows)",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(name),
		r.theme.Subtle.Render(ShortID(snap.ID)),
		snap.WindowCount(),
	)
}

func (r *LayoutsCLIRenderer) RenderRestored(snap *entity.LayoutSnapshot) string {
	return fmt.Sprintf("%s Restored layout %s across %d desktops",
		r.theme.SuccessStyle.Render(IconRestore),
		r.theme.Highlight.Render(ShortID(snap.ID)),
		len(snap.Desktops),
	)
}

func (r *LayoutsCLIRenderer) RenderDeleted(id entity.SnapshotID) string {
	return fmt.Sprintf("%s Deleted layout %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(ShortID(id)),
	)
}

func (r *LayoutsCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %s",
		r.theme.ErrorStyle.Render(IconX),
		r.theme.ErrorStyle.Render(err.Error()),
	)
}

// ShortID truncates a snapshot ID for display.
func ShortID(id entity.SnapshotID) string {
	s := string(id)
	if len(s) > shortIDLen {
		return s[:shortIDLen]
	}
	return s
}

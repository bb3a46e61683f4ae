// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/bsptile/internal/cli/styles"
	"github.com/bnema/bsptile/internal/domain/entity"
	"github.com/bnema/bsptile/internal/logging"
)

// LayoutStore is the part of the snapshot use case the browser needs.
type LayoutStore interface {
	List(ctx context.Context) ([]*entity.LayoutSnapshot, error)
	Delete(ctx context.Context, id entity.SnapshotID) error
}

// LayoutsModel is the Bubble Tea model for the interactive layout browser.
type LayoutsModel struct {
	// UI components
	help     help.Model
	keys     styles.LayoutsKeyMap
	confirm  *styles.ConfirmModel
	renderer *styles.LayoutsCLIRenderer

	// State
	layouts       []*entity.LayoutSnapshot
	selectedIdx   int
	expandedIdx   int // -1 means none expanded
	width         int
	height        int
	err           error
	statusMessage string

	ctx   context.Context
	store LayoutStore
	theme *styles.Theme
}

// NewLayoutsModel creates a new layout browser model.
func NewLayoutsModel(ctx context.Context, theme *styles.Theme, store LayoutStore) LayoutsModel {
	return LayoutsModel{
		help:        styles.NewStyledHelp(theme),
		keys:        styles.DefaultLayoutsKeyMap(),
		renderer:    styles.NewLayoutsCLIRenderer(theme),
		expandedIdx: -1,
		width:       80,
		height:      24,
		ctx:         ctx,
		store:       store,
		theme:       theme,
	}
}

// Init implements tea.Model.
func (m LayoutsModel) Init() tea.Cmd {
	return m.loadLayouts
}

type layoutsLoadedMsg struct {
	layouts []*entity.LayoutSnapshot
	err     error
}

type layoutDeletedMsg struct {
	id  entity.SnapshotID
	err error
}

func (m LayoutsModel) loadLayouts() tea.Msg {
	log := logging.FromContext(m.ctx)
	if m.store == nil {
		return layoutsLoadedMsg{err: fmt.Errorf("layout storage not available")}
	}

	layouts, err := m.store.List(m.ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load layouts")
		return layoutsLoadedMsg{err: err}
	}
	log.Debug().Int("count", len(layouts)).Msg("loaded layouts")
	return layoutsLoadedMsg{layouts: layouts}
}

// Update implements tea.Model.
func (m LayoutsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m.handleConfirmModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case layoutsLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.layouts = msg.layouts
			m.selectedIdx = min(m.selectedIdx, max(len(m.layouts)-1, 0))
			if m.expandedIdx >= len(m.layouts) {
				m.expandedIdx = -1
			}
		}
		return m, nil

	case layoutDeletedMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.statusMessage = fmt.Sprintf("Layout %s deleted", styles.ShortID(msg.id))
		m.expandedIdx = -1
		return m, m.loadLayouts
	}

	return m, nil
}

func (m LayoutsModel) handleConfirmModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if !m.confirm.Done() {
		return m, cmd
	}
	if m.confirm.Result() {
		if s := m.selected(); s != nil {
			cmd = m.deleteLayout(s.ID)
		}
	}
	m.confirm = nil
	return m, cmd
}

func (m LayoutsModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selectedIdx < len(m.layouts)-1 {
			m.selectedIdx++
		}

	case key.Matches(msg, m.keys.Expand):
		if m.expandedIdx == m.selectedIdx {
			m.expandedIdx = -1
		} else if m.selected() != nil {
			m.expandedIdx = m.selectedIdx
		}

	case key.Matches(msg, m.keys.Delete):
		if s := m.selected(); s != nil {
			confirm := styles.NewConfirm(m.theme, fmt.Sprintf("Delete layout %s?", styles.ShortID(s.ID)))
			m.confirm = &confirm
		}

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadLayouts

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m LayoutsModel) selected() *entity.LayoutSnapshot {
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.layouts) {
		return nil
	}
	return m.layouts[m.selectedIdx]
}

func (m LayoutsModel) deleteLayout(id entity.SnapshotID) tea.Cmd {
	return func() tea.Msg {
		logging.FromContext(m.ctx).Info().Str("layout_id", string(id)).Msg("deleting layout")
		return layoutDeletedMsg{id: id, err: m.store.Delete(m.ctx, id)}
	}
}

// View implements tea.Model.
func (m LayoutsModel) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}

	t := m.theme
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(t.ErrorStyle.Render(fmt.Sprintf("%s Error: %v", styles.IconX, m.err)))
		b.WriteString("\n\n")
	}
	if m.statusMessage != "" {
		b.WriteString(t.Subtle.Render(m.statusMessage))
		b.WriteString("\n\n")
	}

	if len(m.layouts) == 0 {
		b.WriteString(t.Subtle.Render("  No saved layouts found."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderList())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m LayoutsModel) renderHeader() string {
	t := m.theme
	icon := lipgloss.NewStyle().Foreground(t.Accent).Render(styles.IconLayout)
	title := t.Title.MarginLeft(1).Render("Layouts")

	var named int
	for _, s := range m.layouts {
		if s.Name != "" {
			named++
		}
	}
	stats := t.Subtle.Render(fmt.Sprintf("  %d named  %d autosaved", named, len(m.layouts)-named))
	return icon + title + stats
}

func (m LayoutsModel) renderList() string {
	var b strings.Builder
	for i, s := range m.layouts {
		b.WriteString(m.renderRow(s, i == m.selectedIdx, i == m.expandedIdx))
		b.WriteString("\n")
		if i == m.expandedIdx {
			b.WriteString(m.renderDetails(s))
		}
	}
	return b.String()
}

func (m LayoutsModel) renderRow(s *entity.LayoutSnapshot, isSelected, isExpanded bool) string {
	t := m.theme

	cursor := "  "
	if isSelected {
		cursor = t.Highlight.Render(styles.IconCursor + " ")
	}

	idStyle := t.Normal
	if isSelected {
		idStyle = t.Highlight
	}

	label := t.BadgeMuted.Render("autosave")
	if s.Name != "" {
		label = t.Badge.Render(s.Name)
	}

	expandIcon := styles.IconExpand
	if isExpanded {
		expandIcon = styles.IconCollapse
	}

	counts := t.Subtle.Render(fmt.Sprintf("%s %d  %s %d",
		styles.IconDesktop, len(s.Desktops),
		styles.IconWindow, s.WindowCount(),
	))
	saved := t.Subtle.Render(fmt.Sprintf("%s %s", styles.IconClock, styles.RelativeTime(s.SavedAt)))

	return fmt.Sprintf("%s%s %s  %s  %s  %s",
		cursor,
		idStyle.Render(styles.ShortID(s.ID)),
		label,
		t.Subtle.Render(expandIcon),
		counts,
		saved,
	)
}

func (m LayoutsModel) renderDetails(s *entity.LayoutSnapshot) string {
	var b strings.Builder
	for i := range s.Desktops {
		if s.Desktops[i].Root == nil {
			continue
		}
		tree := m.renderer.DesktopTree(&s.Desktops[i], nil).String()
		for _, line := range strings.Split(tree, "\n") {
			b.WriteString("      ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

var _ tea.Model = (*LayoutsModel)(nil)

package styles

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/bsptile/internal/application/usecase"
	"github.com/bnema/bsptile/internal/domain/entity"
)

// SimulateRenderer renders `bsptile simulate` progress and results.
type SimulateRenderer struct {
	theme *Theme
}

func NewSimulateRenderer(theme *Theme) *SimulateRenderer {
	return &SimulateRenderer{theme: theme}
}

func (r *SimulateRenderer) RenderHeader(sc *entity.Scenario) string {
	return fmt.Sprintf("%s %s  %s %s",
		r.theme.Highlight.Render(IconLayout),
		r.theme.Title.Render(sc.Name),
		r.theme.MutedBadge(fmt.Sprintf("%d steps", len(sc.Steps))),
		r.theme.Subtle.Render(fmt.Sprintf("%dx%d", sc.Screen.Width, sc.Screen.Height)),
	)
}

// RenderStep renders a single progress line.
func (r *SimulateRenderer) RenderStep(s usecase.StepResult) string {
	return fmt.Sprintf("%s %s  %s  %s",
		r.theme.Subtle.Render(fmt.Sprintf("%3d", s.Index)),
		r.theme.Normal.Render(s.Step.String()),
		r.theme.Subtle.Render(fmt.Sprintf("desktop %d", s.Desktop+1)),
		r.theme.Subtle.Render(fmt.Sprintf("%d/%d windows", s.Count, s.Total)),
	)
}

// RenderWindows renders the final placement of every scenario window,
// in the order the windows were first mentioned.
func (r *SimulateRenderer) RenderWindows(out *usecase.RunScenarioOutput) string {
	wins := make([]entity.WindowID, 0, len(out.Names))
	for w := range out.Names {
		wins = append(wins, w)
	}
	slices.Sort(wins)

	rows := make([][]string, 0, len(wins))
	for _, w := range wins {
		d, id := out.Set.Locate(w)
		if d == nil {
			rows = append(rows, []string{out.Names[w], w.String(), "-", "unmapped", "-"})
			continue
		}
		state := entity.StateNormal
		if c := out.Set.Arena.Client(id); c != nil {
			state = c.State
		}
		rows = append(rows, []string{
			out.Names[w],
			w.String(),
			d.Name,
			state.String(),
			out.Set.Arena.Rect(id).String(),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.theme.Subtle).
		Headers("WINDOW", "ID", "DESKTOP", "STATE", "RECT").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return r.theme.Title.Padding(0, 1)
			case col == 0:
				return r.theme.Highlight.Padding(0, 1)
			default:
				return r.theme.Normal.Padding(0, 1)
			}
		})
	return t.String()
}

func (r *SimulateRenderer) RenderPassed(out *usecase.RunScenarioOutput) string {
	return fmt.Sprintf("%s %s steps passed, %s windows managed",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(strconv.Itoa(out.Steps)),
		r.theme.Highlight.Render(strconv.Itoa(out.Set.Total())),
	)
}

func (r *SimulateRenderer) RenderFailed(err error) string {
	var b strings.Builder
	b.WriteString(r.theme.ErrorStyle.Render(IconX + " scenario failed"))
	b.WriteString("\n  ")
	b.WriteString(r.theme.ErrorStyle.Render(err.Error()))
	return b.String()
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/bsptile/internal/application/port"
	"github.com/bnema/bsptile/internal/domain/bsp"
	"github.com/bnema/bsptile/internal/domain/entity"
	"github.com/bnema/bsptile/internal/logging"
)

// ErrExpectationFailed is returned when an expect step does not hold.
var ErrExpectationFailed = errors.New("expectation failed")

// firstScenarioWindow is the id given to the first window a scenario names.
const firstScenarioWindow entity.WindowID = 0x400001

// RunScenarioUseCase replays a scripted window session against a fresh
// desktop set, driving the same use cases as a live session.
type RunScenarioUseCase struct {
	display port.Display
	placer  port.Placer
	opts    bsp.Options
}

// NewRunScenarioUseCase creates a new RunScenarioUseCase.
func NewRunScenarioUseCase(display port.Display, placer port.Placer, opts bsp.Options) *RunScenarioUseCase {
	return &RunScenarioUseCase{display: display, placer: placer, opts: opts}
}

// RunScenarioInput contains parameters for a replay.
type RunScenarioInput struct {
	Scenario *entity.Scenario
	// Check validates every desktop tree after each step.
	Check bool
	// OnStep, when set, is called after each successful step.
	OnStep func(StepResult)
}

// StepResult describes the state after one step.
type StepResult struct {
	Index   int // 1-based
	Step    entity.ScenarioStep
	Window  entity.WindowID
	Desktop int // focused desktop after the step
	Count   int // clients on the focused desktop
	Total   int // clients on all desktops
	// Set is the live desktop set. It must not be retained past the callback.
	Set     *bsp.DesktopSet
}

// RunScenarioOutput holds the final desktop set and the window ids given
// to the scenario's window names.
type RunScenarioOutput struct {
	Set     *bsp.DesktopSet
	Windows map[string]entity.WindowID
	Names   map[entity.WindowID]string
	Steps   int
}

// Execute runs every step in order and stops at the first failure.
// Errors are prefixed with the step number and the step itself.
func (uc *RunScenarioUseCase) Execute(ctx context.Context, input RunScenarioInput) (*RunScenarioOutput, error) {
	sc := input.Scenario
	if sc == nil {
		return nil, fmt.Errorf("scenario required")
	}
	ctx = logging.WithScenario(ctx, sc.Name)
	log := logging.FromContext(ctx)

	names := make([]string, max(sc.Desktops.Count, len(sc.Desktops.Names), 1))
	copy(names, sc.Desktops.Names)
	set := bsp.NewDesktopSet(bsp.NewArena(uc.opts), names, sc.Desktops.Layout)

	r := &scenarioRun{
		set:    set,
		render: NewRenderDesktopUseCase(uc.placer),
		out: &RunScenarioOutput{
			Set:     set,
			Windows: map[string]entity.WindowID{},
			Names:   map[entity.WindowID]string{},
		},
		next: firstScenarioWindow,
	}
	r.windows = NewManageWindowsUseCase(set, uc.display, r.render)
	r.layout = NewApplyLayoutUseCase(set, uc.display, r.render)
	r.resize = NewResizeWindowUseCase(set, uc.display, r.render)
	r.transfer = NewTransferWindowUseCase(set, uc.display, uc.placer, r.render)
	r.switcher = NewSwitchDesktopUseCase(set, uc.display, r.render)

	log.Info().Int("steps", len(sc.Steps)).Int("desktops", len(set.Desktops)).Msg("running scenario")

	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return r.out, err
		}
		win, err := r.apply(ctx, step)
		if err == nil && input.Check {
			err = validateAll(set)
		}
		if err != nil {
			return r.out, fmt.Errorf("step %d (%s): %w", i+1, step, err)
		}
		r.out.Steps++

		if input.OnStep != nil {
			focused := set.Focused()
			input.OnStep(StepResult{
				Index:   i + 1,
				Step:    step,
				Window:  win,
				Desktop: focused.Index,
				Count:   focused.Count,
				Total:   set.Total(),
				Set:     set,
			})
		}
	}

	log.Info().Int("steps", r.out.Steps).Int("clients", set.Total()).Msg("scenario finished")
	return r.out, nil
}

type scenarioRun struct {
	set      *bsp.DesktopSet
	render   *RenderDesktopUseCase
	windows  *ManageWindowsUseCase
	layout   *ApplyLayoutUseCase
	resize   *ResizeWindowUseCase
	transfer *TransferWindowUseCase
	switcher *SwitchDesktopUseCase
	out      *RunScenarioOutput
	next     entity.WindowID
}

// windowID returns the id of a named window, allocating one on first use.
func (r *scenarioRun) windowID(name string) entity.WindowID {
	if name == "" {
		return entity.NoWindow
	}
	if id, ok := r.out.Windows[name]; ok {
		return id
	}
	id := r.next
	r.next++
	r.out.Windows[name] = id
	r.out.Names[id] = name
	return id
}

func (r *scenarioRun) desktop(step entity.ScenarioStep) int {
	if step.Desktop == nil {
		return FocusedDesktop
	}
	return *step.Desktop
}

func (r *scenarioRun) apply(ctx context.Context, step entity.ScenarioStep) (entity.WindowID, error) {
	win := r.windowID(step.Window)

	switch step.Op {
	case entity.OpMap:
		state, err := entity.ParseClientState(step.State)
		if err != nil {
			return win, err
		}
		_, err = r.windows.Map(ctx, MapWindowInput{Window: win, State: state})
		return win, err
	case entity.OpUnmap:
		_, err := r.windows.Unmap(ctx, win)
		return win, err
	case entity.OpFocus:
		return win, r.windows.Focus(ctx, win)
	case entity.OpFloat:
		return win, r.windows.ToggleFloating(ctx, win)
	case entity.OpLayout:
		mode, err := entity.ParseLayoutMode(step.Layout)
		if err != nil {
			return win, err
		}
		return win, r.layout.Execute(ctx, ApplyLayoutInput{Desktop: r.desktop(step), Mode: mode, Master: win})
	case entity.OpResize:
		kind, err := entity.ParseResizeKind(step.Resize)
		if err != nil {
			return win, err
		}
		out, err := r.resize.Execute(ctx, ResizeWindowInput{Kind: kind, Window: win})
		if err != nil {
			return win, err
		}
		return out.Window, nil
	case entity.OpTransfer:
		_, err := r.transfer.Execute(ctx, TransferWindowInput{Window: win, Desktop: r.desktop(step)})
		return win, err
	case entity.OpSwitch:
		return win, r.switcher.Execute(ctx, r.desktop(step))
	case entity.OpExpect:
		return win, r.expect(step, win)
	default:
		return win, fmt.Errorf("unknown op %q", step.Op)
	}
}

func (r *scenarioRun) expect(step entity.ScenarioStep, win entity.WindowID) error {
	if step.Count != nil {
		d, err := resolveDesktop(r.set, r.desktop(step))
		if err != nil {
			return err
		}
		if d.Count != *step.Count {
			return fmt.Errorf("%w: desktop %d has %d clients, want %d", ErrExpectationFailed, d.Index, d.Count, *step.Count)
		}
	}
	want, ok := step.ExpectedRect()
	if !ok {
		return nil
	}
	d, id := r.set.Locate(win)
	if d == nil {
		return fmt.Errorf("%w: %s is not managed", ErrExpectationFailed, step.Window)
	}
	if got := r.set.Arena.Rect(id); got != want {
		return fmt.Errorf("%w: %s is at %s, want %s", ErrExpectationFailed, step.Window, got, want)
	}
	return nil
}

func validateAll(set *bsp.DesktopSet) error {
	for _, d := range set.Desktops {
		if err := set.Arena.Validate(d); err != nil {
			return fmt.Errorf("desktop %d: %w", d.Index, err)
		}
	}
	return nil
}

package styles_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bsptile/internal/application/usecase"
	"github.com/bnema/bsptile/internal/cli/styles"
	"github.com/bnema/bsptile/internal/domain/bsp"
	"github.com/bnema/bsptile/internal/domain/entity"
	"github.com/bnema/bsptile/internal/infrastructure/sim"
)

func TestSimulateRenderer(t *testing.T) {
	sc := &entity.Scenario{
		Name:     "render",
		Screen:   entity.Screen{Width: 1920, Height: 1080},
		Desktops: entity.ScenarioDesktops{Count: 2},
		Steps: []entity.ScenarioStep{
			{Op: entity.OpMap, Window: "term"},
			{Op: entity.OpMap, Window: "editor"},
			{Op: entity.OpMap, Window: "gone"},
			{Op: entity.OpUnmap, Window: "gone"},
		},
	}
	server := sim.NewServer(sc.Screen)
	var steps []usecase.StepResult
	out, err := usecase.NewRunScenarioUseCase(server, server, bsp.DefaultOptions()).
		Execute(context.Background(), usecase.RunScenarioInput{
			Scenario: sc,
			OnStep:   func(s usecase.StepResult) { steps = append(steps, s) },
		})
	require.NoError(t, err)
	require.Len(t, steps, 4)

	r := styles.NewSimulateRenderer(styles.NewTheme())

	assert.Contains(t, r.RenderHeader(sc), "4 steps")
	assert.Contains(t, r.RenderStep(steps[1]), "map editor")
	assert.Contains(t, r.RenderStep(steps[1]), "2/2 windows")

	table := r.RenderWindows(out)
	assert.Contains(t, table, "term")
	assert.Contains(t, table, "0x400002")
	assert.Contains(t, table, "{10,10,945,1060}")
	assert.Contains(t, table, "unmapped")

	assert.Contains(t, r.RenderPassed(out), "windows managed")
	assert.Contains(t, r.RenderFailed(errors.New("step 3 (expect a): expectation failed")), "step 3")
}

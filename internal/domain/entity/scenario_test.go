package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestScenarioValidate(t *testing.T) {
	valid := Scenario{
		Screen: Screen{Width: 1920, Height: 1080},
		Steps: []ScenarioStep{
			{Op: OpMap, Window: "term"},
			{Op: OpMap, Window: "dialog", State: "floating"},
			{Op: OpLayout, Layout: "grid"},
			{Op: OpResize, Resize: "shrink"},
			{Op: OpTransfer, Window: "term", Desktop: intPtr(1)},
			{Op: OpSwitch, Desktop: intPtr(1)},
			{Op: OpExpect, Window: "term", Rect: []int{10, 10, 1900, 1060}},
			{Op: OpExpect, Count: intPtr(1)},
		},
	}
	require.NoError(t, valid.Validate())

	invalid := Scenario{
		Steps: []ScenarioStep{
			{Op: OpMap},
			{Op: OpMap, Window: "x", State: "minimized"},
			{Op: OpLayout, Layout: "spiral"},
			{Op: OpTransfer, Window: "x"},
			{Op: OpExpect, Window: "x", Rect: []int{1, 2}},
			{Op: "teleport"},
		},
	}
	err := invalid.Validate()
	require.Error(t, err)
	for _, want := range []string{"screen", "step 1", "step 2", "step 3", "step 4", "step 5", "step 6"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestScenarioStep_ExpectedRect(t *testing.T) {
	r, ok := ScenarioStep{Rect: []int{10, 37, 945, 1033}}.ExpectedRect()
	assert.True(t, ok)
	assert.Equal(t, Rectangle{X: 10, Y: 37, Width: 945, Height: 1033}, r)

	_, ok = ScenarioStep{}.ExpectedRect()
	assert.False(t, ok)
}

func TestScenarioStep_String(t *testing.T) {
	assert.Equal(t, "transfer term desktop=2", ScenarioStep{Op: OpTransfer, Window: "term", Desktop: intPtr(2)}.String())
}

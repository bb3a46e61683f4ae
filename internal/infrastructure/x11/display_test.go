package x11

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/bsptile/internal/domain/entity"
)

func TestBarHeight(t *testing.T) {
	tests := []struct {
		name  string
		docks []entity.Rectangle
		want  uint16
	}{
		{name: "no docks", want: 0},
		{name: "top bar", docks: []entity.Rectangle{{Width: 1920, Height: 27}}, want: 27},
		{
			name:  "bottom bar ignored",
			docks: []entity.Rectangle{{Y: 1053, Width: 1920, Height: 27}},
			want:  0,
		},
		{
			name:  "side panel ignored",
			docks: []entity.Rectangle{{Width: 48, Height: 1080}},
			want:  0,
		},
		{
			name:  "tallest top dock wins",
			docks: []entity.Rectangle{{Width: 1920, Height: 20}, {X: 1800, Width: 120, Height: 32}},
			want:  32,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, barHeight(tt.docks, 1080))
		})
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, entity.StateNormal, classify(nil, false))
	assert.Equal(t, entity.StateNormal, classify([]string{"_NET_WM_WINDOW_TYPE_NORMAL"}, false))
	assert.Equal(t, entity.StateFloating, classify([]string{"_NET_WM_WINDOW_TYPE_DIALOG"}, false))
	assert.Equal(t, entity.StateFloating, classify(nil, true))
}

func TestGeometryValues(t *testing.T) {
	mask, values := geometryValues(entity.Rectangle{X: -5, Y: 10, Width: 0, Height: 300})

	assert.Equal(t, uint16(0x0f), mask)
	assert.Equal(t, []uint32{0xfffffffb, 10, 1, 300}, values)
}

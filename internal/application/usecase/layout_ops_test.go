package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bsptile/internal/application/port/mocks"
	"github.com/bnema/bsptile/internal/application/usecase"
	"github.com/bnema/bsptile/internal/domain/bsp"
	"github.com/bnema/bsptile/internal/domain/entity"
)

func TestApplyLayoutUseCase_Execute(t *testing.T) {
	t.Run("stack on the visible desktop renders every client full size", func(t *testing.T) {
		set := newTestSet(2)
		seed(t, set, 0, winA, winB)
		placer := mocks.NewMockPlacer(t)
		display := mocks.NewMockDisplay(t)
		display.EXPECT().Screen(mock.Anything).Return(testScreen, nil)
		placer.EXPECT().Tile(mock.Anything, winA, fullArea).Return(nil).Once()
		placer.EXPECT().Tile(mock.Anything, winB, fullArea).Return(nil).Once()
		mock.InOrder(
			placer.EXPECT().Raise(mock.Anything, winA).Return(nil).Call,
			placer.EXPECT().Raise(mock.Anything, winB).Return(nil).Call,
		)

		uc := usecase.NewApplyLayoutUseCase(set, display, usecase.NewRenderDesktopUseCase(placer))
		err := uc.Execute(testContext(), usecase.ApplyLayoutInput{Desktop: usecase.FocusedDesktop, Mode: entity.LayoutStack})
		require.NoError(t, err)
		assert.Equal(t, entity.LayoutStack, set.Focused().Layout)
	})

	t.Run("hidden desktop is laid out but not rendered", func(t *testing.T) {
		set := newTestSet(2)
		d := seed(t, set, 1, winA, winB)
		display := mocks.NewMockDisplay(t)
		display.EXPECT().Screen(mock.Anything).Return(testScreen, nil)

		uc := usecase.NewApplyLayoutUseCase(set, display, usecase.NewRenderDesktopUseCase(mocks.NewMockPlacer(t)))
		err := uc.Execute(testContext(), usecase.ApplyLayoutInput{Desktop: 1, Mode: entity.LayoutMaster, Master: winB})
		require.NoError(t, err)
		assert.Equal(t, entity.LayoutMaster, d.Layout)
		master := set.Arena.Rect(set.Arena.FindNode(d.Root, winB))
		column := set.Arena.Rect(set.Arena.FindNode(d.Root, winA))
		assert.Equal(t, int16(10), master.X)
		assert.Greater(t, master.Width, column.Width)
		assert.Greater(t, column.X, master.X)
	})

	t.Run("unknown mode", func(t *testing.T) {
		set := newTestSet(1)
		seed(t, set, 0, winA)
		display := mocks.NewMockDisplay(t)
		display.EXPECT().Screen(mock.Anything).Return(testScreen, nil)

		uc := usecase.NewApplyLayoutUseCase(set, display, usecase.NewRenderDesktopUseCase(mocks.NewMockPlacer(t)))
		err := uc.Execute(testContext(), usecase.ApplyLayoutInput{Mode: entity.LayoutMode(9)})
		assert.Error(t, err)
	})

	t.Run("unknown desktop", func(t *testing.T) {
		set := newTestSet(1)
		uc := usecase.NewApplyLayoutUseCase(set, mocks.NewMockDisplay(t), usecase.NewRenderDesktopUseCase(mocks.NewMockPlacer(t)))
		err := uc.Execute(testContext(), usecase.ApplyLayoutInput{Desktop: 4, Mode: entity.LayoutGrid})
		assert.ErrorIs(t, err, bsp.ErrNoDesktop)
	})
}

func TestResizeWindowUseCase_Execute(t *testing.T) {
	newUC := func(t *testing.T, set *bsp.DesktopSet, display *mocks.MockDisplay) *usecase.ResizeWindowUseCase {
		placer := mocks.NewMockPlacer(t)
		placer.EXPECT().Tile(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
		placer.EXPECT().Lower(mock.Anything, mock.Anything).Return(nil).Maybe()
		return usecase.NewResizeWindowUseCase(set, display, usecase.NewRenderDesktopUseCase(placer))
	}

	t.Run("focused client grows", func(t *testing.T) {
		set := newTestSet(1)
		d := seed(t, set, 0, winA, winB)
		set.Arena.SetFocused(set.Arena.FindNode(d.Root, winA), true)

		out, err := newUC(t, set, mocks.NewMockDisplay(t)).Execute(testContext(), usecase.ResizeWindowInput{Kind: entity.ResizeGrow})
		require.NoError(t, err)
		assert.Equal(t, winA, out.Window)
		assert.Equal(t, entity.Rectangle{X: 10, Y: 10, Width: 950, Height: 1060}, out.Rect)
	})

	t.Run("falls back to the window under the pointer", func(t *testing.T) {
		set := newTestSet(1)
		seed(t, set, 0, winA, winB)
		display := mocks.NewMockDisplay(t)
		display.EXPECT().WindowUnderPointer(mock.Anything).Return(winB, nil)

		out, err := newUC(t, set, display).Execute(testContext(), usecase.ResizeWindowInput{Kind: entity.ResizeGrow})
		require.NoError(t, err)
		assert.Equal(t, entity.Rectangle{X: 960, Y: 10, Width: 950, Height: 1060}, out.Rect)
	})

	t.Run("pointer over an unmanaged window", func(t *testing.T) {
		set := newTestSet(1)
		seed(t, set, 0, winA, winB)
		display := mocks.NewMockDisplay(t)
		display.EXPECT().WindowUnderPointer(mock.Anything).Return(entity.NoWindow, nil)

		_, err := newUC(t, set, display).Execute(testContext(), usecase.ResizeWindowInput{Kind: entity.ResizeShrink})
		assert.ErrorIs(t, err, bsp.ErrNotFound)
	})

	t.Run("empty desktop", func(t *testing.T) {
		_, err := newUC(t, newTestSet(1), mocks.NewMockDisplay(t)).Execute(testContext(), usecase.ResizeWindowInput{})
		assert.ErrorIs(t, err, bsp.ErrEmptyDesktop)
	})

	t.Run("non default layout", func(t *testing.T) {
		set := newTestSet(1)
		seed(t, set, 0, winA, winB)
		set.Focused().Layout = entity.LayoutGrid

		_, err := newUC(t, set, mocks.NewMockDisplay(t)).Execute(testContext(), usecase.ResizeWindowInput{Window: winA})
		assert.ErrorIs(t, err, usecase.ErrLayoutNotResizable)
	})

	t.Run("sole window", func(t *testing.T) {
		set := newTestSet(1)
		seed(t, set, 0, winA)

		_, err := newUC(t, set, mocks.NewMockDisplay(t)).Execute(testContext(), usecase.ResizeWindowInput{Window: winA})
		assert.ErrorIs(t, err, bsp.ErrNothingToResize)
	})
}

func TestTransferWindowUseCase_Execute(t *testing.T) {
	t.Run("leaving the visible desktop hides the window", func(t *testing.T) {
		set := newTestSet(2)
		seed(t, set, 0, winA, winB)
		placer := mocks.NewMockPlacer(t)
		display := mocks.NewMockDisplay(t)
		display.EXPECT().Screen(mock.Anything).Return(testScreen, nil)
		mock.InOrder(
			placer.EXPECT().Hide(mock.Anything, winB).Return(nil).Call,
			placer.EXPECT().Tile(mock.Anything, winA, fullArea).Return(nil).Call,
			placer.EXPECT().Lower(mock.Anything, winA).Return(nil).Call,
		)

		uc := usecase.NewTransferWindowUseCase(set, display, placer, usecase.NewRenderDesktopUseCase(placer))
		out, err := uc.Execute(testContext(), usecase.TransferWindowInput{Window: winB, Desktop: 1})
		require.NoError(t, err)
		assert.Equal(t, usecase.TransferWindowOutput{From: 0, To: 1, Moved: true}, *out)
		assert.Equal(t, 1, set.Desktops[0].Count)
		assert.Equal(t, 1, set.Desktops[1].Count)
		assert.Equal(t, fullArea, set.Arena.Rect(set.Desktops[1].Root))
	})

	t.Run("arriving on the visible desktop shows the window", func(t *testing.T) {
		set := newTestSet(2)
		seed(t, set, 0, winA)
		seed(t, set, 1, winB)
		placer := mocks.NewMockPlacer(t)
		display := mocks.NewMockDisplay(t)
		display.EXPECT().Screen(mock.Anything).Return(testScreen, nil)
		mock.InOrder(
			placer.EXPECT().Show(mock.Anything, winB).Return(nil).Call,
			placer.EXPECT().Tile(mock.Anything, winA, leftHalf).Return(nil).Call,
			placer.EXPECT().Lower(mock.Anything, winA).Return(nil).Call,
			placer.EXPECT().Tile(mock.Anything, winB, rightHalf).Return(nil).Call,
			placer.EXPECT().Lower(mock.Anything, winB).Return(nil).Call,
		)

		uc := usecase.NewTransferWindowUseCase(set, display, placer, usecase.NewRenderDesktopUseCase(placer))
		_, err := uc.Execute(testContext(), usecase.TransferWindowInput{Window: winB, Desktop: usecase.FocusedDesktop})
		require.NoError(t, err)
		assert.True(t, set.Desktops[1].Empty())
	})

	t.Run("same desktop is a no-op", func(t *testing.T) {
		set := newTestSet(2)
		seed(t, set, 0, winA)
		uc := usecase.NewTransferWindowUseCase(set, mocks.NewMockDisplay(t), mocks.NewMockPlacer(t), nil)

		out, err := uc.Execute(testContext(), usecase.TransferWindowInput{Window: winA, Desktop: 0})
		require.NoError(t, err)
		assert.False(t, out.Moved)
	})

	t.Run("hide failure keeps the window in place", func(t *testing.T) {
		set := newTestSet(2)
		seed(t, set, 0, winA)
		placer := mocks.NewMockPlacer(t)
		display := mocks.NewMockDisplay(t)
		display.EXPECT().Screen(mock.Anything).Return(testScreen, nil)
		placer.EXPECT().Hide(mock.Anything, winA).Return(errors.New("BadWindow"))

		uc := usecase.NewTransferWindowUseCase(set, display, placer, usecase.NewRenderDesktopUseCase(placer))
		_, err := uc.Execute(testContext(), usecase.TransferWindowInput{Window: winA, Desktop: 1})
		require.Error(t, err)
		assert.Equal(t, 1, set.Desktops[0].Count)
	})

	t.Run("unknown window and desktop", func(t *testing.T) {
		set := newTestSet(2)
		seed(t, set, 0, winA)
		uc := usecase.NewTransferWindowUseCase(set, mocks.NewMockDisplay(t), mocks.NewMockPlacer(t), nil)

		_, err := uc.Execute(testContext(), usecase.TransferWindowInput{Window: winC, Desktop: 1})
		assert.ErrorIs(t, err, bsp.ErrNotFound)
		_, err = uc.Execute(testContext(), usecase.TransferWindowInput{Window: winA, Desktop: 5})
		assert.ErrorIs(t, err, bsp.ErrNoDesktop)
	})
}

func TestSwitchDesktopUseCase_Execute(t *testing.T) {
	set := newTestSet(3)
	seed(t, set, 0, winA)
	seed(t, set, 1, winB)
	placer := mocks.NewMockPlacer(t)
	display := mocks.NewMockDisplay(t)
	display.EXPECT().Screen(mock.Anything).Return(testScreen, nil).Once()
	mock.InOrder(
		placer.EXPECT().Hide(mock.Anything, winA).Return(nil).Call,
		placer.EXPECT().Show(mock.Anything, winB).Return(nil).Call,
		placer.EXPECT().Tile(mock.Anything, winB, fullArea).Return(nil).Call,
		placer.EXPECT().Lower(mock.Anything, winB).Return(nil).Call,
		placer.EXPECT().Hide(mock.Anything, winB).Return(nil).Call,
	)
	uc := usecase.NewSwitchDesktopUseCase(set, display, usecase.NewRenderDesktopUseCase(placer))

	require.NoError(t, uc.Execute(testContext(), 1))
	assert.Equal(t, 1, set.Current)

	require.NoError(t, uc.Execute(testContext(), 1))

	// An empty target needs no screen query.
	require.NoError(t, uc.Execute(testContext(), 2))
	assert.Equal(t, 2, set.Current)

	assert.ErrorIs(t, uc.Execute(testContext(), 3), bsp.ErrNoDesktop)
}

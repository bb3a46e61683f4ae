package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bsptile/internal/application/port/mocks"
	"github.com/bnema/bsptile/internal/application/usecase"
	"github.com/bnema/bsptile/internal/domain/entity"
)

func schemaKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "layout.default_mode",
			Type:        "string",
			Default:     "default",
			Description: "Layout applied to new desktops",
			Values:      []string{"default", "master", "stack", "grid"},
			Section:     "Layout",
		},
		{
			Key:         "layout.gap",
			Type:        "int",
			Default:     "10",
			Description: "Gap between windows in pixels",
			Range:       "0-200",
			Section:     "Layout",
		},
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     "info",
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "fatal"},
			Section:     "Logging",
		},
	}
}

func TestGetConfigSchemaUseCase_Execute(t *testing.T) {
	t.Run("returns schema keys from provider", func(t *testing.T) {
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		require.NoError(t, err)
		require.Len(t, result.Keys, 3)
		assert.Equal(t, "layout.default_mode", result.Keys[0].Key)
		assert.Equal(t, "logging.level", result.Keys[2].Key)
	})

	t.Run("filters by section ignoring case", func(t *testing.T) {
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "layout"})

		require.NoError(t, err)
		require.Len(t, result.Keys, 2)
		for _, k := range result.Keys {
			assert.Equal(t, "Layout", k.Section)
		}
	})

	t.Run("unknown section yields no keys", func(t *testing.T) {
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "Appearance"})

		require.NoError(t, err)
		assert.Empty(t, result.Keys)
	})

	t.Run("returns empty slice when no keys", func(t *testing.T) {
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return([]entity.ConfigKeyInfo{})

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		require.NoError(t, err)
		assert.Empty(t, result.Keys)
	})
}

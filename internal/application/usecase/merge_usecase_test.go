package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/internal/application/usecase"
	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/domain/catalog"
	"github.com/jhoicas/cotizador-api/internal/infrastructure/memory"
	"github.com/jhoicas/cotizador-api/pkg/logger"
)

var penKey = catalog.Key("pen", "stationery")

func TestDuplicates_SobrevivientePorPolitica(t *testing.T) {
	uc := usecase.NewMergeUseCase(memory.NewCatalogRepository(catalogFixture()...), logger.Nop())
	ctx := context.Background()

	latest, err := uc.Duplicates(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, string(catalog.KeepLatest), latest.Policy)
	require.Len(t, latest.Groups, 1)
	assert.Equal(t, penKey, latest.Groups[0].Key)
	assert.Equal(t, "pen", latest.Groups[0].Name)
	assert.Equal(t, "stationery", latest.Groups[0].Category)
	assert.Equal(t, "pen-b", latest.Groups[0].SurvivorID)
	assert.Equal(t, 1, latest.DuplicateCount)

	first, err := uc.Duplicates(ctx, string(catalog.KeepFirst))
	require.NoError(t, err)
	assert.Equal(t, "pen-a", first.Groups[0].SurvivorID)

	_, err = uc.Duplicates(ctx, "keep-cheapest")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMerge_EliminaNoSobrevivientes(t *testing.T) {
	repo := memory.NewCatalogRepository(catalogFixture()...)
	uc := usecase.NewMergeUseCase(repo, logger.Nop())
	ctx := context.Background()

	out, err := uc.Merge(ctx, dto.MergeRequest{Policy: string(catalog.KeepHighestPrice), Groups: []string{penKey}})
	require.NoError(t, err)
	assert.Equal(t, []string{"pen-a"}, out.RemovedIDs)
	require.Len(t, out.Survivors, 1)
	assert.Equal(t, "pen-b", out.Survivors[0].ID)
	assert.Equal(t, 2, out.Total)

	items, _ := repo.Load(ctx)
	require.Len(t, items, 2)
	assert.Equal(t, "nota", items[0].ID)
	assert.Equal(t, "pen-b", items[1].ID)

	again, err := uc.Duplicates(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, again.Groups)
}

func TestMerge_ClaveDesconocidaNoHaceNada(t *testing.T) {
	repo := memory.NewCatalogRepository(catalogFixture()...)
	uc := usecase.NewMergeUseCase(repo, logger.Nop())

	out, err := uc.Merge(context.Background(), dto.MergeRequest{Groups: []string{"nope"}})
	require.NoError(t, err)
	assert.Empty(t, out.RemovedIDs)
	assert.NotNil(t, out.RemovedIDs)
	assert.Equal(t, 3, out.Total)
}

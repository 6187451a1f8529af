package usecase

import (
	"context"

	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/internal/domain/catalog"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
	"github.com/jhoicas/cotizador-api/pkg/logger"
)

// MergeUseCase detección y fusión de productos duplicados.
type MergeUseCase struct {
	repo repository.CatalogRepository
	log  *logger.Logger
}

// NewMergeUseCase construye el caso de uso.
func NewMergeUseCase(repo repository.CatalogRepository, log *logger.Logger) *MergeUseCase {
	return &MergeUseCase{repo: repo, log: log}
}

// Duplicates lista los grupos con más de un producto y el sobreviviente según la política.
func (uc *MergeUseCase) Duplicates(ctx context.Context, policyName string) (*dto.DuplicatesResponse, error) {
	policy, err := catalog.ParseMergePolicy(policyName)
	if err != nil {
		return nil, err
	}
	items, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	groups := catalog.FindDuplicates(items)
	out := &dto.DuplicatesResponse{
		Policy: string(policy),
		Groups: make([]dto.DuplicateGroupResponse, 0, len(groups)),
	}
	for _, g := range groups {
		survivor, _ := policy.Survivor(g.Items)
		out.Groups = append(out.Groups, dto.DuplicateGroupResponse{
			Key:        g.Key,
			Name:       g.Name,
			Category:   g.Category,
			SurvivorID: survivor.ID,
			Items:      toCatalogItemResponses(g.Items),
		})
		out.DuplicateCount += len(g.Items) - 1
	}
	return out, nil
}

// Merge fusiona los grupos seleccionados. Claves desconocidas se ignoran.
func (uc *MergeUseCase) Merge(ctx context.Context, in dto.MergeRequest) (*dto.MergeResponse, error) {
	policy, err := catalog.ParseMergePolicy(in.Policy)
	if err != nil {
		return nil, err
	}
	items, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	res := catalog.Merge(items, in.Groups, policy)
	if len(res.RemovedIDs) > 0 {
		if err := uc.repo.Save(ctx, res.Items); err != nil {
			return nil, err
		}
	}

	uc.log.Info().
		Str("policy", string(policy)).
		Int("groups", len(res.Survivors)).
		Int("removed", len(res.RemovedIDs)).
		Msg("duplicados fusionados")

	removed := res.RemovedIDs
	if removed == nil {
		removed = []string{}
	}
	return &dto.MergeResponse{
		Policy:     string(policy),
		Survivors:  toCatalogItemResponses(res.Survivors),
		RemovedIDs: removed,
		Total:      len(res.Items),
	}, nil
}

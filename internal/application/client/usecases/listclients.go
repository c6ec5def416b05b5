package usecases

import (
	"context"
	"fmt"

	"github.com/vendra-inc/vendra/internal/application/client/dto"
	"github.com/vendra-inc/vendra/internal/domain/catalog"
	"github.com/vendra-inc/vendra/internal/domain/client"
	"github.com/vendra-inc/vendra/internal/shared/biztime"
	apperrors "github.com/vendra-inc/vendra/internal/shared/errors"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

// ListClientsUseCase pages through the registry, optionally narrowed by type
// or software.
type ListClientsUseCase struct {
	clientRepo   client.Repository
	softwareRepo catalog.SoftwareRepository
	resolver     *refResolver
	logger       logger.Interface
}

func NewListClientsUseCase(
	clientRepo client.Repository,
	softwareRepo catalog.SoftwareRepository,
	serviceRepo catalog.ServiceRepository,
	packageRepo catalog.PackageRepository,
	logger logger.Interface,
) *ListClientsUseCase {
	return &ListClientsUseCase{
		clientRepo:   clientRepo,
		softwareRepo: softwareRepo,
		resolver:     newRefResolver(softwareRepo, serviceRepo, packageRepo, logger),
		logger:       logger,
	}
}

func (uc *ListClientsUseCase) Execute(ctx context.Context, req dto.ListClientsRequest) (*dto.ListClientsResponse, error) {
	filter := client.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.Type != "" {
		filter.Type = &req.Type
	}
	if req.SoftwareID != "" {
		sw, err := uc.softwareRepo.GetBySID(ctx, req.SoftwareID)
		if err != nil {
			return nil, apperrors.NewNotFoundError("software not found")
		}
		swID := sw.ID()
		filter.SoftwareID = &swID
	}

	clients, total, err := uc.clientRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list clients", "error", err)
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	now := biztime.NowUTC()
	items := make([]dto.ClientResponse, 0, len(clients))
	for _, cl := range clients {
		items = append(items, uc.resolver.resolve(ctx, cl, now))
	}

	totalPages := int((total + int64(req.PageSize) - 1) / int64(req.PageSize))
	return &dto.ListClientsResponse{
		Items:      items,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages,
	}, nil
}

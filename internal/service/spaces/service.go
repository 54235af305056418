package spaces

import (
	"context"
	"errors"
	"fmt"

	spaceRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/space"
	"github.com/m04kA/SMC-CoworkingService/internal/service/spaces/models"
)

// Service сервис для работы с конфигурациями пространств
type Service struct {
	spaceRepo SpaceRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса пространств
func NewService(spaceRepo SpaceRepository, logger Logger) *Service {
	return &Service{
		spaceRepo: spaceRepo,
		logger:    logger,
	}
}

// List получает пространства. Публичный список содержит только активные
func (s *Service) List(ctx context.Context, onlyActive bool) (*models.SpaceListResponse, error) {
	spaces, err := s.spaceRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d spaces, onlyActive=%t", len(spaces), onlyActive)
	return models.FromDomainSpaceList(spaces), nil
}

// Get получает пространство по ID. Неактивное пространство скрыто, если onlyActive
func (s *Service) Get(ctx context.Context, id int64, onlyActive bool) (*models.SpaceResponse, error) {
	space, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Get", id, err)
	}

	if onlyActive && !space.IsActive {
		s.logger.Warn("Get: space id=%d is inactive", id)
		return nil, ErrSpaceNotFound
	}

	return models.FromDomainSpace(space), nil
}

// Create создает новое пространство
func (s *Service) Create(ctx context.Context, req *models.SpaceRequest) (*models.SpaceResponse, error) {
	s.logger.Info("Create: creating space slug=%s", req.Slug)

	space := req.ToDomain()
	if err := validateSpace(space); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.spaceRepo.Create(ctx, space)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSlugExists) {
			s.logger.Warn("Create: slug=%s already exists", space.Slug)
			return nil, ErrSlugExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: space id=%d created", created.ID)
	return models.FromDomainSpace(created), nil
}

// Update полностью обновляет пространство
func (s *Service) Update(ctx context.Context, id int64, req *models.SpaceRequest) (*models.SpaceResponse, error) {
	s.logger.Info("Update: updating space id=%d", id)

	// Проверяем существование, чтобы сохранить статус активности, если он не передан
	existing, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}

	space := req.ToDomain()
	space.ID = id
	if req.IsActive == nil {
		space.IsActive = existing.IsActive
	}

	if err := validateSpace(space); err != nil {
		s.logger.Warn("Update: validation failed for space id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.spaceRepo.Update(ctx, space)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSlugExists) {
			s.logger.Warn("Update: slug=%s already exists", space.Slug)
			return nil, ErrSlugExists
		}
		return nil, s.mapRepoError("Update", id, err)
	}

	s.logger.Info("Update: space id=%d updated", id)
	return models.FromDomainSpace(updated), nil
}

// Deactivate снимает пространство с публикации
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	if err := s.spaceRepo.Deactivate(ctx, id); err != nil {
		return s.mapRepoError("Deactivate", id, err)
	}

	s.logger.Info("Deactivate: space id=%d deactivated", id)
	return nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
		s.logger.Warn("%s: space id=%d not found", op, id)
		return ErrSpaceNotFound
	}
	s.logger.Error("%s: repository error for space id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

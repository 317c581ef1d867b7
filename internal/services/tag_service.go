package services

import (
	"errors"
	"log/slog"

	"spendtrack/internal/models"
	"spendtrack/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrTagExists   = errors.New("tag already exists")
	ErrTagNotFound = errors.New("tag not found")
)

type tagService struct {
	tagRepo repositories.TagRepositoryInterface
}

func NewTagService(tagRepo repositories.TagRepositoryInterface) TagServiceInterface {
	return &tagService{
		tagRepo: tagRepo,
	}
}

func (s *tagService) CreateTag(userID string, name string) (*models.Tag, error) {
	tag := &models.Tag{
		UserID: userID,
		Name:   name,
	}

	if err := s.tagRepo.Create(tag); err != nil {
		if errors.Is(err, repositories.ErrTagAlreadyExists) {
			return nil, ErrTagExists
		}
		slog.Error("failed to create tag", "user_id", userID, "error", err)
		return nil, err
	}

	slog.Info("tag created", "user_id", userID, "tag_id", tag.ID, "name", name)
	return tag, nil
}

func (s *tagService) GetTags(userID string) ([]models.Tag, error) {
	return s.tagRepo.GetByUserID(userID)
}

func (s *tagService) DeleteTag(userID string, id uuid.UUID) error {
	if err := s.tagRepo.Delete(userID, id); err != nil {
		if errors.Is(err, repositories.ErrTagNotFound) {
			return ErrTagNotFound
		}
		return err
	}

	slog.Info("tag deleted", "user_id", userID, "tag_id", id)
	return nil
}

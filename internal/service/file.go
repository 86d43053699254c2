package service

import (
	"context"
	"errors"

	"adminapi/internal/model"
	"adminapi/internal/repository"
)

var (
	ErrNameRequired    = errors.New("file name is required")
	ErrContentRequired = errors.New("file content is required")
)

// FileService defines the file manager use cases. List responses never carry
// the content payload; Get always does.
type FileService interface {
	List(ctx context.Context) ([]model.FileRecord, error)
	Get(ctx context.Context, id int) (model.FileRecord, error)
	Upload(ctx context.Context, f model.FileRecord) (model.FileRecord, error)
	Update(ctx context.Context, id int, upd model.FileUpdate) (model.FileRecord, error)
	Delete(ctx context.Context, id int) error
}

type fileService struct {
	repo repository.FileRepository
}

// NewFileService constructs a FileService over the given repository.
func NewFileService(repo repository.FileRepository) FileService {
	return &fileService{repo: repo}
}

func (s *fileService) List(ctx context.Context) ([]model.FileRecord, error) {
	return s.repo.List(ctx)
}

func (s *fileService) Get(ctx context.Context, id int) (model.FileRecord, error) {
	f, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.FileRecord{}, ErrNotFound
	}
	return f, err
}

func (s *fileService) Upload(ctx context.Context, f model.FileRecord) (model.FileRecord, error) {
	if f.Name == "" {
		return model.FileRecord{}, ErrNameRequired
	}
	if f.ContentBase64 == "" {
		return model.FileRecord{}, ErrContentRequired
	}
	if f.Tags == nil {
		f.Tags = []string{}
	}
	return s.repo.Create(ctx, f)
}

func (s *fileService) Update(ctx context.Context, id int, upd model.FileUpdate) (model.FileRecord, error) {
	f, err := s.repo.Update(ctx, id, upd)
	if errors.Is(err, repository.ErrNotFound) {
		return model.FileRecord{}, ErrNotFound
	}
	return f, err
}

func (s *fileService) Delete(ctx context.Context, id int) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

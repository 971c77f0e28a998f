package service

import (
	"context"
	"strings"

	"github.com/dom/league-team-hub/internal/domain"
	"github.com/dom/league-team-hub/internal/repository"
	"github.com/google/uuid"
)

type PatchNoteService struct {
	patchNoteRepo repository.PatchNoteRepository
}

func NewPatchNoteService(patchNoteRepo repository.PatchNoteRepository) *PatchNoteService {
	return &PatchNoteService{patchNoteRepo: patchNoteRepo}
}

// CreatePatchNoteInput carries the user-settable fields of a new patch note.
type CreatePatchNoteInput struct {
	Version  string                   `json:"version"`
	Title    string                   `json:"title"`
	Content  string                   `json:"content"`
	Category domain.PatchNoteCategory `json:"category"`
}

func (s *PatchNoteService) List(ctx context.Context) ([]*domain.PatchNote, error) {
	return s.patchNoteRepo.GetAll(ctx)
}

func (s *PatchNoteService) Create(ctx context.Context, in CreatePatchNoteInput) (*domain.PatchNote, error) {
	if strings.TrimSpace(in.Version) == "" {
		return nil, domain.NewValidationError("version is required", "version")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.NewValidationError("title is required", "title")
	}
	if !domain.IsValidPatchNoteCategory(in.Category) {
		return nil, domain.NewValidationError("category must be champion, item, system or meta", "category")
	}

	note := &domain.PatchNote{
		ID:       uuid.New(),
		Version:  in.Version,
		Title:    in.Title,
		Content:  in.Content,
		Category: in.Category,
	}
	if err := s.patchNoteRepo.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *PatchNoteService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.patchNoteRepo.Delete(ctx, id)
}

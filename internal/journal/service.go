package journal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/information-sharing-networks/journey/internal/logger"
)

// Service implements the write operations and the single entry reads of the journal entry API.
//
// The handlers check the id rules (absent on create, present on update) and validate the DTO;
// Service checks them again so it is safe to call directly.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create saves a new entry and returns it with its assigned id.
func (s *Service) Create(ctx context.Context, dto EntryDTO) (EntryDTO, error) {
	logger.ContextRequestLogger(ctx).Debug("Request to create JournalEntry")

	if dto.ID != nil {
		return EntryDTO{}, NewIDExistsError()
	}
	if err := dto.Validate(); err != nil {
		return EntryDTO{}, err
	}

	var saved Entry
	err := s.repo.WithinTx(ctx, func(ctx context.Context, repo Repository) error {
		var err error
		saved, err = repo.Save(ctx, ToEntity(dto))
		return err
	})
	if err != nil {
		return EntryDTO{}, wrapStoreError(err, "failed to create journal entry")
	}
	return ToDTO(saved), nil
}

// Update replaces the title and description of an existing entry.
func (s *Service) Update(ctx context.Context, dto EntryDTO) (EntryDTO, error) {
	if dto.ID == nil {
		return EntryDTO{}, NewIDNullError()
	}
	logger.ContextRequestLogger(ctx).Debug("Request to update JournalEntry", slog.Int64("id", *dto.ID))

	if err := dto.Validate(); err != nil {
		return EntryDTO{}, err
	}

	var saved Entry
	err := s.repo.WithinTx(ctx, func(ctx context.Context, repo Repository) error {
		var err error
		saved, err = repo.Save(ctx, ToEntity(dto))
		return err
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return EntryDTO{}, NewNotFoundError(*dto.ID)
		}
		return EntryDTO{}, wrapStoreError(err, fmt.Sprintf("failed to update journal entry %d", *dto.ID))
	}
	return ToDTO(saved), nil
}

// FindAll returns every entry in the requested order.
func (s *Service) FindAll(ctx context.Context, orders []SortOrder) ([]EntryDTO, error) {
	logger.ContextRequestLogger(ctx).Debug("Request to get all JournalEntries")

	entries, err := s.repo.FindAll(ctx, orders)
	if err != nil {
		return nil, wrapStoreError(err, "failed to list journal entries")
	}
	return ToDTOs(entries), nil
}

// FindOne returns the entry with the given id.
func (s *Service) FindOne(ctx context.Context, id int64) (EntryDTO, error) {
	logger.ContextRequestLogger(ctx).Debug("Request to get JournalEntry", slog.Int64("id", id))

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return EntryDTO{}, NewNotFoundError(id)
		}
		return EntryDTO{}, wrapStoreError(err, fmt.Sprintf("failed to get journal entry %d", id))
	}
	return ToDTO(e), nil
}

// Delete removes the entry with the given id. Deleting an id that does not exist is not an error.
func (s *Service) Delete(ctx context.Context, id int64) error {
	reqLogger := logger.ContextRequestLogger(ctx)
	reqLogger.Debug("Request to delete JournalEntry", slog.Int64("id", id))

	var existed bool
	err := s.repo.WithinTx(ctx, func(ctx context.Context, repo Repository) error {
		var err error
		existed, err = repo.DeleteByID(ctx, id)
		return err
	})
	if err != nil {
		return wrapStoreError(err, fmt.Sprintf("failed to delete journal entry %d", id))
	}
	if !existed {
		reqLogger.Debug("JournalEntry to delete did not exist", slog.Int64("id", id))
	}
	return nil
}

// Count returns the number of stored entries.
func (s *Service) Count(ctx context.Context) (int64, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, wrapStoreError(err, "failed to count journal entries")
	}
	return n, nil
}

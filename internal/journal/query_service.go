package journal

import (
	"context"
	"log/slog"

	"github.com/information-sharing-networks/journey/internal/logger"
)

// QueryService runs criteria searches. FindByCriteria and CountByCriteria use the same
// predicates so a count always equals the length of the matching list.
type QueryService struct {
	repo Repository
}

func NewQueryService(repo Repository) *QueryService {
	return &QueryService{repo: repo}
}

// FindByCriteria returns the entries matching c in the requested order.
func (s *QueryService) FindByCriteria(ctx context.Context, c Criteria, orders []SortOrder) ([]EntryDTO, error) {
	logger.ContextRequestLogger(ctx).Debug("find by criteria",
		slog.String("criteria", c.Query().Encode()),
		slog.Int("sort_orders", len(orders)),
	)

	entries, err := s.repo.FindByCriteria(ctx, c, orders)
	if err != nil {
		return nil, wrapStoreError(err, "failed to find journal entries by criteria")
	}
	return ToDTOs(entries), nil
}

// CountByCriteria returns the number of entries matching c.
func (s *QueryService) CountByCriteria(ctx context.Context, c Criteria) (int64, error) {
	logger.ContextRequestLogger(ctx).Debug("count by criteria",
		slog.String("criteria", c.Query().Encode()),
	)

	n, err := s.repo.CountByCriteria(ctx, c)
	if err != nil {
		return 0, wrapStoreError(err, "failed to count journal entries by criteria")
	}
	return n, nil
}

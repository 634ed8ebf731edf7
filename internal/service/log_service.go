package service

import (
	"context"

	"autoservice/internal/model"
	"autoservice/internal/repository"
	"autoservice/pkg/pagination"
)

type LogService interface {
	List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[model.Log], error)
}

type logService struct {
	repo repository.AuditRepository
}

func NewLogService(repo repository.AuditRepository) LogService {
	return &logService{repo: repo}
}

// List returns audit rows oldest first, filtered by date range, author and text.
func (s *logService) List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[model.Log], error) {
	items, total, err := s.repo.List(ctx, repository.LogFilter{
		From:    filter.From,
		To:      filter.To,
		UserIDs: filter.UserIDs,
		Search:  filter.Search,
	}, page)
	if err != nil {
		return Page[model.Log]{}, err
	}
	return Page[model.Log]{Items: items, Total: total}, nil
}

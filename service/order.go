package service

import (
	"context"

	"github.com/kelias-gh/CRM/domain"
)

type orderService struct {
	repo domain.OrderRepository
}

func NewOrderService(repo domain.OrderRepository) domain.OrderUseCase {
	return &orderService{repo: repo}
}

func (s *orderService) List(ctx context.Context, query string, page int) ([]domain.OrderRow, domain.PageInfo, error) {
	req := domain.NewPageRequest(page, domain.OrdersPerPage)
	rows, total, err := s.repo.List(ctx, query, req)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	return rows, domain.NewPageInfo(req, total), nil
}

func (s *orderService) Create(ctx context.Context, order *domain.Order, items []domain.OrderItem) error {
	return s.repo.CreateWithItems(ctx, order, items)
}

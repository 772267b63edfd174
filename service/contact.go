package service

import (
	"context"

	"github.com/kelias-gh/CRM/domain"
)

type contactService struct {
	repo domain.ContactRepository
}

func NewContactService(repo domain.ContactRepository) domain.ContactUseCase {
	return &contactService{repo: repo}
}

func (s *contactService) List(ctx context.Context, channel string, page int) ([]domain.ContactRow, domain.PageInfo, error) {
	// Unrecognized channel values are ignored, not rejected: the list
	// falls back to unfiltered.
	if !domain.IsValidChannel(channel) {
		channel = ""
	}

	req := domain.NewPageRequest(page, domain.ContactsPerPage)
	rows, total, err := s.repo.List(ctx, channel, req)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	return rows, domain.NewPageInfo(req, total), nil
}

func (s *contactService) Log(ctx context.Context, contact *domain.Contact) error {
	return s.repo.Create(ctx, contact)
}

package domain

// PageRequest is a normalized 1-based pagination request. Build one with
// NewPageRequest so a non-positive page can never reach a repository.
type PageRequest struct {
	Page    int
	PerPage int
}

func NewPageRequest(page, perPage int) PageRequest {
	if page < 1 {
		page = 1
	}
	return PageRequest{Page: page, PerPage: perPage}
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// PageInfo describes the slice a list query returned. Total is counted
// under the same filter as the slice itself.
type PageInfo struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

func NewPageInfo(req PageRequest, total int64) PageInfo {
	return PageInfo{
		Page:    req.Page,
		PerPage: req.PerPage,
		Total:   total,
		HasNext: int64(req.Page*req.PerPage) < total,
		HasPrev: req.Page > 1,
	}
}

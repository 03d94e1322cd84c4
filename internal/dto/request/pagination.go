package request

type PaginatedRequest struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

func (p PaginatedRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

func (p PaginatedRequest) Limit() int {
	return p.PerPage
}

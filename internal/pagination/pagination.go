package pagination

import "strconv"

const DefaultPageSize = 10

type Meta struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
}

type Window struct {
	Offset int
	Limit  int
	Meta   Meta
}

// ParsePage normalizes a raw page query value. Anything non-numeric or below
// one clamps to the first page.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func Paginate(page, pageSize int, totalCount int64) Window {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	totalPages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))

	return Window{
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
		Meta: Meta{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalCount:  totalCount,
		},
	}
}

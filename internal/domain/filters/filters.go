package filters

// Filters carries the pagination state shared by the catalog listing, filter
// and search queries. The page size is fixed per deployment (config driven),
// requests only choose the page.
type Filters struct {
	Page     int
	PageSize int
}

func (f Filters) Limit() int {
	return f.PageSize
}

func (f Filters) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// Metadata describes the position of a page within the full result set.
type Metadata struct {
	CurrentPage  int `json:"current_page"`
	PageSize     int `json:"page_size"`
	FirstPage    int `json:"first_page"`
	LastPage     int `json:"last_page"`
	TotalRecords int `json:"total_records"`
}

func CalculateMetadata(totalRecords, page, pageSize int) Metadata {
	if totalRecords == 0 {
		return Metadata{}
	}
	return Metadata{
		CurrentPage:  page,
		PageSize:     pageSize,
		FirstPage:    1,
		LastPage:     (totalRecords + pageSize - 1) / pageSize,
		TotalRecords: totalRecords,
	}
}

func (m Metadata) HasNext() bool {
	return m.CurrentPage < m.LastPage
}

func (m Metadata) HasPrev() bool {
	return m.CurrentPage > 1
}

package query

// PageMetadata 分页元数据，永远由输入重新计算，不独立存储。
type PageMetadata struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// Page 一页记录及其元数据
type Page struct {
	Items    []Record     `json:"items"`
	Metadata PageMetadata `json:"metadata"`
}

// Paginate 从已排序的集合切出一页。page 从 1 开始计数。
// 越界的 page 钳制到最近的合法页而不是报错或静默返回空页：
// page < 1 -> 1，page > totalPages -> totalPages。
// totalPages = max(1, ceil(total/limit))，空集合恰好产生一个空页，
// 避免除零和显示上的边界问题。
// limit <= 0 意味着无限页数，是非法输入，返回 ConfigurationError
// 而不是静默取默认值。
func Paginate(records []Record, page, limit int) (*Page, error) {
	if limit <= 0 {
		return nil, configErrorf("paginate limit must be positive, got %d", limit)
	}

	total := len(records)
	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]Record, end-start)
	copy(items, records[start:end])

	return &Page{
		Items: items,
		Metadata: PageMetadata{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}

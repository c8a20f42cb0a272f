package pagination

// Slice returns the page of items selected by params together with the
// response metadata. Visibility filtering happens in memory, so list
// endpoints page over the already-filtered slice rather than the store.
func Slice[T any](items []T, params Params) ([]T, Metadata) {
	total := int64(len(items))
	meta := Metadata{
		Total:      total,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: CalculateTotalPages(total, params.Limit),
	}

	offset := CalculateOffset(params.Page, params.Limit)
	if offset >= len(items) {
		return []T{}, meta
	}
	end := offset + params.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end], meta
}

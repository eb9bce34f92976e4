package category

import "strconv"

func ToView(c *Category) View {
	return View{
		ID:           strconv.FormatInt(c.ID, 10),
		Name:         c.Name,
		Slug:         c.Slug,
		Description:  c.Description,
		ImageURL:     c.ImageURL,
		SortOrder:    c.SortOrder,
		IsActive:     c.IsActive,
		ProductCount: c.ProductCount,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func ToViews(cs []*Category) []View {
	out := make([]View, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToView(c))
	}
	return out
}

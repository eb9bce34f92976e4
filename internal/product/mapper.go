package product

import "strconv"

func ToView(p *Product) View {
	v := View{
		ID:             strconv.FormatInt(p.ID, 10),
		Name:           p.Name,
		Slug:           p.Slug,
		Description:    p.Description,
		Price:          p.Price,
		CompareAtPrice: p.CompareAtPrice,
		Unit:           p.Unit,
		Stock:          p.Stock,
		InStock:        p.Stock > 0,
		ImageURL:       p.ImageURL,
		CategoryName:   p.CategoryName,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.CategoryID != nil {
		id := strconv.FormatInt(*p.CategoryID, 10)
		v.CategoryID = &id
	}
	return v
}

func ToViews(ps []*Product) []View {
	out := make([]View, 0, len(ps))
	for _, p := range ps {
		out = append(out, ToView(p))
	}
	return out
}

package review

import "strconv"

func ToView(r *Review) View {
	return View{
		ID:           strconv.FormatInt(r.ID, 10),
		ProductID:    strconv.FormatInt(r.ProductID, 10),
		ProductName:  r.ProductName,
		CustomerName: r.CustomerName,
		Rating:       r.Rating,
		Comment:      r.Comment,
		IsApproved:   r.IsApproved,
		CreatedAt:    r.CreatedAt,
	}
}

func ToViews(rs []*Review) []View {
	out := make([]View, 0, len(rs))
	for _, r := range rs {
		out = append(out, ToView(r))
	}
	return out
}

package menu

import "strconv"

func ToView(m *Menu) View {
	items := m.Items
	if items == nil {
		items = []Item{}
	}
	return View{
		ID:        strconv.FormatInt(m.ID, 10),
		Name:      m.Name,
		Location:  m.Location,
		Items:     items,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToViews(ms []*Menu) []View {
	out := make([]View, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToView(m))
	}
	return out
}

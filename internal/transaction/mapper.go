package transaction

import "strconv"

func ToView(t *Transaction) View {
	return View{
		ID:          strconv.FormatInt(t.ID, 10),
		Type:        t.Type,
		Category:    t.Category,
		Amount:      t.Amount,
		Description: t.Description,
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
	}
}

func ToViews(ts []*Transaction) []View {
	out := make([]View, 0, len(ts))
	for _, t := range ts {
		out = append(out, ToView(t))
	}
	return out
}

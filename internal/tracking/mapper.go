package tracking

import "strconv"

func ToView(e *Event) View {
	md := e.Metadata
	if md == nil {
		md = map[string]any{}
	}
	return View{
		ID:        strconv.FormatInt(e.ID, 10),
		EventType: e.EventType,
		SessionID: e.SessionID,
		UserID:    e.UserID,
		ProductID: e.ProductID,
		OrderID:   e.OrderID,
		PageURL:   e.PageURL,
		Referrer:  e.Referrer,
		UserAgent: e.UserAgent,
		IPAddress: e.IPAddress,
		Metadata:  md,
		CreatedAt: e.CreatedAt,
	}
}

func ToViews(es []*Event) []View {
	out := make([]View, 0, len(es))
	for _, e := range es {
		out = append(out, ToView(e))
	}
	return out
}

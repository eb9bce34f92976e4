package module

// ToView joins a catalog definition with its entitlement row (nil when the
// module was never purchased). Core modules always read as purchased and
// enabled whatever the row says.
func ToView(def Definition, e *Entitlement) View {
	v := View{
		ID:             def.ID,
		Name:           def.Name,
		Description:    def.Description,
		Version:        def.Version,
		Category:       def.Category,
		Price:          def.Price,
		IsCoreModule:   def.IsCore(),
		Settings:       map[string]any{},
		SettingsSchema: def.Settings,
	}
	if v.SettingsSchema == nil {
		v.SettingsSchema = []SettingField{}
	}

	if e != nil {
		v.Purchased = e.Purchased
		v.Enabled = e.Purchased && e.Enabled
		v.PurchasedAt = e.PurchasedAt
		for k, val := range e.Settings {
			v.Settings[k] = val
		}
	}

	if v.IsCoreModule {
		v.Purchased = true
		v.Enabled = true
	}

	return v
}

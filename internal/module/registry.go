package module

// Category groups catalog entries in the admin marketplace.
type Category string

const (
	CategoryCore        Category = "core"
	CategoryPremium     Category = "premium"
	CategoryIntegration Category = "integration"
	CategoryAnalytics   Category = "analytics"
)

const (
	IDDashboard         = "dashboard"
	IDProducts          = "products"
	IDOrders            = "orders"
	IDFraudCheck        = "fraud-check"
	IDCourier           = "courier"
	IDWhatsApp          = "whatsapp"
	IDAdvancedAnalytics = "advanced-analytics"
	IDTracking          = "tracking"
	IDAccounting        = "accounting"
	IDCustomMenus       = "custom-menus"
	IDProductReviews    = "product-reviews"
)

// SettingField declares one key of a module's settings bag.
type SettingField struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// Definition is the static, in-process description of a module.
type Definition struct {
	ID          string
	Name        string
	Description string
	Version     string
	Category    Category
	Price       float64
	Settings    []SettingField
}

func (d Definition) IsCore() bool {
	return d.Category == CategoryCore
}

var catalog = []Definition{
	{
		ID:          IDDashboard,
		Name:        "Dashboard",
		Description: "Admin overview of sales, orders and stock.",
		Version:     "1.0.0",
		Category:    CategoryCore,
	},
	{
		ID:          IDProducts,
		Name:        "Products",
		Description: "Product and category catalog management.",
		Version:     "1.0.0",
		Category:    CategoryCore,
	},
	{
		ID:          IDOrders,
		Name:        "Orders",
		Description: "Order processing and status management.",
		Version:     "1.0.0",
		Category:    CategoryCore,
	},
	{
		ID:          IDFraudCheck,
		Name:        "Fraud Check",
		Description: "Courier delivery history lookup by customer phone before dispatch.",
		Version:     "1.2.0",
		Category:    CategoryIntegration,
		Price:       499,
		Settings: []SettingField{
			{Key: "autoCheckOnOrder", Label: "Check every new order", Type: "boolean"},
			{Key: "minSuccessRatio", Label: "Minimum success ratio (%)", Type: "number"},
		},
	},
	{
		ID:          IDCourier,
		Name:        "Courier Integration",
		Description: "Create consignments and track parcels with the courier service.",
		Version:     "2.0.1",
		Category:    CategoryIntegration,
		Price:       999,
		Settings: []SettingField{
			{Key: "defaultNote", Label: "Default delivery note", Type: "string"},
			{Key: "codEnabled", Label: "Collect cash on delivery", Type: "boolean"},
		},
	},
	{
		ID:          IDWhatsApp,
		Name:        "WhatsApp Messaging",
		Description: "Order notifications, broadcasts and abandoned cart recovery over WhatsApp.",
		Version:     "1.4.0",
		Category:    CategoryIntegration,
		Price:       799,
		Settings: []SettingField{
			{Key: "orderNotifications", Label: "Notify customers on new orders", Type: "boolean"},
			{Key: "cartRecoveryMessage", Label: "Cart recovery message", Type: "string"},
		},
	},
	{
		ID:          IDAdvancedAnalytics,
		Name:        "Advanced Analytics",
		Description: "Extended reporting windows and product rankings.",
		Version:     "1.1.0",
		Category:    CategoryAnalytics,
		Price:       599,
	},
	{
		ID:          IDTracking,
		Name:        "Visitor Tracking",
		Description: "Storefront event tracking: page views, cart actions, searches.",
		Version:     "1.0.3",
		Category:    CategoryAnalytics,
		Price:       399,
		Settings: []SettingField{
			{Key: "trackSearches", Label: "Record search events", Type: "boolean"},
		},
	},
	{
		ID:          IDAccounting,
		Name:        "Accounting",
		Description: "Income and expense ledger with summaries.",
		Version:     "1.0.0",
		Category:    CategoryPremium,
		Price:       699,
	},
	{
		ID:          IDCustomMenus,
		Name:        "Custom Menus",
		Description: "Editable storefront header, footer and sidebar menus.",
		Version:     "1.0.0",
		Category:    CategoryPremium,
		Price:       199,
	},
	{
		ID:          IDProductReviews,
		Name:        "Product Reviews",
		Description: "Customer ratings and reviews with moderation.",
		Version:     "1.0.0",
		Category:    CategoryPremium,
		Price:       299,
	},
}

var catalogIndex = func() map[string]int {
	idx := make(map[string]int, len(catalog))
	for i, d := range catalog {
		idx[d.ID] = i
	}
	return idx
}()

// Lookup returns a copy of the definition registered under id.
func Lookup(id string) (Definition, bool) {
	i, ok := catalogIndex[id]
	if !ok {
		return Definition{}, false
	}
	return clone(catalog[i]), true
}

// Definitions returns copies of every catalog entry in display order.
func Definitions() []Definition {
	out := make([]Definition, 0, len(catalog))
	for _, d := range catalog {
		out = append(out, clone(d))
	}
	return out
}

// IsCore reports whether id names a core module.
func IsCore(id string) bool {
	d, ok := Lookup(id)
	return ok && d.IsCore()
}

func clone(d Definition) Definition {
	if d.Settings != nil {
		d.Settings = append([]SettingField(nil), d.Settings...)
	}
	return d
}

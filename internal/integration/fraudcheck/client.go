package fraudcheck

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"grocery-be/internal/integration"
	"grocery-be/internal/settings"
	"grocery-be/internal/utils"
)

const provider = "fraudcheck"

type CredentialSource interface {
	Get(ctx context.Context) (*settings.Settings, error)
}

type Client interface {
	CheckFraud(ctx context.Context, phone string) (*Result, error)
}

type client struct {
	baseURL    string
	creds      CredentialSource
	httpClient *http.Client
}

func NewClient(baseURL string, creds CredentialSource) Client {
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		creds:      creds,
		httpClient: integration.NewHTTPClient(),
	}
}

func (c *client) CheckFraud(ctx context.Context, phone string) (*Result, error) {
	local := utils.LocalPhone(phone)
	if len(local) != 11 || !strings.HasPrefix(local, "01") {
		return nil, ErrInvalidPhone
	}

	s, err := c.creds.Get(ctx)
	if err != nil {
		return nil, err
	}
	if s.FraudCheckAPIKey == "" {
		return nil, integration.ErrNotConfigured
	}

	var res providerResponse
	err = integration.DoJSON(ctx, c.httpClient, integration.Request{
		Provider: provider,
		Method:   http.MethodPost,
		URL:      c.baseURL + "/courier-check",
		Header:   http.Header{"Authorization": {"Bearer " + s.FraudCheckAPIKey}},
		Body:     map[string]string{"phone": local},
	}, &res)
	if err != nil {
		return nil, err
	}

	return summarize(local, res), nil
}

// summarize folds the per-courier history into one result. The provider's
// own "summary" entry is ignored.
func summarize(phone string, res providerResponse) *Result {
	out := &Result{Phone: phone, Couriers: []CourierStat{}}

	keys := make([]string, 0, len(res.CourierData))
	for k := range res.CourierData {
		if k != "summary" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		st := res.CourierData[k]
		name := st.Name
		if name == "" {
			name = k
		}
		ratio, _ := Classify(st.TotalParcel, st.SuccessParcel)
		out.Couriers = append(out.Couriers, CourierStat{
			Courier:      name,
			TotalParcel:  st.TotalParcel,
			SuccessCount: st.SuccessParcel,
			CancelCount:  st.CancelledParcel,
			SuccessRatio: ratio,
		})
		out.TotalParcel += st.TotalParcel
		out.SuccessCount += st.SuccessParcel
		out.CancelCount += st.CancelledParcel
	}

	out.SuccessRatio, out.Risk = Classify(out.TotalParcel, out.SuccessCount)
	return out
}

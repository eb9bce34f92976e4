package whatsapp

type SendInput struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

type BroadcastInput struct {
	Recipients []string `json:"recipients"`
	Message    string   `json:"message"`
}

type CartRecoveryInput struct {
	Phone   string `json:"phone"`
	Name    string `json:"name"`
	CartURL string `json:"cartUrl"`
}

type SendResult struct {
	To        string `json:"to"`
	MessageID string `json:"messageId"`
}

// RecipientResult reports one broadcast delivery. Failed recipients are not
// retried.
type RecipientResult struct {
	To        string `json:"to"`
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

type BroadcastResult struct {
	Sent    int               `json:"sent"`
	Failed  int               `json:"failed"`
	Results []RecipientResult `json:"results"`
}

type textMessage struct {
	MessagingProduct string `json:"messaging_product"`
	RecipientType    string `json:"recipient_type"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		PreviewURL bool   `json:"preview_url"`
		Body       string `json:"body"`
	} `json:"text"`
}

type sendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

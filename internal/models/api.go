package models

// FAQRequest is the body of /api/faq and /api/search.
type FAQRequest struct {
	Question string `json:"question"`
}

// WebSearchRequest is the body of /api/websearch. Confirm defaults to true when absent.
type WebSearchRequest struct {
	Question string `json:"question"`
	Confirm  *bool  `json:"confirm"`
}

func (r WebSearchRequest) Confirmed() bool {
	return r.Confirm == nil || *r.Confirm
}

// Answer is what every boundary operation returns to the caller.
type Answer struct {
	Text              string `json:"answer"`
	NeedsConfirmation bool   `json:"needs_confirmation"`
}

type RawAnswer struct {
	Text string `json:"answer"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

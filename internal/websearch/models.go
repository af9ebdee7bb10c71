package websearch

import "encoding/json"

// SearchHit is one qualifying result row from the site-scoped search.
type SearchHit struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Result is what a lookup layer hands back to the resolver. A zero Result means the
// layer ran but had nothing to say; Err is set when the upstream could not be used.
type Result struct {
	Text string
	Err  error
}

func Found(text string) Result { return Result{Text: text} }

func Failed(err error) Result { return Result{Err: err} }

func (r Result) Empty() bool { return r.Err == nil && r.Text == "" }

// instantResponse is the subset of the instant-answer payload that gets rendered.
type instantResponse struct {
	Answer        lenientString  `json:"Answer"`
	Abstract      lenientString  `json:"Abstract"`
	AbstractURL   lenientString  `json:"AbstractURL"`
	Definition    lenientString  `json:"Definition"`
	DefinitionURL lenientString  `json:"DefinitionURL"`
	RelatedTopics []relatedTopic `json:"RelatedTopics"`
	Infobox       infobox        `json:"Infobox"`
}

type relatedTopic struct {
	Text     lenientString `json:"Text"`
	FirstURL lenientString `json:"FirstURL"`
}

type infoboxItem struct {
	Label lenientString `json:"label"`
	Value lenientString `json:"value"`
}

// infobox is an object with a content list, or "" when the API has none.
type infobox struct {
	Content []infoboxItem
}

func (i *infobox) UnmarshalJSON(data []byte) error {
	var body struct {
		Content []infoboxItem `json:"content"`
	}
	if json.Unmarshal(data, &body) == nil {
		i.Content = body.Content
	}
	return nil
}

// lenientString accepts JSON strings and numbers; any other shape decodes to "".
type lenientString string

func (s *lenientString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = lenientString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*s = lenientString(num)
		return nil
	}
	*s = ""
	return nil
}

package faq

// Schema.org node shapes emitted as JSON-LD. Field order matches the output
// rich-result validators show in their examples.

// Answer is a Schema.org Answer node.
type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// Question is a Schema.org Question node with its accepted answer.
type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

// FAQPage is a standalone Schema.org FAQPage document.
type FAQPage struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

const schemaContext = "https://schema.org"

// PageSchema wraps the article's question nodes in a standalone FAQPage
// document. It returns nil rather than a page with an empty mainEntity.
func PageSchema(data *Data) *FAQPage {
	qs := SchemaItems(data)
	if qs == nil {
		return nil
	}
	return &FAQPage{Context: schemaContext, Type: "FAQPage", MainEntity: qs}
}

// SchemaItems returns the bare Question nodes for embedding as siblings
// inside a larger composite schema document. The filter here is deliberately
// laxer than Validate: items are dropped only when a field is the empty
// string, without trimming, and kept text passes through byte for byte.
// SchemaItems does not require its input to have passed Validate.
func SchemaItems(data *Data) []Question {
	if data == nil || len(data.Items) == 0 {
		return nil
	}
	qs := make([]Question, 0, len(data.Items))
	for _, it := range data.Items {
		if it.Question == "" || it.Answer == "" {
			continue
		}
		qs = append(qs, Question{
			Type:           "Question",
			Name:           it.Question,
			AcceptedAnswer: Answer{Type: "Answer", Text: it.Answer},
		})
	}
	if len(qs) == 0 {
		return nil
	}
	return qs
}

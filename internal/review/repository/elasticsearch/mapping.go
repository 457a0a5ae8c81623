package elasticsearch

const foldingAnalyzer = "folding"

// indexBody is the settings and mapping of the review index. Text fields use a
// lowercase + asciifolding analyzer so "Café" matches "cafe".
func indexBody() map[string]any {
	text := map[string]any{"type": "text", "analyzer": foldingAnalyzer}
	keyword := map[string]any{"type": "keyword"}

	return map[string]any{
		"settings": map[string]any{
			"analysis": map[string]any{
				"analyzer": map[string]any{
					foldingAnalyzer: map[string]any{
						"type":      "custom",
						"tokenizer": "standard",
						"filter":    []string{"lowercase", "asciifolding"},
					},
				},
			},
		},
		"mappings": map[string]any{
			"dynamic": "strict",
			"properties": map[string]any{
				"id":         keyword,
				"product_id": keyword,
				"product_name": map[string]any{
					"type":   "keyword",
					"fields": map[string]any{"text": text},
				},
				"rating":          map[string]any{"type": "integer"},
				"title":           text,
				"text":            text,
				"created_at":      map[string]any{"type": "date"},
				"sentiment_label": keyword,
				"sentiment_score": map[string]any{"type": "float"},
			},
		},
	}
}

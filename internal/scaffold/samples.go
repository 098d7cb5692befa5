package scaffold

import "strings"

// sampleFamily matches a method-name keyword to the stub rows its
// endpoint returns.
type sampleFamily struct {
	keywords []string
	rows     []map[string]any
}

var sampleFamilies = []sampleFamily{
	{
		keywords: []string{"product", "item", "shop"},
		rows: []map[string]any{
			{"id": 1, "name": "Starter Plan", "price": 9.99, "description": "Everything you need to get going", "image": "/uploads/products/starter.png"},
			{"id": 2, "name": "Pro Plan", "price": 29.99, "description": "For growing teams", "image": "/uploads/products/pro.png"},
			{"id": 3, "name": "Enterprise Plan", "price": 99.99, "description": "Scale without limits", "image": "/uploads/products/enterprise.png"},
		},
	},
	{
		keywords: []string{"team", "member", "staff", "people"},
		rows: []map[string]any{
			{"id": 1, "name": "Jordan Lee", "role": "Founder", "photo": "/uploads/team/jordan.jpg"},
			{"id": 2, "name": "Sam Rivera", "role": "Lead Engineer", "photo": "/uploads/team/sam.jpg"},
			{"id": 3, "name": "Alex Chen", "role": "Designer", "photo": "/uploads/team/alex.jpg"},
		},
	},
	{
		keywords: []string{"post", "blog", "article", "news"},
		rows: []map[string]any{
			{"id": 1, "title": "Hello World", "excerpt": "Our very first post", "author": "Jordan Lee", "date": "2024-01-15"},
			{"id": 2, "title": "Shipping Fast", "excerpt": "How we iterate", "author": "Sam Rivera", "date": "2024-02-02"},
		},
	},
	{
		keywords: []string{"testimonial", "review", "quote"},
		rows: []map[string]any{
			{"id": 1, "author": "Happy Customer", "quote": "This changed how we work.", "rating": 5},
			{"id": 2, "author": "Another Fan", "quote": "Exactly what we needed.", "rating": 5},
		},
	},
	{
		keywords: []string{"service", "feature", "offer"},
		rows: []map[string]any{
			{"id": 1, "title": "Consulting", "description": "Expert guidance end to end", "icon": "compass"},
			{"id": 2, "title": "Development", "description": "From prototype to production", "icon": "code"},
			{"id": 3, "title": "Support", "description": "We stay after launch", "icon": "lifebuoy"},
		},
	},
}

var genericRows = []map[string]any{
	{"id": 1, "name": "Sample Item 1", "description": "Generated sample data"},
	{"id": 2, "name": "Sample Item 2", "description": "Generated sample data"},
}

// SampleRows picks the stub payload rows for a synthesized handler by
// method-name keyword, falling back to a generic two-item stub.
func SampleRows(methodName string) []map[string]any {
	lowered := strings.ToLower(methodName)
	for _, family := range sampleFamilies {
		for _, keyword := range family.keywords {
			if strings.Contains(lowered, keyword) {
				return family.rows
			}
		}
	}
	return genericRows
}

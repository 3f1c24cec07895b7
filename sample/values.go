package sample

import (
	"fmt"
	"strings"

	cocogen "github.com/wictorwilen/cocogen-sub001"
)

// heuristic value generators keyed by substrings of the lower-cased address
// tail. First match wins, so more specific keys come first.
var heuristics = []struct {
	key string
	gen func(i int) string
}{
	{"email", func(i int) string { return fmt.Sprintf("user%d@example.com", i+1) }},
	{"phone", func(i int) string { return fmt.Sprintf("+1-555-01%02d", i+1) }},
	{"firstname", func(i int) string { return firstNames[i%len(firstNames)] }},
	{"lastname", func(i int) string { return lastNames[i%len(lastNames)] }},
	{"displayname", func(i int) string {
		return firstNames[i%len(firstNames)] + " " + lastNames[i%len(lastNames)]
	}},
	{"name", func(i int) string { return firstNames[i%len(firstNames)] }},
	{"date", func(i int) string { return fmt.Sprintf("2024-0%d-1%d", i%9+1, i%3) }},
	{"url", func(i int) string { return fmt.Sprintf("https://example.com/item/%d", i+1) }},
	{"website", func(i int) string { return fmt.Sprintf("https://example.com/u/%d", i+1) }},
	{"city", func(i int) string { return cities[i%len(cities)] }},
	{"country", func(i int) string { return countries[i%len(countries)] }},
	{"street", func(i int) string { return fmt.Sprintf("%d Main Street", 100+i) }},
	{"skill", func(i int) string { return skills[i%len(skills)] }},
	{"proficiency", func(i int) string { return proficiencies[i%len(proficiencies)] }},
	{"language", func(i int) string { return languages[i%len(languages)] }},
	{"company", func(i int) string { return companies[i%len(companies)] }},
	{"title", func(i int) string { return titles[i%len(titles)] }},
	{"description", func(i int) string { return fmt.Sprintf("Sample description %d", i+1) }},
	{"id", func(i int) string { return fmt.Sprintf("item-%d", i+1) }},
}

var (
	firstNames    = []string{"Ada", "Grace", "Alan", "Edsger", "Barbara"}
	lastNames     = []string{"Lovelace", "Hopper", "Turing", "Dijkstra", "Liskov"}
	cities        = []string{"Oslo", "Lisbon", "Kyoto", "Austin", "Nairobi"}
	countries     = []string{"Norway", "Portugal", "Japan", "United States", "Kenya"}
	skills        = []string{"TypeScript", "Kubernetes", "SQL", "Rust", "Figma"}
	proficiencies = []string{"beginner", "intermediate", "advanced", "expert"}
	languages     = []string{"English", "Norwegian", "Portuguese", "Japanese"}
	companies     = []string{"Contoso", "Fabrikam", "Northwind", "Adventure Works"}
	titles        = []string{"Engineer", "Designer", "Product Manager", "Architect"}
)

// valueFor picks a sample value for one address by heuristic match on the
// lower-cased address tail, falling back to the declared element type.
func valueFor(address string, t cocogen.PropertyType, i int) string {
	tail := strings.ToLower(address)
	if idx := strings.LastIndexAny(tail, "./"); idx >= 0 {
		tail = tail[idx+1:]
	}

	for _, h := range heuristics {
		if strings.Contains(tail, h.key) {
			return h.gen(i)
		}
	}

	switch t.Element() {
	case cocogen.TypeInt64:
		return fmt.Sprintf("%d", (i+1)*7)
	case cocogen.TypeDouble:
		return fmt.Sprintf("%d.5", (i+1)*3)
	case cocogen.TypeBoolean:
		if i%2 == 0 {
			return "true"
		}

		return "false"
	case cocogen.TypeDateTime:
		return fmt.Sprintf("2024-0%d-1%dT09:30:00Z", i%9+1, i%3)
	case cocogen.TypePrincipal:
		return fmt.Sprintf("user%d@example.com", i+1)
	default:
		return fmt.Sprintf("Sample value %d", i+1)
	}
}

// Package skills maintains the known-skills vocabulary and skill name
// normalization used for extraction and matching.
package skills

import "strings"

// vocabulary groups known skills by category. Extraction searches the
// flattened list; the categories exist to keep the table reviewable.
var vocabulary = map[string][]string{
	"programming": {
		"JavaScript",
		"TypeScript",
		"Python",
		"Java",
		"Go",
		"C++",
		"React",
		"Node.js",
		"Angular",
		"Vue",
	},
	"data": {
		"SQL",
		"MongoDB",
		"PostgreSQL",
		"Redis",
		"Data Analysis",
		"Machine Learning",
	},
	"cloud": {
		"AWS",
		"Azure",
		"Google Cloud",
		"Docker",
		"Kubernetes",
		"Terraform",
	},
	"design": {
		"UI/UX",
		"Figma",
		"Adobe Creative Suite",
		"Sketch",
	},
	"management": {
		"Project Management",
		"Agile",
		"Scrum",
		"Leadership",
	},
}

// All returns the flattened vocabulary in a stable category order.
func All() []string {
	categories := []string{"programming", "data", "cloud", "design", "management"}
	var all []string
	for _, category := range categories {
		all = append(all, vocabulary[category]...)
	}
	return all
}

// Categories returns the vocabulary grouped by category name.
func Categories() map[string][]string {
	out := make(map[string][]string, len(vocabulary))
	for category, list := range vocabulary {
		out[category] = append([]string(nil), list...)
	}
	return out
}

// ExtractFromText returns the known skills mentioned in free text,
// case-insensitively, deduplicated, in vocabulary order.
func ExtractFromText(text string) []string {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	var found []string
	seen := make(map[string]bool)

	for _, skill := range All() {
		if seen[skill] {
			continue
		}
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
			seen[skill] = true
		}
	}

	return found
}

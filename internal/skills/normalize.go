package skills

import "strings"

// normalizations maps common skill name variants to canonical names
var normalizations = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"postgres":   "PostgreSQL",
	"ml":         "Machine Learning",
}

// Normalize normalizes a skill name to its canonical form.
func Normalize(skillName string) string {
	if skillName == "" {
		return ""
	}

	normalized := strings.TrimSpace(skillName)

	lower := strings.ToLower(normalized)
	if canonical, ok := normalizations[lower]; ok {
		return canonical
	}

	// Mixed case is assumed intentional (AWS, UI/UX, PostgreSQL)
	if normalized != strings.ToUpper(normalized) && normalized != strings.ToLower(normalized) {
		return normalized
	}

	// All-lowercase single words get their first letter capitalized
	if normalized == strings.ToLower(normalized) && !strings.Contains(normalized, " ") {
		return strings.ToUpper(normalized[:1]) + normalized[1:]
	}

	return normalized
}

// NormalizeAll normalizes and deduplicates a list of skill names,
// preserving first-seen order and dropping empty entries.
func NormalizeAll(names []string) []string {
	if len(names) == 0 {
		return names
	}

	normalized := make([]string, 0, len(names))
	seen := make(map[string]bool)

	for _, name := range names {
		canonical := Normalize(name)
		if canonical == "" || seen[canonical] {
			continue
		}
		normalized = append(normalized, canonical)
		seen[canonical] = true
	}

	return normalized
}

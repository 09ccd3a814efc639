package routes

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{([\w.]+)\}`)

// Params maps placeholder names to substitution values. Values are
// coerced to strings at expansion time.
type Params map[string]any

// ExtractPlaceholders returns the placeholder names found in template, in
// order of first appearance. A token that repeats appears once per
// occurrence, so each occurrence is consumed independently by Expand.
func ExtractPlaceholders(template string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// Expand substitutes params into template. Each extracted placeholder
// replaces the next literal occurrence of its {name} token, left to right.
// An empty params map returns the template unchanged, and placeholders
// without a matching key are left literal. Substitution is best effort;
// missing keys are never an error.
func Expand(template string, params Params) string {
	if len(params) == 0 {
		return template
	}

	out := template
	for _, name := range ExtractPlaceholders(template) {
		value, ok := params[name]
		if !ok {
			continue
		}
		out = strings.Replace(out, "{"+name+"}", fmt.Sprintf("%v", value), 1)
	}
	return out
}

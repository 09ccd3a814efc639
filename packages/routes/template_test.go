package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPlaceholders(t *testing.T) {
	tests := []struct {
		name     string
		template string
		expected []string
	}{
		{
			name:     "two placeholders in order",
			template: "/users/{id}/posts/{postId}",
			expected: []string{"id", "postId"},
		},
		{
			name:     "repeated token appears per occurrence",
			template: "/{section}/{id}/{section}",
			expected: []string{"section", "id", "section"},
		},
		{
			name:     "dotted identifier",
			template: "/users/{user.id}",
			expected: []string{"user.id"},
		},
		{
			name:     "no placeholders",
			template: "/users/all",
			expected: nil,
		},
		{
			name:     "empty template",
			template: "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractPlaceholders(tt.template))
		})
	}
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name     string
		template string
		params   Params
		expected string
	}{
		{
			name:     "single substitution",
			template: "/users/{id}",
			params:   Params{"id": "42"},
			expected: "/users/42",
		},
		{
			name:     "empty params leaves template unchanged",
			template: "/users/{id}",
			params:   Params{},
			expected: "/users/{id}",
		},
		{
			name:     "nil params leaves template unchanged",
			template: "/users/{id}",
			params:   nil,
			expected: "/users/{id}",
		},
		{
			name:     "missing key left literal",
			template: "/users/{id}/posts/{postId}",
			params:   Params{"id": "7"},
			expected: "/users/7/posts/{postId}",
		},
		{
			name:     "repeated token replaced at every occurrence",
			template: "/{v}/items/{v}",
			params:   Params{"v": "2"},
			expected: "/2/items/2",
		},
		{
			name:     "non-string values coerced",
			template: "/users/{id}/page/{n}",
			params:   Params{"id": 42, "n": 3},
			expected: "/users/42/page/3",
		},
		{
			name:     "dotted identifier",
			template: "/orgs/{org.id}/members",
			params:   Params{"org.id": "acme"},
			expected: "/orgs/acme/members",
		},
		{
			name:     "no placeholders passes through",
			template: "/health",
			params:   Params{"id": "1"},
			expected: "/health",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Expand(tt.template, tt.params))
		})
	}
}

package markets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bazarkua/polydebate/internal/gamma"
)

func TestResolveCategory(t *testing.T) {
	tests := []struct {
		name string
		tags []gamma.Tag
		want string
	}{
		{
			name: "no tags",
			tags: nil,
			want: "Other",
		},
		{
			name: "priority beats main even on a later tag",
			tags: []gamma.Tag{
				{Label: "Politics", Slug: "politics"},
				{Label: "Breaking News", Slug: "breaking-news"},
			},
			want: "Breaking",
		},
		{
			name: "trending",
			tags: []gamma.Tag{{Label: "Trending", Slug: "trending"}},
			want: "Trending",
		},
		{
			name: "exact slug match",
			tags: []gamma.Tag{{Label: "Cryptocurrency", Slug: "crypto"}},
			want: "Crypto",
		},
		{
			name: "substring match on label",
			tags: []gamma.Tag{{Label: "US Politics", Slug: "us-elections"}},
			want: "Politics",
		},
		{
			name: "earlier rule wins over later",
			tags: []gamma.Tag{{Label: "Crypto Business", Slug: "crypto-business"}},
			want: "Crypto",
		},
		{
			name: "bare string tag",
			tags: []gamma.Tag{{Label: "sports", Slug: "sports"}},
			want: "Sports",
		},
		{
			name: "unmatched falls back to title cased first label",
			tags: []gamma.Tag{{Label: "obscure thing", Slug: "obscure-thing"}},
			want: "Obscure Thing",
		},
		{
			name: "fallback uses slug when label is empty",
			tags: []gamma.Tag{{Slug: "mystery"}},
			want: "Mystery",
		},
		{
			name: "tags with no text",
			tags: []gamma.Tag{{}},
			want: "Other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveCategory(tt.tags))
		})
	}
}

func TestFirstTagID(t *testing.T) {
	assert.Empty(t, firstTagID(nil))
	assert.Empty(t, firstTagID([]gamma.Tag{{Label: "bare", Slug: "bare"}}))
	assert.Equal(t, "42", firstTagID([]gamma.Tag{{ID: "42", Label: "Crypto"}}))
}

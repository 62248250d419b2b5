package cms_test

import (
	"testing"

	cms "github.com/goliatone/go-cms"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Simple title",
			input: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "Mixed case and punctuation",
			input: "Go, the Language!",
			want:  "go-the-language",
		},
		{
			name:  "Accented characters",
			input: "Crème Brûlée",
			want:  "creme-brulee",
		},
		{
			name:  "Consecutive separators collapse",
			input: "one -- two __ three",
			want:  "one-two-three",
		},
		{
			name:  "Leading and trailing separators",
			input: "  padded  ",
			want:  "padded",
		},
		{
			name:  "Numbers survive",
			input: "Top 10 Articles of 2024",
			want:  "top-10-articles-of-2024",
		},
		{
			name:  "Empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cms.Slugify(tt.input))
		})
	}
}

func TestUniqueSlug(t *testing.T) {
	t.Run("returns the plain slug when free", func(t *testing.T) {
		got := cms.UniqueSlug("My Product", []string{"other"}, 100)
		assert.Equal(t, "my-product", got)
	})

	t.Run("appends a numeric suffix on collision", func(t *testing.T) {
		got := cms.UniqueSlug("My Product", []string{"my-product"}, 100)
		assert.Equal(t, "my-product-1", got)
	})

	t.Run("keeps counting past taken suffixes", func(t *testing.T) {
		existing := []string{"my-product", "my-product-1", "my-product-2"}
		got := cms.UniqueSlug("My Product", existing, 100)
		assert.Equal(t, "my-product-3", got)
	})

	t.Run("respects the length limit", func(t *testing.T) {
		got := cms.UniqueSlug("A Very Long Product Name Indeed", nil, 10)
		assert.LessOrEqual(t, len(got), 10)
	})

	t.Run("suffix fits inside the length limit", func(t *testing.T) {
		base := cms.UniqueSlug("A Very Long Product Name Indeed", nil, 10)
		got := cms.UniqueSlug("A Very Long Product Name Indeed", []string{base}, 10)
		assert.LessOrEqual(t, len(got), 10)
		assert.NotEqual(t, base, got)
	})
}

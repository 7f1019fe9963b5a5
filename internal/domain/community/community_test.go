package community

import (
	"strings"
	"testing"

	"github.com/linskybing/ticketboard/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Go Developers":      "go-developers",
		"  UI / UX  Design ": "ui-ux-design",
		"Café & Crème":       "caf-cr-me",
		"---":                "",
		"web3":               "web3",
		"already-a-slug":     "already-a-slug",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestCreateCommunityInputDerivesSlug(t *testing.T) {
	in := CreateCommunityInput{Name: " Go Developers "}
	require.NoError(t, in.Normalize())
	assert.Equal(t, "Go Developers", in.Name)
	assert.Equal(t, "go-developers", in.Slug)

	in = CreateCommunityInput{Name: "Gophers", Slug: "Golang Talk"}
	require.NoError(t, in.Normalize())
	assert.Equal(t, "golang-talk", in.Slug)

	in = CreateCommunityInput{Name: "日本語"}
	assert.ErrorIs(t, in.Normalize(), apperrors.ErrValidation)
}

func TestCreatePostInput(t *testing.T) {
	in := CreatePostInput{Title: "  Hello  ", Content: " first post "}
	require.NoError(t, in.Normalize())
	assert.Equal(t, "Hello", in.Title)
	assert.Equal(t, "first post", in.Content)

	blank := CreatePostInput{Title: " "}
	assert.ErrorIs(t, blank.Normalize(), apperrors.ErrValidation)

	long := CreatePostInput{Title: strings.Repeat("ü", MaxTitleLength+1)}
	assert.ErrorIs(t, long.Normalize(), apperrors.ErrValidation)
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopalnp/personal-site-backend/errs"
)

func TestBlogPostValidateDraft(t *testing.T) {
	t.Run("draft with only a title is valid", func(t *testing.T) {
		post := BlogPost{Title: "Work in progress", Status: StatusDraft}
		assert.NoError(t, post.Validate())
	})

	t.Run("draft without a title is rejected", func(t *testing.T) {
		post := BlogPost{Status: StatusDraft}
		err := post.Validate()
		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
		assert.Contains(t, err.Error(), "Title is required even for drafts")
	})
}

func TestBlogPostValidatePublished(t *testing.T) {
	full := BlogPost{
		Title:   "Launch day",
		Date:    "2024-06-01",
		Content: "We shipped.",
		Image:   "/images/launch.jpg",
		Author:  "Gopal",
		Status:  StatusPublished,
	}

	t.Run("fully filled post is valid", func(t *testing.T) {
		assert.NoError(t, full.Validate())
	})

	missingCases := []struct {
		field string
		wreck func(*BlogPost)
	}{
		{"title", func(p *BlogPost) { p.Title = "" }},
		{"date", func(p *BlogPost) { p.Date = "" }},
		{"content", func(p *BlogPost) { p.Content = "" }},
		{"image", func(p *BlogPost) { p.Image = "" }},
		{"author", func(p *BlogPost) { p.Author = "" }},
	}

	for _, tc := range missingCases {
		t.Run("missing "+tc.field, func(t *testing.T) {
			post := full
			tc.wreck(&post)
			err := post.Validate()
			require.Error(t, err)
			assert.True(t, errs.IsValidation(err))
			assert.Contains(t, err.Error(), tc.field+" is required")
		})
	}
}

func TestBlogPostValidateStatus(t *testing.T) {
	post := BlogPost{Title: "Anything", Status: "archived"}
	err := post.Validate()
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestBlogPostPublished(t *testing.T) {
	assert.True(t, BlogPost{Status: StatusPublished}.Published())
	assert.False(t, BlogPost{Status: StatusDraft}.Published())
	assert.False(t, BlogPost{}.Published())
}

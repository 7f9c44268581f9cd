package services

import (
	"github.com/gopalnp/personal-site-backend/models"
)

// IsBlogPostVisible decides whether a single blog post is servable to the
// caller. Drafts are only servable to authenticated callers; everything
// else on the site (news, videos, gallery, timeline) has no draft concept
// and is always public.
//
// This is applied on direct-by-id fetches as well as listings: a draft
// reached through its URL must be rejected, not merely hidden from lists.
func IsBlogPostVisible(post models.BlogPost, authenticated bool) bool {
	if authenticated {
		return true
	}
	return post.Published()
}

// IncludeDrafts reports whether a blog listing may include drafts: the
// caller must both request them and hold a session.
func IncludeDrafts(requested, authenticated bool) bool {
	return requested && authenticated
}

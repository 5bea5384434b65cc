package services_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkfield/backend/internal/apperrors"
	"github.com/linkfield/backend/internal/models"
	"github.com/linkfield/backend/internal/services"
)

func TestCreatePost(t *testing.T) {
	f := newFixture(t)
	author := f.createUser(t, "Alice", "alice@example.com")

	post, err := f.feed.CreatePost(author.ID, models.CreatePostRequest{
		Content:  "  Shipping something new  ",
		ImageURL: "https://example.com/pic.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "Shipping something new", post.Content)
	assert.Equal(t, "https://example.com/pic.png", post.ImageURL)
	assert.Equal(t, 0, post.LikesCount)
	assert.Equal(t, 0, post.CommentsCount)
	assert.Equal(t, author.ID, post.Author.ID)
	assert.Equal(t, "Alice", post.Author.Name)
}

func TestCreatePostValidation(t *testing.T) {
	f := newFixture(t)
	author := f.createUser(t, "Alice", "alice@example.com")

	_, err := f.feed.CreatePost(author.ID, models.CreatePostRequest{Content: "   "})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeEmptyContent, apperrors.As(err).Code)

	_, err = f.feed.CreatePost(author.ID, models.CreatePostRequest{
		Content: strings.Repeat("a", services.MaxPostLength+1),
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeContentTooLong, apperrors.As(err).Code)

	var count int64
	f.db.Model(&models.Post{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreatePostAuthorMissing(t *testing.T) {
	f := newFixture(t)

	_, err := f.feed.CreatePost(9999, models.CreatePostRequest{Content: "hi"})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeUserNotFound, apperrors.As(err).Code)
}

func TestListFeedNewestFirstWithLikeFlags(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")
	bob := f.createUser(t, "Bob", "bob@example.com")

	base := time.Now().UTC().Truncate(time.Millisecond)
	older := f.createPostAt(t, alice.ID, "older", base.Add(-time.Hour))
	newer := f.createPostAt(t, bob.ID, "newer", base)

	_, err := f.engagement.ToggleLike(bob.ID, older.ID)
	require.NoError(t, err)

	feed, err := f.feed.ListFeed(bob.ID)
	require.NoError(t, err)
	require.Len(t, feed, 2)

	assert.Equal(t, newer.ID, feed[0].ID)
	assert.Equal(t, "Bob", feed[0].Author.Name)
	assert.False(t, feed[0].IsLiked)

	assert.Equal(t, older.ID, feed[1].ID)
	assert.Equal(t, "Alice", feed[1].Author.Name)
	assert.True(t, feed[1].IsLiked)
	assert.Equal(t, 1, feed[1].LikesCount)
}

func TestListFeedAnonymousViewer(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")
	post := f.createPost(t, alice.ID, "hello")

	_, err := f.engagement.ToggleLike(alice.ID, post.ID)
	require.NoError(t, err)

	feed, err := f.feed.ListFeed(services.AnonymousViewer)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.False(t, feed[0].IsLiked)
	assert.Equal(t, 1, feed[0].LikesCount)
}

func TestListUserPosts(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")
	bob := f.createUser(t, "Bob", "bob@example.com")

	base := time.Now().UTC().Truncate(time.Millisecond)
	f.createPostAt(t, alice.ID, "alice older", base.Add(-time.Hour))
	f.createPostAt(t, alice.ID, "alice newer", base)
	f.createPost(t, bob.ID, "bob only")

	posts, err := f.feed.ListUserPosts(alice.ID, services.AnonymousViewer)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "alice newer", posts[0].Content)
	assert.Equal(t, "alice older", posts[1].Content)
	for _, p := range posts {
		assert.Equal(t, alice.ID, p.Author.ID)
	}
}

func TestListUserPostsTargetMissing(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "Alice", "alice@example.com")

	_, err := f.feed.ListUserPosts(9999, alice.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeUserNotFound, apperrors.As(err).Code)
}

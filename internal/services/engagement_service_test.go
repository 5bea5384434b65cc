package services_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkfield/backend/internal/apperrors"
	"github.com/linkfield/backend/internal/models"
)

func TestToggleLikeOnce(t *testing.T) {
	f := newFixture(t)
	author := f.createUser(t, "Alice", "alice@example.com")
	liker := f.createUser(t, "Bob", "bob@example.com")
	post := f.createPost(t, author.ID, "Hello")

	result, err := f.engagement.ToggleLike(liker.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, result.IsLiked)
	assert.Equal(t, 1, result.LikesCount)
	assert.Equal(t, 1, result.Post.LikesCount)

	var likeRows int64
	f.db.Model(&models.Like{}).Where("user_id = ? AND post_id = ?", liker.ID, post.ID).Count(&likeRows)
	assert.Equal(t, int64(1), likeRows)
}

func TestToggleLikeTwiceReturnsToBaseline(t *testing.T) {
	f := newFixture(t)
	author := f.createUser(t, "Alice", "alice@example.com")
	liker := f.createUser(t, "Bob", "bob@example.com")
	post := f.createPost(t, author.ID, "Hello")

	first, err := f.engagement.ToggleLike(liker.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, first.IsLiked)
	assert.Equal(t, 1, first.LikesCount)

	second, err := f.engagement.ToggleLike(liker.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, second.IsLiked)
	assert.Equal(t, 0, second.LikesCount)

	var likeRows int64
	f.db.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&likeRows)
	assert.Equal(t, int64(0), likeRows)
}

func TestToggleLikePostMissing(t *testing.T) {
	f := newFixture(t)
	liker := f.createUser(t, "Bob", "bob@example.com")

	_, err := f.engagement.ToggleLike(liker.ID, 9999)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodePostNotFound, apperrors.As(err).Code)
}

func TestAddCommentIncrementsCounter(t *testing.T) {
	f := newFixture(t)
	author := f.createUser(t, "Alice", "alice@example.com")
	commenter := f.createUser(t, "Bob", "bob@example.com")
	post := f.createPost(t, author.ID, "Hello")

	comment, err := f.engagement.AddComment(commenter.ID, post.ID, "  Nice post  ")
	require.NoError(t, err)
	assert.Equal(t, "Nice post", comment.Content)
	assert.Equal(t, commenter.ID, comment.User.ID)

	var refreshed models.Post
	require.NoError(t, f.db.First(&refreshed, post.ID).Error)
	assert.Equal(t, 1, refreshed.CommentsCount)
}

func TestAddCommentValidation(t *testing.T) {
	f := newFixture(t)
	author := f.createUser(t, "Alice", "alice@example.com")
	post := f.createPost(t, author.ID, "Hello")

	_, err := f.engagement.AddComment(author.ID, post.ID, "   ")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeEmptyContent, apperrors.As(err).Code)

	_, err = f.engagement.AddComment(author.ID, post.ID, strings.Repeat("a", 2001))
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeContentTooLong, apperrors.As(err).Code)

	// Nothing was written and the counter is untouched.
	var refreshed models.Post
	require.NoError(t, f.db.First(&refreshed, post.ID).Error)
	assert.Equal(t, 0, refreshed.CommentsCount)
}

func TestListCommentsOldestFirst(t *testing.T) {
	f := newFixture(t)
	author := f.createUser(t, "Alice", "alice@example.com")
	commenter := f.createUser(t, "Bob", "bob@example.com")
	post := f.createPost(t, author.ID, "Hello")

	base := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, f.db.Create(&models.Comment{
		UserID: author.ID, PostID: post.ID, Content: "first", CreatedAt: base.Add(-time.Minute),
	}).Error)
	require.NoError(t, f.db.Create(&models.Comment{
		UserID: commenter.ID, PostID: post.ID, Content: "second", CreatedAt: base,
	}).Error)

	comments, err := f.engagement.ListComments(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "second", comments[1].Content)
	assert.Equal(t, "Bob", comments[1].User.Name)
}

func TestAddCommentAppearsLast(t *testing.T) {
	f := newFixture(t)
	author := f.createUser(t, "Alice", "alice@example.com")
	post := f.createPost(t, author.ID, "Hello")

	require.NoError(t, f.db.Create(&models.Comment{
		UserID: author.ID, PostID: post.ID, Content: "earlier",
		CreatedAt: time.Now().UTC().Add(-time.Hour).Truncate(time.Millisecond),
	}).Error)
	require.NoError(t, f.db.Model(&models.Post{}).Where("id = ?", post.ID).
		UpdateColumn("comments_count", 1).Error)

	_, err := f.engagement.AddComment(author.ID, post.ID, "latest")
	require.NoError(t, err)

	comments, err := f.engagement.ListComments(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "latest", comments[len(comments)-1].Content)
}

func TestListLikesNewestFirst(t *testing.T) {
	f := newFixture(t)
	author := f.createUser(t, "Alice", "alice@example.com")
	u1 := f.createUser(t, "Bob", "bob@example.com")
	u2 := f.createUser(t, "Cara", "cara@example.com")
	post := f.createPost(t, author.ID, "Hello")

	base := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, f.db.Create(&models.Like{
		UserID: u1.ID, PostID: post.ID, CreatedAt: base.Add(-time.Minute),
	}).Error)
	require.NoError(t, f.db.Create(&models.Like{
		UserID: u2.ID, PostID: post.ID, CreatedAt: base,
	}).Error)

	likes, err := f.engagement.ListLikes(post.ID)
	require.NoError(t, err)
	require.Len(t, likes, 2)
	assert.Equal(t, u2.ID, likes[0].User.ID)
	assert.Equal(t, u1.ID, likes[1].User.ID)
}

package service

import (
	"context"
	"testing"

	"Tweeter/pkg/authz"
	"Tweeter/pkg/pagination"
	"Tweeter/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_ListUserAndSearch(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")

	tweet, err := env.tweets.Create(ctx, alice.ID, "hello")
	require.NoError(t, err)
	for _, c := range []struct {
		caller Caller
		text   string
	}{
		{alice, "hi everyone"},
		{alice, "goodbye"},
		{bob, "hi alice"},
	} {
		_, err := env.comments.Create(ctx, c.caller.ID, tweet.ID, c.text)
		require.NoError(t, err)
	}

	params := pagination.Params{Page: 1, PageSize: 10}
	items, total, err := env.comments.List(ctx, 0, tweet.ID, types.CommentQuery{User: "alice", Search: "hi"}, params)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "hi everyone", items[0].Text)
	assert.Equal(t, "alice", items[0].User)

	_, total, err = env.comments.List(ctx, 0, tweet.ID, types.CommentQuery{Search: "hi"}, params)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	_, _, err = env.comments.List(ctx, 0, 1, types.CommentQuery{}, params)
	assert.ErrorIs(t, err, ErrTweetNotFound)
}

func TestCommentService_ScopedToTweet(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	alice := env.register(t, "alice")

	first, err := env.tweets.Create(ctx, alice.ID, "first")
	require.NoError(t, err)
	second, err := env.tweets.Create(ctx, alice.ID, "second")
	require.NoError(t, err)
	comment, err := env.comments.Create(ctx, alice.ID, first.ID, "on first")
	require.NoError(t, err)
	assert.Equal(t, first.ID, comment.TweetID)

	_, err = env.comments.Get(ctx, 0, second.ID, comment.ID)
	assert.ErrorIs(t, err, ErrCommentNotFound)

	_, err = env.comments.Create(ctx, alice.ID, 1, "nowhere")
	assert.ErrorIs(t, err, ErrTweetNotFound)
}

func TestCommentService_OnlyAuthorMutates(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")

	tweet, err := env.tweets.Create(ctx, alice.ID, "hello")
	require.NoError(t, err)
	comment, err := env.comments.Create(ctx, bob.ID, tweet.ID, "bob says")
	require.NoError(t, err)

	text := "alice edits"
	_, err = env.comments.Update(ctx, alice.ID, tweet.ID, comment.ID, &text)
	assert.ErrorIs(t, err, authz.ErrForbidden)
	assert.ErrorIs(t, env.comments.Delete(ctx, alice.ID, tweet.ID, comment.ID), authz.ErrForbidden)

	text = "bob edits"
	updated, err := env.comments.Update(ctx, bob.ID, tweet.ID, comment.ID, &text)
	require.NoError(t, err)
	assert.Equal(t, "bob edits", updated.Text)

	require.NoError(t, env.comments.Delete(ctx, bob.ID, tweet.ID, comment.ID))
	_, err = env.comments.Get(ctx, 0, tweet.ID, comment.ID)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

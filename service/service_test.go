package service

import (
	"context"
	"testing"

	"Tweeter/config"
	"Tweeter/dao"
	"Tweeter/pkg/authz"
	"Tweeter/pkg/database"
	"Tweeter/pkg/lock"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db       *gorm.DB
	auth     *AuthService
	tweets   *TweetService
	comments *CommentService
	reaction *ReactionService
}

func newTestEnv(t *testing.T, locker lock.Locker) *testEnv {
	t.Helper()
	conf := config.Default()
	conf.Database.Path = ":memory:"
	conf.Jwt.Secret = "test-secret"

	db, err := database.NewDB(conf)
	require.NoError(t, err)
	require.NoError(t, dao.Migrate(context.Background(), db))

	guard, err := authz.NewGuard()
	require.NoError(t, err)
	if locker == nil {
		locker = lock.NopLocker{}
	}

	users := dao.NewUsers(db)
	tweetDAO := dao.NewTweetDAO(db)
	commentDAO := dao.NewComment(db)
	tweetReactions := dao.NewTweetReactionDAO(db)
	commentReactions := dao.NewCommentReactionDAO(db)

	return &testEnv{
		db:   db,
		auth: &AuthService{Config: conf, UsersRepo: users},
		tweets: &TweetService{
			TweetDAO:    tweetDAO,
			CommentDAO:  commentDAO,
			UsersRepo:   users,
			ReactionDAO: tweetReactions,
			Guard:       guard,
		},
		comments: &CommentService{
			TweetDAO:    tweetDAO,
			CommentDAO:  commentDAO,
			UsersRepo:   users,
			ReactionDAO: commentReactions,
			Guard:       guard,
		},
		reaction: &ReactionService{
			TweetDAO:           tweetDAO,
			CommentDAO:         commentDAO,
			StatusDAO:          dao.NewReactionStatusDAO(db),
			TweetReactionDAO:   tweetReactions,
			CommentReactionDAO: commentReactions,
			Locker:             locker,
		},
	}
}

func (e *testEnv) register(t *testing.T, username string) Caller {
	t.Helper()
	user, err := e.auth.Register(context.Background(), username, "secret123")
	require.NoError(t, err)
	return Caller{ID: user.ID, Username: user.Username}
}

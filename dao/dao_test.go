package dao

import (
	"context"
	"testing"

	"Tweeter/config"
	"Tweeter/models"
	"Tweeter/pkg/database"
	"Tweeter/pkg/snowflake"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conf := config.Default()
	conf.Database.Path = ":memory:"

	db, err := database.NewDB(conf)
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{ID: snowflake.GenID(), Username: username, Password: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedTweet(t *testing.T, db *gorm.DB, userID uint64, text string) *models.Tweet {
	t.Helper()
	tweet := &models.Tweet{ID: snowflake.GenID(), UserID: userID, Text: text}
	require.NoError(t, db.Create(tweet).Error)
	return tweet
}

func seedComment(t *testing.T, db *gorm.DB, tweetID, userID uint64, text string) *models.Comment {
	t.Helper()
	comment := &models.Comment{ID: snowflake.GenID(), TweetID: tweetID, UserID: userID, Text: text}
	require.NoError(t, db.Create(comment).Error)
	return comment
}

func statusID(t *testing.T, db *gorm.DB, slug string) uint64 {
	t.Helper()
	status, err := NewReactionStatusDAO(db).FindBySlug(context.Background(), slug)
	require.NoError(t, err)
	return status.ID
}

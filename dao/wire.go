package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewTweetDAO,
	NewComment,
	NewReactionStatusDAO,
	NewTweetReactionDAO,
	NewCommentReactionDAO,
)

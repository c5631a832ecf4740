package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(TweetService), "*"),
	wire.Bind(new(ITweetService), new(*TweetService)),

	wire.Struct(new(CommentService), "*"),
	wire.Bind(new(ICommentService), new(*CommentService)),

	wire.Struct(new(ReactionService), "*"),
	wire.Bind(new(IReactionService), new(*ReactionService)),
)

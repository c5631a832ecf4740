package server

import (
	"Tweeter/handler"
)

type Handlers struct {
	Auth     *handler.Auth
	Tweet    *handler.Tweet
	Comments *handler.CommentsHandler
	Reaction *handler.Reaction
}

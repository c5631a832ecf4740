package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Tweeter/config"
	"Tweeter/dao"
	"Tweeter/middleware"
	"Tweeter/pkg/authz"
	"Tweeter/pkg/database"
	"Tweeter/pkg/lock"
	"Tweeter/pkg/pagination"
	"Tweeter/pkg/response"
	"Tweeter/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type testServer struct {
	t      *testing.T
	engine *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, middleware.RegisterValidators())

	conf := config.Default()
	conf.Database.Path = ":memory:"
	conf.Jwt.Secret = "test-secret"

	db, err := database.NewDB(conf)
	require.NoError(t, err)
	require.NoError(t, dao.Migrate(context.Background(), db))
	guard, err := authz.NewGuard()
	require.NoError(t, err)

	users := dao.NewUsers(db)
	tweetDAO := dao.NewTweetDAO(db)
	commentDAO := dao.NewComment(db)
	tweetReactions := dao.NewTweetReactionDAO(db)
	commentReactions := dao.NewCommentReactionDAO(db)
	paginator := pagination.New(conf.Pagination)

	authService := &service.AuthService{Config: conf, UsersRepo: users}
	handlers := []interface{ RegisterRouter(gin.IRouter) }{
		&Auth{Config: conf, AuthService: authService},
		&Tweet{
			AuthService: authService,
			TweetService: &service.TweetService{
				TweetDAO:    tweetDAO,
				CommentDAO:  commentDAO,
				UsersRepo:   users,
				ReactionDAO: tweetReactions,
				Guard:       guard,
			},
			Paginator: paginator,
		},
		&CommentsHandler{
			AuthService: authService,
			CommentsService: &service.CommentService{
				TweetDAO:    tweetDAO,
				CommentDAO:  commentDAO,
				UsersRepo:   users,
				ReactionDAO: commentReactions,
				Guard:       guard,
			},
			Paginator: paginator,
		},
		&Reaction{
			AuthService: authService,
			ReactionService: &service.ReactionService{
				TweetDAO:           tweetDAO,
				CommentDAO:         commentDAO,
				StatusDAO:          dao.NewReactionStatusDAO(db),
				TweetReactionDAO:   tweetReactions,
				CommentReactionDAO: commentReactions,
				Locker:             lock.NopLocker{},
			},
		},
	}

	r := gin.New()
	r.Use(response.ErrorMiddleware())
	api := r.Group("/api")
	for _, h := range handlers {
		h.RegisterRouter(api)
	}
	return &testServer{t: t, engine: r}
}

// do 发起请求，token 为空时匿名
func (s *testServer) do(method, path, body, token string) *httptest.ResponseRecorder {
	s.t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

// login 注册并登录，返回 token
func (s *testServer) login(username string) string {
	s.t.Helper()
	body := `{"username":"` + username + `","password":"secret123"}`
	w := s.do(http.MethodPost, "/api/auth/register/", body, "")
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/auth/login/", body, "")
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	token := gjson.Get(w.Body.String(), "token").String()
	require.NotEmpty(s.t, token)
	return token
}

func (s *testServer) createTweet(token, text string) string {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/tweet/", `{"text":"`+text+`"}`, token)
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	return gjson.Get(w.Body.String(), "id").String()
}

func (s *testServer) createComment(token, tweetID, text string) string {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/tweet/"+tweetID+"/comments/", `{"text":"`+text+`"}`, token)
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	return gjson.Get(w.Body.String(), "id").String()
}

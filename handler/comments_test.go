package handler

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func resultTexts(body string) []string {
	var texts []string
	for _, r := range gjson.Get(body, "results").Array() {
		texts = append(texts, r.Get("text").String())
	}
	return texts
}

func TestComments_FilterByUserAndSearch(t *testing.T) {
	s := newTestServer(t)
	alice := s.login("alice")
	bob := s.login("bob")
	id := s.createTweet(alice, "hello")
	other := s.createTweet(bob, "other")

	s.createComment(alice, id, "hi all")
	s.createComment(alice, id, "see you")
	s.createComment(bob, id, "hi alice")
	s.createComment(alice, other, "hi elsewhere")

	tests := []struct {
		name  string
		query url.Values
		want  []string
	}{
		{"all", url.Values{}, []string{"hi all", "see you", "hi alice"}},
		{"user and search", url.Values{"user": {"alice"}, "search": {"hi"}}, []string{"hi all"}},
		{"user only", url.Values{"user": {"bob"}}, []string{"hi alice"}},
		{"search only", url.Values{"search": {"HI"}}, []string{"hi all", "hi alice"}},
		{"no match", url.Values{"user": {"carol"}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(http.MethodGet, "/api/tweet/"+id+"/comments/?"+tt.query.Encode(), "", "")
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.ElementsMatch(t, tt.want, resultTexts(w.Body.String()))
			assert.Equal(t, int64(len(tt.want)), gjson.Get(w.Body.String(), "count").Int())
		})
	}
}

func TestComments_CreateUsesPathTweet(t *testing.T) {
	s := newTestServer(t)
	alice := s.login("alice")
	id := s.createTweet(alice, "hello")

	w := s.do(http.MethodPost, "/api/tweet/"+id+"/comments/", `{"text":"hi","tweet_id":"1","user":"bob"}`, alice)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	res := gjson.Parse(w.Body.String())
	assert.Equal(t, id, res.Get("tweet_id").String())
	assert.Equal(t, "alice", res.Get("user").String())

	w = s.do(http.MethodPost, "/api/tweet/1/comments/", `{"text":"hi"}`, alice)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodPost, "/api/tweet/"+id+"/comments/", `{"text":"hi"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestComments_DetailScopedToTweet(t *testing.T) {
	s := newTestServer(t)
	alice := s.login("alice")
	id := s.createTweet(alice, "hello")
	other := s.createTweet(alice, "other")
	commentID := s.createComment(alice, id, "hi")

	w := s.do(http.MethodGet, "/api/tweet/"+id+"/comments/"+commentID+"/", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hi", gjson.Get(w.Body.String(), "text").String())

	w = s.do(http.MethodGet, "/api/tweet/"+other+"/comments/"+commentID+"/", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "comment not found", gjson.Get(w.Body.String(), "error").String())
}

func TestComments_OnlyAuthorMutates(t *testing.T) {
	s := newTestServer(t)
	alice := s.login("alice")
	bob := s.login("bob")
	id := s.createTweet(alice, "hello")
	commentID := s.createComment(bob, id, "bob here")
	path := "/api/tweet/" + id + "/comments/" + commentID + "/"

	// 推文作者也不能改别人的评论
	w := s.do(http.MethodPatch, path, `{"text":"alice was here"}`, alice)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = s.do(http.MethodDelete, path, "", alice)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodPut, path, `{"text":"bob edited"}`, bob)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "bob edited", gjson.Get(w.Body.String(), "text").String())

	w = s.do(http.MethodDelete, path, "", bob)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = s.do(http.MethodGet, path, "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

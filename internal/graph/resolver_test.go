package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"linkfeed_srv/internal/models"
	"linkfeed_srv/internal/service"
	"linkfeed_srv/internal/storage"

	"github.com/graph-gophers/graphql-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type linkJSON struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

func setupTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func setupFeedSchema(t *testing.T) *graphql.Schema {
	t.Helper()
	logger := setupTestLogger()
	svc := service.NewLinkService(storage.NewMemoryStore(models.SeedLink()), logger)
	schema, err := NewFeedSchema(svc, logger)
	require.NoError(t, err)
	return schema
}

func execOK(t *testing.T, schema *graphql.Schema, req Request, out interface{}) {
	t.Helper()
	resp := Exec(context.Background(), schema, req)
	require.Empty(t, resp.Errors)
	require.NoError(t, json.Unmarshal(resp.Data, out))
}

func feed(t *testing.T, schema *graphql.Schema) []linkJSON {
	t.Helper()
	var data struct {
		Feed []linkJSON `json:"feed"`
	}
	execOK(t, schema, Request{Query: `{ feed { id url description } }`}, &data)
	return data.Feed
}

func post(t *testing.T, schema *graphql.Schema, url, description string) linkJSON {
	t.Helper()
	var data struct {
		Post linkJSON `json:"post"`
	}
	execOK(t, schema, Request{
		Query:     `mutation Post($url: String!, $description: String!) { post(url: $url, description: $description) { id url description } }`,
		Variables: map[string]interface{}{"url": url, "description": description},
	}, &data)
	return data.Post
}

func TestFeedReturnsSeed(t *testing.T) {
	schema := setupFeedSchema(t)

	assert.Equal(t, []linkJSON{{
		ID:          "link-0",
		URL:         "www.howtographql.com",
		Description: "Fullstack tutorial for GraphQL",
	}}, feed(t, schema))
}

func TestPostAppendsToFeed(t *testing.T) {
	schema := setupFeedSchema(t)

	created := post(t, schema, "a", "b")
	assert.Equal(t, linkJSON{ID: "link-1", URL: "a", Description: "b"}, created)

	links := feed(t, schema)
	require.Len(t, links, 2)
	assert.Equal(t, created, links[1])
}

func TestPostInlineArguments(t *testing.T) {
	schema := setupFeedSchema(t)

	var data struct {
		Post linkJSON `json:"post"`
	}
	execOK(t, schema, Request{Query: `mutation { post(url: "a", description: "b") { id } }`}, &data)
	assert.Equal(t, "link-1", data.Post.ID)
}

func TestSequentialPostsIncreaseIDs(t *testing.T) {
	schema := setupFeedSchema(t)

	for i := 1; i <= 3; i++ {
		created := post(t, schema, fmt.Sprintf("u%d", i), "d")
		assert.Equal(t, fmt.Sprintf("link-%d", i), created.ID)
	}
	assert.Len(t, feed(t, schema), 4)
}

func TestInfo(t *testing.T) {
	schema := setupFeedSchema(t)

	var data struct {
		Info string `json:"info"`
	}
	execOK(t, schema, Request{Query: `{ info }`}, &data)
	assert.Equal(t, InfoMessage, data.Info)
}

func TestTestMutationReturnsFirstLink(t *testing.T) {
	schema := setupFeedSchema(t)
	post(t, schema, "a", "b")

	var data struct {
		Test linkJSON `json:"test"`
	}
	execOK(t, schema, Request{Query: `mutation { test(url: "x") { id url } }`}, &data)
	assert.Equal(t, "link-0", data.Test.ID)
	assert.Equal(t, "www.howtographql.com", data.Test.URL)

	assert.Len(t, feed(t, schema), 2)
}

func TestLibraryErrors(t *testing.T) {
	schema := setupFeedSchema(t)

	tests := []struct {
		name  string
		query string
	}{
		{"syntax", `{ feed { id `},
		{"unknown field", `{ links }`},
		{"missing argument", `mutation { post(url: "a") { id } }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Exec(context.Background(), schema, Request{Query: tt.query})
			assert.NotEmpty(t, resp.Errors)
		})
	}

	// Failed requests never touch the feed.
	assert.Len(t, feed(t, schema), 1)
}

func TestHello(t *testing.T) {
	schema, err := NewHelloSchema(setupTestLogger())
	require.NoError(t, err)

	var data struct {
		Hello string `json:"hello"`
	}
	execOK(t, schema, Request{Query: HelloQuery}, &data)
	assert.True(t, strings.HasPrefix(data.Hello, "hello world "))
}

func TestHelloResolverUsesClock(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	r := &HelloResolver{now: func() time.Time { return at }}

	assert.Equal(t, "hello world 1700000000123", *r.Hello())
}

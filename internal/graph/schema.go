package graph

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"linkfeed_srv/internal/service"

	"github.com/graph-gophers/graphql-go"
	"github.com/sirupsen/logrus"
)

// HelloSchema is the single-field schema of the hello demo
const HelloSchema = `
	schema {
		query: Query
	}

	type Query {
		hello: String
	}
`

// FeedSchema describes the link feed API
const FeedSchema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		info: String!
		feed: [Link!]!
	}

	type Mutation {
		post(url: String!, description: String!): Link!
		test(url: String!): Link!
	}

	type Link {
		id: ID!
		description: String!
		url: String!
	}
`

const maxParallelism = 20

// NewHelloSchema parses HelloSchema with a resolver that stamps the current time
func NewHelloSchema(logger *logrus.Logger) (*graphql.Schema, error) {
	schema, err := graphql.ParseSchema(HelloSchema, &HelloResolver{now: time.Now}, schemaOpts(logger)...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse hello schema: %w", err)
	}
	return schema, nil
}

// NewFeedSchema parses FeedSchema with resolvers backed by the link service
func NewFeedSchema(svc service.LinkService, logger *logrus.Logger) (*graphql.Schema, error) {
	schema, err := graphql.ParseSchema(FeedSchema, NewResolver(svc, logger), schemaOpts(logger)...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed schema: %w", err)
	}
	return schema, nil
}

func schemaOpts(logger *logrus.Logger) []graphql.SchemaOpt {
	return []graphql.SchemaOpt{
		graphql.MaxParallelism(maxParallelism),
		graphql.Logger(&panicLogger{logger: logger}),
	}
}

// panicLogger routes resolver panics recovered by the engine to logrus
type panicLogger struct {
	logger *logrus.Logger
}

func (l *panicLogger) LogPanic(ctx context.Context, value interface{}) {
	l.logger.WithFields(logrus.Fields{
		"panic": value,
		"stack": string(debug.Stack()),
	}).Error("Panic while resolving GraphQL field")
}

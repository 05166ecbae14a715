package graph

import (
	"context"
	"time"

	"linkfeed_srv/internal/models"
	"linkfeed_srv/internal/service"

	"github.com/graph-gophers/graphql-go"
	"github.com/sirupsen/logrus"
)

// InfoMessage is returned by the info query
const InfoMessage = "This is the API of a Hackernews Clone"

// Resolver serves the Query and Mutation roots of FeedSchema
type Resolver struct {
	links  service.LinkService
	logger *logrus.Logger
}

func NewResolver(links service.LinkService, logger *logrus.Logger) *Resolver {
	return &Resolver{links: links, logger: logger}
}

func (r *Resolver) Info() string {
	return InfoMessage
}

func (r *Resolver) Feed(ctx context.Context) ([]*LinkResolver, error) {
	links, err := r.links.Feed(ctx)
	if err != nil {
		return nil, err
	}

	resolvers := make([]*LinkResolver, len(links))
	for i := range links {
		resolvers[i] = &LinkResolver{link: links[i]}
	}
	return resolvers, nil
}

type PostArgs struct {
	URL         string
	Description string
}

func (r *Resolver) Post(ctx context.Context, args PostArgs) (*LinkResolver, error) {
	link, err := r.links.Post(ctx, args.URL, args.Description)
	if err != nil {
		return nil, err
	}
	return &LinkResolver{link: *link}, nil
}

type TestArgs struct {
	URL string
}

// Test echoes its arguments to the log and returns the first link unchanged.
func (r *Resolver) Test(ctx context.Context, args TestArgs) (*LinkResolver, error) {
	r.logger.WithField("url", args.URL).Info("Test mutation called")

	link, err := r.links.First(ctx)
	if err != nil {
		return nil, err
	}
	return &LinkResolver{link: *link}, nil
}

// LinkResolver resolves the fields of a Link
type LinkResolver struct {
	link models.Link
}

func (l *LinkResolver) ID() graphql.ID {
	return graphql.ID(l.link.ID)
}

func (l *LinkResolver) URL() string {
	return l.link.URL
}

func (l *LinkResolver) Description() string {
	return l.link.Description
}

// HelloResolver is the root value of HelloSchema
type HelloResolver struct {
	now func() time.Time
}

func (r *HelloResolver) Hello() *string {
	greeting := HelloMessage(r.now())
	return &greeting
}

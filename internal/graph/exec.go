package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/graph-gophers/graphql-go"
)

// HelloQuery is the query the hello demo runs
const HelloQuery = `{ hello }`

// Request is the standard GraphQL request envelope
type Request struct {
	Query         string                 `json:"query" query:"query"`
	OperationName string                 `json:"operationName" query:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Exec runs req against schema; failures are reported in the response errors
func Exec(ctx context.Context, schema *graphql.Schema, req Request) *graphql.Response {
	return schema.Exec(ctx, req.Query, req.OperationName, req.Variables)
}

// HelloMessage formats the greeting with the unix time in milliseconds
func HelloMessage(t time.Time) string {
	return fmt.Sprintf("hello world %d", t.UnixMilli())
}

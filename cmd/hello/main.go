package main

import (
	"context"
	"encoding/json"
	"os"

	"linkfeed_srv/internal/graph"

	"github.com/sirupsen/logrus"
)

// Runs the hello query once against the in-memory schema and prints the response.
func main() {
	logger := logrus.New()

	schema, err := graph.NewHelloSchema(logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to build schema")
	}

	resp := graph.Exec(context.Background(), schema, graph.Request{Query: graph.HelloQuery})

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		logger.WithError(err).Fatal("Failed to encode response")
	}
}

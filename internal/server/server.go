package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"linkfeed_srv/internal/config"
	"linkfeed_srv/internal/graph"
	"linkfeed_srv/internal/service"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/graph-gophers/graphql-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Server represents the HTTP server
type Server struct {
	echo     *echo.Echo
	config   config.Config
	schema   *graphql.Schema
	links    service.LinkService
	exporter service.FeedExporter
	logger   *logrus.Logger
}

// NewServer creates a new HTTP server
func NewServer(
	cfg config.Config,
	schema *graphql.Schema,
	links service.LinkService,
	exporter service.FeedExporter,
	logger *logrus.Logger,
) *Server {
	e := echo.New()
	e.Debug = cfg.IsDevelopment()
	e.HideBanner = true
	e.HidePort = true

	accessLog := middleware.LoggerConfig{
		Format: "${time_rfc3339} ${method} ${uri} ${status} ${latency_human}\n",
		Output: logger.Out,
	}
	if cfg.IsDevelopment() {
		accessLog.Format = "${time_rfc3339} ${id} ${method} ${uri} ${status} ${latency_human} ${error}\n"
	}

	// Middleware
	e.Use(middleware.LoggerWithConfig(accessLog))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	server := &Server{
		echo:     e,
		config:   cfg,
		schema:   schema,
		links:    links,
		exporter: exporter,
		logger:   logger,
	}

	server.setupRoutes()
	return server
}

// Start starts the HTTP server
func (s *Server) Start(address string) error {
	s.logger.WithField("address", address).Info("Starting HTTP server")
	return s.echo.Start(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

// ServeHTTP lets the server be mounted or tested as a plain handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// setupRoutes configures the server routes
func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)

	s.echo.POST(s.config.Server.Path, s.graphqlPost)
	s.echo.GET(s.config.Server.Path, s.graphqlGet)

	s.echo.GET("/export/feed", s.exportFeed)

	if s.config.Server.Playground {
		s.echo.GET("/", echo.WrapHandler(playground.Handler("GraphQL Playground", s.config.Server.Path)))
	}
}

// healthCheck handles health check requests
func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "linkfeed",
	})
}

// graphqlPost handles JSON-encoded GraphQL requests
func (s *Server) graphqlPost(c echo.Context) error {
	var req graph.Request
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		s.logger.WithError(err).Warn("Failed to decode GraphQL request")
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request format",
		})
	}
	return s.execute(c, req)
}

// graphqlGet handles GraphQL requests passed as query parameters
func (s *Server) graphqlGet(c echo.Context) error {
	req := graph.Request{
		Query:         c.QueryParam("query"),
		OperationName: c.QueryParam("operationName"),
	}

	if isMutation(req.Query, req.OperationName) {
		return c.JSON(http.StatusMethodNotAllowed, map[string]string{
			"error": "Mutations are only allowed over POST",
		})
	}

	if vars := c.QueryParam("variables"); vars != "" {
		if err := json.Unmarshal([]byte(vars), &req.Variables); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid variables",
			})
		}
	}

	return s.execute(c, req)
}

// isMutation reports whether the operation selected from query is a mutation.
// Unparsable documents are left to the executor to report.
func isMutation(query, operationName string) bool {
	doc, perr := parser.ParseQuery(&ast.Source{Input: query})
	if perr != nil {
		return false
	}
	op := doc.Operations.ForName(operationName)
	return op != nil && op.Operation == ast.Mutation
}

func (s *Server) execute(c echo.Context, req graph.Request) error {
	resp := graph.Exec(c.Request().Context(), s.schema, req)

	if len(resp.Errors) > 0 {
		s.logger.WithFields(logrus.Fields{
			"operation":  req.OperationName,
			"errors":     len(resp.Errors),
			"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
		}).Debug("GraphQL request finished with errors")
	}

	return c.JSON(http.StatusOK, resp)
}

// exportFeed streams the feed as a spreadsheet
func (s *Server) exportFeed(c echo.Context) error {
	ctx := c.Request().Context()

	links, err := s.links.Feed(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load feed for export")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to load feed",
		})
	}

	buf, filename, err := s.exporter.Export(ctx, links)
	if err != nil {
		s.logger.WithError(err).Error("Failed to export feed")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to export feed",
		})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, s.exporter.GetMimeType(), buf.Bytes())
}

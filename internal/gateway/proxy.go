package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/galaxybooks/bookstore-backend/pkg/config"
	"github.com/galaxybooks/bookstore-backend/pkg/middleware"
)

// Gateway forwards inbound requests to the configured backend services.
// Upstream base URLs are resolved once at construction and immutable
// afterwards; the shared HTTP client pools connections across requests.
type Gateway struct {
	client      *http.Client
	bookURL     *url.URL
	customerURL *url.URL
	logger      *zap.Logger
}

// New creates a Gateway from configuration. Both upstream URLs must be
// set and parseable.
func New(cfg *config.Config, logger *zap.Logger) (*Gateway, error) {
	bookURL, err := parseUpstream(cfg.Upstream.BookServiceURL, "book service")
	if err != nil {
		return nil, err
	}
	customerURL, err := parseUpstream(cfg.Upstream.CustomerServiceURL, "customer service")
	if err != nil {
		return nil, err
	}

	return &Gateway{
		client: &http.Client{
			Timeout: time.Duration(cfg.Upstream.Timeout) * time.Second,
		},
		bookURL:     bookURL,
		customerURL: customerURL,
		logger:      logger.Named("gateway"),
	}, nil
}

func parseUpstream(raw, name string) (*url.URL, error) {
	if raw == "" {
		return nil, fmt.Errorf("%s URL is not configured", name)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s URL %q: %w", name, raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid %s URL %q: missing scheme or host", name, raw)
	}
	return u, nil
}

// upstreamFor selects the backend by path prefix.
func (g *Gateway) upstreamFor(path string) *url.URL {
	if strings.HasPrefix(path, "/customers") {
		return g.customerURL
	}
	return g.bookURL
}

// Forward proxies the request on c to the matching upstream and writes the
// upstream's answer back, applying transform to successful JSON bodies.
// The outbound call carries the internal trust header instead of the
// caller's X-Client-Type; the Authorization header is forwarded verbatim.
func (g *Gateway) Forward(c *gin.Context, transform Transform) {
	base := g.upstreamFor(c.Request.URL.Path)

	target := base.JoinPath(c.Request.URL.Path)
	target.RawQuery = c.Request.URL.RawQuery

	var body io.Reader
	if c.Request.Body != nil {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(400, gin.H{"message": "Malformed request body"})
			return
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), c.Request.Method, target.String(), body)
	if err != nil {
		g.logger.Error("Failed to build upstream request", zap.Error(err))
		c.JSON(500, gin.H{"message": "Internal server error"})
		return
	}

	req.Header.Set("X-Client-Type", middleware.ClientInternal)
	req.Header.Set("Content-Type", "application/json")
	if auth := c.GetHeader("Authorization"); auth != "" {
		req.Header.Set("Authorization", auth)
	}
	if id := c.GetString(middleware.RequestIDContextKey); id != "" {
		req.Header.Set(middleware.RequestIDHeader, id)
	}

	g.logger.Debug("Proxying request",
		zap.String("method", c.Request.Method),
		zap.String("target", target.String()),
	)

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Error("Upstream request failed",
			zap.String("target", target.String()),
			zap.Error(err),
		)
		c.JSON(503, gin.H{"message": fmt.Sprintf("Error connecting to backend service: %v", err)})
		return
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(503, gin.H{"message": fmt.Sprintf("Error connecting to backend service: %v", err)})
		return
	}

	contentType := resp.Header.Get("Content-Type")

	// Error bodies pass through verbatim when they are JSON; anything
	// else is replaced by a generic message under the upstream status.
	if resp.StatusCode >= 400 {
		if json.Valid(respBody) && len(respBody) > 0 {
			c.Data(resp.StatusCode, "application/json", respBody)
		} else {
			c.JSON(resp.StatusCode, gin.H{"message": "Error from backend service"})
		}
		return
	}

	if transform != nil && strings.Contains(contentType, "application/json") {
		var payload any
		if err := json.Unmarshal(respBody, &payload); err == nil {
			c.JSON(resp.StatusCode, transform(payload))
			return
		}
		// Undecodable despite the content type: fall through untouched.
	}

	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(resp.StatusCode, contentType, respBody)
}

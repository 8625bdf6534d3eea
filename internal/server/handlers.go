// SPDX-License-Identifier: MIT
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/subiso/graphio"
	"github.com/katalvlaran/subiso/ullman"
)

// MatchRequest is the body of POST /v1/match.
type MatchRequest struct {
	Pattern graphio.Document `json:"pattern"`
	Target  graphio.Document `json:"target"`
	// Mode overrides the configured mode when non-empty.
	Mode string `json:"mode,omitempty"`
	// Parallelism overrides the configured parallelism when present.
	Parallelism *int `json:"parallelism,omitempty"`
}

// MatchResponse is the 200 body of POST /v1/match.
type MatchResponse struct {
	Isomorphic      bool   `json:"isomorphic"`
	Mode            string `json:"mode"`
	PatternVertices int    `json:"pattern_vertices"`
	TargetVertices  int    `json:"target_vertices"`
	RequestID       string `json:"request_id"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleMatch decodes two graph documents and runs the matcher under the
// configured timeout.
//
// Response:
//
//	200 OK: MatchResponse
//	400 Bad Request: malformed JSON, invalid document, unknown mode, negative parallelism
//	413 Request Entity Too Large: body over server.max_body_bytes
//	504 Gateway Timeout: match.timeout exceeded
func (s *Server) handleMatch(c *gin.Context) {
	rid := c.GetString(ctxRequestID)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.Server.MaxBodyBytes)

	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.fail(c, http.StatusRequestEntityTooLarge, err)
			return
		}
		s.fail(c, http.StatusBadRequest, err)
		return
	}

	pattern, err := req.Pattern.Graph()
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	target, err := req.Target.Graph()
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}

	mc := s.cfg.Match
	if req.Mode != "" {
		mc.Mode = req.Mode
	}
	if req.Parallelism != nil {
		mc.Parallelism = *req.Parallelism
	}
	opts, err := mc.MatchOptions()
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	mode, _ := ullman.ParseMode(mc.Mode)

	ctx := c.Request.Context()
	if mc.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, mc.Timeout)
		defer cancel()
	}
	opts = append(opts, ullman.WithContext(ctx), ullman.WithLogger(s.logger.With("request_id", rid)))

	ok, err := ullman.IsSubgraphIsomorphic(pattern, target, opts...)
	if err != nil {
		s.fail(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusOK, MatchResponse{
		Isomorphic:      ok,
		Mode:            mode.String(),
		PatternVertices: pattern.VertexCount(),
		TargetVertices:  target.VertexCount(),
		RequestID:       rid,
	})
}

// statusFor maps matcher errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	case errors.Is(err, ullman.ErrInvalidInput),
		errors.Is(err, ullman.ErrOptionViolation),
		errors.Is(err, ullman.ErrGraphNil):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c *gin.Context, status int, err error) {
	rid := c.GetString(ctxRequestID)
	s.logger.Warn("match_failed",
		"status", status,
		"error", err.Error(),
		"request_id", rid,
	)
	c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error(), RequestID: rid})
}

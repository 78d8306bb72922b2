package main

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andersonsilva/portfolio/internal/logger"
)

// requestLogger replaces gin.Logger with structured request logs. Client addresses are
// logged only as hashes.
func requestLogger(log *logger.Logger, clientHash func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Request(c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), clientHash(c))
		for _, e := range c.Errors {
			log.Error(e.Err, "request error")
		}
	}
}

var untrackedPrefixes = []string{
	"/static/",
	"/images/",
	"/admin",
	"/favicon",
	"/privacy",
	"/healthz",
	"/theme/",
}

// visitorTracking records GET page views with hashed client addresses.
func (s *Server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != "GET" || isUntracked(path) {
			c.Next()
			return
		}

		// Respect Do Not Track header
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		s.record(func(ctx context.Context) {
			if err := s.opts.Store.RecordVisit(ctx, ip, ua, path); err != nil {
				s.log.Error(err, "record visit")
			}
		})
		c.Next()
	}
}

func isUntracked(path string) bool {
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

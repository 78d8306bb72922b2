package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andersonsilva/portfolio/internal/analytics"
	"github.com/andersonsilva/portfolio/internal/content"
	"github.com/andersonsilva/portfolio/internal/logger"
	"github.com/andersonsilva/portfolio/internal/telemetry"
	"github.com/andersonsilva/portfolio/internal/theme"
	"github.com/andersonsilva/portfolio/internal/view"
)

const themeCookie = "theme"

type serverOptions struct {
	Content   content.Content
	Renderer  *view.Renderer
	Logger    *logger.Logger
	Store     *analytics.Store // nil disables tracking and the admin area
	Tracer    *telemetry.Provider
	Admin     adminCredentials
	Retention time.Duration
	// SyncTracking records analytics inline instead of in a goroutine.
	SyncTracking bool
}

// Server serves the portfolio page, its fragments and the admin area.
type Server struct {
	opts       serverOptions
	log        *logger.Logger
	adminToken string
}

func newServer(opts serverOptions) (*Server, error) {
	if opts.Renderer == nil {
		r, err := view.New()
		if err != nil {
			return nil, err
		}
		opts.Renderer = r
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	token, err := analytics.RandomToken()
	if err != nil {
		return nil, err
	}
	return &Server{opts: opts, log: opts.Logger, adminToken: token}, nil
}

// Engine builds the gin router.
func (s *Server) Engine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log, s.clientHash))
	r.Use(s.opts.Tracer.Middleware())
	if s.opts.Store != nil {
		r.Use(s.visitorTracking())
	}
	r.SetHTMLTemplate(s.opts.Renderer.Template())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, view.PageTemplate, s.page(requestTheme(c)))
	})

	// Single section fragments, for HTMX loading
	r.GET("/sections/:name", func(c *gin.Context) {
		section, ok := view.LookupSection(c.Param("name"))
		if !ok {
			c.HTML(http.StatusNotFound, "error.html", gin.H{
				"error": "Seção não encontrada.",
			})
			return
		}
		c.HTML(http.StatusOK, section.Template(), s.page(requestTheme(c)))
	})

	r.POST("/theme/toggle", s.toggleTheme)

	s.setupAdminRoutes(r)
	return r
}

func (s *Server) page(mode theme.Mode) view.Page {
	return view.NewPage(s.opts.Content, mode)
}

// toggleTheme flips the session's mode. HTMX requests get the re-rendered #root
// fragment; plain form posts are redirected back to the page.
func (s *Server) toggleTheme(c *gin.Context) {
	next := sessionTheme(c).Toggle()
	setSessionTheme(c, next)

	if s.opts.Store != nil {
		s.record(func(ctx context.Context) {
			if err := s.opts.Store.RecordToggle(ctx, next); err != nil {
				s.log.Error(err, "record theme toggle")
			}
		})
	}

	if c.GetHeader("HX-Request") == "true" {
		c.HTML(http.StatusOK, view.PortfolioTemplate, s.page(next))
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// sessionTheme is the mode stored in the session cookie, or the default.
func sessionTheme(c *gin.Context) theme.Mode {
	v, err := c.Cookie(themeCookie)
	if err != nil {
		return theme.Default
	}
	return theme.ParseOrDefault(v)
}

// requestTheme lets ?theme= override the session for one request without storing it.
func requestTheme(c *gin.Context) theme.Mode {
	if q := c.Query("theme"); q != "" {
		if m, err := theme.Parse(q); err == nil {
			return m
		}
	}
	return sessionTheme(c)
}

// setSessionTheme writes a cookie without Max-Age, so it ends with the browser session.
func setSessionTheme(c *gin.Context, m theme.Mode) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(themeCookie, m.String(), 0, "/", "", false, true)
}

func (s *Server) record(fn func(ctx context.Context)) {
	if s.opts.SyncTracking {
		fn(context.Background())
		return
	}
	go fn(context.Background())
}

func (s *Server) clientHash(c *gin.Context) string {
	if s.opts.Store == nil {
		return ""
	}
	return s.opts.Store.HashIP(c.ClientIP())
}

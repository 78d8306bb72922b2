package main

import (
	"context"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andersonsilva/portfolio/internal/config"
	"github.com/andersonsilva/portfolio/internal/logger"
)

const adminCookie = "admin_token"

// adminCredentials are the username and password accepted by /admin/login. An empty
// password disables login.
type adminCredentials struct {
	Username string
	Password string
}

func (a adminCredentials) enabled() bool { return a.Password != "" }

// match compares in constant time.
func (a adminCredentials) match(username, password string) bool {
	if !a.enabled() {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.Password)) == 1
	return userOK && passOK
}

// resolveAdminCredentials applies development defaults in gin debug mode only.
func resolveAdminCredentials(cfg config.Config, ginMode string, log *logger.Logger) adminCredentials {
	creds := adminCredentials{Username: cfg.AdminUsername, Password: cfg.AdminPassword}
	if creds.Username == "" {
		creds.Username = "admin"
	}
	if creds.Password == "" {
		if ginMode == gin.DebugMode {
			creds.Password = "admin123"
			log.Warn("using default admin password; set ADMIN_PASSWORD")
		} else {
			log.Warn("ADMIN_PASSWORD not set; admin login disabled")
		}
	}
	return creds
}

// Middleware to check admin authentication
func (s *Server) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	retentionDays := int(s.opts.Retention / (24 * time.Hour))

	// Privacy policy route
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title":         "Política de Privacidade",
			"retentionDays": retentionDays,
		})
	})

	if s.opts.Store == nil {
		return
	}
	store := s.opts.Store

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if !s.opts.Admin.match(c.PostForm("username"), c.PostForm("password")) {
			s.log.With("client", s.clientHash(c)).Warn("failed admin login")
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"error": "Credenciais inválidas",
			})
			return
		}
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, s.adminToken, 3600*24, "/admin", "", false, true)
		s.log.With("client", s.clientHash(c)).Info("admin login")
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	// Protected admin routes group
	admin := r.Group("/admin")
	admin.Use(s.adminAuthMiddleware())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := store.Stats(c.Request.Context())
		if err != nil {
			s.log.Error(err, "load admin stats")
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Falha ao carregar estatísticas",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{"stats": stats})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := store.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := store.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=portfolio-stats.json")
		s.log.With("client", s.clientHash(c)).Info("admin stats exported")
		c.JSON(http.StatusOK, stats)
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		removed, err := store.Cleanup(c.Request.Context(), s.opts.Retention)
		if err != nil {
			s.log.Error(err, "privacy cleanup")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": removed})
	})
}

// runRetention deletes expired visits now and then daily until ctx is done.
func runRetention(ctx context.Context, s *Server) {
	store := s.opts.Store
	if store == nil || s.opts.Retention <= 0 {
		return
	}
	sweep := func() {
		n, err := store.Cleanup(ctx, s.opts.Retention)
		if err != nil {
			s.log.Error(err, "privacy cleanup")
			return
		}
		if n > 0 {
			s.log.WithFields(map[string]any{"removed": n}).Info("privacy cleanup")
		}
	}

	sweep()
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweep()
		}
	}
}

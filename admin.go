// admin.go - privacy-conscious admin area
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Zachkp/folio/internal/config"
)

const (
	adminCookie        = "admin_token"
	recentVisitorSlots = 1024
)

// AdminStats is returned by /admin/api/stats.
type AdminStats struct {
	StartedAt      time.Time   `json:"started_at"`
	CacheEnabled   bool        `json:"cache_enabled"`
	Build          buildRecord `json:"build"`
	TotalVisits    int64       `json:"total_visits"`
	RecentVisitors int         `json:"recent_visitors"`
}

// visitors counts page views. Only hashed IPs are kept, and only the most
// recent ones.
type visitors struct {
	total  atomic.Int64
	recent *lru.Cache[string, time.Time]
}

func newVisitors(size int) (*visitors, error) {
	recent, err := lru.New[string, time.Time](size)
	if err != nil {
		return nil, err
	}
	return &visitors{recent: recent}, nil
}

func (v *visitors) record(hashedIP string) {
	v.total.Add(1)
	v.recent.Add(hashedIP, time.Now())
}

type admin struct {
	token    string
	salt     string
	username string
	password string
	started  time.Time

	snaps  *snapshots
	visits *visitors
	log    *slog.Logger
}

func newAdmin(cfg config.Admin, snaps *snapshots, log *slog.Logger) (*admin, error) {
	token, err := generateAdminToken()
	if err != nil {
		return nil, err
	}
	salt, err := generateAdminToken() // Use for IP hashing
	if err != nil {
		return nil, err
	}
	visits, err := newVisitors(recentVisitorSlots)
	if err != nil {
		return nil, err
	}

	a := &admin{
		token:    token,
		salt:     salt,
		username: cfg.Username,
		password: cfg.Password,
		started:  time.Now(),
		snaps:    snaps,
		visits:   visits,
		log:      log,
	}

	log.Info("admin access available", "path", "/admin/login")
	if gin.Mode() == gin.DebugMode {
		log.Debug("admin token (dev only)", "token", token)
		if cfg.Password == config.Defaults().Admin.Password {
			log.Warn("using default admin password, set ADMIN_PASSWORD")
		}
	}
	return a, nil
}

func generateAdminToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("generate admin token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// Hash IP address for privacy (consistent per IP for the process lifetime)
func (a *admin) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + a.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

func (a *admin) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// visitorMiddleware counts page views by hashed IP.
func (a *admin) visitorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/admin/") ||
			strings.HasPrefix(path, "/favicon") ||
			path == "/health" {
			c.Next()
			return
		}

		// Respect Do Not Track header
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		a.visits.record(a.hashIP(c.ClientIP()))
		c.Next()
	}
}

func (a *admin) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

func (a *admin) stats() AdminStats {
	return AdminStats{
		StartedAt:      a.started,
		CacheEnabled:   a.snaps.CacheEnabled(),
		Build:          a.snaps.Record(),
		TotalVisits:    a.visits.total.Load(),
		RecentVisitors: a.visits.recent.Len(),
	}
}

func (a *admin) routes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if !a.checkCredentials(c.PostForm("username"), c.PostForm("password")) {
			a.log.Warn("failed admin login attempt", "client", a.hashIP(c.ClientIP()))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"title": "Admin Login",
				"error": "Invalid credentials",
			})
			return
		}

		// 24 hours
		c.SetCookie(adminCookie, a.token, 3600*24, "/admin", "", false, true)
		a.log.Info("admin login successful", "client", a.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/api/stats")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		a.log.Info("admin logout", "client", a.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(a.authMiddleware())

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, a.stats())
	})

	adminGroup.POST("/refresh", func(c *gin.Context) {
		a.snaps.Invalidate()
		a.log.Info("snapshot cache cleared", "client", a.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, gin.H{"message": "Snapshot cleared, next request rebuilds"})
	})
}

package main

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/model"
	"github.com/Zachkp/folio/internal/portfolio"
)

//go:embed templates/*.html
var templateFS embed.FS

const fallbackColor = "#8b8b8b"

type portfolioSource interface {
	Portfolio(ctx context.Context) (*portfolio.Portfolio, error)
}

// server renders the public site from freshly built portfolios.
type server struct {
	src portfolioSource
	log *slog.Logger
}

// pageData is shared by the page and every fragment template.
type pageData struct {
	*portfolio.Portfolio
	About    string
	Tagline  string
	Projects []model.Project
	Filter   portfolio.Filter
	Types    []model.ProjectType
}

func parseTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"percent": func(p float64) string { return fmt.Sprintf("%.1f%%", p) },
		"color": func(colors map[string]string, lang string) string {
			if c, ok := colors[lang]; ok {
				return c
			}
			return fallbackColor
		},
		"join": strings.Join,
	}
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

func (s *server) routes(r *gin.Engine) {
	r.GET("/", s.page("index.html", true))
	r.GET("/projects", s.page("projects.html", true))
	r.GET("/work-content", s.page("work-content.html", false))
	r.GET("/education-content", s.page("education-content.html", false))

	r.GET("/api/portfolio", s.apiPortfolio)
	r.GET("/api/projects", s.apiProjects)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// page renders name from a fresh portfolio. Filtered pages apply the query
// filter to the project grid.
func (s *server) page(name string, filtered bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f portfolio.Filter
		if filtered {
			var err error
			if f, err = filterFromQuery(c); err != nil {
				c.HTML(http.StatusBadRequest, "error.html", gin.H{"error": err.Error()})
				return
			}
		}

		p, err := s.src.Portfolio(c.Request.Context())
		if err != nil {
			s.log.Error("render failed", "path", c.Request.URL.Path, "error", err)
			c.HTML(http.StatusBadGateway, "error.html", gin.H{
				"error": "Portfolio data is unavailable right now. Please try again later.",
			})
			return
		}

		c.HTML(http.StatusOK, name, newPageData(p, f))
	}
}

func (s *server) apiPortfolio(c *gin.Context) {
	p, err := s.src.Portfolio(c.Request.Context())
	if err != nil {
		s.log.Error("api build failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *server) apiProjects(c *gin.Context) {
	f, err := filterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := s.src.Portfolio(c.Request.Context())
	if err != nil {
		s.log.Error("api build failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, f.Apply(p.Projects))
}

func filterFromQuery(c *gin.Context) (portfolio.Filter, error) {
	return portfolio.ParseFilter(c.Query("type"), c.Query("lang"), c.Query("framework"), c.Query("platform"))
}

func newPageData(p *portfolio.Portfolio, f portfolio.Filter) pageData {
	d := pageData{
		Portfolio: p,
		About:     p.Site.About,
		Tagline:   p.Tagline,
		Projects:  f.Apply(p.Projects),
		Filter:    f,
		Types:     model.ProjectTypes,
	}
	if d.About == "" {
		d.About = AboutMe
	}
	if d.Tagline == "" {
		d.Tagline = DefaultTagline
	}
	return d
}

package main

import (
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/colors"
	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/datafile"
	"github.com/Zachkp/folio/internal/github"
	"github.com/Zachkp/folio/internal/logger"
	"github.com/Zachkp/folio/internal/portfolio"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging)
	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	gin.SetMode(cfg.Server.Mode)

	data, err := datafile.Load(cfg.Data.Dir)
	if err != nil {
		return err
	}
	log.Info("data loaded",
		"dir", cfg.Data.Dir,
		"overrides", len(data.Overrides),
		"jobs", len(data.Jobs),
		"courses", len(data.Courses),
	)

	gh := github.NewClient(cfg.GitHub.APIURL, cfg.GitHub.Token, cfg.GitHub.Timeout)
	if cfg.GitHub.Token == "" {
		log.Warn("API_TOKEN_GITHUB not set, requests are unauthenticated and rate limited")
	}

	b := portfolio.NewBuilder(
		portfolio.Sources{
			Repositories: gh,
			Colors:       colors.NewRegistry(cfg.Colors.RegistryURL, cfg.GitHub.Timeout),
			Profile:      gh,
		},
		data,
		portfolio.Options{
			Account:       cfg.GitHub.Account,
			ExcludeRepo:   cfg.GitHub.ExcludeRepo,
			MaxConcurrent: cfg.GitHub.MaxConcurrent,
		},
		log,
	)

	snaps, err := newSnapshots(b, cfg.Cache, log)
	if err != nil {
		return err
	}
	defer snaps.Close()

	adm, err := newAdmin(cfg.Admin, snaps, log)
	if err != nil {
		return err
	}

	r, err := newRouter(&server{src: snaps, log: log}, adm)
	if err != nil {
		return err
	}

	log.Info("listening", "port", cfg.Server.Port, "account", cfg.GitHub.Account)
	return r.Run(":" + cfg.Server.Port)
}

func newRouter(srv *server, adm *admin) (*gin.Engine, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	r.Use(adm.visitorMiddleware())

	srv.routes(r)
	adm.routes(r)
	return r, nil
}

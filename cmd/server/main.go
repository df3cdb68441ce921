package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/youruser/phototemplate/internal/api"
	"github.com/youruser/phototemplate/internal/config"
	"github.com/youruser/phototemplate/internal/fonts"
	"github.com/youruser/phototemplate/internal/util"
)

func main() {
	cfg := config.Load()

	for _, dir := range []string{cfg.TemplateDir, cfg.OutputDir, cfg.FontsDir} {
		if err := util.EnsureDir(dir); err != nil {
			logrus.Fatalf("create %s: %v", dir, err)
		}
	}

	s := api.NewServer(cfg)

	// Warm the font cache at startup (best-effort)
	for _, lang := range []fonts.Language{fonts.English, fonts.Malayalam} {
		if err := s.Fonts().Ensure(lang); err != nil {
			logrus.Warnf("font warm-up for %s failed: %v", lang, err)
		}
	}

	r := gin.Default()
	api.RegisterRoutes(r, s)

	logrus.Infof("starting server on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		logrus.Fatal(err)
	}
}

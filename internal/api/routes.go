package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, s *Server) {
	r.GET("/", s.root)
	r.GET("/health", s.health)
	r.GET("/templates", s.listTemplates)
	r.POST("/process-image", s.processImage)
	r.GET("/list-processed", s.listProcessed)
	r.GET("/share-qr", s.shareQR)

	// processed images are served straight off disk
	r.Static("/output", s.cfg.OutputDir)
}

package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/youruser/phototemplate/internal/compositor"
	"github.com/youruser/phototemplate/internal/config"
	"github.com/youruser/phototemplate/internal/fonts"
	"github.com/youruser/phototemplate/internal/qr"
	"github.com/youruser/phototemplate/internal/templates"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".gif":  true,
	".tiff": true,
}

// Server wires the handlers to their collaborators.
type Server struct {
	cfg   *config.Config
	store *templates.Store
	fonts *fonts.Provider
	comp  *compositor.Compositor
}

func NewServer(cfg *config.Config) *Server {
	fp := fonts.NewProvider(cfg.FontsDir)
	return &Server{
		cfg:   cfg,
		store: templates.NewStore(cfg.TemplateDir, cfg.DefaultTemplate),
		fonts: fp,
		comp:  compositor.New(fp),
	}
}

// Fonts exposes the font provider so startup can warm the cache.
func (s *Server) Fonts() *fonts.Provider {
	return s.fonts
}

func (s *Server) root(c *gin.Context) {
	available := s.store.Available()
	names := make([]string, 0, len(available))
	for name := range available {
		names = append(names, name)
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Photo Template Backend API",
		"endpoints": gin.H{
			"/process-image":  "POST - upload an image to overlay on a template with optional caption",
			"/health":         "GET - health check and font/template availability",
			"/templates":      "GET - list all available templates",
			"/list-processed": "GET - list processed images",
			"/share-qr":       "GET - QR code linking to a processed image",
		},
		"caption_format": gin.H{
			"numbered": "use '1-Your caption text' to select template1.png",
			"default":  "use 'Your caption text' to select the default template",
			"examples": []string{"1-Beautiful sunset today!", "2-Amazing landscape view", "Just a regular caption"},
		},
		"available_templates": names,
		"settings": gin.H{
			"max_uploaded_dimensions": "613x401",
			"layering":                "template overlays on top of uploaded image",
			"final_dimensions":        "match template dimensions",
			"text_position":           "Y: 780px (center aligned)",
			"text_font_size":          fonts.CaptionSize,
			"supported_fonts": gin.H{
				"english":   "Inter Bold",
				"malayalam": "Manjari Bold",
			},
			"font_colors": gin.H{
				"default_template": "black",
				"template1":        "black",
				"other_templates":  "white",
			},
		},
	})
}

func (s *Server) health(c *gin.Context) {
	available := s.store.Available()
	c.JSON(http.StatusOK, gin.H{
		"status":                     "healthy",
		"default_template_available": fileExists(s.store.DefaultPath()),
		"default_template_path":      s.store.DefaultPath(),
		"available_templates":        available,
		"template_count":             len(available),
		"fonts": gin.H{
			"english":   gin.H{"available": s.fonts.Available(fonts.English)},
			"malayalam": gin.H{"available": s.fonts.Available(fonts.Malayalam)},
		},
		"output_directory": s.cfg.OutputDir,
	})
}

func (s *Server) listTemplates(c *gin.Context) {
	available := s.store.Available()
	info := gin.H{}
	for name, path := range available {
		usage := "just use [caption] without number prefix"
		if name != "default" {
			usage = strings.TrimPrefix(name, "template") + "-[caption]"
		}
		info[name] = gin.H{"path": path, "usage": usage}
	}
	c.JSON(http.StatusOK, gin.H{
		"available_templates": info,
		"total_count":         len(available),
	})
}

// processImage runs the full pipeline: validate upload, resolve template and
// caption, compose, write the JPEG, report the result.
func (s *Server) processImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		fail(c, validationError("no file provided"))
		return
	}
	if !allowedExtensions[strings.ToLower(filepath.Ext(file.Filename))] {
		fail(c, validationError("file type not allowed, supported formats: .jpg .jpeg .png .bmp .gif .tiff"))
		return
	}

	text := c.PostForm("text")
	templatePath, caption := s.store.Resolve(text)
	if !fileExists(templatePath) {
		fail(c, processingError("template image not found at %s", templatePath))
		return
	}

	src, err := file.Open()
	if err != nil {
		fail(c, processingError("error reading upload: %s", err))
		return
	}
	defer src.Close()

	user, err := imaging.Decode(src)
	if err != nil {
		fail(c, processingError("error processing image: %s", err))
		return
	}
	tmpl, err := imaging.Open(templatePath)
	if err != nil {
		fail(c, processingError("error processing image: %s", err))
		return
	}

	lang := fonts.Detect(caption)
	textColor := s.store.TextColor(templatePath)
	result, err := s.comp.Compose(tmpl, user, compositor.Options{
		Caption: caption,
		Lang:    lang,
		Color:   textColor,
	})
	if err != nil {
		fail(c, processingError("error processing image: %s", err))
		return
	}
	outputPath, err := compositor.WriteOutput(s.cfg.OutputDir, result)
	if err != nil {
		fail(c, processingError("error processing image: %s", err))
		return
	}

	templateName := filepath.Base(templatePath)
	logrus.WithFields(logrus.Fields{
		"file":     file.Filename,
		"template": templateName,
		"output":   outputPath,
	}).Info("image processed")

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"message":           "image processed successfully",
		"output_path":       outputPath,
		"template_used":     templateName,
		"template_path":     templatePath,
		"original_filename": file.Filename,
		"file_size":         file.Size,
		"original_text":     text,
		"parsed_caption":    caption,
		"language_detected": lang,
		"text_color":        templates.ColorName(textColor),
	})
}

func (s *Server) listProcessed(c *gin.Context) {
	entries, err := os.ReadDir(s.cfg.OutputDir)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"processed_images": []gin.H{}, "total_count": 0})
		return
	}
	files := []gin.H{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		if !strings.HasSuffix(name, ".jpg") && !strings.HasSuffix(name, ".jpeg") && !strings.HasSuffix(name, ".png") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, gin.H{
			"filename": e.Name(),
			"path":     filepath.Join(s.cfg.OutputDir, e.Name()),
			"size":     info.Size(),
			"created":  info.ModTime().Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"processed_images": files,
		"total_count":      len(files),
	})
}

// shareQR returns a QR PNG pointing at the public URL of a processed image.
func (s *Server) shareQR(c *gin.Context) {
	name := c.Query("file")
	if name == "" {
		fail(c, validationError("missing file parameter"))
		return
	}
	if name != filepath.Base(name) {
		fail(c, validationError("invalid file name"))
		return
	}
	if !fileExists(filepath.Join(s.cfg.OutputDir, name)) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such processed image"})
		return
	}

	size := 400
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 {
		size = v
	}
	url := strings.TrimRight(s.cfg.BaseURL, "/") + "/output/" + name
	b, err := qr.SharePNG(url, size)
	if err != nil {
		fail(c, processingError("error generating qr: %s", err))
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

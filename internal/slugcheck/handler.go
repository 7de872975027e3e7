package slugcheck

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Detector *Detector
	Config   Config
}

func NewHandler(detector *Detector, cfg Config) *Handler {
	return &Handler{Detector: detector, Config: cfg}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/duplicates", h.duplicates) // GET /api/duplicates
	rg.GET("/search", h.search)         // GET /api/search?slug=...
}

func (h *Handler) duplicates(c *gin.Context) {
	cfg := h.Config

	// languages=en,de OR languages=en&languages=de
	var languages []string
	for _, part := range c.QueryArray("languages") {
		for _, lang := range strings.Split(part, ",") {
			if v := strings.TrimSpace(lang); v != "" {
				languages = append(languages, v)
			}
		}
	}
	if len(languages) > 0 {
		cfg.Languages = languages
	}

	if err := cfg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.Detector.FindDuplicateSlugs(c.Request.Context(), cfg)
	if res.Error != "" {
		c.JSON(http.StatusBadGateway, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) search(c *gin.Context) {
	slug := strings.TrimSpace(c.Query("slug"))
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slug is required"})
		return
	}

	res := h.Detector.SearchSlug(c.Request.Context(), h.Config, slug)
	if !res.Success {
		c.JSON(http.StatusBadRequest, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

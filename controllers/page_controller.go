package controllers

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// PageController serves the prebuilt HTML views from the public directory.
type PageController struct {
	PublicDir string
}

func NewPageController(publicDir string) *PageController {
	return &PageController{PublicDir: publicDir}
}

// Serve returns a handler that sends <PublicDir>/<name>.
func (pc *PageController) Serve(name string) gin.HandlerFunc {
	path := filepath.Join(pc.PublicDir, name)
	return func(c *gin.Context) {
		c.File(path)
	}
}

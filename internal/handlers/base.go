package handlers

import (
	"janamat/internal/models"

	"github.com/gin-gonic/gin"
)

// jsonError writes the standard error envelope.
func jsonError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// displayComments applies the render-time fallback name for comments
// stored without one.
func displayComments(comments []models.Comment) []models.Comment {
	if comments == nil {
		return []models.Comment{}
	}
	for i := range comments {
		if comments[i].DisplayName == "" {
			comments[i].DisplayName = "Anonymous"
		}
	}
	return comments
}

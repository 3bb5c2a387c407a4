package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// GeocodeSearch proxies address lookups for the boarding-location
// autocomplete. Lookups are best-effort; a failed upstream yields an empty
// list, not an error, so typing in the form never blocks.
func GeocodeSearch(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if len(query) < 3 {
		c.JSON(http.StatusOK, gin.H{"matches": []any{}})
		return
	}
	g := getGeocoder()
	if g == nil {
		c.JSON(http.StatusOK, gin.H{"matches": []any{}})
		return
	}
	matches, err := g.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"matches": []any{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

package handlers

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"turisflow/internal/clients/gentext"
	"turisflow/internal/clients/geocode"
	"turisflow/internal/ws"
)

// Collaborators are wired once at startup; handlers read them per request.
var (
	depsMu       sync.RWMutex
	boardingHub  *ws.Hub
	emailDrafter gentext.Drafter
	geocoder     geocode.Geocoder
	jwtSecret    string
)

func SetHub(h *ws.Hub) {
	depsMu.Lock()
	defer depsMu.Unlock()
	boardingHub = h
}

func SetDrafter(d gentext.Drafter) {
	depsMu.Lock()
	defer depsMu.Unlock()
	emailDrafter = d
}

func SetGeocoder(g geocode.Geocoder) {
	depsMu.Lock()
	defer depsMu.Unlock()
	geocoder = g
}

func SetJWTSecret(secret string) {
	depsMu.Lock()
	defer depsMu.Unlock()
	jwtSecret = secret
}

func getHub() *ws.Hub {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return boardingHub
}

func getDrafter() gentext.Drafter {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return emailDrafter
}

func getGeocoder() geocode.Geocoder {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return geocoder
}

func getJWTSecret() string {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return jwtSecret
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "corpo da requisição vazio", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "payload inválido", err.Error())
		return false
	}
	return true
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "id inválido: "+name, nil)
		return 0, false
	}
	return id, true
}

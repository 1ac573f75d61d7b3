package handlers

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"client_intake_backend/internal/geocode"
	"client_intake_backend/internal/locales"
	"client_intake_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// minQueryLength mirrors the client-side debounce threshold: fragments
// shorter than this never reach the upstream service.
const minQueryLength = 3

// GeocodeHandler proxies address suggestions for the form's
// autocomplete, keeping the upstream endpoint out of the browser.
type GeocodeHandler struct {
	client *geocode.Client
}

// NewGeocodeHandler creates a new GeocodeHandler.
func NewGeocodeHandler(client *geocode.Client) *GeocodeHandler {
	return &GeocodeHandler{client: client}
}

// GetAddressSuggestions returns place suggestions for a free-text
// fragment. Short fragments return an empty list without an upstream
// call.
func (h *GeocodeHandler) GetAddressSuggestions(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if utf8.RuneCountInString(query) < minQueryLength {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": []geocode.Suggestion{}})
		return
	}

	lang := locales.FromRequest(c).Code
	suggestions, err := h.client.Search(c.Request.Context(), query, lang, 5)
	if err != nil {
		utils.LogError(err, "GetAddressSuggestions: geocode lookup failed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadGateway, utils.ErrCodeUpstreamUnavailable, "Address lookup is temporarily unavailable.", "Upstream error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": suggestions})
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/medilabs/dcreport-api/internal/config"
	"github.com/medilabs/dcreport-api/internal/presentation/http/dto/response"
)

// SuggestionHandler serves the reference lists the entry form suggests from.
// The lists are suggestions only: submitted values are never constrained to
// them.
type SuggestionHandler struct {
	cfg *config.SuggestionsConfig
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(cfg *config.SuggestionsConfig) *SuggestionHandler {
	return &SuggestionHandler{cfg: cfg}
}

// Get handles returning the referrer and investigation suggestion lists,
// de-duplicated and in their configured order.
func (h *SuggestionHandler) Get(c *gin.Context) {
	response.OK(c, "Suggestions retrieved successfully", gin.H{
		"referrers":      dedupeOrdered(h.cfg.Referrers),
		"investigations": dedupeOrdered(h.cfg.Investigations),
	})
}

// dedupeOrdered removes duplicates while keeping first-seen order
func dedupeOrdered(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

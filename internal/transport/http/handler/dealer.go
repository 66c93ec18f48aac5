package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weiyuzhang/dealerhub/internal/usecase"
)

type dealerCatalog interface {
	ListDealers(ctx context.Context) ([]usecase.DealerSummary, error)
}

type DealerHandler struct {
	catalog dealerCatalog
	logger  *slog.Logger
}

func NewDealerHandler(catalog dealerCatalog, logger *slog.Logger) *DealerHandler {
	return &DealerHandler{catalog: catalog, logger: logger.With("component", "dealer_handler")}
}

type dealerSummaryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	BusinessName string `json:"businessName"`
	Location     string `json:"location"`
}

// GET /api/dealers — session required; the router applies the auth
// middleware before this handler runs.
func (h *DealerHandler) List(ctx *gin.Context) {
	summaries, err := h.catalog.ListDealers(ctx.Request.Context())
	if err != nil {
		h.logger.ErrorContext(ctx.Request.Context(), "list dealers", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	items := make([]dealerSummaryResponse, len(summaries))
	for i, s := range summaries {
		items[i] = dealerSummaryResponse{
			ID:           s.ID,
			Name:         s.Name,
			BusinessName: s.BusinessName,
			Location:     s.Location,
		}
	}
	ctx.JSON(http.StatusOK, items)
}

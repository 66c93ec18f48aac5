package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weiyuzhang/dealerhub/internal/domain"
)

// carCatalog is the subset of CatalogUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type carCatalog interface {
	GetCar(ctx context.Context, id string) (*domain.Car, error)
	GetCarDealer(ctx context.Context, carID string) (*domain.Dealer, error)
}

type CarHandler struct {
	catalog carCatalog
	logger  *slog.Logger
}

func NewCarHandler(catalog carCatalog, logger *slog.Logger) *CarHandler {
	return &CarHandler{catalog: catalog, logger: logger.With("component", "car_handler")}
}

// carResponse is the public projection of a car. Status and dealer
// linkage deliberately never appear here.
type carResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	BasePrice    float64 `json:"basePrice"`
	Description  *string `json:"description"`
	Thumbnail    *string `json:"thumbnail"`
	DefaultColor *string `json:"defaultColor"`
}

// carDealerResponse is the fixed allowlist of dealer fields exposed on
// the car→dealer endpoint.
type carDealerResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	BusinessName  *string `json:"businessName"`
	Logo          *string `json:"logo"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	Province      *string `json:"province"`
	Phone         string  `json:"phone"`
	BusinessHours *string `json:"businessHours"`
}

// GET /api/cars/:carId
func (h *CarHandler) GetByID(ctx *gin.Context) {
	carID := ctx.Param("carId")

	car, err := h.catalog.GetCar(ctx.Request.Context(), carID)
	if err != nil {
		if errors.Is(err, domain.ErrCarNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": errCarNotFound})
			return
		}
		h.logger.ErrorContext(ctx.Request.Context(), "get car by id", "car_id", carID, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusOK, carResponse{
		ID:           car.ID,
		Name:         car.Name,
		BasePrice:    car.BasePrice,
		Description:  car.Description,
		Thumbnail:    car.Thumbnail,
		DefaultColor: car.DefaultColor,
	})
}

// GET /api/cars/:carId/dealer
//
// Two distinct 404s: the car may not exist, or it may exist without a
// linked dealer.
func (h *CarHandler) GetDealer(ctx *gin.Context) {
	carID := ctx.Param("carId")

	dealer, err := h.catalog.GetCarDealer(ctx.Request.Context(), carID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCarNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": errCarNotFound})
		case errors.Is(err, domain.ErrCarNoDealer):
			ctx.JSON(http.StatusNotFound, gin.H{"error": errCarNoDealer})
		default:
			h.logger.ErrorContext(ctx.Request.Context(), "get car dealer", "car_id", carID, "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	ctx.JSON(http.StatusOK, carDealerResponse{
		ID:            dealer.ID,
		Name:          dealer.Name,
		BusinessName:  dealer.BusinessName,
		Logo:          dealer.Logo,
		Address:       dealer.Address,
		City:          dealer.City,
		Province:      dealer.Province,
		Phone:         dealer.Phone,
		BusinessHours: dealer.BusinessHours,
	})
}

package handler

import (
	"net/http"

	"coderr/internal/delivery/api/response"
	"coderr/internal/usecase"

	"github.com/labstack/echo/v4"
)

// BaseInfoHandler serves the landing page counters.
type BaseInfoHandler struct {
	baseInfoUC usecase.BaseInfoUsecase
}

// NewBaseInfoHandler is the constructor for BaseInfoHandler.
func NewBaseInfoHandler(baseInfoUC usecase.BaseInfoUsecase) *BaseInfoHandler {
	return &BaseInfoHandler{baseInfoUC: baseInfoUC}
}

// BaseInfoResponse is the body of GET /base-info/.
type BaseInfoResponse struct {
	ReviewCount          int64   `json:"review_count"`
	AverageRating        float64 `json:"average_rating"`
	BusinessProfileCount int64   `json:"business_profile_count"`
	OfferCount           int64   `json:"offer_count"`
}

// GetBaseInfo returns the platform-wide counters.
func (h *BaseInfoHandler) GetBaseInfo(c echo.Context) error {
	info, err := h.baseInfoUC.GetBaseInfo(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, BaseInfoResponse{
		ReviewCount:          info.ReviewCount,
		AverageRating:        info.AverageRating,
		BusinessProfileCount: info.BusinessProfileCount,
		OfferCount:           info.OfferCount,
	})
}

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

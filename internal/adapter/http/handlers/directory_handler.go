package handlers

import (
	"errors"
	"net/http"
	"strconv"
	response "stonetrade/internal/adapter/http/dto/response"
	"stonetrade/internal/domain/entities"
	"stonetrade/internal/usecase"
	"stonetrade/pkg"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler exposes the buyer directory and slab catalog lookups the
// seller uses while assembling a quote.

type DirectoryHandler struct {
	usecase usecase.IDirectoryUseCase
}

func NewDirectoryHandler(uc usecase.IDirectoryUseCase) *DirectoryHandler {
	return &DirectoryHandler{usecase: uc}
}

// SearchBuyers searches buyers by name or location, via ?q=.
func (h *DirectoryHandler) SearchBuyers(c *gin.Context) {
	buyers, err := h.usecase.SearchBuyers(c.Request.Context(), c.Query("q"))
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.BuyerResponse, 0, len(buyers))
	for _, b := range buyers {
		out = append(out, response.FromBuyer(b))
	}
	c.JSON(http.StatusOK, out)
}

func (h *DirectoryHandler) GetBuyer(c *gin.Context) {
	buyer, err := h.usecase.GetBuyer(c.Request.Context(), c.Param("buyer_id"))
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBuyer(buyer))
}

// SearchSlabs searches the catalog by name or stone type, via ?q=, optionally
// narrowed by ?finish= and ?thickness_cm=.
func (h *DirectoryHandler) SearchSlabs(c *gin.Context) {
	filters := entities.SlabFilters{Finish: c.Query("finish")}
	if raw := c.Query("thickness_cm"); raw != "" {
		thickness, err := strconv.Atoi(raw)
		if err != nil || thickness <= 0 {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid thickness_cm filter", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		filters.ThicknessCM = thickness
	}

	slabs, err := h.usecase.SearchSlabs(c.Request.Context(), c.Query("q"), filters)
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, slabs)
}

func (h *DirectoryHandler) GetSlab(c *gin.Context) {
	slab, err := h.usecase.GetSlab(c.Request.Context(), c.Param("slab_id"))
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, slab)
}

func mapDirectoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrBuyerNotFound):
		return pkg.NewDomainErrorSimple("BUYER_NOT_FOUND", "Buyer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSlabNotFound):
		return pkg.NewDomainErrorSimple("SLAB_NOT_FOUND", "Slab not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	"net/http"
	response "stonetrade/internal/adapter/http/dto/response"
	"stonetrade/internal/usecase"
	"stonetrade/pkg"

	"github.com/gin-gonic/gin"
)

// SentQuoteHandler reads the archive of finalized quotes.

type SentQuoteHandler struct {
	usecase usecase.ISentQuoteUseCase
}

func NewSentQuoteHandler(uc usecase.ISentQuoteUseCase) *SentQuoteHandler {
	return &SentQuoteHandler{usecase: uc}
}

func (h *SentQuoteHandler) GetSentQuote(c *gin.Context) {
	sent, err := h.usecase.GetByID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapSentQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSentQuote(sent))
}

// ListSentQuotes lists a seller's archive, via ?seller_id=.
func (h *SentQuoteHandler) ListSentQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListBySeller(c.Request.Context(), c.Query("seller_id"))
	if err != nil {
		appErr := mapSentQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.SentQuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, response.FromSentQuote(q))
	}
	c.JSON(http.StatusOK, out)
}

// GetSentQuoteDocument renders the buyer-facing document for a sent quote.
// The document never carries internal figures.
func (h *SentQuoteHandler) GetSentQuoteDocument(c *gin.Context) {
	doc, err := h.usecase.RenderDocument(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapSentQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", doc)
}

func mapSentQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSentQuoteID), errors.Is(err, usecase.ErrInvalidSellerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSentQuoteNotFound):
		return pkg.NewDomainErrorSimple("SENT_QUOTE_NOT_FOUND", "Sent quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

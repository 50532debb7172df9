package handlers

import (
	"context"
	"errors"
	"net/http"
	request "stonetrade/internal/adapter/http/dto/request"
	response "stonetrade/internal/adapter/http/dto/response"
	"stonetrade/internal/domain/quote"
	"stonetrade/internal/usecase"
	"stonetrade/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSessionPayload = pkg.NewDomainErrorSimple("INVALID_SESSION_INPUT", "Invalid quote session payload", http.StatusBadRequest)
	errInvalidMessagePayload = pkg.NewDomainErrorSimple("INVALID_MESSAGE_INPUT", "Invalid quote message payload", http.StatusBadRequest)
)

// QuoteSessionHandler handles HTTP requests for the quote construction
// workflow: one session per draft, stage navigation, transition messages and
// final submission.

type QuoteSessionHandler struct {
	usecase usecase.IQuoteSessionUseCase
}

func NewQuoteSessionHandler(uc usecase.IQuoteSessionUseCase) *QuoteSessionHandler {
	return &QuoteSessionHandler{usecase: uc}
}

// StartSession opens a fresh quote session for a seller.
func (h *QuoteSessionHandler) StartSession(c *gin.Context) {
	var payload request.StartQuoteSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	view, err := h.usecase.Start(c.Request.Context(), payload.SellerID)
	if err != nil {
		appErr := mapQuoteSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSessionView(view))
}

func (h *QuoteSessionHandler) GetSession(c *gin.Context) {
	view, err := h.usecase.Get(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapQuoteSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSessionView(view))
}

// DispatchMessage applies one transition message to the session's draft.
//
// set_buyer and add_line_item resolve their ids against the buyer directory
// and slab catalog before touching the draft; everything else goes straight
// through as a domain message.
func (h *QuoteSessionHandler) DispatchMessage(c *gin.Context) {
	sessionID := c.Param("session_id")

	var payload request.QuoteMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMessagePayload.HTTPStatus, errInvalidMessagePayload.ToHTTPError())
		return
	}

	var (
		view usecase.QuoteSessionView
		err  error
	)
	switch payload.Type {
	case request.MessageTypeSetBuyer:
		view, err = h.usecase.SelectBuyer(c.Request.Context(), sessionID, payload.ResolveBuyerID())
	case request.MessageTypeAddLineItem:
		var qty int
		qty, err = payload.ResolveQuantity()
		if err == nil {
			view, err = h.usecase.AddLineItem(c.Request.Context(), sessionID, payload.ResolveSlabID(), qty)
		}
	default:
		var msg quote.Message
		msg, err = payload.ToMessage()
		if err == nil {
			view, err = h.usecase.Apply(c.Request.Context(), sessionID, msg)
		}
	}
	if err != nil {
		appErr := mapQuoteSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSessionView(view))
}

func (h *QuoteSessionHandler) NextStage(c *gin.Context) {
	h.navigate(c, h.usecase.Next)
}

func (h *QuoteSessionHandler) BackStage(c *gin.Context) {
	h.navigate(c, h.usecase.Back)
}

func (h *QuoteSessionHandler) navigate(
	c *gin.Context,
	move func(ctx context.Context, sessionID string) (usecase.QuoteSessionView, error),
) {
	view, err := move(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapQuoteSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSessionView(view))
}

// CancelSession abandons the workflow and discards the draft.
func (h *QuoteSessionHandler) CancelSession(c *gin.Context) {
	if err := h.usecase.Cancel(c.Request.Context(), c.Param("session_id")); err != nil {
		appErr := mapQuoteSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ComputeFreight runs the freight heuristic and stores the result on the draft.
func (h *QuoteSessionHandler) ComputeFreight(c *gin.Context) {
	view, err := h.usecase.ComputeFreight(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapQuoteSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSessionView(view))
}

// SubmitSession finalizes the draft from the review stage and returns the
// immutable sent quote. A failed dispatch leaves the session at review so the
// seller can submit again.
func (h *QuoteSessionHandler) SubmitSession(c *gin.Context) {
	sent, err := h.usecase.Submit(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapQuoteSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSentQuote(sent))
}

func mapQuoteSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidSellerID),
		errors.Is(err, request.ErrUnknownMessageType),
		errors.Is(err, request.ErrInvalidQuantityValue),
		errors.Is(err, request.ErrMissingProductID),
		errors.Is(err, request.ErrMissingValidityDays),
		errors.Is(err, quote.ErrInvalidQuantity),
		errors.Is(err, quote.ErrInvalidCurrency),
		errors.Is(err, quote.ErrInvalidShippingTerm),
		errors.Is(err, quote.ErrInvalidValidityDays),
		errors.Is(err, quote.ErrUnknownFlag),
		errors.Is(err, quote.ErrUnknownMessage),
		errors.Is(err, quote.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Quote session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBuyerNotFound):
		return pkg.NewDomainErrorSimple("BUYER_NOT_FOUND", "Buyer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSlabNotFound):
		return pkg.NewDomainErrorSimple("SLAB_NOT_FOUND", "Slab not found", http.StatusNotFound)
	case errors.Is(err, quote.ErrCreditNotEligible):
		return pkg.NewDomainErrorSimple("CREDIT_NOT_ELIGIBLE", "Buyer is not eligible for credit terms", http.StatusUnprocessableEntity)
	case errors.Is(err, quote.ErrDuplicateLineItem):
		return pkg.NewDomainErrorSimple("DUPLICATE_LINE_ITEM", "Slab already present on the quote", http.StatusConflict)
	case errors.Is(err, quote.ErrFxRateAlreadySet):
		return pkg.NewDomainErrorSimple("FX_RATE_ALREADY_SET", "Fx rate snapshot already captured", http.StatusConflict)
	case errors.Is(err, quote.ErrStageIncomplete):
		return pkg.NewDomainErrorSimple("STAGE_INCOMPLETE", "Current stage is not complete", http.StatusConflict)
	case errors.Is(err, quote.ErrNotAtReview):
		return pkg.NewDomainErrorSimple("NOT_AT_REVIEW", "Quote can only be submitted from the review stage", http.StatusConflict)
	case errors.Is(err, quote.ErrAtFirstStage), errors.Is(err, quote.ErrAtFinalStage):
		return pkg.NewDomainErrorSimple("STAGE_OUT_OF_RANGE", "No further stage in that direction", http.StatusConflict)
	case errors.Is(err, quote.ErrWorkflowDone):
		return pkg.NewDomainErrorSimple("WORKFLOW_DONE", "Quote session already finished", http.StatusGone)
	case errors.Is(err, usecase.ErrNotificationDispatch):
		return pkg.NewDomainErrorSimple("DISPATCH_FAILED", "Quote delivery failed, try submitting again", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package routes

import (
	"stonetrade/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes     = "/quotes"
	PathBuyers     = "/buyers"
	PathSlabs      = "/slabs"
	PathSentQuotes = "/sent-quotes"
)

func addQuoteRoutes(
	rg *gin.RouterGroup,
	sessionHandler *handlers.QuoteSessionHandler,
	directoryHandler *handlers.DirectoryHandler,
	sentQuoteHandler *handlers.SentQuoteHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", sessionHandler.StartSession)
		quotes.GET("/:session_id", sessionHandler.GetSession)
		quotes.POST("/:session_id/messages", sessionHandler.DispatchMessage)
		quotes.POST("/:session_id/next", sessionHandler.NextStage)
		quotes.POST("/:session_id/back", sessionHandler.BackStage)
		quotes.POST("/:session_id/freight", sessionHandler.ComputeFreight)
		quotes.POST("/:session_id/submit", sessionHandler.SubmitSession)
		quotes.DELETE("/:session_id", sessionHandler.CancelSession)
	}

	buyers := rg.Group(PathBuyers)
	{
		buyers.GET("", directoryHandler.SearchBuyers)
		buyers.GET("/:buyer_id", directoryHandler.GetBuyer)
	}

	slabs := rg.Group(PathSlabs)
	{
		slabs.GET("", directoryHandler.SearchSlabs)
		slabs.GET("/:slab_id", directoryHandler.GetSlab)
	}

	sentQuotes := rg.Group(PathSentQuotes)
	{
		sentQuotes.GET("", sentQuoteHandler.ListSentQuotes)
		sentQuotes.GET("/:quote_id", sentQuoteHandler.GetSentQuote)
		sentQuotes.GET("/:quote_id/document", sentQuoteHandler.GetSentQuoteDocument)
	}
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"

	"stonetrade/internal/domain/entities"
	"stonetrade/internal/domain/quote"
	"stonetrade/internal/usecase/interfaces"
)

const (
	defaultSentQuotesTableName = "sent_quotes"
	sellerIndexName            = "seller_id-index"
)

// sentQuoteItem is the DynamoDB representation of a sent quote.
//
// Monetary attributes are stored as strings so the archive round-trips
// decimals without float drift; line items are stored as a JSON document
// since they are only ever read back whole.
type sentQuoteItem struct {
	ID                      string `dynamodbav:"id"`
	SellerID                string `dynamodbav:"seller_id"`
	BuyerID                 string `dynamodbav:"buyer_id"`
	BuyerName               string `dynamodbav:"buyer_name"`
	BuyerLocation           string `dynamodbav:"buyer_location"`
	Currency                string `dynamodbav:"currency"`
	ShippingTerm            string `dynamodbav:"shipping_term"`
	ShippingPort            string `dynamodbav:"shipping_port"`
	ValidityDays            int    `dynamodbav:"validity_days"`
	AllowPartialFulfillment bool   `dynamodbav:"allow_partial_fulfillment"`
	LineItems               string `dynamodbav:"line_items"`
	MerchandiseSubtotal     string `dynamodbav:"merchandise_subtotal"`
	FreightEstimate         string `dynamodbav:"freight_estimate"`
	BuyerFacingTotal        string `dynamodbav:"buyer_facing_total"`
	InternalLedgerTotal     string `dynamodbav:"internal_ledger_total"`
	BuyerMessage            string `dynamodbav:"buyer_message,omitempty"`
	SentAt                  string `dynamodbav:"sent_at"`
}

// SentQuoteDynamoRepository persists finalized quotes in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI seller_id-index: seller_id (string)

type SentQuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISentQuoteRepository = (*SentQuoteDynamoRepository)(nil)

func NewSentQuoteDynamoRepository(ddb *dynamodb.Client) *SentQuoteDynamoRepository {
	return &SentQuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SENT_QUOTES_TABLE", defaultSentQuotesTableName),
	}
}

func (r *SentQuoteDynamoRepository) Save(ctx context.Context, q quote.SentQuote) (quote.SentQuote, error) {
	it, err := toSentQuoteItem(q)
	if err != nil {
		return quote.SentQuote{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return quote.SentQuote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// A sent quote is immutable; re-saving the same id is a no-op.
			return q, nil
		}
		return quote.SentQuote{}, err
	}
	return q, nil
}

func (r *SentQuoteDynamoRepository) GetByID(ctx context.Context, id string) (quote.SentQuote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return quote.SentQuote{}, err
	}
	if len(out.Item) == 0 {
		return quote.SentQuote{}, nil
	}

	var it sentQuoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return quote.SentQuote{}, err
	}
	return fromSentQuoteItem(it)
}

func (r *SentQuoteDynamoRepository) ListBySellerID(ctx context.Context, sellerID string) ([]quote.SentQuote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(sellerIndexName),
		KeyConditionExpression: aws.String("#seller_id = :seller_id"),
		ExpressionAttributeNames: map[string]string{
			"#seller_id": "seller_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":seller_id": &types.AttributeValueMemberS{Value: sellerID},
		},
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]quote.SentQuote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it sentQuoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		q, err := fromSentQuoteItem(it)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

func toSentQuoteItem(q quote.SentQuote) (sentQuoteItem, error) {
	items, err := json.Marshal(q.LineItems)
	if err != nil {
		return sentQuoteItem{}, err
	}
	return sentQuoteItem{
		ID:                      q.ID,
		SellerID:                q.SellerID,
		BuyerID:                 q.BuyerID,
		BuyerName:               q.BuyerName,
		BuyerLocation:           q.BuyerLocation,
		Currency:                string(q.Currency),
		ShippingTerm:            string(q.ShippingTerm),
		ShippingPort:            q.ShippingPort,
		ValidityDays:            q.ValidityDays,
		AllowPartialFulfillment: q.AllowPartialFulfillment,
		LineItems:               string(items),
		MerchandiseSubtotal:     q.MerchandiseSubtotal.String(),
		FreightEstimate:         q.FreightEstimate.String(),
		BuyerFacingTotal:        q.BuyerFacingTotal.String(),
		InternalLedgerTotal:     q.InternalLedgerTotal.String(),
		BuyerMessage:            q.BuyerMessage,
		SentAt:                  q.SentAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromSentQuoteItem(it sentQuoteItem) (quote.SentQuote, error) {
	var items []quote.LineItem
	if it.LineItems != "" {
		if err := json.Unmarshal([]byte(it.LineItems), &items); err != nil {
			return quote.SentQuote{}, err
		}
	}

	subtotal, err := decimal.NewFromString(it.MerchandiseSubtotal)
	if err != nil {
		return quote.SentQuote{}, err
	}
	freight, err := decimal.NewFromString(it.FreightEstimate)
	if err != nil {
		return quote.SentQuote{}, err
	}
	buyerTotal, err := decimal.NewFromString(it.BuyerFacingTotal)
	if err != nil {
		return quote.SentQuote{}, err
	}
	internalTotal, err := decimal.NewFromString(it.InternalLedgerTotal)
	if err != nil {
		return quote.SentQuote{}, err
	}

	sentAt, _ := time.Parse(time.RFC3339Nano, it.SentAt)
	return quote.SentQuote{
		ID:                      it.ID,
		SellerID:                it.SellerID,
		BuyerID:                 it.BuyerID,
		BuyerName:               it.BuyerName,
		BuyerLocation:           it.BuyerLocation,
		Currency:                entities.Currency(it.Currency),
		ShippingTerm:            quote.ShippingTerm(it.ShippingTerm),
		ShippingPort:            it.ShippingPort,
		ValidityDays:            it.ValidityDays,
		AllowPartialFulfillment: it.AllowPartialFulfillment,
		LineItems:               items,
		MerchandiseSubtotal:     subtotal,
		FreightEstimate:         freight,
		BuyerFacingTotal:        buyerTotal,
		InternalLedgerTotal:     internalTotal,
		BuyerMessage:            it.BuyerMessage,
		SentAt:                  sentAt,
	}, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

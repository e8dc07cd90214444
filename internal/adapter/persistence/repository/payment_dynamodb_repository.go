package repository

import (
	"context"
	"sort"

	"shrijee_plots/internal/domain/entities"
	"shrijee_plots/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsBookingIDIndex   = "booking_id-index"
)

type paymentRecordItem struct {
	ID                 string `dynamodbav:"id"`
	BookingID          string `dynamodbav:"booking_id"`
	PlotID             string `dynamodbav:"plot_id"`
	InstallmentNumber  int    `dynamodbav:"installment_number"`
	Amount             int64  `dynamodbav:"amount"`
	PaymentMode        string `dynamodbav:"payment_mode"`
	TransactionID      string `dynamodbav:"transaction_id,omitempty"`
	Notes              string `dynamodbav:"notes,omitempty"`
	RecordedBy         string `dynamodbav:"recorded_by,omitempty"`
	RecordedAt         string `dynamodbav:"recorded_at"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists the payment ledger in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: booking_id-index (PK: booking_id)

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	av, err := attributevalue.MarshalMap(toPaymentRecordItem(p))
	if err != nil {
		return entities.PaymentRecord{}, err
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
		return entities.PaymentRecord{}, err
	}
	return p, nil
}

// ListByBookingID returns the ledger of a booking, oldest first.
func (r *PaymentDynamoRepository) ListByBookingID(ctx context.Context, bookingID string) ([]entities.PaymentRecord, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsBookingIDIndex),
		KeyConditionExpression: aws.String("booking_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: bookingID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentRecord, 0, len(raw))
	for _, m := range raw {
		var it paymentRecordItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentRecordItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].RecordedAt.Before(items[j].RecordedAt) })
	return items, nil
}

func toPaymentRecordItem(p entities.PaymentRecord) paymentRecordItem {
	return paymentRecordItem{
		ID:                 p.ID,
		BookingID:          p.BookingID,
		PlotID:             p.PlotID,
		InstallmentNumber:  p.InstallmentNumber,
		Amount:             p.Amount,
		PaymentMode:        string(p.PaymentMode),
		TransactionID:      p.TransactionID,
		Notes:              p.Notes,
		RecordedBy:         p.RecordedBy,
		RecordedAt:         formatTime(p.RecordedAt),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPaymentRecordItem(it paymentRecordItem) entities.PaymentRecord {
	p := entities.PaymentRecord{
		ID:                it.ID,
		BookingID:         it.BookingID,
		PlotID:            it.PlotID,
		InstallmentNumber: it.InstallmentNumber,
		Amount:            it.Amount,
		PaymentMode:       entities.PaymentMode(it.PaymentMode),
		TransactionID:     it.TransactionID,
		Notes:             it.Notes,
		RecordedBy:        it.RecordedBy,
		RecordedAt:        parseTime(it.RecordedAt),
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = []byte(it.ProviderPayloadRaw)
	}
	return p
}

package repository

import (
	"context"
	"errors"
	"strconv"

	"shrijee_plots/internal/domain/entities"
	"shrijee_plots/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBookingsTableName = "bookings"
	bookingsPlotIDIndex      = "plot_id-index"
	bookingsUserIDIndex      = "user_id-index"
	bookingsStatusIndex      = "status-index"
)

type scheduleEntryItem struct {
	InstallmentNumber int    `dynamodbav:"installment_number"`
	Amount            int64  `dynamodbav:"amount"`
	PaidAmount        int64  `dynamodbav:"paid_amount"`
	DueDate           string `dynamodbav:"due_date"`
	PaidDate          string `dynamodbav:"paid_date,omitempty"`
	Status            string `dynamodbav:"status"`
}

type bookingTermsItem struct {
	PlanName             string  `dynamodbav:"plan_name"`
	DownPaymentPercent   float64 `dynamodbav:"down_payment_percent"`
	DownPaymentAmount    int64   `dynamodbav:"down_payment_amount"`
	NumberOfInstallments int     `dynamodbav:"number_of_installments"`
	InterestRate         float64 `dynamodbav:"interest_rate"`
	EMIAmount            int64   `dynamodbav:"emi_amount"`
	TotalPayable         int64   `dynamodbav:"total_payable"`
}

type bookingItem struct {
	ID               string              `dynamodbav:"id"`
	PlotID           string              `dynamodbav:"plot_id"`
	UserID           string              `dynamodbav:"user_id"`
	PaymentType      string              `dynamodbav:"payment_type"`
	SelectedPlanName string              `dynamodbav:"selected_plan_name,omitempty"`
	Status           string              `dynamodbav:"status"`
	TotalPrice       int64               `dynamodbav:"total_price"`
	Terms            *bookingTermsItem   `dynamodbav:"terms,omitempty"`
	PaymentSchedule  []scheduleEntryItem `dynamodbav:"payment_schedule"`
	RejectionReason  string              `dynamodbav:"rejection_reason,omitempty"`
	CreatedAt        string              `dynamodbav:"created_at"`
	UpdatedAt        string              `dynamodbav:"updated_at"`
	ApprovedAt       string              `dynamodbav:"approved_at,omitempty"`
	Version          int64               `dynamodbav:"version"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: plot_id-index (PK: plot_id)
//   - GSI: user_id-index (PK: user_id)
//   - GSI: status-index (PK: status)
//
// The schedule lives inside the booking item, so a payment updates the
// booking with a single put conditioned on the version that was read.

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.Booking{}, err
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
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

// Update replaces the booking if its stored version still equals b.Version
// and returns it with the bumped version. A missing booking yields a
// zero-value Booking; a newer stored version yields ErrConcurrentUpdate.
func (r *BookingDynamoRepository) Update(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	prev := b.Version
	b.Version = prev + 1

	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.Booking{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(versionCondition(prev)),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":prev": &types.AttributeValueMemberN{Value: strconv.FormatInt(prev, 10)},
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.Booking{}, nil
			}
			return entities.Booking{}, interfaces.ErrConcurrentUpdate
		}
		return entities.Booking{}, err
	}
	return b, nil
}

// versionCondition accepts items written before versioning only when the
// caller read version 0.
func versionCondition(prev int64) string {
	if prev == 0 {
		return "attribute_exists(#id) AND (attribute_not_exists(#version) OR #version = :prev)"
	}
	return "attribute_exists(#id) AND #version = :prev"
}

func (r *BookingDynamoRepository) ListByPlotID(ctx context.Context, plotID string) ([]entities.Booking, error) {
	return r.listByIndex(ctx, bookingsPlotIDIndex, "plot_id", plotID)
}

func (r *BookingDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Booking, error) {
	return r.listByIndex(ctx, bookingsUserIDIndex, "user_id", userID)
}

func (r *BookingDynamoRepository) ListByStatus(ctx context.Context, status entities.BookingStatus) ([]entities.Booking, error) {
	return r.listByIndex(ctx, bookingsStatusIndex, "status", string(status))
}

func (r *BookingDynamoRepository) listByIndex(ctx context.Context, index, attr, value string) ([]entities.Booking, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Booking, 0, len(raw))
	for _, m := range raw {
		var it bookingItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBookingItem(it))
	}
	return items, nil
}

func toBookingItem(b entities.Booking) bookingItem {
	it := bookingItem{
		ID:               b.ID,
		PlotID:           b.PlotID,
		UserID:           b.UserID,
		PaymentType:      string(b.PaymentType),
		SelectedPlanName: b.SelectedPlanName,
		Status:           string(b.Status),
		TotalPrice:       b.TotalPrice,
		PaymentSchedule:  make([]scheduleEntryItem, 0, len(b.PaymentSchedule)),
		RejectionReason:  b.RejectionReason,
		CreatedAt:        formatTime(b.CreatedAt),
		UpdatedAt:        formatTime(b.UpdatedAt),
		ApprovedAt:       formatTimePtr(b.ApprovedAt),
		Version:          b.Version,
	}
	if b.Terms != nil {
		t := bookingTermsItem(*b.Terms)
		it.Terms = &t
	}
	for _, e := range b.PaymentSchedule {
		it.PaymentSchedule = append(it.PaymentSchedule, scheduleEntryItem{
			InstallmentNumber: e.InstallmentNumber,
			Amount:            e.Amount,
			PaidAmount:        e.PaidAmount,
			DueDate:           formatTime(e.DueDate),
			PaidDate:          formatTimePtr(e.PaidDate),
			Status:            string(e.Status),
		})
	}
	return it
}

func fromBookingItem(it bookingItem) entities.Booking {
	b := entities.Booking{
		ID:               it.ID,
		PlotID:           it.PlotID,
		UserID:           it.UserID,
		PaymentType:      entities.PaymentType(it.PaymentType),
		SelectedPlanName: it.SelectedPlanName,
		Status:           entities.BookingStatus(it.Status),
		TotalPrice:       it.TotalPrice,
		PaymentSchedule:  make([]entities.PaymentScheduleEntry, 0, len(it.PaymentSchedule)),
		RejectionReason:  it.RejectionReason,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
		ApprovedAt:       parseTimePtr(it.ApprovedAt),
		Version:          it.Version,
	}
	if it.Terms != nil {
		t := entities.BookingTerms(*it.Terms)
		b.Terms = &t
	}
	for _, e := range it.PaymentSchedule {
		b.PaymentSchedule = append(b.PaymentSchedule, entities.PaymentScheduleEntry{
			InstallmentNumber: e.InstallmentNumber,
			Amount:            e.Amount,
			PaidAmount:        e.PaidAmount,
			DueDate:           parseTime(e.DueDate),
			PaidDate:          parseTimePtr(e.PaidDate),
			Status:            entities.ScheduleStatus(e.Status),
		})
	}
	return b
}

package repository

import (
	"context"
	"errors"
	"time"

	"shrijee_plots/internal/domain/entities"
	"shrijee_plots/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPlotsTableName = "plots"

type pricingItem struct {
	TotalPrice             int64 `dynamodbav:"total_price"`
	ShowTotalPrice         bool  `dynamodbav:"show_total_price"`
	ShowInstallmentAmounts bool  `dynamodbav:"show_installment_amounts"`
}

type planItem struct {
	Name                 string  `dynamodbav:"name"`
	NumberOfInstallments int     `dynamodbav:"number_of_installments"`
	DownPaymentPercent   float64 `dynamodbav:"down_payment_percent"`
	InterestRate         float64 `dynamodbav:"interest_rate"`
	EMIAmount            *int64  `dynamodbav:"emi_amount,omitempty"`
	IsActive             *bool   `dynamodbav:"is_active,omitempty"`
}

type installmentPlanItem struct {
	Enabled                 bool       `dynamodbav:"enabled"`
	MinDownPaymentPercent   float64    `dynamodbav:"min_down_payment_percent"`
	MaxInstallments         int        `dynamodbav:"max_installments"`
	InstallmentInterestRate float64    `dynamodbav:"installment_interest_rate"`
	Plans                   []planItem `dynamodbav:"plans"`
}

type plotItem struct {
	ID              string               `dynamodbav:"id"`
	PlotNumber      string               `dynamodbav:"plot_number"`
	Title           string               `dynamodbav:"title"`
	Location        string               `dynamodbav:"location"`
	AreaSqFt        float64              `dynamodbav:"area_sq_ft"`
	Status          string               `dynamodbav:"status"`
	Pricing         pricingItem          `dynamodbav:"pricing"`
	InstallmentPlan *installmentPlanItem `dynamodbav:"installment_plan,omitempty"`
	CreatedAt       string               `dynamodbav:"created_at"`
	UpdatedAt       string               `dynamodbav:"updated_at"`
}

// PlotDynamoRepository persists Plot entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The inventory is small (a few hundred plots per project), so listing is a
// paginated Scan and filtering happens in the use case.

type PlotDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPlotRepository = (*PlotDynamoRepository)(nil)

func NewPlotDynamoRepository(ddb *dynamodb.Client) *PlotDynamoRepository {
	return &PlotDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PLOTS_TABLE", defaultPlotsTableName),
	}
}

func (r *PlotDynamoRepository) Create(ctx context.Context, p entities.Plot) (entities.Plot, error) {
	av, err := attributevalue.MarshalMap(toPlotItem(p))
	if err != nil {
		return entities.Plot{}, err
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
		return entities.Plot{}, err
	}
	return p, nil
}

func (r *PlotDynamoRepository) GetByID(ctx context.Context, id string) (entities.Plot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Plot{}, err
	}
	if len(out.Item) == 0 {
		return entities.Plot{}, nil
	}

	var it plotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Plot{}, err
	}
	return fromPlotItem(it), nil
}

func (r *PlotDynamoRepository) List(ctx context.Context) ([]entities.Plot, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	var its []plotItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &its); err != nil {
		return nil, err
	}
	plots := make([]entities.Plot, 0, len(its))
	for _, it := range its {
		plots = append(plots, fromPlotItem(it))
	}
	return plots, nil
}

// Update replaces the whole item. A missing plot yields a zero-value Plot.
func (r *PlotDynamoRepository) Update(ctx context.Context, p entities.Plot) (entities.Plot, error) {
	av, err := attributevalue.MarshalMap(toPlotItem(p))
	if err != nil {
		return entities.Plot{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Plot{}, nil
		}
		return entities.Plot{}, err
	}
	return p, nil
}

// UpdateStatus moves a plot from one status to another. A missing plot yields
// a zero-value Plot; a plot no longer in status from yields ErrConcurrentUpdate.
func (r *PlotDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.PlotStatus) (entities.Plot, error) {
	now := formatTime(time.Now())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":status":     &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.Plot{}, nil
			}
			return entities.Plot{}, interfaces.ErrConcurrentUpdate
		}
		return entities.Plot{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Plot{}, nil
	}
	var it plotItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Plot{}, err
	}
	return fromPlotItem(it), nil
}

func (r *PlotDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toPlotItem(p entities.Plot) plotItem {
	it := plotItem{
		ID:         p.ID,
		PlotNumber: p.PlotNumber,
		Title:      p.Title,
		Location:   p.Location,
		AreaSqFt:   p.AreaSqFt,
		Status:     string(p.Status),
		Pricing: pricingItem{
			TotalPrice:             p.Pricing.TotalPrice,
			ShowTotalPrice:         p.Pricing.ShowTotalPrice,
			ShowInstallmentAmounts: p.Pricing.ShowInstallmentAmounts,
		},
		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
	}
	if ip := p.InstallmentPlan; ip != nil {
		plans := make([]planItem, 0, len(ip.Plans))
		for _, pl := range ip.Plans {
			plans = append(plans, planItem(pl))
		}
		it.InstallmentPlan = &installmentPlanItem{
			Enabled:                 ip.Enabled,
			MinDownPaymentPercent:   ip.MinDownPaymentPercent,
			MaxInstallments:         ip.MaxInstallments,
			InstallmentInterestRate: ip.InstallmentInterestRate,
			Plans:                   plans,
		}
	}
	return it
}

func fromPlotItem(it plotItem) entities.Plot {
	p := entities.Plot{
		ID:         it.ID,
		PlotNumber: it.PlotNumber,
		Title:      it.Title,
		Location:   it.Location,
		AreaSqFt:   it.AreaSqFt,
		Status:     entities.PlotStatus(it.Status),
		Pricing: entities.Pricing{
			TotalPrice:             it.Pricing.TotalPrice,
			ShowTotalPrice:         it.Pricing.ShowTotalPrice,
			ShowInstallmentAmounts: it.Pricing.ShowInstallmentAmounts,
		},
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
	if ip := it.InstallmentPlan; ip != nil {
		plans := make([]entities.Plan, 0, len(ip.Plans))
		for _, pl := range ip.Plans {
			plans = append(plans, entities.Plan(pl))
		}
		p.InstallmentPlan = &entities.InstallmentPlan{
			Enabled:                 ip.Enabled,
			MinDownPaymentPercent:   ip.MinDownPaymentPercent,
			MaxInstallments:         ip.MaxInstallments,
			InstallmentInterestRate: ip.InstallmentInterestRate,
			Plans:                   plans,
		}
	}
	return p
}

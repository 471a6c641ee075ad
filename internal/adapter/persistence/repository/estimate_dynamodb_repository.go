package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"bakusoq/internal/domain/entities"
	"bakusoq/internal/usecase/interfaces"
)

const DefaultEstimatesTableName = "bakusoq_estimates"

var ErrEstimateAlreadyRecorded = errors.New("estimate already recorded")

// dynamoAPI is the part of *dynamodb.Client the repository uses.
type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

type lineItemRecord struct {
	Category  string  `dynamodbav:"category"`
	Name      string  `dynamodbav:"name"`
	Unit      string  `dynamodbav:"unit"`
	Quantity  float64 `dynamodbav:"quantity"`
	UnitPrice int64   `dynamodbav:"unit_price"`
	Total     int64   `dynamodbav:"total"`
}

type estimateItem struct {
	ID        string           `dynamodbav:"id"`
	Source    string           `dynamodbav:"source"`
	AreaTsubo float64          `dynamodbav:"area_tsubo"`
	Structure string           `dynamodbav:"structure"`
	RoadWidth string           `dynamodbav:"road_width"`
	Site      string           `dynamodbav:"site"`
	Items     []lineItemRecord `dynamodbav:"items"`
	SubTotal  int64            `dynamodbav:"sub_total"`
	Tax       int64            `dynamodbav:"tax"`
	Total     int64            `dynamodbav:"total"`
	Notes     string           `dynamodbav:"notes"`
	CreatedAt string           `dynamodbav:"created_at"`
}

// EstimateDynamoRepository stores the estimate log in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Site conditions are kept as a JSON string; they are never queried.
type EstimateDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb dynamoAPI, tableName string) *EstimateDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = DefaultEstimatesTableName
	}
	return &EstimateDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it, err := toEstimateItem(e)
	if err != nil {
		return entities.Estimate{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
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
			return entities.Estimate{}, fmt.Errorf("%w: %s", ErrEstimateAlreadyRecorded, e.ID)
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it)
}

func toEstimateItem(e entities.Estimate) (estimateItem, error) {
	site, err := json.Marshal(e.Params.Site)
	if err != nil {
		return estimateItem{}, err
	}
	items := make([]lineItemRecord, 0, len(e.Result.Items))
	for _, li := range e.Result.Items {
		items = append(items, lineItemRecord(li))
	}
	return estimateItem{
		ID:        e.ID,
		Source:    string(e.Source),
		AreaTsubo: e.Params.AreaTsubo,
		Structure: string(e.Params.Structure),
		RoadWidth: string(e.Params.RoadWidth),
		Site:      string(site),
		Items:     items,
		SubTotal:  e.Result.SubTotal,
		Tax:       e.Result.Tax,
		Total:     e.Result.Total,
		Notes:     e.Result.Notes,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromEstimateItem(it estimateItem) (entities.Estimate, error) {
	var site entities.SiteConditions
	if it.Site != "" {
		if err := json.Unmarshal([]byte(it.Site), &site); err != nil {
			return entities.Estimate{}, fmt.Errorf("decode site of %s: %w", it.ID, err)
		}
	}
	items := make([]entities.LineItem, 0, len(it.Items))
	for _, rec := range it.Items {
		items = append(items, entities.LineItem(rec))
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Estimate{
		ID: it.ID,
		Params: entities.EstimateParams{
			AreaTsubo: it.AreaTsubo,
			Structure: entities.Structure(it.Structure),
			RoadWidth: entities.RoadWidth(it.RoadWidth),
			Site:      site,
		},
		Result: entities.EstimateResult{
			Items:    items,
			SubTotal: it.SubTotal,
			Tax:      it.Tax,
			Total:    it.Total,
			Notes:    it.Notes,
		},
		Source:    entities.EstimateSource(it.Source),
		CreatedAt: createdAt,
	}, nil
}

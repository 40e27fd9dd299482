package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/kmchale1974/raec-rooms-board-sub000/internal/models"
)

// runHistoryTTL keeps board run records queryable for operational review
// without growing the table forever.
const runHistoryTTL = 90 * 24 * time.Hour

// DynamoDBService provides CRUD operations for the board runs table
type DynamoDBService struct {
	client         *dynamodb.Client
	boardRunsTable string
}

// NewDynamoDBService creates a new DynamoDB service instance
func NewDynamoDBService(client *dynamodb.Client, boardRunsTable string) *DynamoDBService {
	return &DynamoDBService{
		client:         client,
		boardRunsTable: boardRunsTable,
	}
}

// CreateBoardRun stores a board run record in DynamoDB
func (s *DynamoDBService) CreateBoardRun(ctx context.Context, run *models.BoardRun) error {
	item, err := boardRunItem(run)
	if err != nil {
		return err
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.boardRunsTable),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to create board run: %w", err)
	}

	return nil
}

// boardRunItem builds the storage item for one run, assigning the run id and
// TTL when not already set. The runDate attribute partitions one day's runs
// together.
func boardRunItem(run *models.BoardRun) (map[string]types.AttributeValue, error) {
	if run.ID == "" {
		run.ID = models.GenerateRunID(run.StartedAt)
	}

	// Auto-expire history
	run.TTL = models.CalculateTTL(runHistoryTTL)

	item, err := attributevalue.MarshalMap(run)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal board run: %w", err)
	}

	item["runDate"] = &types.AttributeValueMemberS{Value: run.StartedAt.UTC().Format("2006-01-02")}
	return item, nil
}

// GetBoardRun retrieves a board run by date and id
func (s *DynamoDBService) GetBoardRun(ctx context.Context, runDate, runID string) (*models.BoardRun, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.boardRunsTable),
		Key: map[string]types.AttributeValue{
			"runDate": &types.AttributeValueMemberS{Value: runDate},
			"id":      &types.AttributeValueMemberS{Value: runID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get board run: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("board run not found")
	}

	var run models.BoardRun
	err = attributevalue.UnmarshalMap(result.Item, &run)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal board run: %w", err)
	}

	return &run, nil
}

// QueryBoardRunsByDate queries all runs of one day, newest last
func (s *DynamoDBService) QueryBoardRunsByDate(ctx context.Context, runDate string, limit int32) ([]models.BoardRun, error) {
	result, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.boardRunsTable),
		KeyConditionExpression: aws.String("runDate = :runDate"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":runDate": &types.AttributeValueMemberS{Value: runDate},
		},
		Limit: aws.Int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query board runs by date: %w", err)
	}

	var runs []models.BoardRun
	err = attributevalue.UnmarshalListOfMaps(result.Items, &runs)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal board runs: %w", err)
	}

	return runs, nil
}

// QueryFailedBoardRuns scans one day's runs and returns those that did not
// complete cleanly
func (s *DynamoDBService) QueryFailedBoardRuns(ctx context.Context, runDate string, limit int32) ([]models.BoardRun, error) {
	result, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.boardRunsTable),
		KeyConditionExpression: aws.String("runDate = :runDate"),
		FilterExpression:       aws.String("#st <> :completed"),
		ExpressionAttributeNames: map[string]string{
			"#st": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":runDate":   &types.AttributeValueMemberS{Value: runDate},
			":completed": &types.AttributeValueMemberS{Value: models.RunStatusCompleted},
		},
		Limit: aws.Int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query failed board runs: %w", err)
	}

	var runs []models.BoardRun
	err = attributevalue.UnmarshalListOfMaps(result.Items, &runs)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal board runs: %w", err)
	}

	return runs, nil
}

// DeleteBoardRun removes a board run record
func (s *DynamoDBService) DeleteBoardRun(ctx context.Context, runDate, runID string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.boardRunsTable),
		Key: map[string]types.AttributeValue{
			"runDate": &types.AttributeValueMemberS{Value: runDate},
			"id":      &types.AttributeValueMemberS{Value: runID},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete board run: %w", err)
	}

	return nil
}

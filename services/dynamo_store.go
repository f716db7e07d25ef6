package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"radost_server/models"
	"radost_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoStore implements Store on top of DynamoDB.
type DynamoStore struct {
	Dynamo *DynamoService
}

// NewDynamoStore wraps a DynamoService as a Store.
func NewDynamoStore(dynamo *DynamoService) *DynamoStore {
	return &DynamoStore{Dynamo: dynamo}
}

func userKey(userID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
}

func requestKey(requestID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"requestId": &types.AttributeValueMemberS{Value: requestID},
	}
}

func (s *DynamoStore) PutUser(ctx context.Context, user models.User) error {
	return s.Dynamo.PutItem(ctx, models.UsersTable, user)
}

func (s *DynamoStore) GetUser(ctx context.Context, userID string) (models.User, error) {
	item, err := s.Dynamo.GetItem(ctx, models.UsersTable, userKey(userID))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return models.User{}, fmt.Errorf("%w: user %s", ErrNotFound, userID)
		}
		return models.User{}, err
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(item, &user); err != nil {
		return models.User{}, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return user, nil
}

func (s *DynamoStore) UpdateUserProfile(ctx context.Context, userID string, fields map[string]string) (models.User, error) {
	updateExpression := "SET updatedAt = :updatedAt"
	expressionValues := map[string]types.AttributeValue{
		":updatedAt": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
	}
	expressionNames := map[string]string{}

	for name, value := range fields {
		updateExpression += fmt.Sprintf(", #%s = :%s", name, name)
		expressionNames["#"+name] = name
		expressionValues[":"+name] = &types.AttributeValueMemberS{Value: value}
	}
	if len(expressionNames) == 0 {
		expressionNames = nil
	}

	attrs, err := s.Dynamo.UpdateItem(ctx, models.UsersTable, updateExpression, userKey(userID), expressionValues, expressionNames)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(attrs, &user); err != nil {
		return models.User{}, fmt.Errorf("failed to unmarshal updated user: %w", err)
	}
	return user, nil
}

func (s *DynamoStore) TouchLastActive(ctx context.Context, userID string, at time.Time) error {
	_, err := s.Dynamo.UpdateItem(ctx, models.UsersTable,
		"SET lastActive = :lastActive",
		userKey(userID),
		map[string]types.AttributeValue{
			":lastActive": &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339)},
		},
		nil,
	)
	return err
}

func (s *DynamoStore) ScanUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.Dynamo.ScanTable(ctx, models.UsersTable, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AddPoints uses an ADD update expression so the increment happens on the
// server side; two concurrent awards cannot overwrite each other.
func (s *DynamoStore) AddPoints(ctx context.Context, userID string, delta int) (int, error) {
	attrs, err := s.Dynamo.UpdateItem(ctx, models.UsersTable,
		"ADD points :inc SET updatedAt = :updatedAt",
		userKey(userID),
		map[string]types.AttributeValue{
			":inc":       &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", delta)},
			":updatedAt": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		},
		nil,
	)
	if err != nil {
		return 0, err
	}
	return utils.ExtractInt(attrs, "points"), nil
}

func (s *DynamoStore) SetLevel(ctx context.Context, userID string, level int) error {
	_, err := s.Dynamo.UpdateItem(ctx, models.UsersTable,
		"SET #l = :level",
		userKey(userID),
		map[string]types.AttributeValue{
			":level": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", level)},
		},
		map[string]string{"#l": "level"},
	)
	return err
}

func (s *DynamoStore) PutInteraction(ctx context.Context, interaction models.Interaction) error {
	return s.Dynamo.PutItem(ctx, models.InteractionsTable, interaction)
}

func (s *DynamoStore) ListInteractions(ctx context.Context, userID string, limit int) ([]models.Interaction, error) {
	items, err := s.Dynamo.QueryItemsWithOptions(ctx, models.InteractionsTable, models.UserInteractionsIndex,
		"userId = :userId", "",
		map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		},
		nil, int32(limit), true)
	if err != nil {
		return nil, err
	}

	var interactions []models.Interaction
	if err := attributevalue.UnmarshalListOfMaps(items, &interactions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal interactions: %w", err)
	}
	return interactions, nil
}

func (s *DynamoStore) CountInteractions(ctx context.Context, userID string) (int, error) {
	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.InteractionsTable, models.UserInteractionsIndex,
		"userId = :userId",
		map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		},
		nil, 0)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func (s *DynamoStore) PutMeetingRequest(ctx context.Context, request models.MeetingRequest) error {
	return s.Dynamo.PutItem(ctx, models.MeetingRequestsTable, request)
}

func (s *DynamoStore) GetMeetingRequest(ctx context.Context, requestID string) (models.MeetingRequest, error) {
	item, err := s.Dynamo.GetItem(ctx, models.MeetingRequestsTable, requestKey(requestID))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return models.MeetingRequest{}, fmt.Errorf("%w: meeting request %s", ErrNotFound, requestID)
		}
		return models.MeetingRequest{}, err
	}

	var request models.MeetingRequest
	if err := attributevalue.UnmarshalMap(item, &request); err != nil {
		return models.MeetingRequest{}, fmt.Errorf("failed to unmarshal meeting request: %w", err)
	}
	return request, nil
}

func (s *DynamoStore) UpdateMeetingRequestStatus(ctx context.Context, requestID, status string, at time.Time) error {
	_, err := s.Dynamo.UpdateItem(ctx, models.MeetingRequestsTable,
		"SET #s = :status, updatedAt = :updatedAt",
		requestKey(requestID),
		map[string]types.AttributeValue{
			":status":    &types.AttributeValueMemberS{Value: status},
			":updatedAt": &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339)},
		},
		map[string]string{"#s": "status"},
	)
	return err
}

func (s *DynamoStore) ListPendingRequests(ctx context.Context, toUserID string) ([]models.MeetingRequest, error) {
	return s.queryRequests(ctx, models.ToUserIndex, "toUserId", toUserID)
}

func (s *DynamoStore) ListSentRequests(ctx context.Context, fromUserID string) ([]models.MeetingRequest, error) {
	return s.queryRequests(ctx, models.FromUserIndex, "fromUserId", fromUserID)
}

func (s *DynamoStore) queryRequests(ctx context.Context, indexName, keyAttr, userID string) ([]models.MeetingRequest, error) {
	items, err := s.Dynamo.QueryItemsWithOptions(ctx, models.MeetingRequestsTable, indexName,
		fmt.Sprintf("%s = :userId", keyAttr),
		"#s = :pending",
		map[string]types.AttributeValue{
			":userId":  &types.AttributeValueMemberS{Value: userID},
			":pending": &types.AttributeValueMemberS{Value: models.StatusPending},
		},
		map[string]string{"#s": "status"},
		0, true)
	if err != nil {
		return nil, err
	}

	var requests []models.MeetingRequest
	if err := attributevalue.UnmarshalListOfMaps(items, &requests); err != nil {
		return nil, fmt.Errorf("failed to unmarshal meeting requests: %w", err)
	}
	return requests, nil
}

func (s *DynamoStore) HasPendingRequest(ctx context.Context, fromUserID, toUserID string) (bool, error) {
	items, err := s.Dynamo.QueryItemsWithOptions(ctx, models.MeetingRequestsTable, models.FromUserIndex,
		"fromUserId = :fromUserId",
		"toUserId = :toUserId AND #s = :pending",
		map[string]types.AttributeValue{
			":fromUserId": &types.AttributeValueMemberS{Value: fromUserID},
			":toUserId":   &types.AttributeValueMemberS{Value: toUserID},
			":pending":    &types.AttributeValueMemberS{Value: models.StatusPending},
		},
		map[string]string{"#s": "status"},
		0, false)
	if err != nil {
		return false, err
	}
	return len(items) > 0, nil
}

func (s *DynamoStore) PutRateLimitEntry(ctx context.Context, entry models.RateLimitEntry) error {
	return s.Dynamo.PutItem(ctx, models.RateLimitTable, entry)
}

func (s *DynamoStore) CountRateLimitEntries(ctx context.Context, userID, actionType string, since time.Time) (int, error) {
	items, err := s.Dynamo.QueryItemsWithOptions(ctx, models.RateLimitTable, "",
		"userId = :userId AND createdAt >= :since",
		"actionType = :actionType",
		map[string]types.AttributeValue{
			":userId":     &types.AttributeValueMemberS{Value: userID},
			":since":      &types.AttributeValueMemberS{Value: since.UTC().Format(time.RFC3339)},
			":actionType": &types.AttributeValueMemberS{Value: actionType},
		},
		nil, 0, false)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

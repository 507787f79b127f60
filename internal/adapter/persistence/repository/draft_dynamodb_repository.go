package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"fabar_drinks/internal/domain/entities"
	"fabar_drinks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const defaultDraftsTableName = "quote_drafts"

// ErrDraftConflict is returned when another writer stored the same draft
// between our read and our conditional put.
var ErrDraftConflict = errors.New("draft was modified concurrently")

// DynamoAPI is the subset of the DynamoDB client used by the draft store.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type draftFormItem struct {
	FullName         string   `dynamodbav:"full_name"`
	WhatsApp         string   `dynamodbav:"whatsapp"`
	EventType        string   `dynamodbav:"event_type"`
	BeverageTypes    []string `dynamodbav:"beverage_types"`
	Date             string   `dynamodbav:"date"`
	Time             string   `dynamodbav:"time"`
	Location         string   `dynamodbav:"location"`
	GuestCount       string   `dynamodbav:"guest_count"`
	Services         []string `dynamodbav:"services"`
	DrinkPreferences string   `dynamodbav:"drink_preferences"`
	Customization    string   `dynamodbav:"customization"`
	PaymentMethod    string   `dynamodbav:"payment_method"`
}

type draftItem struct {
	ID        string        `dynamodbav:"id"`
	Form      draftFormItem `dynamodbav:"form"`
	State     string        `dynamodbav:"state"`
	Version   int64         `dynamodbav:"version"`
	CreatedAt string        `dynamodbav:"created_at"`
	UpdatedAt string        `dynamodbav:"updated_at"`
	ExpiresAt int64         `dynamodbav:"expires_at"`
}

// DraftDynamoRepository persists drafts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: expires_at (epoch seconds)
//
// DynamoDB deletes expired items lazily, so reads also treat an item past
// expires_at as missing.
type DraftDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
	log       *zap.Logger
}

var _ interfaces.IDraftRepository = (*DraftDynamoRepository)(nil)

func NewDraftDynamoRepository(ddb DynamoAPI, tableName string, log *zap.Logger) *DraftDynamoRepository {
	if tableName == "" {
		tableName = defaultDraftsTableName
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &DraftDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now, log: log}
}

func (r *DraftDynamoRepository) Create(ctx context.Context, s entities.Session) (entities.Session, error) {
	av, err := attributevalue.MarshalMap(toDraftItem(s))
	if err != nil {
		return entities.Session{}, err
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
			return entities.Session{}, ErrDraftAlreadyExists
		}
		return entities.Session{}, err
	}
	return s, nil
}

func (r *DraftDynamoRepository) GetByID(ctx context.Context, id string) (entities.Session, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Session{}, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, nil
	}

	var it draftItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Session{}, err
	}
	s := fromDraftItem(it)
	if s.Expired(r.now()) {
		return entities.Session{}, nil
	}
	return s, nil
}

func (r *DraftDynamoRepository) Update(ctx context.Context, id string, fn func(s *entities.Session) error) (entities.Session, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Session{}, err
	}
	if current.ID == "" {
		return entities.Session{}, nil
	}

	readVersion := current.Version
	work := cloneSession(current)
	if err := fn(&work); err != nil {
		return entities.Session{}, err
	}

	av, err := attributevalue.MarshalMap(toDraftItem(work))
	if err != nil {
		return entities.Session{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("#version = :version"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":version": &types.AttributeValueMemberN{Value: strconv.FormatInt(readVersion, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			r.log.Warn("draft update lost race", zap.String("draft_id", id), zap.Int64("version", readVersion))
			return entities.Session{}, ErrDraftConflict
		}
		return entities.Session{}, err
	}
	return work, nil
}

func toDraftItem(s entities.Session) draftItem {
	var expiresAt int64
	if !s.ExpiresAt.IsZero() {
		expiresAt = s.ExpiresAt.Unix()
	}
	return draftItem{
		ID: s.ID,
		Form: draftFormItem{
			FullName:         s.Form.FullName,
			WhatsApp:         s.Form.WhatsApp,
			EventType:        s.Form.EventType,
			BeverageTypes:    nonNil(s.Form.BeverageTypes),
			Date:             s.Form.Date,
			Time:             s.Form.Time,
			Location:         s.Form.Location,
			GuestCount:       s.Form.GuestCount,
			Services:         nonNil(s.Form.Services),
			DrinkPreferences: s.Form.DrinkPreferences,
			Customization:    s.Form.Customization,
			PaymentMethod:    s.Form.PaymentMethod,
		},
		State:     string(s.State),
		Version:   s.Version,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt: expiresAt,
	}
}

func fromDraftItem(it draftItem) entities.Session {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	var expiresAt time.Time
	if it.ExpiresAt > 0 {
		expiresAt = time.Unix(it.ExpiresAt, 0).UTC()
	}
	return entities.Session{
		ID: it.ID,
		Form: entities.QuoteRequest{
			FullName:         it.Form.FullName,
			WhatsApp:         it.Form.WhatsApp,
			EventType:        it.Form.EventType,
			BeverageTypes:    nonNil(it.Form.BeverageTypes),
			Date:             it.Form.Date,
			Time:             it.Form.Time,
			Location:         it.Form.Location,
			GuestCount:       it.Form.GuestCount,
			Services:         nonNil(it.Form.Services),
			DrinkPreferences: it.Form.DrinkPreferences,
			Customization:    it.Form.Customization,
			PaymentMethod:    it.Form.PaymentMethod,
		},
		State:     entities.ViewState(it.State),
		Version:   it.Version,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		ExpiresAt: expiresAt,
	}
}

// nonNil keeps empty sets as empty lists; a nil slice would be stored as NULL.
func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// Package sync holds the remote backup backends. Each one moves the whole
// snapshot as an opaque JSON blob keyed by the configured backup key; none
// of them understands the ledger schema.
package sync

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/eduardopaniago/GestaoFrota/internal/usecase/interfaces"
)

type backupItem struct {
	Key       string `dynamodbav:"key"`
	Payload   []byte `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DynamoBackend stores backups in a DynamoDB table.
//
// Table requirements:
//   - PK: key (string)
type DynamoBackend struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISyncBackend = (*DynamoBackend)(nil)

func NewDynamoBackend(ddb *dynamodb.Client, tableName string) *DynamoBackend {
	return &DynamoBackend{ddb: ddb, tableName: tableName}
}

func (b *DynamoBackend) Name() string { return "dynamo" }

func (b *DynamoBackend) Upload(ctx context.Context, key string, blob []byte) error {
	av, err := attributevalue.MarshalMap(backupItem{
		Key:       key,
		Payload:   blob,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	_, err = b.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(b.tableName),
		Item:      av,
	})
	return err
}

func (b *DynamoBackend) Download(ctx context.Context, key string) ([]byte, error) {
	out, err := b.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(b.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, interfaces.ErrRemoteNotFound
	}
	var it backupItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	if len(it.Payload) == 0 {
		return nil, errors.New("backup item has an empty payload")
	}
	return it.Payload, nil
}

package storage

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/formbridge/formbridge/internal/models"
)

type DynamoDB struct {
	db    *dynamodb.Client
	table string
}

const (
	waitInterval = 2 * time.Second
	maxRetries   = 30
)

func NewDynamoDB(table string) (*DynamoDB, error) {
	var db *dynamodb.Client
	if os.Getenv("DYNAMO_LOCAL") != "" {
		cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
			awsconfig.WithRegion("dummy"),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("dummy", "dummy", "dummy")),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %v", err)
		}

		db = dynamodb.NewFromConfig(cfg,
			func(o *dynamodb.Options) {
				o.BaseEndpoint = aws.String("http://localhost:8000")
			},
		)
	} else {
		cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %v", err)
		}

		db = dynamodb.NewFromConfig(cfg)
	}

	d := &DynamoDB{db: db, table: table}
	if os.Getenv("DYNAMO_LOCAL") != "" {
		if err := d.EnsureTable(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *DynamoDB) EnsureTable() error {
	_, err := d.db.DescribeTable(context.TODO(), &dynamodb.DescribeTableInput{
		TableName: aws.String(d.table),
	})
	if err == nil {
		return nil
	}

	_, err = d.db.CreateTable(context.TODO(), &dynamodb.CreateTableInput{
		TableName: aws.String(d.table),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeN},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		ProvisionedThroughput: &types.ProvisionedThroughput{
			ReadCapacityUnits:  aws.Int64(5),
			WriteCapacityUnits: aws.Int64(5),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create table %s: %v", d.table, err)
	}

	for i := 0; i < maxRetries; i++ {
		out, err := d.db.DescribeTable(context.TODO(), &dynamodb.DescribeTableInput{
			TableName: aws.String(d.table),
		})
		if err != nil {
			return fmt.Errorf("failed to describe table %s: %v", d.table, err)
		}
		if out.Table.TableStatus == types.TableStatusActive {
			return nil
		}
		time.Sleep(waitInterval)
	}

	return fmt.Errorf("table %s creation timed out", d.table)
}

func (d *DynamoDB) CreateSubmission(sub *models.Submission) error {
	// Nanosecond timestamps double as unique ids; a double-submit lands as
	// two rows, which is the intended behavior.
	sub.ID = uint(time.Now().UnixNano())
	sub.CreatedAt = time.Now().UTC()

	item := map[string]types.AttributeValue{
		"id":         &types.AttributeValueMemberN{Value: strconv.FormatUint(uint64(sub.ID), 10)},
		"name":       &types.AttributeValueMemberS{Value: sub.Name},
		"email":      &types.AttributeValueMemberS{Value: sub.Email},
		"phone":      &types.AttributeValueMemberS{Value: sub.Phone},
		"created_at": &types.AttributeValueMemberS{Value: sub.CreatedAt.Format(time.RFC3339Nano)},
	}
	if sub.Shop != nil {
		item["shop"] = &types.AttributeValueMemberS{Value: *sub.Shop}
	}

	_, err := d.db.PutItem(context.TODO(), &dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      item,
	})
	return err
}

func (d *DynamoDB) ListSubmissions() ([]models.Submission, error) {
	subs := []models.Submission{}
	var startKey map[string]types.AttributeValue

	for {
		out, err := d.db.Scan(context.TODO(), &dynamodb.ScanInput{
			TableName:         aws.String(d.table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			sub, err := itemToSubmission(item)
			if err != nil {
				continue
			}
			subs = append(subs, *sub)
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(subs, func(i, j int) bool {
		if subs[i].CreatedAt.Equal(subs[j].CreatedAt) {
			return subs[i].ID > subs[j].ID
		}
		return subs[i].CreatedAt.After(subs[j].CreatedAt)
	})
	return subs, nil
}

func itemToSubmission(item map[string]types.AttributeValue) (*models.Submission, error) {
	sub := &models.Submission{}

	if v, ok := item["id"].(*types.AttributeValueMemberN); ok {
		id, err := strconv.ParseUint(v.Value, 10, 64)
		if err != nil {
			return nil, err
		}
		sub.ID = uint(id)
	}
	if v, ok := item["name"].(*types.AttributeValueMemberS); ok {
		sub.Name = v.Value
	}
	if v, ok := item["email"].(*types.AttributeValueMemberS); ok {
		sub.Email = v.Value
	}
	if v, ok := item["phone"].(*types.AttributeValueMemberS); ok {
		sub.Phone = v.Value
	}
	if v, ok := item["shop"].(*types.AttributeValueMemberS); ok {
		shop := v.Value
		sub.Shop = &shop
	}
	if v, ok := item["created_at"].(*types.AttributeValueMemberS); ok {
		t, err := time.Parse(time.RFC3339Nano, v.Value)
		if err != nil {
			return nil, err
		}
		sub.CreatedAt = t
	}

	return sub, nil
}

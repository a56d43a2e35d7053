package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"
)

// Match is an equality condition on a single attribute.
type Match struct {
	Attr  string
	Value string
}

// FindSpec describes one logical predicate: all records in Table where
// Key.Attr = Key.Value, optionally narrowed by Extra. The same spec drives
// both the index-backed query and the scan fallback, so the two paths can
// never drift apart.
type FindSpec struct {
	Table string
	Index string
	Key   Match
	Extra *Match
}

// Path reports which physical path produced a result set.
type Path string

const (
	// PathIndex means the secondary index served the lookup
	PathIndex Path = "index"
	// PathScan means the lookup fell back to a full table scan
	PathScan Path = "scan"
)

// Finder resolves FindSpecs against DynamoDB, preferring the secondary index
// and falling back to a scan when the index is missing, still building, or
// erroring. The fallback is silent to callers; only a both-paths failure is an
// error. Availability over efficiency.
type Finder struct {
	db  DynamoAPI
	log *logrus.Entry
}

// NewFinder creates a finder over the given client
func NewFinder(db DynamoAPI) *Finder {
	return &Finder{
		db:  db,
		log: logrus.WithField("component", "finder"),
	}
}

// FindBy resolves the spec and unmarshals the matching records into out,
// which must be a pointer to a slice. The returned Path tells which route
// served the result; callers normally ignore it.
func (f *Finder) FindBy(ctx context.Context, spec FindSpec, out interface{}) (Path, error) {
	items, queryErr := f.queryAll(ctx, spec)
	if queryErr == nil {
		if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
			return "", fmt.Errorf("failed to unmarshal query results: %w", err)
		}
		return PathIndex, nil
	}

	f.log.WithFields(logrus.Fields{
		"table": spec.Table,
		"index": spec.Index,
		"attr":  spec.Key.Attr,
	}).WithError(queryErr).Warn("Index query failed, falling back to scan")

	items, scanErr := f.scanAll(ctx, spec)
	if scanErr != nil {
		return "", fmt.Errorf("index query failed (%v) and scan fallback failed: %w", queryErr, scanErr)
	}

	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return "", fmt.Errorf("failed to unmarshal scan results: %w", err)
	}
	return PathScan, nil
}

// queryAll runs the index-backed query, following pagination to exhaustion
func (f *Finder) queryAll(ctx context.Context, spec FindSpec) ([]map[string]types.AttributeValue, error) {
	input := spec.queryInput()

	var items []map[string]types.AttributeValue
	for {
		out, err := f.db.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if out.LastEvaluatedKey == nil {
			return items, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// scanAll runs the scan fallback with the equivalent filter expression,
// following pagination to exhaustion
func (f *Finder) scanAll(ctx context.Context, spec FindSpec) ([]map[string]types.AttributeValue, error) {
	input := spec.scanInput()

	var items []map[string]types.AttributeValue
	for {
		out, err := f.db.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if out.LastEvaluatedKey == nil {
			return items, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// queryInput builds the index form of the predicate: the key condition covers
// the indexed attribute, the extra match (if any) rides along as a filter.
func (s FindSpec) queryInput() *dynamodb.QueryInput {
	input := &dynamodb.QueryInput{
		TableName:                 aws.String(s.Table),
		IndexName:                 aws.String(s.Index),
		KeyConditionExpression:    aws.String("#k = :k"),
		ExpressionAttributeNames:  s.names(),
		ExpressionAttributeValues: s.values(),
	}
	if s.Extra != nil {
		input.FilterExpression = aws.String("#f = :f")
	}
	return input
}

// scanInput builds the scan form of the same predicate: everything becomes a
// filter expression over the full table.
func (s FindSpec) scanInput() *dynamodb.ScanInput {
	filter := "#k = :k"
	if s.Extra != nil {
		filter = "#k = :k AND #f = :f"
	}
	return &dynamodb.ScanInput{
		TableName:                 aws.String(s.Table),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeNames:  s.names(),
		ExpressionAttributeValues: s.values(),
	}
}

// names returns the attribute name substitutions shared by both paths
func (s FindSpec) names() map[string]string {
	names := map[string]string{"#k": s.Key.Attr}
	if s.Extra != nil {
		names["#f"] = s.Extra.Attr
	}
	return names
}

// values returns the attribute value substitutions shared by both paths
func (s FindSpec) values() map[string]types.AttributeValue {
	values := map[string]types.AttributeValue{
		":k": &types.AttributeValueMemberS{Value: s.Key.Value},
	}
	if s.Extra != nil {
		values[":f"] = &types.AttributeValueMemberS{Value: s.Extra.Value}
	}
	return values
}

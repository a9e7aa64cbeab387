package repositories

import (
	"context"
	"math"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/blogem/customer-logs/models"
)

// documentFinder is the part of *mongo.Collection the repositories use
type documentFinder interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
}

// findAll runs an equality query and decodes every match into results.
// The cursor, and with it the pooled connection, is released on every path.
func findAll(ctx context.Context, coll documentFinder, filter interface{}, results interface{}) error {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, results)
}

// withTimeout bounds a single store call
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// rawString renders a scalar document field as a string. Documents written by
// other tools may hold ids and phone numbers as numbers or ObjectIDs.
func rawString(v bson.RawValue) string {
	switch v.Type {
	case bson.TypeString:
		return v.StringValue()
	case bson.TypeInt32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case bson.TypeInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case bson.TypeDouble:
		return strconv.FormatFloat(v.Double(), 'f', -1, 64)
	case bson.TypeObjectID:
		return v.ObjectID().Hex()
	case bson.TypeDateTime:
		return models.FormatStoredDate(v.Time())
	case bson.TypeBoolean:
		return strconv.FormatBool(v.Boolean())
	default:
		return ""
	}
}

// storedDateString normalises a stored date to a string. Unsupported or missing values
// become "" so they fail date parsing downstream.
func storedDateString(v bson.RawValue) string {
	switch v.Type {
	case bson.TypeString:
		return v.StringValue()
	case bson.TypeDateTime:
		return models.FormatStoredDate(v.Time())
	case bson.TypeInt32:
		return models.FormatStoredDate(time.UnixMilli(int64(v.Int32())))
	case bson.TypeInt64:
		return models.FormatStoredDate(time.UnixMilli(v.Int64()))
	case bson.TypeDouble:
		ms := v.Double()
		if math.IsNaN(ms) || math.IsInf(ms, 0) {
			return ""
		}
		return models.FormatStoredDate(time.UnixMilli(int64(ms)))
	default:
		return ""
	}
}

package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/partsline/manufacturer-api/internal/core/domain"
)

const collectionOrders = "orders"

// OrderRepository implements ports.OrderRepository on the orders collection.
// Orders are stored verbatim as submitted; the unique compound index on
// (partsName, email) is the authoritative duplicate guard.
type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(collectionOrders)}
}

func (r *OrderRepository) FindByPartsAndEmail(ctx context.Context, partsName, email string) (domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		domain.FieldPartsName: partsName,
		domain.FieldEmail:     email,
	}

	var doc domain.Document
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return doc, nil
}

func (r *OrderRepository) Insert(ctx context.Context, order domain.Document) (domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, bson.M(order))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateOrder
		}
		return nil, fmt.Errorf("insert order: %w", err)
	}

	order["_id"] = res.InsertedID
	return order, nil
}

func (r *OrderRepository) FindByEmail(ctx context.Context, email string) ([]domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{domain.FieldEmail: email})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	var docs []domain.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return docs, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete order: %w", err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the unique compound index that closes the
// check-then-insert race on duplicate submissions.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: domain.FieldPartsName, Value: 1},
			{Key: domain.FieldEmail, Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}

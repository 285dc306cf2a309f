package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/partsline/manufacturer-api/internal/core/domain"
)

// Names of the flat catalog collections.
const (
	CollectionServices = "services"
	CollectionReviews  = "reviews"
	CollectionProducts = "products"
)

// CatalogRepository is the shared repository for the schemaless catalog
// collections. One instance serves exactly one collection.
type CatalogRepository struct {
	col *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database, collection string) *CatalogRepository {
	return &CatalogRepository{col: db.Collection(collection)}
}

func (r *CatalogRepository) FindAll(ctx context.Context) ([]domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.col.Name(), err)
	}

	var docs []domain.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.col.Name(), err)
	}
	return docs, nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, id string) (domain.Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc domain.Document
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("find %s: %w", r.col.Name(), err)
	}
	return doc, nil
}

func (r *CatalogRepository) Insert(ctx context.Context, doc domain.Document) (domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, bson.M(doc))
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", r.col.Name(), err)
	}

	doc["_id"] = res.InsertedID
	return doc, nil
}

func (r *CatalogRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", r.col.Name(), err)
	}
	return res.DeletedCount, nil
}

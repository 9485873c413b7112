package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quickmart/store-api/internal/core/domain"
)

const cartsCollection = "carts"

// addLineAttempts bounds the retry loop in AddLine. Two passes suffice in
// practice; the third absorbs a duplicate-key retry racing another insert.
const addLineAttempts = 3

type CartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{coll: db.Collection(cartsCollection)}
}

type cartLineDoc struct {
	ProductID primitive.ObjectID `bson:"product_id"`
	Quantity  int                `bson:"quantity"`
}

type cartDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Items     []cartLineDoc      `bson:"items"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (r *CartRepository) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc cartDoc
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("find cart: %w", err)
	}

	cart := &domain.Cart{UserID: doc.UserID, Lines: make([]domain.CartLine, 0, len(doc.Items))}
	for _, item := range doc.Items {
		cart.Lines = append(cart.Lines, domain.CartLine{
			ProductID: item.ProductID.Hex(),
			Quantity:  item.Quantity,
		})
	}
	return cart, nil
}

// AddLine merges a product into the cart without a read-modify-write
// window. Both paths are single-document atomic updates:
//
//  1. $inc the quantity of an existing line for the product.
//  2. Otherwise $push a fresh line, upserting the cart document itself
//     when the user has none yet (lazy creation).
//
// A concurrent first-add for the same user makes the upsert trip the
// unique user_id index; the retry then lands on the $inc path, so two
// simultaneous adds always end at quantity 2.
func (r *CartRepository) AddLine(ctx context.Context, userID, productID string) error {
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	for attempt := 0; attempt < addLineAttempts; attempt++ {
		res, err := r.coll.UpdateOne(ctx,
			bson.M{"user_id": userID, "items.product_id": oid},
			bson.M{
				"$inc": bson.M{"items.$.quantity": 1},
				"$set": bson.M{"updated_at": now},
			},
		)
		if err != nil {
			return fmt.Errorf("increment cart line: %w", err)
		}
		if res.ModifiedCount == 1 {
			return nil
		}

		_, err = r.coll.UpdateOne(ctx,
			bson.M{"user_id": userID, "items.product_id": bson.M{"$ne": oid}},
			bson.M{
				"$push": bson.M{"items": cartLineDoc{ProductID: oid, Quantity: 1}},
				"$set":  bson.M{"updated_at": now},
			},
			options.Update().SetUpsert(true),
		)
		if err == nil {
			return nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("append cart line: %w", err)
		}
		// Lost the upsert race to a concurrent add; the line now exists.
	}
	return fmt.Errorf("add cart line for user %s: retries exhausted", userID)
}

// RemoveLine pulls the product's line out of the cart. A cart that never
// contained the product is left unchanged; a user without a cart gets
// ErrCartNotFound.
func (r *CartRepository) RemoveLine(ctx context.Context, userID, productID string) error {
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		// Not a valid product reference, so it cannot be in any cart;
		// still report a missing cart.
		_, err := r.Get(ctx, userID)
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{
			"$pull": bson.M{"items": bson.M{"product_id": oid}},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return fmt.Errorf("remove cart line: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCartNotFound
	}
	return nil
}

// EnsureIndexes creates the unique user_id index. AddLine's upsert path
// relies on it to detect concurrent cart creation.
func (r *CartRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

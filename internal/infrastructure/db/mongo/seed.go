package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// seedCatalog is the demo inventory inserted into an empty products
// collection so a fresh instance has something to sell.
var seedCatalog = []productDoc{
	{
		Name:        "Tesla Model S",
		Price:       79999,
		Image:       "https://picsum.photos/seed/tesla-model-s/400/300",
		Description: "Long-range electric sedan with autopilot.",
	},
	{
		Name:        "Mechanical Keyboard",
		Price:       149.5,
		Image:       "https://picsum.photos/seed/keyboard/400/300",
		Description: "Hot-swappable 75% board with tactile switches.",
	},
	{
		Name:        "Espresso Machine",
		Price:       349,
		Image:       "https://picsum.photos/seed/espresso/400/300",
		Description: "Dual-boiler machine for home baristas.",
	},
	{
		Name:        "Noise-Cancelling Headphones",
		Price:       279.99,
		Image:       "https://picsum.photos/seed/headphones/400/300",
		Description: "Over-ear, 30h battery, USB-C.",
	},
}

// SeedProducts inserts the demo catalog when the products collection is
// empty. It never touches an already-populated catalog.
func SeedProducts(ctx context.Context, db *mongo.Database, log zerolog.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll := db.Collection(productsCollection)
	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(seedCatalog))
	for _, doc := range seedCatalog {
		doc.CreatedAt = now
		docs = append(docs, doc)
	}

	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}

	log.Info().Int("count", len(docs)).Msg("seeded product catalog")
	return nil
}

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/bradykim7/mealplanner/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const foodsCollection = "foods"

// FoodRepository handles persistence for the food catalog
type FoodRepository struct {
	collection *mongo.Collection
	log        *zap.Logger
}

// NewFoodRepository creates a new food repository
func NewFoodRepository(db *MongoDB, log *zap.Logger) *FoodRepository {
	return &FoodRepository{
		collection: db.Collection(foodsCollection),
		log:        log.Named("food-repository"),
	}
}

// EnsureIndexes creates the unique name+category index
func (r *FoodRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create food index: %w", err)
	}
	return nil
}

// LoadCatalog reads every active food grouped by category, in insertion order
func (r *FoodRepository) LoadCatalog(ctx context.Context) (models.Catalog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find foods: %w", err)
	}
	defer cursor.Close(ctx)

	var foods []models.Food
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, fmt.Errorf("failed to decode foods: %w", err)
	}

	r.log.Debug("Loaded catalog", zap.Int("foods", len(foods)))
	return GroupFoods(foods), nil
}

// GroupFoods turns stored foods into a catalog, skipping unknown categories
func GroupFoods(foods []models.Food) models.Catalog {
	catalog := make(models.Catalog, len(models.Categories))
	for _, food := range foods {
		switch food.Category {
		case models.CategoryBreakfast, models.CategoryLunch, models.CategoryDinner:
			catalog[food.Category] = append(catalog[food.Category], food.Item())
		}
	}
	return catalog
}

// GetAllFoods returns every active food of a category
func (r *FoodRepository) GetAllFoods(ctx context.Context, category models.Category) ([]models.Food, error) {
	filter := bson.M{
		"category":  category,
		"is_active": true,
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find foods: %w", err)
	}
	defer cursor.Close(ctx)

	var foods []models.Food
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, fmt.Errorf("failed to decode foods: %w", err)
	}
	return foods, nil
}

// SaveFood inserts a new food; a duplicate name in the same category is rejected
func (r *FoodRepository) SaveFood(ctx context.Context, food *models.Food) error {
	filter := bson.M{
		"name":      food.Name,
		"category":  food.Category,
		"is_active": true,
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check existing food: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("food %q %w", food.Name, models.ErrAlreadyExists)
	}

	res, err := r.collection.InsertOne(ctx, food)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("food %q %w", food.Name, models.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to insert food: %w", err)
	}

	r.log.Info("Saved food",
		zap.String("name", food.Name),
		zap.String("category", string(food.Category)),
		zap.Any("id", res.InsertedID))
	return nil
}

// DeleteFood removes a food by name and category
func (r *FoodRepository) DeleteFood(ctx context.Context, name string, category models.Category) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"name": name, "category": category})
	if err != nil {
		return fmt.Errorf("failed to delete food: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("food %q %w", name, models.ErrNotFound)
	}

	r.log.Info("Deleted food", zap.String("name", name), zap.String("category", string(category)))
	return nil
}

// ImportCatalog upserts every catalog item by name and category and returns how many were written
func (r *FoodRepository) ImportCatalog(ctx context.Context, catalog models.Catalog, createdBy string) (int, error) {
	if err := catalog.Validate(); err != nil {
		return 0, err
	}

	var writes []mongo.WriteModel
	for _, category := range models.Categories {
		for _, item := range catalog[category] {
			food := models.NewFood(item.DisplayName, item.Calories, category, createdBy)
			writes = append(writes, mongo.NewUpdateOneModel().
				SetFilter(bson.M{"name": food.Name, "category": food.Category}).
				SetUpdate(bson.M{
					"$set": bson.M{
						"calories":  food.Calories,
						"is_active": true,
					},
					"$setOnInsert": bson.M{
						"created_at": food.CreatedAt,
						"created_by": food.CreatedBy,
					},
				}).
				SetUpsert(true))
		}
	}

	res, err := r.collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	if err != nil {
		var bulkErr mongo.BulkWriteException
		if errors.As(err, &bulkErr) {
			r.log.Error("Partial catalog import", zap.Int("errors", len(bulkErr.WriteErrors)))
		}
		return 0, fmt.Errorf("failed to import catalog: %w", err)
	}

	written := int(res.UpsertedCount + res.ModifiedCount)
	r.log.Info("Imported catalog",
		zap.Int("items", len(writes)),
		zap.Int64("upserted", res.UpsertedCount),
		zap.Int64("modified", res.ModifiedCount))
	return written, nil
}

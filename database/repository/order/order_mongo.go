package orderRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"grandhaven/database"
	"grandhaven/models"
	"grandhaven/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOrderRepo implements OrderRepository using MongoDB.
type MongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo creates a new instance of OrderRepository using MongoDB.
func NewMongoOrderRepo() OrderRepository {
	repo := &MongoOrderRepo{coll: database.Collection("orders")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries. The
// sparse unique index keeps one payment attempt record per order at a time.
func (r *MongoOrderRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "orderNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "paymentIntentId", Value: 1}}, Options: options.Index().SetUnique(true).SetSparse(true)},
		{Keys: bson.D{{Key: "customerId", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new order document.
func (r *MongoOrderRepo) Create(order *models.Order) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.ConflictError(fmt.Sprintf("order %s already exists", order.OrderNumber))
		}
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of an existing order document.
func (r *MongoOrderRepo) Update(order *models.Order) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	order.UpdatedAt = time.Now()
	filter := bson.M{"id": order.ID}
	update := bson.M{"$set": order}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.ConflictError(fmt.Sprintf("payment intent %s already recorded", order.PaymentIntentID))
		}
		return fmt.Errorf("failed to update order with id %s: %w", order.ID, err)
	}
	if result.MatchedCount == 0 {
		return utils.NotFoundError(fmt.Sprintf("order with id %s not found", order.ID))
	}
	return nil
}

// GetByID retrieves an order by its unique ID.
func (r *MongoOrderRepo) GetByID(id string) (*models.Order, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var order models.Order
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError(fmt.Sprintf("order with id %s not found", id))
		}
		return nil, fmt.Errorf("failed to fetch order with id %s: %w", id, err)
	}
	return &order, nil
}

// GetByPaymentIntent retrieves the order holding the given payment intent.
func (r *MongoOrderRepo) GetByPaymentIntent(paymentIntentID string) (*models.Order, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var order models.Order
	err := r.coll.FindOne(ctx, bson.M{"paymentIntentId": paymentIntentID}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError(fmt.Sprintf("no order for payment intent %s", paymentIntentID))
		}
		return nil, fmt.Errorf("failed to fetch order for payment intent %s: %w", paymentIntentID, err)
	}
	return &order, nil
}

// ListByCustomer returns a customer's orders, newest first.
func (r *MongoOrderRepo) ListByCustomer(customerID string) ([]models.Order, error) {
	return r.find(bson.M{"customerId": customerID})
}

// List returns orders, optionally filtered by status.
func (r *MongoOrderRepo) List(status models.OrderStatus) ([]models.Order, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return r.find(filter)
}

func (r *MongoOrderRepo) find(filter bson.M) ([]models.Order, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

package cloudz

import (
	"context"
	"errors"
	"time"

	models "github.com/clouddistrictclub/cloud-district-app/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Заказы

func (r *LoyaltyDB) CreateOrder(ctx context.Context, order models.Order) error {
	_, err := r.orders.InsertOne(ctx, order)
	return err
}

// вставка, если заказа еще нет
func (r *LoyaltyDB) UpsertOrder(ctx context.Context, order models.Order) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.orders.UpdateOne(ctx, bson.M{"id": order.ID}, bson.M{"$setOnInsert": order}, opts)
	return err
}

func (r *LoyaltyDB) GetOrder(ctx context.Context, id uuid.UUID) (order models.Order, err error) {
	err = r.orders.FindOne(ctx, bson.M{"id": id}).Decode(&order)
	return order, notFound(err)
}

func (r *LoyaltyDB) ListOrders(ctx context.Context, userId uuid.UUID) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.orders.Find(ctx, bson.M{"userId": userId}, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Order](ctx, cursor)
}

// возвращает заказ до изменения
func (r *LoyaltyDB) SetOrderStatus(ctx context.Context, id uuid.UUID, status string) (previous models.Order, err error) {
	update := bson.M{"$set": bson.M{"status": status}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)
	err = r.orders.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&previous)
	return previous, notFound(err)
}

func (r *LoyaltyDB) SetOrderPaidAt(ctx context.Context, id uuid.UUID, paidAt time.Time) error {
	result, err := r.orders.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"paidAt": paidAt}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *LoyaltyDB) PaidOrders(ctx context.Context, userId uuid.UUID) ([]models.Order, error) {
	filter := bson.M{
		"userId": userId,
		"paidAt": bson.M{"$exists": true},
		"status": bson.M{"$ne": models.StatusCancelled},
	}
	opts := options.Find().SetProjection(bson.M{"id": 1, "userId": 1, "status": 1, "paidAt": 1})
	cursor, err := r.orders.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Order](ctx, cursor)
}

// Товары

func (r *LoyaltyDB) CreateProduct(ctx context.Context, product models.Product) error {
	_, err := r.products.InsertOne(ctx, product)
	return err
}

func (r *LoyaltyDB) GetProduct(ctx context.Context, id uuid.UUID) (product models.Product, err error) {
	err = r.products.FindOne(ctx, bson.M{"id": id}).Decode(&product)
	return product, notFound(err)
}

func (r *LoyaltyDB) ListProducts(ctx context.Context, activeOnly bool) ([]models.Product, error) {
	filter := bson.M{}
	if activeOnly {
		filter["isActive"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.products.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Product](ctx, cursor)
}

// остаток не уходит ниже нуля
func (r *LoyaltyDB) AdjustStock(ctx context.Context, id uuid.UUID, delta int64) (product models.Product, err error) {
	filter := bson.M{"id": id}
	if delta < 0 {
		filter["stock"] = bson.M{"$gte": -delta}
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = r.products.FindOneAndUpdate(ctx, filter, bson.M{"$inc": bson.M{"stock": delta}}, opts).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) && delta < 0 {
		count, cerr := r.products.CountDocuments(ctx, bson.M{"id": id})
		if cerr != nil {
			return product, cerr
		}
		if count > 0 {
			return product, models.ErrInsufficientStock
		}
	}
	return product, notFound(err)
}

// без проверки остатка: проверка была при создании заказа
func (r *LoyaltyDB) DecrementStock(ctx context.Context, id uuid.UUID, quantity int64) error {
	result, err := r.products.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$inc": bson.M{"stock": -quantity}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

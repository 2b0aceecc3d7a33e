package cloudz

import (
	"context"
	"errors"
	"strings"
	"time"

	config "github.com/clouddistrictclub/cloud-district-app/internal/config"
	models "github.com/clouddistrictclub/cloud-district-app/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type LoyaltyDB struct {
	mgo      *mongo.Client
	accounts *mongo.Collection
	ledger   *mongo.Collection
	rewards  *mongo.Collection
	orders   *mongo.Collection
	products *mongo.Collection
	logger   *zap.Logger
}

func NewLoyaltyDB(cfg config.MongoConfig, logger *zap.Logger) (*LoyaltyDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	options := options.Client().ApplyURI(cfg.URI())
	client, err := mongo.Connect(ctx, options)
	if err != nil {
		return nil, err
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.Database)

	storage := &LoyaltyDB{
		mgo:      client,
		accounts: db.Collection("accounts"),
		ledger:   db.Collection("cloudz_ledger"),
		rewards:  db.Collection("loyalty_rewards"),
		orders:   db.Collection("orders"),
		products: db.Collection("products"),
		logger:   logger,
	}
	err = storage.EnsureIndexes(ctx)
	if err != nil {
		return nil, err
	}
	return storage, nil
}

func (r *LoyaltyDB) Close(ctx context.Context) error {
	return r.mgo.Disconnect(ctx)
}

func uniqueIndex(keys bson.D) mongo.IndexModel {
	return mongo.IndexModel{Keys: keys, Options: options.Index().SetUnique(true)}
}

// Индексы
func (r *LoyaltyDB) EnsureIndexes(ctx context.Context) error {
	indexes := map[*mongo.Collection][]mongo.IndexModel{
		r.accounts: {
			uniqueIndex(bson.D{{Key: "id", Value: 1}}),
			uniqueIndex(bson.D{{Key: "referralCode", Value: 1}}),
			{Keys: bson.D{{Key: "balance", Value: -1}}},
			{Keys: bson.D{{Key: "referralCount", Value: -1}}},
		},
		r.ledger: {
			uniqueIndex(bson.D{{Key: "id", Value: 1}}),
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "type", Value: 1}, {Key: "createdAt", Value: -1}}},
			{
				Keys: bson.D{{Key: "idempotencyKey", Value: 1}},
				Options: options.Index().SetUnique(true).
					SetPartialFilterExpression(bson.M{"idempotencyKey": bson.M{"$exists": true}}),
			},
		},
		r.rewards: {
			uniqueIndex(bson.D{{Key: "id", Value: 1}}),
			{
				Keys: bson.D{{Key: "userId", Value: 1}, {Key: "tierId", Value: 1}},
				Options: options.Index().SetUnique(true).
					SetPartialFilterExpression(bson.M{"used": false}),
			},
		},
		r.orders: {
			uniqueIndex(bson.D{{Key: "id", Value: 1}}),
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		r.products: {
			uniqueIndex(bson.D{{Key: "id", Value: 1}}),
		},
	}
	for coll, idx := range indexes {
		names, err := coll.Indexes().CreateMany(ctx, idx)
		if err != nil {
			return err
		}
		r.logger.Debug("Indexes ensured",
			zap.String("collection", coll.Name()),
			zap.Strings("indexes", names))
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.ErrNotFound
	}
	return err
}

func decodeAll[T any](ctx context.Context, cursor *mongo.Cursor) ([]T, error) {
	defer cursor.Close(ctx)
	var out []T
	for cursor.Next(ctx) {
		var item T
		err := cursor.Decode(&item)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, cursor.Err()
}

// Счета

func (r *LoyaltyDB) CreateAccount(ctx context.Context, account models.Account) error {
	_, err := r.accounts.InsertOne(ctx, account)
	return accountInsertError(err)
}

// какой уникальный индекс нарушен: id или referralCode
func accountInsertError(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return err
	}
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 && strings.Contains(e.Message, "referralCode") {
				return models.ErrDuplicateReferralCode
			}
		}
	}
	return models.ErrDuplicateAccount
}

func (r *LoyaltyDB) GetAccount(ctx context.Context, id uuid.UUID) (account models.Account, err error) {
	err = r.accounts.FindOne(ctx, bson.M{"id": id}).Decode(&account)
	return account, notFound(err)
}

func (r *LoyaltyDB) GetAccountByReferralCode(ctx context.Context, code string) (account models.Account, err error) {
	err = r.accounts.FindOne(ctx, bson.M{"referralCode": code}).Decode(&account)
	return account, notFound(err)
}

func (r *LoyaltyDB) GetAccounts(ctx context.Context, ids []uuid.UUID) ([]models.Account, error) {
	cursor, err := r.accounts.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Account](ctx, cursor)
}

func (r *LoyaltyDB) ListAccountIDs(ctx context.Context) ([]uuid.UUID, error) {
	opts := options.Find().SetProjection(bson.M{"id": 1})
	cursor, err := r.accounts.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	type idOnly struct {
		ID uuid.UUID `bson:"id"`
	}
	docs, err := decodeAll[idOnly](ctx, cursor)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids, nil
}

// атомарный инкремент, списание только при достаточном балансе
func (r *LoyaltyDB) IncrementBalance(ctx context.Context, id uuid.UUID, amount int64) (int64, error) {
	filter := bson.M{"id": id}
	if amount < 0 {
		filter["balance"] = bson.M{"$gte": -amount}
	}
	update := bson.M{"$inc": bson.M{"balance": amount}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var account models.Account
	err := r.accounts.FindOneAndUpdate(ctx, filter, update, opts).Decode(&account)
	if errors.Is(err, mongo.ErrNoDocuments) {
		if amount < 0 {
			count, cerr := r.accounts.CountDocuments(ctx, bson.M{"id": id})
			if cerr != nil {
				return 0, cerr
			}
			if count > 0 {
				return 0, models.ErrInsufficientBalance
			}
		}
		return 0, models.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

func (r *LoyaltyDB) MarkReferralRewardIssued(ctx context.Context, id uuid.UUID) (bool, error) {
	filter := bson.M{"id": id, "referralRewardIssued": false}
	result, err := r.accounts.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"referralRewardIssued": true}})
	if err != nil {
		return false, err
	}
	return result.ModifiedCount == 1, nil
}

func (r *LoyaltyDB) ResetReferralRewardIssued(ctx context.Context, id uuid.UUID) error {
	result, err := r.accounts.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"referralRewardIssued": false}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *LoyaltyDB) IncrementReferralStats(ctx context.Context, id uuid.UUID, count int64, earned int64) error {
	update := bson.M{"$inc": bson.M{"referralCount": count, "referralRewardsEarned": earned}}
	result, err := r.accounts.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *LoyaltyDB) TopByBalance(ctx context.Context, limit int64) ([]models.Account, error) {
	opts := options.Find().SetSort(bson.D{{Key: "balance", Value: -1}}).SetLimit(limit)
	cursor, err := r.accounts.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Account](ctx, cursor)
}

func (r *LoyaltyDB) TopByReferrals(ctx context.Context, limit int64) ([]models.Account, error) {
	opts := options.Find().SetSort(bson.D{{Key: "referralCount", Value: -1}}).SetLimit(limit)
	cursor, err := r.accounts.Find(ctx, bson.M{"referralCount": bson.M{"$gt": 0}}, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Account](ctx, cursor)
}

// Леджер

func (r *LoyaltyDB) InsertLedgerEntry(ctx context.Context, entry models.LedgerEntry) error {
	_, err := r.ledger.InsertOne(ctx, entry)
	if mongo.IsDuplicateKeyError(err) {
		return models.ErrDuplicateLedgerKey
	}
	return err
}

func (r *LoyaltyDB) GetLedger(ctx context.Context, userId uuid.UUID) ([]models.LedgerEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.ledger.Find(ctx, bson.M{"userId": userId}, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.LedgerEntry](ctx, cursor)
}

func (r *LoyaltyDB) ListLedger(ctx context.Context, filter models.LedgerFilter) ([]models.LedgerEntry, int64, error) {
	query := bson.M{}
	if filter.UserID != nil {
		query["userId"] = *filter.UserID
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	total, err := r.ledger.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(filter.Skip).
		SetLimit(filter.Limit)
	cursor, err := r.ledger.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	entries, err := decodeAll[models.LedgerEntry](ctx, cursor)
	return entries, total, err
}

func (r *LoyaltyDB) SumLedger(ctx context.Context, userId uuid.UUID) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userId}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}}}},
	}
	cursor, err := r.ledger.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	type sum struct {
		Total int64 `bson:"total"`
	}
	result, err := decodeAll[sum](ctx, cursor)
	if err != nil || len(result) == 0 {
		return 0, err
	}
	return result[0].Total, nil
}

func (r *LoyaltyDB) LedgerKeyExists(ctx context.Context, key string) (bool, error) {
	count, err := r.ledger.CountDocuments(ctx, bson.M{"idempotencyKey": key}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Скидки

func (r *LoyaltyDB) InsertRedemption(ctx context.Context, redemption models.Redemption) error {
	_, err := r.rewards.InsertOne(ctx, redemption)
	if mongo.IsDuplicateKeyError(err) {
		return models.ErrDuplicateActiveReward
	}
	return err
}

func (r *LoyaltyDB) FindActiveRedemption(ctx context.Context, userId uuid.UUID, tierId string) (redemption models.Redemption, err error) {
	filter := bson.M{"userId": userId, "tierId": tierId, "used": false}
	err = r.rewards.FindOne(ctx, filter).Decode(&redemption)
	return redemption, notFound(err)
}

// used: false -> true, не найдено если чужая или уже использована
func (r *LoyaltyDB) ConsumeRedemption(ctx context.Context, id uuid.UUID, userId uuid.UUID, orderId uuid.UUID, usedAt time.Time) (redemption models.Redemption, err error) {
	filter := bson.M{"id": id, "userId": userId, "used": false}
	update := bson.M{"$set": bson.M{"used": true, "usedAt": usedAt, "orderId": orderId}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = r.rewards.FindOneAndUpdate(ctx, filter, update, opts).Decode(&redemption)
	return redemption, notFound(err)
}

func (r *LoyaltyDB) ReleaseRedemption(ctx context.Context, id uuid.UUID) error {
	update := bson.M{
		"$set":   bson.M{"used": false},
		"$unset": bson.M{"usedAt": "", "orderId": ""},
	}
	result, err := r.rewards.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *LoyaltyDB) ListRedemptions(ctx context.Context, userId uuid.UUID, activeOnly bool, limit int64) ([]models.Redemption, error) {
	filter := bson.M{"userId": userId}
	if activeOnly {
		filter["used"] = false
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := r.rewards.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Redemption](ctx, cursor)
}

package businessRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"glowdesk/database"
	"glowdesk/models"
)

// MongoBusinessRepo implements BusinessRepository using MongoDB.
type MongoBusinessRepo struct {
	businesses   *mongo.Collection
	hours        *mongo.Collection
	bankAccounts *mongo.Collection
	bookingLinks *mongo.Collection
}

// NewMongoBusinessRepo creates a new BusinessRepository backed by MongoDB.
func NewMongoBusinessRepo() BusinessRepository {
	db := database.DB()
	repo := &MongoBusinessRepo{
		businesses:   db.Collection("businesses"),
		hours:        db.Collection("business_hours"),
		bankAccounts: db.Collection("bank_accounts"),
		bookingLinks: db.Collection("booking_links"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoBusinessRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.businesses.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner_profile_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("failed to create business indexes: %w", err)
	}

	_, err = r.hours.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "business_id", Value: 1}, {Key: "weekday", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create hours index: %w", err)
	}

	_, err = r.bookingLinks.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create booking link index: %w", err)
	}
	return nil
}

func (r *MongoBusinessRepo) Create(ctx context.Context, biz *models.Business) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.businesses.InsertOne(ctx, biz)
	return err
}

func (r *MongoBusinessRepo) GetByID(ctx context.Context, id string) (*models.Business, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var biz models.Business
	err := r.businesses.FindOne(ctx, bson.M{"id": id}).Decode(&biz)
	if err != nil {
		return nil, err
	}
	return &biz, nil
}

func (r *MongoBusinessRepo) GetByOwner(ctx context.Context, profileID string) (*models.Business, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var biz models.Business
	err := r.businesses.FindOne(ctx, bson.M{"owner_profile_id": profileID}).Decode(&biz)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &biz, nil
}

func (r *MongoBusinessRepo) Update(ctx context.Context, biz *models.Business) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.businesses.ReplaceOne(ctx, bson.M{"id": biz.ID}, biz)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoBusinessRepo) UpsertHours(ctx context.Context, hours *models.BusinessHours) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"business_id": hours.BusinessID, "weekday": hours.Weekday}
	opts := options.Replace().SetUpsert(true)
	_, err := r.hours.ReplaceOne(ctx, filter, hours, opts)
	return err
}

func (r *MongoBusinessRepo) ListHours(ctx context.Context, businessID string) ([]models.BusinessHours, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "weekday", Value: 1}})
	cursor, err := r.hours.Find(ctx, bson.M{"business_id": businessID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var hours []models.BusinessHours
	if err := cursor.All(ctx, &hours); err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *MongoBusinessRepo) CreateBankAccount(ctx context.Context, acct *models.BankAccount) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.bankAccounts.InsertOne(ctx, acct)
	return err
}

func (r *MongoBusinessRepo) ListBankAccounts(ctx context.Context, businessID string) ([]models.BankAccount, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.bankAccounts.Find(ctx, bson.M{"business_id": businessID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var accts []models.BankAccount
	if err := cursor.All(ctx, &accts); err != nil {
		return nil, err
	}
	return accts, nil
}

func (r *MongoBusinessRepo) DeleteBankAccount(ctx context.Context, businessID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.bankAccounts.DeleteOne(ctx, bson.M{"id": id, "business_id": businessID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoBusinessRepo) CreateBookingLink(ctx context.Context, link *models.BookingLink) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.bookingLinks.InsertOne(ctx, link)
	return err
}

func (r *MongoBusinessRepo) ListBookingLinks(ctx context.Context, businessID string) ([]models.BookingLink, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.bookingLinks.Find(ctx, bson.M{"business_id": businessID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var links []models.BookingLink
	if err := cursor.All(ctx, &links); err != nil {
		return nil, err
	}
	return links, nil
}

func (r *MongoBusinessRepo) SetBookingLinkActive(ctx context.Context, businessID, id string, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "business_id": businessID}
	update := bson.M{"$set": bson.M{"active": active}}
	res, err := r.bookingLinks.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

package campaignRepo

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

// MongoCampaignRepo implements CampaignRepository using MongoDB.
type MongoCampaignRepo struct {
	campaigns *mongo.Collection
	metrics   *mongo.Collection
}

// NewMongoCampaignRepo creates a new CampaignRepository backed by MongoDB.
func NewMongoCampaignRepo() CampaignRepository {
	db := database.DB()
	repo := &MongoCampaignRepo{
		campaigns: db.Collection("marketing_campaigns"),
		metrics:   db.Collection("campaign_metrics"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoCampaignRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.campaigns.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "business_id", Value: 1}, {Key: "campaign_subtype", Value: 1}, {Key: "is_active", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create campaign indexes: %w", err)
	}

	_, err = r.metrics.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "campaign_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create metrics index: %w", err)
	}
	return nil
}

func (r *MongoCampaignRepo) Upsert(ctx context.Context, c *models.Campaign) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": c.ID, "business_id": c.BusinessID}
	opts := options.Replace().SetUpsert(true)
	_, err := r.campaigns.ReplaceOne(ctx, filter, c, opts)
	return err
}

func (r *MongoCampaignRepo) GetByID(ctx context.Context, businessID, id string) (*models.Campaign, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c models.Campaign
	err := r.campaigns.FindOne(ctx, bson.M{"id": id, "business_id": businessID}).Decode(&c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MongoCampaignRepo) ListByBusiness(ctx context.Context, businessID, subtype string) ([]models.Campaign, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"business_id": businessID,
		"archived_at": bson.M{"$exists": false},
	}
	if subtype != "" {
		filter["campaign_subtype"] = subtype
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.campaigns.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var campaigns []models.Campaign
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (r *MongoCampaignRepo) FindActiveBySubtype(ctx context.Context, businessID, subtype, excludeID string) ([]models.Campaign, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"business_id":      businessID,
		"campaign_subtype": subtype,
		"is_active":        true,
		"archived_at":      bson.M{"$exists": false},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	cursor, err := r.campaigns.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var campaigns []models.Campaign
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (r *MongoCampaignRepo) SetActive(ctx context.Context, businessID, id string, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "business_id": businessID}
	update := bson.M{"$set": bson.M{"is_active": active, "updated_at": time.Now()}}
	res, err := r.campaigns.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoCampaignRepo) Archive(ctx context.Context, businessID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "business_id": businessID}
	update := bson.M{"$set": bson.M{"archived_at": time.Now(), "updated_at": time.Now()}}
	res, err := r.campaigns.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoCampaignRepo) ListActiveBoost(ctx context.Context) ([]models.Campaign, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	filter := bson.M{
		"campaign_subtype": models.SubtypeBoost,
		"is_active":        true,
		"archived_at":      bson.M{"$exists": false},
	}
	cursor, err := r.campaigns.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var campaigns []models.Campaign
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (r *MongoCampaignRepo) CreateMetrics(ctx context.Context, m *models.CampaignMetrics) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.metrics.InsertOne(ctx, m)
	return err
}

func (r *MongoCampaignRepo) GetMetrics(ctx context.Context, campaignID string) (*models.CampaignMetrics, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var m models.CampaignMetrics
	err := r.metrics.FindOne(ctx, bson.M{"campaign_id": campaignID}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

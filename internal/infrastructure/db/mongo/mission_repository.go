package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pairui/mission-board/internal/core/domain"
	"github.com/pairui/mission-board/internal/core/ports"
)

const collectionMissions = "missions"

// MissionRepository persists the mission aggregate. Writes replace the whole
// document under an optimistic version guard: the filter matches both _id and
// the version the caller read, so concurrent writers cannot silently
// overwrite each other.
type MissionRepository struct {
	col *mongo.Collection
}

func NewMissionRepository(db *mongo.Database) *MissionRepository {
	return &MissionRepository{col: db.Collection(collectionMissions)}
}

// Create inserts a new mission document. Ids are hex strings assigned here so
// the domain stays free of driver types.
func (r *MissionRepository) Create(ctx context.Context, m *domain.Mission) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if m.ID == "" {
		m.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.col.InsertOne(ctx, m)
	return err
}

func (r *MissionRepository) FindByID(ctx context.Context, id string) (*domain.Mission, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m domain.Mission
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMissionNotFound
		}
		return nil, err
	}
	return &m, nil
}

// List returns a page of missions matching filter, newest first, plus the
// total match count.
func (r *MissionRepository) List(ctx context.Context, filter ports.ListMissionsFilter) ([]*domain.Mission, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := listQuery(filter)

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var missions []*domain.Mission
	if err := cursor.All(ctx, &missions); err != nil {
		return nil, 0, err
	}
	return missions, total, nil
}

// listQuery translates the filter into a Mongo query document. Search is a
// case-insensitive substring match on name; the input is quoted so regex
// metacharacters in it have no meaning.
func listQuery(filter ports.ListMissionsFilter) bson.M {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.UILibrary != "" {
		query["ui_library"] = filter.UILibrary
	}
	if filter.CreatorRole != "" {
		query["creator_role"] = filter.CreatorRole
	}
	if filter.CreatorID != "" {
		query["creator_id"] = filter.CreatorID
	}
	if filter.ApplicantID != "" {
		query["applications.applicant_id"] = filter.ApplicantID
	}
	if filter.Search != "" {
		query["name"] = bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}}
	}
	return query
}

// UpdateVersioned replaces the aggregate if the stored version still matches
// m.Version, bumping both the document and m on success.
func (r *MissionRepository) UpdateVersioned(ctx context.Context, m *domain.Mission) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	readVersion := m.Version
	m.Version = readVersion + 1

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": m.ID, "version": readVersion}, m)
	if err != nil {
		m.Version = readVersion
		return err
	}
	if res.MatchedCount == 0 {
		m.Version = readVersion
		return domain.ErrVersionConflict
	}
	return nil
}

// DeleteVersioned removes the aggregate under the same version guard.
func (r *MissionRepository) DeleteVersioned(ctx context.Context, m *domain.Mission) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": m.ID, "version": m.Version})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrVersionConflict
	}
	return nil
}

// EnsureIndexes creates the indexes the list and dashboard queries rely on.
func (r *MissionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "creator_id", Value: 1}}},
		{Keys: bson.D{{Key: "applications.applicant_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

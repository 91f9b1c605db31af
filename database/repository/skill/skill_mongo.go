package skillRepo

import (
	"context"
	"fmt"
	"time"

	"tutorlink/database"
	"tutorlink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSkillRepo implements SkillRepository using MongoDB.
type MongoSkillRepo struct {
	skills      *mongo.Collection
	tutorSkills *mongo.Collection
}

// NewMongoSkillRepo creates a new instance of SkillRepository using MongoDB.
func NewMongoSkillRepo() SkillRepository {
	db := database.DB()
	repo := &MongoSkillRepo{
		skills:      db.Collection("skills"),
		tutorSkills: db.Collection("tutor_skills"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes; the compound unique index backs the
// "a tutor may not offer the same subject twice" invariant.
func (r *MongoSkillRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	_, err := r.skills.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create skill indexes: %w", err)
	}

	_, err = r.tutorSkills.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tutor_id", Value: 1}, {Key: "skill_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("failed to create tutor skill indexes: %w", err)
	}
	return nil
}

// ListSkills returns the full catalog ordered by name.
func (r *MongoSkillRepo) ListSkills() ([]models.Skill, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.skills.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve skills: %w", err)
	}
	defer cursor.Close(ctx)

	var skills []models.Skill
	for cursor.Next(ctx) {
		var s models.Skill
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, nil
}

// GetSkillByID fetches a catalog entry, (nil, nil) when absent.
func (r *MongoSkillRepo) GetSkillByID(id string) (*models.Skill, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var s models.Skill
	if err := r.skills.FindOne(ctx, bson.M{"id": id}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch skill with id %s: %w", id, err)
	}
	return &s, nil
}

// CreateTutorSkill inserts a tutor's skill offering. A duplicate
// (tutor_id, skill_id) pair is rejected by the unique index.
func (r *MongoSkillRepo) CreateTutorSkill(ts *models.TutorSkill) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	ts.CreatedAt = time.Now()
	if _, err := r.tutorSkills.InsertOne(ctx, ts); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("tutor %s already offers skill %s", ts.TutorID, ts.SkillID)
		}
		return fmt.Errorf("failed to create tutor skill: %w", err)
	}
	return nil
}

// DeleteTutorSkill removes an offering; the tutor filter stops one tutor
// deleting another's offering.
func (r *MongoSkillRepo) DeleteTutorSkill(id, tutorID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.tutorSkills.DeleteOne(ctx, bson.M{"id": id, "tutor_id": tutorID})
	if err != nil {
		return fmt.Errorf("failed to delete tutor skill %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("tutor skill with id %s not found", id)
	}
	return nil
}

// GetTutorSkillByID fetches an offering, (nil, nil) when absent.
func (r *MongoSkillRepo) GetTutorSkillByID(id string) (*models.TutorSkill, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var ts models.TutorSkill
	if err := r.tutorSkills.FindOne(ctx, bson.M{"id": id}).Decode(&ts); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tutor skill with id %s: %w", id, err)
	}
	return &ts, nil
}

// ListByTutor returns one tutor's offerings.
func (r *MongoSkillRepo) ListByTutor(tutorID string) ([]models.TutorSkill, error) {
	return r.ListByTutorIDs([]string{tutorID})
}

// ListByTutorIDs returns the offerings of a set of tutors in one query.
func (r *MongoSkillRepo) ListByTutorIDs(tutorIDs []string) ([]models.TutorSkill, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.tutorSkills.Find(ctx, bson.M{"tutor_id": bson.M{"$in": tutorIDs}})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tutor skills: %w", err)
	}
	defer cursor.Close(ctx)

	var offerings []models.TutorSkill
	for cursor.Next(ctx) {
		var ts models.TutorSkill
		if err := cursor.Decode(&ts); err != nil {
			return nil, fmt.Errorf("failed to decode tutor skill: %w", err)
		}
		offerings = append(offerings, ts)
	}
	return offerings, nil
}

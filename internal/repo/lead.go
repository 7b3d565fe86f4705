package repo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const leadCollection = "leads"

// Lead is one demo-request submission. Leads are insert-only: there is
// no update or delete path, and duplicate submissions produce duplicate
// documents on purpose (no dedup key exists).
type Lead struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string        `bson:"firstName" json:"firstName"`
	LastName  string        `bson:"lastName" json:"lastName"`
	Email     string        `bson:"email" json:"email"`
	Phone     string        `bson:"phone,omitempty" json:"phone,omitempty"`
	Company   string        `bson:"company" json:"company"`
	Source    string        `bson:"source" json:"source"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}

type LeadRepository struct {
	coll *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{coll: db.Collection(leadCollection)}
}

// Insert persists a new lead. The ID and CreatedAt are server-assigned
// here when unset; the document is immutable afterwards.
func (r *LeadRepository) Insert(ctx context.Context, lead *Lead) error {
	if lead.ID.IsZero() {
		lead.ID = bson.NewObjectID()
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now().UTC()
	}

	if _, err := r.coll.InsertOne(ctx, lead); err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// EnsureIndexes creates the secondary indexes the sales tooling queries
// by. Indexes are deliberately non-unique: duplicate submissions are
// expected to produce duplicate leads.
func (r *LeadRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "email", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "source", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("ensure lead indexes: %w", err)
	}
	return nil
}

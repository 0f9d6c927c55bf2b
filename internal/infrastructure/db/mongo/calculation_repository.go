package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ecotrack/ecotrack-api/internal/core/domain"
)

const calculationsCollection = "calculations"

// MongoCalculationRepository stores carbon and energy records in a single
// collection, discriminated by the kind field.
type MongoCalculationRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewCalculationRepository(db *mongo.Database) *MongoCalculationRepository {
	return &MongoCalculationRepository{db: db, coll: db.Collection(calculationsCollection)}
}

type mongoCalculation struct {
	CalcID  int64   `bson:"calc_id"`
	UserID  int64   `bson:"user_id"`
	Kind    string  `bson:"kind"`
	Value   float64 `bson:"value"`
	Details string  `bson:"details,omitempty"`
	Date    int64   `bson:"date"`
}

func (r *MongoCalculationRepository) Insert(ctx context.Context, calc *domain.Calculation) (*domain.Calculation, error) {
	id, err := nextSequence(ctx, r.db, calculationsCollection)
	if err != nil {
		return nil, err
	}

	doc := mongoCalculation{
		CalcID:  id,
		UserID:  calc.UserID,
		Kind:    string(calc.Kind),
		Value:   calc.Value,
		Details: calc.Details,
		Date:    calc.Date.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert calculation: %w", err)
	}

	created := *calc
	created.ID = id
	return &created, nil
}

func (r *MongoCalculationRepository) ListByUser(ctx context.Context, userID int64, kind domain.CalculationKind) ([]domain.Calculation, error) {
	filter := bson.M{"user_id": userID, "kind": string(kind)}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	defer cursor.Close(ctx)

	var calcs []domain.Calculation
	for cursor.Next(ctx) {
		var mc mongoCalculation
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode calculation: %w", err)
		}
		calcs = append(calcs, domain.Calculation{
			ID:      mc.CalcID,
			UserID:  mc.UserID,
			Kind:    domain.CalculationKind(mc.Kind),
			Value:   mc.Value,
			Details: mc.Details,
			Date:    unixToTime(mc.Date),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	return calcs, nil
}

package roomRepo

import (
	"fmt"
	"time"

	"grandhaven/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// Reserve takes one unit off the room's available counter. The guard lives in
// the filter so the decrement is a single conditional update: two concurrent
// reserves on a room with one unit left cannot both match.
func (r *MongoRoomRepo) Reserve(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":        id,
		"available": bson.M{"$gte": 1},
	}
	update := bson.M{
		"$inc": bson.M{"available": -1},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to reserve room %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		// Distinguish a missing room from a sold-out one.
		if _, getErr := r.GetByID(id); getErr != nil {
			return getErr
		}
		return utils.UnavailableError(fmt.Sprintf("room %s has no units available", id))
	}
	return nil
}

// Release returns one unit to the room's available counter. The filter bounds
// the increment by the room's total capacity.
func (r *MongoRoomRepo) Release(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":    id,
		"$expr": bson.M{"$lt": bson.A{"$available", "$total"}},
	}
	update := bson.M{
		"$inc": bson.M{"available": 1},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to release room %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		if _, getErr := r.GetByID(id); getErr != nil {
			return getErr
		}
		// Already at full capacity; releasing again is a no-op.
		return nil
	}
	return nil
}

package bookingRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NextSequence allocates the next booking sequence for the given day from a
// per-day counter document. The upserted $inc is atomic on the server, so two
// concurrent creations on the same day cannot read the same value.
func (r *MongoBookingRepo) NextSequence(day time.Time) (int, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	counterID := "booking-" + day.Format("20060102")
	filter := bson.M{"id": counterID}
	update := bson.M{"$inc": bson.M{"seq": 1}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		ID  string `bson:"id"`
		Seq int    `bson:"seq"`
	}
	if err := r.counters.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter); err != nil {
		return 0, fmt.Errorf("failed to allocate booking sequence for %s: %w", counterID, err)
	}
	return counter.Seq, nil
}

package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/travelease/travel-ease-api/databases"
)

// bookingRetentionDays is how long completed bookings are kept before the
// nightly purge removes them.
const bookingRetentionDays = 180

// Scheduler handles periodic background jobs for the booking collection
type Scheduler struct {
	cron *cron.Cron
	BDB  databases.BookingDatabase
}

// NewScheduler creates a new scheduler instance
func NewScheduler(bDB databases.BookingDatabase) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(time.UTC)),
		BDB:  bDB,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Purge bookings past the retention window daily at 3 AM UTC
	_, err := s.cron.AddFunc("0 3 * * *", s.purgeExpiredBookings)
	if err != nil {
		zap.S().Errorw("failed to register booking retention job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("Booking retention scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Booking retention scheduler stopped")
}

// purgeExpiredBookings deletes bookings whose booking date is older than the
// retention window
func (s *Scheduler) purgeExpiredBookings() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-bookingRetentionDays * 24 * time.Hour)

	zap.S().Infow("Running booking retention job", "cutoff", cutoff)

	filter := bson.M{
		"bookingDate": bson.M{"$lt": primitive.NewDateTimeFromTime(cutoff)},
	}

	result, err := s.BDB.DeleteMany(ctx, filter)
	if err != nil {
		zap.S().Errorw("failed to purge expired bookings", "error", err)
		return
	}

	zap.S().Infow("Booking retention job complete", "deleted", result.DeletedCount)
}

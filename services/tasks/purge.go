package tasks

import "github.com/hibiken/asynq"

// TypePurgeExpired removes bookings whose date has passed.
const TypePurgeExpired = "bookings:purge"

func NewPurgeTask() *asynq.Task {
	return asynq.NewTask(TypePurgeExpired, nil)
}

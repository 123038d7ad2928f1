// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - drains the transactional outbox to Kafka so that the
// refund and notification services learn about placed, approved, rejected
// and cancelled orders
//
// # Usage
//
//	jobManager := jobs.NewJobManager(relayHandler, "*/2 * * * * *", 100, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron syntax with seconds. A run that is still
// in progress when the next tick fires causes that tick to be skipped, so
// two relays of one process never race for the same messages.
//
// # Error Handling
//
// Relay failures are logged and retried on the next tick. Messages stay
// unpublished until Kafka acknowledges them.
package jobs

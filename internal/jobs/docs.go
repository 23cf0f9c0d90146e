// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are cron-based and use github.com/robfig/cron/v3 with second precision,
// so schedules have six fields:
//
//	"0 */5 * * * *"   every five minutes
//	"0 0 * * * *"     at the top of every hour
//
// # Available Jobs
//
//  1. AnalyticsReportJob - aggregates the orders of a trailing window and logs the report
//
// # Usage
//
//	job := jobs.NewAnalyticsReportJob(analyticsHandler, "0 */5 * * * *", 30*24*time.Hour, time.Now, logger)
//	jobManager := jobs.NewJobManager(job)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing run is logged and the schedule continues. A job whose schedule does not
// parse fails StartAll, which stops every job started before it.
package jobs

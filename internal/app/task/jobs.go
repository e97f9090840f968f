// internal/app/task/jobs.go
package task

// Job 是后台任务的统一接口，与 cron.Job 兼容。
type Job interface {
	Run()
	Name() string
}

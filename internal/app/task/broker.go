// internal/app/task/broker.go
package task

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/dsp2b/dsp2b/pkg/domain/repository"

	"github.com/robfig/cron/v3"
)

// Broker 是后台任务模块的核心协调者。
type Broker struct {
	cron          *cron.Cron
	logger        *slog.Logger
	jobQueue      chan Job
	blueprintRepo repository.BlueprintRepository
}

// NewBroker 是 Broker 的构造函数。
func NewBroker(blueprintRepo repository.BlueprintRepository) *Broker {
	slogHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := slog.New(slogHandler).With("system", "task_broker")

	c := cron.New(
		cron.WithSeconds(),
		cron.WithChain(
			NewPanicRecoveryWrapper(logger),
			NewLoggingWrapper(logger),
			cron.DelayIfStillRunning(cron.DefaultLogger),
		),
	)

	broker := &Broker{
		cron:          c,
		logger:        logger,
		jobQueue:      make(chan Job, 100),
		blueprintRepo: blueprintRepo,
	}

	broker.startWorkerPool()

	return broker
}

// startWorkerPool 启动固定数量的 worker goroutine 来处理任务。
func (b *Broker) startWorkerPool() {
	workerCount := runtime.NumCPU()
	if workerCount <= 0 {
		workerCount = 4
	}
	b.logger.Info("Starting task worker pool", "concurrency", workerCount)

	for i := 0; i < workerCount; i++ {
		workerID := i + 1
		go func() {
			for job := range b.jobQueue {
				jobWithWrappers := cron.NewChain(
					NewPanicRecoveryWrapper(b.logger),
					NewLoggingWrapper(b.logger),
				).Then(job)

				b.logger.Info("Worker picked up a job", "worker_id", workerID, "job_name", job.Name())
				jobWithWrappers.Run()
			}
			b.logger.Info("Worker stopped", "worker_id", workerID)
		}()
	}
}

// RegisterCronJobs 注册所有周期性任务。
func (b *Broker) RegisterCronJobs() {
	b.logger.Info("Registering all periodic jobs...")

	refreshJob := NewRefreshCountersJob(b.blueprintRepo)
	_, err := b.cron.AddJob("0 */10 * * * *", refreshJob) // 每10分钟执行一次
	if err != nil {
		b.logger.Error("Failed to add 'RefreshBlueprintCountersJob'", slog.Any("error", err))
		os.Exit(1)
	}
	b.logger.Info("-> Successfully registered 'RefreshBlueprintCountersJob'", "schedule", "every 10 minutes")

	b.logger.Info("All periodic jobs registered.")
}

// Dispatch 将任务发送到队列中。
func (b *Broker) Dispatch(job Job) {
	b.jobQueue <- job
}

// DispatchCounterRefresh 立即派发一次冗余计数刷新任务。
func (b *Broker) DispatchCounterRefresh() {
	b.Dispatch(NewRefreshCountersJob(b.blueprintRepo))
	b.logger.Info("Successfully queued counter refresh job")
}

// Start 启动 cron 调度器。
func (b *Broker) Start() {
	b.logger.Info("Task broker started.")
	b.cron.Start()
}

// Stop 优雅地停止 cron 调度器和所有 worker。
func (b *Broker) Stop() {
	b.logger.Info("Stopping task broker...")
	ctx := b.cron.Stop()
	<-ctx.Done()
	close(b.jobQueue)
	b.logger.Info("Task broker gracefully stopped.")
}

package task

import (
	"context"
	"log"
	"time"

	"github.com/dsp2b/dsp2b/pkg/domain/repository"
)

// RefreshCountersJob 从点赞表与成员关系表重算蓝图上的冗余计数列。
// 列表排序走实时聚合，冗余列只服务详情页与对外统计，允许分钟级滞后。
type RefreshCountersJob struct {
	repo repository.BlueprintRepository
}

// NewRefreshCountersJob 是任务的构造函数。
func NewRefreshCountersJob(repo repository.BlueprintRepository) *RefreshCountersJob {
	return &RefreshCountersJob{repo: repo}
}

// Name 方法返回任务的可读名称。
func (j *RefreshCountersJob) Name() string {
	return "RefreshBlueprintCountersJob"
}

// Run 是 Job 接口要求实现的方法。
func (j *RefreshCountersJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := j.repo.RefreshCounters(ctx); err != nil {
		log.Printf("错误: 任务 '%s' 重算计数失败: %v", j.Name(), err)
		return
	}
	log.Printf("成功: 任务 '%s' 已完成冗余计数刷新。", j.Name())
}

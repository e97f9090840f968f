package blueprint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dsp2b/dsp2b/pkg/constant"
)

// ParseTagIDs 解析逗号分隔的标签参数。
// 空串与纯空白返回 nil；出现非数字或非正数的段时整体拒绝，
// 不做静默丢弃。空段（连续逗号）跳过。
func ParseTagIDs(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.Atoi(p)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("标签参数 %q 非法: %w", p, constant.ErrInvalidTagID)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

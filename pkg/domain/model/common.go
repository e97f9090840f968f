package model

import (
	"strconv"
	"strings"
)

// PageSizeBlueprints 是蓝图列表的固定分页大小。
const PageSizeBlueprints = 40

// PageSizeCollections 是收藏夹列表的固定分页大小。
const PageSizeCollections = 20

// DescriptionBriefLimit 是列表项简介的最大长度（按 rune 计）。
const DescriptionBriefLimit = 100

// ProductPreviewLimit 是标签筛选激活时，每个列表项附带的产物行上限。
const ProductPreviewLimit = 4

// ParsePage 把页码参数规整为正整数，解析失败或小于 1 时回退到 1。
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

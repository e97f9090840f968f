package model

import "testing"

func TestParsePage(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-3", 1},
		{"2", 2},
		{" 5 ", 5},
	}
	for _, tt := range tests {
		if got := ParsePage(tt.raw); got != tt.want {
			t.Errorf("ParsePage(%q) = %d, 期望 %d", tt.raw, got, tt.want)
		}
	}
}

func TestParseBlueprintSort(t *testing.T) {
	tests := []struct {
		raw  string
		want BlueprintSort
	}{
		{"", BlueprintSortLatest},
		{"latest", BlueprintSortLatest},
		{"latest_update", BlueprintSortLatestUpdate},
		{"title", BlueprintSortTitle},
		{"copy", BlueprintSortCopy},
		{"like", BlueprintSortLike},
		{"collection", BlueprintSortCollection},
		{"product_sort", BlueprintSortProduct},
		{"随便写的", BlueprintSortLatest},
	}
	for _, tt := range tests {
		if got := ParseBlueprintSort(tt.raw); got != tt.want {
			t.Errorf("ParseBlueprintSort(%q) = %q, 期望 %q", tt.raw, got, tt.want)
		}
	}
}

func TestParseCollectionSort(t *testing.T) {
	tests := []struct {
		raw  string
		want CollectionSort
	}{
		{"", CollectionSortLatest},
		{"like", CollectionSortLike},
		{"product_sort", CollectionSortLatest}, // 蓝图侧的排序值在收藏夹侧无效
	}
	for _, tt := range tests {
		if got := ParseCollectionSort(tt.raw); got != tt.want {
			t.Errorf("ParseCollectionSort(%q) = %q, 期望 %q", tt.raw, got, tt.want)
		}
	}
}

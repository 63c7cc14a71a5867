package tui

import (
	"github.com/kpscli/kps/pkg/problem"
	"github.com/kpscli/kps/pkg/store"
)

// Item is one row of the solution list.
type Item struct {
	Name            string
	Platform        problem.Platform
	Solution        *store.Solution
	IsSectionHeader bool // true for the "BOJ" / "Programmers" rows
}

// BuildItems groups solutions under one header per platform. Platforms
// without solutions get no header.
func BuildItems(solutions []store.Solution) []Item {
	var items []Item
	for _, platform := range problem.Platforms {
		var group []Item
		for i := range solutions {
			sol := &solutions[i]
			if sol.Problem.Platform != platform {
				continue
			}
			group = append(group, Item{
				Name:     sol.Problem.Number,
				Platform: platform,
				Solution: sol,
			})
		}
		if len(group) == 0 {
			continue
		}
		items = append(items, Item{
			Name:            platform.DisplayName(),
			Platform:        platform,
			IsSectionHeader: true,
		})
		items = append(items, group...)
	}
	return items
}

// nextSelectable returns the first non-header index at or after from moving
// by step, or -1.
func nextSelectable(items []Item, from, step int) int {
	for i := from; i >= 0 && i < len(items); i += step {
		if !items[i].IsSectionHeader {
			return i
		}
	}
	return -1
}

func countByPlatform(items []Item) map[problem.Platform]int {
	counts := make(map[problem.Platform]int)
	for _, item := range items {
		if !item.IsSectionHeader {
			counts[item.Platform]++
		}
	}
	return counts
}

package domain

import (
	"sort"

	"github.com/bwmarrin/snowflake"
)

// OrgNode is one employee in the rendered chart.
type OrgNode struct {
	Employee *Employee  `json:"employee"`
	Title    *Title     `json:"title,omitempty"`
	Children []*OrgNode `json:"children"`
}

// OrgChart is the tree handed to the admin console. Roots are employees with
// no manager, a dangling manager reference, or a self-reference. CycleIDs
// lists employees that were part of a manager cycle and got reparented under
// the root level; the tree always contains every input employee exactly once.
type OrgChart struct {
	Roots    []*OrgNode     `json:"roots"`
	CycleIDs []snowflake.ID `json:"cycleIds,omitempty"`
}

// BuildOrgChart assembles the tree from flat employee and title rows.
func BuildOrgChart(employees []*Employee, titles []*Title) *OrgChart {
	titleByID := make(map[snowflake.ID]*Title, len(titles))
	for _, t := range titles {
		titleByID[t.ID] = t
	}

	byID := make(map[snowflake.ID]*Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	// Group by manager. Missing, dangling or self-referencing manager IDs
	// all land in the root group.
	children := make(map[snowflake.ID][]*Employee)
	var roots []*Employee
	for _, e := range employees {
		mgr := e.ManagerID
		if mgr == nil || *mgr == e.ID {
			roots = append(roots, e)
			continue
		}
		if _, ok := byID[*mgr]; !ok {
			roots = append(roots, e)
			continue
		}
		children[*mgr] = append(children[*mgr], e)
	}

	rank := func(e *Employee) int {
		if t, ok := titleByID[e.TitleID]; ok {
			return t.Level.Rank()
		}
		return Level("").Rank()
	}
	sortGroup := func(group []*Employee) {
		sort.SliceStable(group, func(i, j int) bool {
			ri, rj := rank(group[i]), rank(group[j])
			if ri != rj {
				return ri < rj
			}
			return group[i].Name.English() < group[j].Name.English()
		})
	}

	seen := make(map[snowflake.ID]bool, len(employees))
	var build func(e *Employee) *OrgNode
	build = func(e *Employee) *OrgNode {
		seen[e.ID] = true
		node := &OrgNode{
			Employee: e,
			Title:    titleByID[e.TitleID],
			Children: []*OrgNode{},
		}
		group := children[e.ID]
		sortGroup(group)
		for _, child := range group {
			if seen[child.ID] {
				continue
			}
			node.Children = append(node.Children, build(child))
		}
		return node
	}

	chart := &OrgChart{Roots: []*OrgNode{}}
	sortGroup(roots)
	for _, e := range roots {
		chart.Roots = append(chart.Roots, build(e))
	}

	// Anything still unseen sits on a manager cycle with no path from a
	// root. Reparent those employees at the root level so the chart never
	// drops anyone.
	var orphans []*Employee
	for _, e := range employees {
		if !seen[e.ID] {
			orphans = append(orphans, e)
		}
	}
	sortGroup(orphans)
	for _, e := range orphans {
		chart.CycleIDs = append(chart.CycleIDs, e.ID)
	}
	for _, e := range orphans {
		if seen[e.ID] {
			continue
		}
		chart.Roots = append(chart.Roots, build(e))
	}

	return chart
}

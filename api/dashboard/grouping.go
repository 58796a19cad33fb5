package dashboard

import (
	"RequisTrack/api"
	"RequisTrack/api/requests"
	"RequisTrack/internal/store"
)

// BranchGroup is one branch's slice of the pending queue.
type BranchGroup struct {
	Branch string         `json:"branch"`
	Total  int            `json:"total"`
	Rows   []requests.Row `json:"rows"`
}

// GroupByBranch partitions rows by the literal branch text. No trimming
// and no case folding: "Makati " and "makati" are distinct groups. Group
// order is first appearance among the input rows.
func GroupByBranch(rows []requests.Row) []BranchGroup {
	order := []string{}
	byBranch := map[string][]requests.Row{}
	for _, r := range rows {
		if _, seen := byBranch[r.Branch]; !seen {
			order = append(order, r.Branch)
		}
		byBranch[r.Branch] = append(byBranch[r.Branch], r)
	}
	groups := make([]BranchGroup, 0, len(order))
	for _, b := range order {
		groups = append(groups, BranchGroup{Branch: b, Total: len(byBranch[b]), Rows: byBranch[b]})
	}
	return groups
}

// GetPendingGroupedByBranch groups both pending lists for the branch view.
func GetPendingGroupedByBranch(s store.Store) api.Result {
	d := Build(s)
	return api.Result{
		"success": true,
		"office":  GroupByBranch(d.PendingOffice),
		"special": GroupByBranch(d.PendingSpecial),
	}
}

// GetPendingBreakdown returns the two pending totals for the header badge.
func GetPendingBreakdown(s store.Store) api.Result {
	d := Build(s)
	return api.Result{
		"success": true,
		"office":  len(d.PendingOffice),
		"special": len(d.PendingSpecial),
	}
}

package reports

import (
	"strings"

	"RequisTrack/api"
	"RequisTrack/api/masters"
	"RequisTrack/api/requests"
	"RequisTrack/internal/store"
)

// CalendarEntry is one dated request on a branch's activity calendar.
type CalendarEntry struct {
	Date        string `json:"date"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// BranchAggregate is one branch's status tally plus calendar. It is
// rebuilt from the request sheets on every call; nothing is persisted.
type BranchAggregate struct {
	Branch          string          `json:"branch"`
	OfficePending   int             `json:"officePending"`
	OfficeApproved  int             `json:"officeApproved"`
	OfficeRejected  int             `json:"officeRejected"`
	SpecialPending  int             `json:"specialPending"`
	SpecialApproved int             `json:"specialApproved"`
	SpecialRejected int             `json:"specialRejected"`
	Calendar        []CalendarEntry `json:"calendar"`
}

// branchSet keeps aggregates in insertion order: seeded branches first,
// then unknown branch names as they appear in the request rows. The key is
// the literal branch text — this path does not case-fold.
type branchSet struct {
	order []string
	byKey map[string]*BranchAggregate
}

func newBranchSet(seed []string) *branchSet {
	bs := &branchSet{byKey: map[string]*BranchAggregate{}}
	for _, name := range seed {
		bs.get(name)
	}
	return bs
}

func (bs *branchSet) get(branch string) *BranchAggregate {
	if agg, ok := bs.byKey[branch]; ok {
		return agg
	}
	agg := &BranchAggregate{Branch: branch, Calendar: []CalendarEntry{}}
	bs.byKey[branch] = agg
	bs.order = append(bs.order, branch)
	return agg
}

func (bs *branchSet) list() []BranchAggregate {
	out := make([]BranchAggregate, 0, len(bs.order))
	for _, k := range bs.order {
		out = append(out, *bs.byKey[k])
	}
	return out
}

// GetBranchDashboard tallies the two fixed request sheets per branch.
// SPECIAL rows count the approval synonyms ("approved by accounting",
// "to purchased") as approved; both types count "cancel" and "rejected"
// as rejected.
func GetBranchDashboard(s store.Store) api.Result {
	bs := newBranchSet(masters.BranchNames(s))

	for _, req := range requestRecords(requests.GetOfficeRequests(s)) {
		agg := bs.get(str(req["branch"]))
		switch strings.ToLower(str(req["status"])) {
		case "pending":
			agg.OfficePending++
		case "approved":
			agg.OfficeApproved++
		case "cancel", "rejected":
			agg.OfficeRejected++
		}
		appendCalendar(agg, req, "Office")
	}

	for _, req := range requestRecords(requests.GetSpecialRequests(s)) {
		agg := bs.get(str(req["branch"]))
		switch strings.ToLower(str(req["status"])) {
		case "pending":
			agg.SpecialPending++
		case "approved", "approved by accounting", "to purchased":
			agg.SpecialApproved++
		case "cancel", "rejected":
			agg.SpecialRejected++
		}
		appendCalendar(agg, req, "Special")
	}

	return api.OKData(bs.list())
}

// BranchReportParams filter one branch (or all) by period.
type BranchReportParams struct {
	Branch string `json:"branch"`
	Period string `json:"period"`
	Year   int    `json:"year"`
	Month  int    `json:"month"`
}

// BranchReportSummary breaks totals down by type and recognized status.
type BranchReportSummary struct {
	OfficeTotal     int `json:"officeTotal"`
	OfficePending   int `json:"officePending"`
	OfficeApproved  int `json:"officeApproved"`
	SpecialTotal    int `json:"specialTotal"`
	SpecialPending  int `json:"specialPending"`
	SpecialApproved int `json:"specialApproved"`
}

// GetBranchReport filters office and special requests by branch
// (case-insensitive; "All" or empty passes every branch) and period, and
// counts pending/approved per type. The SPECIAL approved count also
// accepts "approved by accounting".
func GetBranchReport(s store.Store, p BranchReportParams) api.Result {
	year := p.Year
	if year == 0 {
		year = currentYear()
	}

	office := []map[string]interface{}{}
	special := []map[string]interface{}{}
	summary := BranchReportSummary{}

	matchBranch := func(b string) bool {
		return p.Branch == "" || p.Branch == "All" || strings.EqualFold(b, p.Branch)
	}

	for _, req := range requestRecords(requests.GetOfficeRequests(s)) {
		if !matchBranch(str(req["branch"])) || !matchesPeriod(str(req["date"]), p.Period, year, p.Month) {
			continue
		}
		office = append(office, req)
		summary.OfficeTotal++
		switch strings.ToLower(str(req["status"])) {
		case "pending":
			summary.OfficePending++
		case "approved":
			summary.OfficeApproved++
		}
	}

	for _, req := range requestRecords(requests.GetSpecialRequests(s)) {
		if !matchBranch(str(req["branch"])) || !matchesPeriod(str(req["date"]), p.Period, year, p.Month) {
			continue
		}
		special = append(special, req)
		summary.SpecialTotal++
		switch strings.ToLower(str(req["status"])) {
		case "pending":
			summary.SpecialPending++
		case "approved", "approved by accounting":
			summary.SpecialApproved++
		}
	}

	return api.OKData(map[string]interface{}{
		"branch":          p.Branch,
		"officeRequests":  office,
		"specialRequests": special,
		"summary":         summary,
	})
}

func requestRecords(res api.Result) []map[string]interface{} {
	data, _ := res["data"].([]map[string]interface{})
	return data
}

func appendCalendar(agg *BranchAggregate, req map[string]interface{}, reqType string) {
	date := str(req["date"])
	if date == "" {
		return
	}
	agg.Calendar = append(agg.Calendar, CalendarEntry{
		Date:        date,
		Type:        reqType,
		Status:      str(req["status"]),
		Description: str(req["description"]),
	})
}

func str(v interface{}) string {
	s, _ := v.(string)
	return s
}

package dataset

import (
	"sort"
	"time"

	"github.com/reachronakofficial756/excelSort/pkg/model"
)

// Snapshot is the in-memory dataset the whole service reads from. It is
// built once at startup and never mutated, so concurrent readers need no
// locking. A failed load is represented by an empty snapshot; the condition
// clears only when the process restarts with readable files.
type Snapshot struct {
	leads  []model.LeadRecord
	orders []model.OrderRecord

	// index is the routing order of distinct canonical phones: every number
	// present in both tables first, then lead-only numbers, each group
	// sorted lexicographically. Pages are 1-based positions in this slice.
	index   []string
	matched int
	pageOf  map[string]int

	leadRows  map[string][]int
	orderRows map[string][]int

	loadedAt    time.Time
	leadSource  string
	orderSource string
}

// BuildSnapshot joins the two tables on canonical phone. Rows with an empty
// key never enter the index. The result is deterministic for identical
// inputs.
func BuildSnapshot(leads []model.LeadRecord, orders []model.OrderRecord, leadSource, orderSource string) *Snapshot {
	s := &Snapshot{
		leads:       leads,
		orders:      orders,
		leadRows:    make(map[string][]int),
		orderRows:   make(map[string][]int),
		loadedAt:    time.Now().UTC(),
		leadSource:  leadSource,
		orderSource: orderSource,
	}

	for i, lead := range leads {
		if lead.CanonicalPhone == "" {
			continue
		}
		s.leadRows[lead.CanonicalPhone] = append(s.leadRows[lead.CanonicalPhone], i)
	}
	for i, order := range orders {
		if order.CanonicalPhone == "" {
			continue
		}
		s.orderRows[order.CanonicalPhone] = append(s.orderRows[order.CanonicalPhone], i)
	}

	intersection := make([]string, 0)
	leadOnly := make([]string, 0)
	for phone := range s.leadRows {
		if _, ok := s.orderRows[phone]; ok {
			intersection = append(intersection, phone)
		} else {
			leadOnly = append(leadOnly, phone)
		}
	}
	sort.Strings(intersection)
	sort.Strings(leadOnly)

	s.matched = len(intersection)
	s.index = append(intersection, leadOnly...)

	s.pageOf = make(map[string]int, len(s.index))
	for i, phone := range s.index {
		s.pageOf[phone] = i + 1
	}

	return s
}

// EmptySnapshot is what the service holds when the startup load failed.
func EmptySnapshot() *Snapshot {
	return BuildSnapshot(nil, nil, "", "")
}

func (s *Snapshot) Empty() bool {
	return len(s.index) == 0
}

// TotalPages equals the number of distinct routable phones; page N shows the
// N-th phone of the routing index.
func (s *Snapshot) TotalPages() int {
	return len(s.index)
}

// PhoneAt resolves a 1-based page to its canonical phone.
func (s *Snapshot) PhoneAt(page int) (string, bool) {
	if page < 1 || page > len(s.index) {
		return "", false
	}
	return s.index[page-1], true
}

// PageFor resolves a canonical phone to its 1-based page.
func (s *Snapshot) PageFor(phone string) (int, bool) {
	page, ok := s.pageOf[phone]
	return page, ok
}

// RoutingIndex returns a copy; the snapshot's own ordering is immutable.
func (s *Snapshot) RoutingIndex() []string {
	out := make([]string, len(s.index))
	copy(out, s.index)
	return out
}

func (s *Snapshot) MatchedCount() int {
	return s.matched
}

func (s *Snapshot) LeadOnlyCount() int {
	return len(s.index) - s.matched
}

// LeadsFor returns the lead rows sharing the canonical phone, in source
// order.
func (s *Snapshot) LeadsFor(phone string) []model.LeadRecord {
	idxs := s.leadRows[phone]
	rows := make([]model.LeadRecord, 0, len(idxs))
	for _, i := range idxs {
		rows = append(rows, s.leads[i])
	}
	return rows
}

// OrdersFor returns the order rows sharing the canonical phone, in source
// order.
func (s *Snapshot) OrdersFor(phone string) []model.OrderRecord {
	idxs := s.orderRows[phone]
	rows := make([]model.OrderRecord, 0, len(idxs))
	for _, i := range idxs {
		rows = append(rows, s.orders[i])
	}
	return rows
}

func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

func (s *Snapshot) Stats() model.DatasetStats {
	return model.DatasetStats{
		LeadRows:    len(s.leads),
		OrderRows:   len(s.orders),
		LeadPhones:  len(s.leadRows),
		OrderPhones: len(s.orderRows),
		Matched:     s.matched,
		LeadOnly:    s.LeadOnlyCount(),
		TotalPages:  len(s.index),
		LoadedAt:    s.loadedAt,
		LeadSource:  s.leadSource,
		OrderSource: s.orderSource,
	}
}

package repository

import (
	"fmt"

	customererrors "github.com/reachronakofficial756/excelSort/internal/customers/errors"
	"github.com/reachronakofficial756/excelSort/internal/dataset"
	"github.com/reachronakofficial756/excelSort/pkg/model"
)

type snapshotCustomerRepository struct {
	snap *dataset.Snapshot
}

// CustomerRepository reads customer rows out of the startup snapshot. The
// snapshot is immutable, so none of these methods block or need a context.
type CustomerRepository interface {
	PhoneAt(page int) (string, error)
	PageFor(phone string) (int, error)
	Leads(phone string) []model.LeadRecord
	Orders(phone string) []model.OrderRecord
	RoutingIndex() []string
	TotalPages() int
	Empty() bool
	Stats() model.DatasetStats
}

func NewSnapshotCustomerRepository(snap *dataset.Snapshot) CustomerRepository {
	return &snapshotCustomerRepository{snap: snap}
}

func (r *snapshotCustomerRepository) PhoneAt(page int) (string, error) {
	if r.snap.Empty() {
		return "", customererrors.ErrNoData
	}
	phone, ok := r.snap.PhoneAt(page)
	if !ok {
		return "", fmt.Errorf("%w: page %d of %d", customererrors.ErrNotFound, page, r.snap.TotalPages())
	}
	return phone, nil
}

func (r *snapshotCustomerRepository) PageFor(phone string) (int, error) {
	if r.snap.Empty() {
		return 0, customererrors.ErrNoData
	}
	page, ok := r.snap.PageFor(phone)
	if !ok {
		return 0, fmt.Errorf("%w: %s", customererrors.ErrNotFound, phone)
	}
	return page, nil
}

func (r *snapshotCustomerRepository) Leads(phone string) []model.LeadRecord {
	return r.snap.LeadsFor(phone)
}

func (r *snapshotCustomerRepository) Orders(phone string) []model.OrderRecord {
	return r.snap.OrdersFor(phone)
}

func (r *snapshotCustomerRepository) RoutingIndex() []string {
	return r.snap.RoutingIndex()
}

func (r *snapshotCustomerRepository) TotalPages() int {
	return r.snap.TotalPages()
}

func (r *snapshotCustomerRepository) Empty() bool {
	return r.snap.Empty()
}

func (r *snapshotCustomerRepository) Stats() model.DatasetStats {
	return r.snap.Stats()
}

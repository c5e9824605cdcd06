package inmemdb

import (
	"context"
	"sort"

	"github.com/trezcool/tutordesk/core/payment"
)

type paymentRepository struct {
	db *transactionTable
}

var _ payment.Repository = (*paymentRepository)(nil)

func NewPaymentRepository(db *DB) payment.Repository {
	return &paymentRepository{db: db.transaction}
}

func (repo *paymentRepository) QueryTransactions(
	_ context.Context,
	teacherID string,
	filter payment.QueryFilter,
) ([]payment.Transaction, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	all := repo.db.table[teacherID]
	txs := make([]payment.Transaction, 0, len(all))
	for _, tx := range all {
		if filter.Match(tx) {
			txs = append(txs, tx)
		}
	}
	// latest first; same day: latest inserted first
	for i, j := 0, len(txs)-1; i < j; i, j = i+1, j-1 {
		txs[i], txs[j] = txs[j], txs[i]
	}
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date > txs[j].Date })
	return txs, nil
}

func (repo *paymentRepository) CreateTransaction(_ context.Context, tx payment.Transaction) (payment.Transaction, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.table[tx.TeacherID] = append(repo.db.table[tx.TeacherID], tx)
	return tx, nil
}

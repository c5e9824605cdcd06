package pgrepos

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/tutordesk/core/payment"
)

const transactionColumns = `id, teacher_id, amount, to_char(date, 'YYYY-MM-DD') AS date, status, description, method`

type paymentRepository struct {
	db *sqlx.DB
}

var _ payment.Repository = (*paymentRepository)(nil)

func NewPaymentRepository(db *sqlx.DB) payment.Repository {
	return &paymentRepository{db: db}
}

func (repo *paymentRepository) QueryTransactions(
	ctx context.Context,
	teacherID string,
	filter payment.QueryFilter,
) ([]payment.Transaction, error) {
	q := `SELECT ` + transactionColumns + ` FROM payment_transactions WHERE teacher_id = $1`
	args := []interface{}{teacherID}
	if filter.Status != "" {
		args = append(args, filter.Status)
		q += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Method != "" {
		args = append(args, filter.Method)
		q += fmt.Sprintf(" AND method = $%d", len(args))
	}
	q += ` ORDER BY payment_transactions.date DESC, seq DESC`

	txs := make([]payment.Transaction, 0)
	if err := repo.db.SelectContext(ctx, &txs, q, args...); err != nil {
		return nil, wrapErr(err, "selecting transactions")
	}
	return txs, nil
}

func (repo *paymentRepository) CreateTransaction(ctx context.Context, tx payment.Transaction) (payment.Transaction, error) {
	q := `INSERT INTO payment_transactions (id, teacher_id, amount, date, status, description, method)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := repo.db.ExecContext(ctx, q, tx.ID, tx.TeacherID, tx.Amount, tx.Date, tx.Status, tx.Description, tx.Method)
	if err != nil {
		return payment.Transaction{}, wrapErr(err, "inserting transaction")
	}
	return tx, nil
}

package payment

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

var csvHeader = []string{"id", "date", "description", "method", "status", "amount"}

// WriteCSV writes the transaction history as CSV, header first.
func WriteCSV(w io.Writer, txs []Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return errors.Wrap(err, "writing csv header")
	}
	for _, tx := range txs {
		record := []string{
			tx.ID,
			tx.Date,
			tx.Description,
			string(tx.Method),
			string(tx.Status),
			strconv.FormatFloat(tx.Amount, 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, "writing csv record")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing csv")
}

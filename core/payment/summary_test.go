package payment

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	now := time.Date(2024, time.January, 25, 0, 0, 0, 0, time.UTC)
	txs := []Transaction{
		{ID: "1", Amount: 350, Date: "2024-01-15", Status: StatusCompleted},
		{ID: "2", Amount: 280, Date: "2024-01-08", Status: StatusCompleted},
		{ID: "3", Amount: 420, Date: "2024-01-22", Status: StatusPending},
		{ID: "4", Amount: 200, Date: "2023-12-18", Status: StatusCompleted},
		{ID: "5", Amount: 75, Date: "2023-12-12", Status: StatusFailed},
		{ID: "6", Amount: 999, Date: "2023-01-10", Status: StatusCompleted}, // same month, previous year
		{ID: "7", Amount: 10, Date: "not a date", Status: StatusCompleted},
	}

	got := Summarize(txs, 18750, now)
	want := Summary{TotalEarnings: 18750, PendingPayments: 420, ThisMonth: 630, LastMonth: 200, Growth: 215}
	assert.Equal(t, want, got)
}

func TestSummarize_yearBoundary(t *testing.T) {
	now := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	txs := []Transaction{
		{Amount: 100, Date: "2023-12-31", Status: StatusCompleted},
		{Amount: 50, Date: "2024-12-01", Status: StatusCompleted}, // next December
	}
	got := Summarize(txs, 0, now)
	assert.Equal(t, 100.0, got.LastMonth)
	assert.Equal(t, 0.0, got.ThisMonth)
	assert.Equal(t, -100.0, got.Growth)
}

func TestGrowth(t *testing.T) {
	tests := []struct {
		name          string
		current, last float64
		want          float64
	}{
		{name: "no last month", current: 630, last: 0, want: 0},
		{name: "negative last month", current: 630, last: -5, want: 0},
		{name: "increase", current: 630, last: 150, want: 320},
		{name: "decrease", current: 100, last: 300, want: -66.7},
		{name: "flat", current: 300, last: 300, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Growth(tt.current, tt.last); got != tt.want {
				t.Errorf("Growth() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestPreviousMonth(t *testing.T) {
	tests := []struct {
		t    time.Time
		want time.Time
	}{
		{t: time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC), want: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)},
		{t: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), want: time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		if got := PreviousMonth(tt.t); !got.Equal(tt.want) {
			t.Errorf("PreviousMonth(%v) = %v; want %v", tt.t, got, tt.want)
		}
	}
}

func TestQueryFilter_Match(t *testing.T) {
	tx := Transaction{Status: StatusPending, Method: MethodPaypal}
	tests := []struct {
		filter QueryFilter
		want   bool
	}{
		{filter: QueryFilter{}, want: true},
		{filter: QueryFilter{Status: "pending"}, want: true},
		{filter: QueryFilter{Status: "completed"}, want: false},
		{filter: QueryFilter{Status: "pending", Method: "paypal"}, want: true},
		{filter: QueryFilter{Method: "bank"}, want: false},
	}
	for _, tt := range tests {
		if got := tt.filter.Match(tx); got != tt.want {
			t.Errorf("%+v.Match() = %v; want %v", tt.filter, got, tt.want)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	txs := []Transaction{
		{ID: "t-1", Amount: 350, Date: "2024-01-15", Status: StatusCompleted, Description: "Weekly payment, vocal", Method: MethodBank},
		{ID: "t-2", Amount: 12.5, Date: "2024-01-16", Status: StatusPending, Description: "Payment request", Method: MethodPaypal},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, txs))
	assert.Equal(t,
		"id,date,description,method,status,amount\n"+
			"t-1,2024-01-15,\"Weekly payment, vocal\",bank,completed,350.00\n"+
			"t-2,2024-01-16,Payment request,paypal,pending,12.50\n",
		buf.String(),
	)

	buf.Reset()
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "id,date,description,method,status,amount\n", buf.String())
}

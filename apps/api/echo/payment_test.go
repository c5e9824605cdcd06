package echoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/tutordesk/core/payment"
)

func Test_paymentApi_list(t *testing.T) {
	srv, app := setup(t)

	txs, err := app.PaymentSvc.List(context.Background(), "1", payment.QueryFilter{})
	require.NoError(t, err)
	require.Len(t, txs, 3)
	t3, t1, t2 := txs[0], txs[1], txs[2]
	assert.Equal(t, []string{"t-3", "t-1", "t-2"}, []string{t3.ID, t1.ID, t2.ID}, "latest first")

	runHTTPTests(t, srv, []httpTest{
		{name: "all", path: "/v1/teachers/1/payments", wantCode: http.StatusOK, wantData: marchallObj(t, txs)},
		{
			name: "status=completed", path: "/v1/teachers/1/payments?status=completed", wantCode: http.StatusOK,
			wantData: marchallObj(t, []payment.Transaction{t1, t2}),
		},
		{
			name: "method=PayPal", path: "/v1/teachers/1/payments?method=PayPal", wantCode: http.StatusOK,
			wantData: marchallObj(t, []payment.Transaction{t3}),
		},
		{name: "status=failed", path: "/v1/teachers/1/payments?status=failed", wantCode: http.StatusOK, wantData: []byte(`[]`)},
		{
			name: "invalid filters", path: "/v1/teachers/1/payments?status=lol&method=cash", wantCode: http.StatusBadRequest,
			wantData: []byte(`{
				"status": "must be one of: completed, pending, failed",
				"method": "must be one of: card, bank, paypal"
			}`),
		},
	})
}

func Test_paymentApi_summary(t *testing.T) {
	srv, _ := setup(t)

	runHTTPTests(t, srv, []httpTest{
		{
			name: "no completed payment last month", path: "/v1/teachers/1/payments/summary", wantCode: http.StatusOK,
			wantData: marchallObj(t, payment.Summary{TotalEarnings: 18750, PendingPayments: 420, ThisMonth: 630}),
		},
		{
			name: "nothing completed this month", path: "/v1/teachers/3/payments/summary", wantCode: http.StatusOK,
			wantData: marchallObj(t, payment.Summary{TotalEarnings: 9420, LastMonth: 150, Growth: -100}),
		},
		{name: "teacher not found", path: "/v1/teachers/404/payments/summary", wantCode: http.StatusNotFound, wantData: marchallObj(t, errNotFound)},
	})
}

func Test_paymentApi_export(t *testing.T) {
	srv, _ := setup(t)

	req, rec := newRequest(http.MethodGet, "/v1/teachers/3/payments/export")
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="transactions-3.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t,
		"id,date,description,method,status,amount\n"+
			"t-5,2024-01-12,Weekly payment - Piano lessons,card,failed,75.00\n"+
			"t-4,2023-12-18,Weekly payment - Piano lessons,bank,completed,150.00\n",
		rec.Body.String(),
	)
}

func Test_paymentApi_methods(t *testing.T) {
	srv, _ := setup(t)

	runHTTPTests(t, srv, []httpTest{
		{
			name: "bank is primary", path: "/v1/payments/methods", wantCode: http.StatusOK,
			wantData: []byte(`[
				{"method":"bank","name":"Bank Transfer","primary":true},
				{"method":"paypal","name":"PayPal","primary":false}
			]`),
		},
	})
}

func Test_paymentApi_request(t *testing.T) {
	srv, app := setup(t)

	runHTTPTests(t, srv, []httpTest{
		{
			name: "amount required", method: http.MethodPost, path: "/v1/teachers/1/payments/requests",
			body: []byte(`{}`), wantCode: http.StatusBadRequest, wantData: []byte(`{"amount":"this field is required"}`),
		},
		{
			name: "negative amount", method: http.MethodPost, path: "/v1/teachers/1/payments/requests",
			body: []byte(`{"amount":-10}`), wantCode: http.StatusBadRequest, wantData: []byte(`{"amount":"must be greater than 0"}`),
		},
		{
			name: "non-numeric amount", method: http.MethodPost, path: "/v1/teachers/1/payments/requests",
			body: []byte(`{"amount":"lots"}`), wantCode: http.StatusBadRequest,
		},
		{
			name: "amount rounds to zero", method: http.MethodPost, path: "/v1/teachers/1/payments/requests",
			body: []byte(`{"amount":0.004}`), wantCode: http.StatusBadRequest, wantData: []byte(`{"amount":"must be at least 0.01"}`),
		},
	})
	assert.Empty(t, app.Mail.Sent(), "no email on invalid requests")

	req, rec := newRequest(http.MethodPost, "/v1/teachers/1/payments/requests", []byte(`{"amount":120.456}`))
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var tx payment.Transaction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tx))
	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, "1", tx.TeacherID)
	assert.Equal(t, 120.46, tx.Amount)
	assert.Equal(t, "2024-01-25", tx.Date)
	assert.Equal(t, payment.StatusPending, tx.Status)
	assert.Equal(t, payment.MethodBank, tx.Method)
	assert.Equal(t, "Payment request", tx.Description)

	txs, err := app.PaymentSvc.List(context.Background(), "1", payment.QueryFilter{})
	require.NoError(t, err)
	assert.Equal(t, tx, txs[0])

	sent := app.Mail.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "payment_request", sent[0].TemplateName)
	require.Len(t, sent[0].To, 2, "personal and work emails")
	assert.Equal(t, "alynia@example.com", sent[0].To[0].Address)
	assert.Equal(t, "alynia.allan@example.com", sent[0].To[1].Address)
	assert.Equal(t, "Payment request received", sent[0].Subject)
	assert.Contains(t, sent[0].TextContent, "Hello Alynia Allan,")
	assert.Contains(t, sent[0].TextContent, "$120.46 on 2024-01-25")
	assert.Contains(t, sent[0].TextContent, "paid by bank")
	assert.Contains(t, sent[0].HTMLContent, "<strong>$120.46</strong>")
}

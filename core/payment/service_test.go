package payment_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/tutordesk/core"
	"github.com/trezcool/tutordesk/core/payment"
	"github.com/trezcool/tutordesk/core/teacher"
	"github.com/trezcool/tutordesk/internal/testutil"
	"github.com/trezcool/tutordesk/services/email"
	"github.com/trezcool/tutordesk/storage/database/inmem"
)

func newService(t *testing.T, conf *core.Config) (*payment.Service, *emailsvc.ConsoleServiceMock, error) {
	lg := testutil.NewLogger(conf)
	mail := emailsvc.NewConsoleServiceMock(conf, lg)
	svc, err := payment.NewService(inmemdb.NewPaymentRepository(inmemdb.NewDB()), mail, lg, conf)
	return svc, mail, err
}

func TestNewService_defaultMethod(t *testing.T) {
	tests := []struct {
		method  string
		want    payment.Method
		wantErr bool
	}{
		{method: "", want: payment.MethodBank},
		{method: " PayPal ", want: payment.MethodPaypal},
		{method: "card", want: payment.MethodCard},
		{method: "wire", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			conf := core.NewTestConfig()
			conf.DefaultPayMethod = tt.method

			svc, _, err := newService(t, conf)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)

			methods := svc.PayoutMethods()
			assert.Equal(t, payment.PayoutMethod{Method: tt.want, Name: methods[0].Name, Primary: true}, methods[0])
			for _, m := range methods {
				assert.NotEmpty(t, m.Name)
			}
		})
	}
}

func TestService_RequestPayment(t *testing.T) {
	svc, mail, err := newService(t, core.NewTestConfig())
	require.NoError(t, err)
	svc.SetNowFunc(func() time.Time { return testutil.Now })
	ctx := context.Background()
	tchr := teacher.Teacher{ID: "1", Name: "Alynia Allan", Email: "alynia@example.com"}

	_, err = svc.RequestPayment(ctx, tchr, payment.PaymentRequest{Amount: 0.004})
	var vErr *core.ValidationError
	require.True(t, errors.As(err, &vErr), "got %v", err)
	assert.Equal(t, []core.FieldError{{Field: "amount", Error: "must be at least 0.01"}}, vErr.Fields)

	txs, err := svc.List(ctx, "1", payment.QueryFilter{})
	require.NoError(t, err)
	assert.Empty(t, txs)
	assert.Empty(t, mail.Sent())

	tx, err := svc.RequestPayment(ctx, tchr, payment.PaymentRequest{Amount: 0.005, Method: payment.MethodPaypal})
	require.NoError(t, err)
	assert.Equal(t, 0.01, tx.Amount)
	assert.Equal(t, payment.MethodPaypal, tx.Method)
	assert.Equal(t, "2024-01-25", tx.Date)

	sent := mail.Sent()
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].TextContent, "$0.01 on 2024-01-25")
	assert.Contains(t, sent[0].TextContent, "paid by paypal")
}

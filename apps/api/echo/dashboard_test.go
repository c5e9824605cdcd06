package echoapi

import (
	"net/http"
	"testing"
)

func Test_overview(t *testing.T) {
	srv, _ := setup(t)

	runHTTPTests(t, srv, []httpTest{
		{
			name: "seeded", path: "/v1/dashboard", wantCode: http.StatusOK,
			wantData: []byte(`{
				"total_teachers": 3,
				"active_teachers": 2,
				"active_lessons": 2,
				"completed_lessons": 243,
				"monthly_revenue": 630,
				"revenue_trend": 320,
				"pending_payments": 420
			}`),
		},
		{name: "unknown route", path: "/v1/lol", wantCode: http.StatusNotFound},
	})
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	md "github.com/Astemirdum/library-circulation/pkg/middleware"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestStaffContext(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		header   string
		wantCode int
		wantID   *int64
	}{
		{name: "absent", wantCode: http.StatusOK},
		{name: "valid", header: "12", wantCode: http.StatusOK, wantID: func() *int64 { id := int64(12); return &id }()},
		{name: "not a number", header: "x", wantCode: http.StatusBadRequest},
		{name: "negative", header: "-1", wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got *int64
			e := echo.New()
			e.GET("/", func(c echo.Context) error {
				got = md.StaffFromContext(c.Request().Context())
				return c.NoContent(http.StatusOK)
			}, md.StaffContext)

			r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tt.header != "" {
				r.Header.Set(md.XStaffIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.wantCode, w.Code)
			require.Equal(t, tt.wantID, got)
		})
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cinema-reservation/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestIdentity(t *testing.T) {
	holder := uuid.New()

	tests := []struct {
		name   string
		header string
		code   int
		want   *uuid.UUID
	}{
		{"anonymous", "", http.StatusOK, nil},
		{"holder", holder.String(), http.StatusOK, &holder},
		{"malformed", "bob", http.StatusBadRequest, nil},
		{"nil uuid", uuid.Nil.String(), http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *uuid.UUID
			handler := Identity(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = utils.HolderPtrFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(HeaderUserID, tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdmin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("staff-key"), bcrypt.MinCost)
	assert.NoError(t, err)

	var staff bool
	handler := Admin(string(hash), zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staff = utils.IsStaff(r.Context())
	}))

	for key, code := range map[string]int{"": http.StatusUnauthorized, "wrong": http.StatusForbidden, "staff-key": http.StatusOK} {
		staff = false
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if key != "" {
			req.Header.Set(HeaderAdminKey, key)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, code, rec.Code, key)
		assert.Equal(t, code == http.StatusOK, staff, key)
	}
}

func TestRecover(t *testing.T) {
	handler := Recover(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

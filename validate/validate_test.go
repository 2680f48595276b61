package validate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/postboard-go/apperror"
)

type testBody struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
}

func (b *testBody) Normalize() {
	b.Name = strings.TrimSpace(b.Name)
	b.Email = strings.ToLower(strings.TrimSpace(b.Email))
}

type gateEnvelope struct {
	Success bool `json:"success"`
	Error   *struct {
		Message string                `json:"message"`
		Details []apperror.FieldError `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) gateEnvelope {
	t.Helper()
	var env gateEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func TestRequest_ValidBodyIsNormalizedAndPassedDown(t *testing.T) {
	var got *testBody
	r := chi.NewRouter()
	r.With(Request[testBody]()).Post("/test", func(w http.ResponseWriter, r *http.Request) {
		body, ok := FromContext[testBody](r.Context())
		require.True(t, ok)
		got = body
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"name":"  John Doe ","email":"John@Example.COM"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, got)
	assert.Equal(t, "John Doe", got.Name)
	assert.Equal(t, "john@example.com", got.Email)
}

func TestRequest_CollectsEveryViolationInOnePass(t *testing.T) {
	r := chi.NewRouter()
	r.With(Request[testBody]()).Post("/test", func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run on validation failure")
	})

	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"name":"J","email":"bad"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	env := decodeEnvelope(t, rr)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Validation failed", env.Error.Message)
	require.Len(t, env.Error.Details, 2)

	byField := map[string]string{}
	for _, d := range env.Error.Details {
		byField[d.Field] = d.Message
	}
	assert.Equal(t, "Name must be at least 2 characters long", byField["body.name"])
	assert.Equal(t, "Invalid email format", byField["body.email"])
}

func TestRequest_EmptyBodyReportsRequiredFields(t *testing.T) {
	r := chi.NewRouter()
	r.With(Request[testBody]()).Post("/test", func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run on validation failure")
	})

	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(""))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	env := decodeEnvelope(t, rr)
	require.NotNil(t, env.Error)
	require.Len(t, env.Error.Details, 2)
}

func TestRequest_UnparseableBody(t *testing.T) {
	r := chi.NewRouter()
	r.With(Request[testBody]()).Post("/test", func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run on validation failure")
	})

	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"name":`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	env := decodeEnvelope(t, rr)
	require.NotNil(t, env.Error)
	require.Len(t, env.Error.Details, 1)
	assert.Equal(t, "body", env.Error.Details[0].Field)
}

func TestParams(t *testing.T) {
	rule := ParamRule{Name: "id", Pattern: IntID, Message: "Post ID must be a number"}

	tests := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{name: "numeric id", id: "42", wantStatus: http.StatusOK},
		{name: "alphabetic id", id: "abc", wantStatus: http.StatusBadRequest},
		{name: "mixed id", id: "12abc", wantStatus: http.StatusBadRequest},
		{name: "negative id", id: "-1", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := chi.NewRouter()
			r.With(Params(rule)).Get("/things/{id}", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/things/"+tt.id, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusBadRequest {
				env := decodeEnvelope(t, rr)
				require.NotNil(t, env.Error)
				require.Len(t, env.Error.Details, 1)
				assert.Equal(t, "params.id", env.Error.Details[0].Field)
				assert.Equal(t, "Post ID must be a number", env.Error.Details[0].Message)
			}
		})
	}
}

func TestRequest_BodyAndParamViolationsTogether(t *testing.T) {
	rule := ParamRule{Name: "id", Pattern: IntID, Message: "Post ID must be a number"}

	r := chi.NewRouter()
	r.With(Request[testBody](rule)).Put("/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run on validation failure")
	})

	req := httptest.NewRequest(http.MethodPut, "/things/abc", strings.NewReader(`{"name":"J","email":"bad"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	env := decodeEnvelope(t, rr)
	require.NotNil(t, env.Error)
	require.Len(t, env.Error.Details, 3)

	fields := make([]string, 0, len(env.Error.Details))
	for _, d := range env.Error.Details {
		fields = append(fields, d.Field)
	}
	assert.ElementsMatch(t, []string{"params.id", "body.name", "body.email"}, fields)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/AdrianLinares/microreserva/internal/domain"
)

func testCredentials(t *testing.T) Credentials {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	return Credentials{Username: "admin", PasswordHash: string(hash)}
}

func actorCapture(captured *domain.Actor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = ActorFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminAuth_ValidCredentials(t *testing.T) {
	var actor domain.Actor
	handler := AdminAuth(testCredentials(t))(actorCapture(&actor))

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	req.SetBasicAuth("admin", "s3cret")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, actor.Admin)
	assert.Equal(t, "admin", actor.Name)
}

func TestAdminAuth_WrongPassword(t *testing.T) {
	handler := AdminAuth(testCredentials(t))(actorCapture(&domain.Actor{}))

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	req.SetBasicAuth("admin", "wrong")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
}

func TestAdminAuth_MissingCredentials(t *testing.T) {
	handler := AdminAuth(testCredentials(t))(actorCapture(&domain.Actor{}))

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestIdentifyAdmin_ValidCredentials(t *testing.T) {
	var actor domain.Actor
	handler := IdentifyAdmin(testCredentials(t))(actorCapture(&actor))

	req := httptest.NewRequest(http.MethodPost, "/bookings", nil)
	req.SetBasicAuth("admin", "s3cret")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, actor.Admin)
}

func TestIdentifyAdmin_AnonymousOnMissingOrBadCredentials(t *testing.T) {
	var actor domain.Actor
	handler := IdentifyAdmin(testCredentials(t))(actorCapture(&actor))

	// Без учетных данных запрос проходит как анонимный.
	req := httptest.NewRequest(http.MethodPost, "/bookings", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, actor.Admin)

	// Неверный пароль не отклоняет запрос, а понижает его до анонимного.
	req = httptest.NewRequest(http.MethodPost, "/bookings", nil)
	req.SetBasicAuth("admin", "wrong")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, actor.Admin)
}

func TestActorFromContext_DefaultsToAnonymous(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)

	actor := ActorFromContext(req.Context())

	assert.Equal(t, domain.Anonymous, actor)
}

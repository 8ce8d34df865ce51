package middleware

import (
	"context"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/AdrianLinares/microreserva/internal/api/handlers"
	"github.com/AdrianLinares/microreserva/internal/domain"
)

type contextKey string

const actorKey contextKey = "actor"

const msgAuthRequired = "se requieren credenciales de administrador"

// Credentials учетные данные администратора из конфигурации
type Credentials struct {
	Username     string
	PasswordHash string // bcrypt
}

func (c Credentials) match(user, pass string) bool {
	if user != c.Username {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(pass)) == nil
}

// AdminAuth пропускает только запросы с корректной Basic аутентификацией
// администратора. Успешный запрос получает административного актора в контексте.
func AdminAuth(creds Credentials) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || !creds.match(user, pass) {
				handlers.RespondUnauthorized(w, msgAuthRequired)
				return
			}

			actor := domain.Actor{Name: user, Admin: true}
			next.ServeHTTP(w, r.WithContext(withActor(r.Context(), actor)))
		})
	}
}

// IdentifyAdmin необязательная аутентификация: при корректных учетных
// данных запрос получает административного актора, иначе анонимного.
// Используется на маршрутах, доступных и пользователям, и администратору.
func IdentifyAdmin(creds Credentials) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := domain.Anonymous
			if user, pass, ok := r.BasicAuth(); ok && creds.match(user, pass) {
				actor = domain.Actor{Name: user, Admin: true}
			}
			next.ServeHTTP(w, r.WithContext(withActor(r.Context(), actor)))
		})
	}
}

func withActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromContext возвращает актора запроса; анонимный по умолчанию
func ActorFromContext(ctx context.Context) domain.Actor {
	if actor, ok := ctx.Value(actorKey).(domain.Actor); ok {
		return actor
	}
	return domain.Anonymous
}

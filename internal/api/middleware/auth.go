package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// HeaderAdminID заголовок с идентификатором сотрудника парка
const HeaderAdminID = "X-Admin-ID"

type actorKey struct{}

// Auth middleware проверяет наличие заголовка X-Admin-ID и кладет
// идентификатор сотрудника в контекст запроса как актора изменений
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := strings.TrimSpace(r.Header.Get(HeaderAdminID))
		if actor == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"message": "отсутствует заголовок " + HeaderAdminID,
			})
			return
		}

		ctx := context.WithValue(r.Context(), actorKey{}, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetActor извлекает идентификатор актора из контекста
func GetActor(ctx context.Context) (string, bool) {
	actor, ok := ctx.Value(actorKey{}).(string)
	return actor, ok
}

package http

import (
	"context"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

type debugTarget struct {
	Host     string `json:"host"`
	Port     uint16 `json:"port"`
	User     string `json:"user"`
	Database string `json:"database"`
}

type debugServer struct {
	Database string `json:"database"`
	User     string `json:"user"`
	Port     *int32 `json:"port"`
}

type debugDBResponse struct {
	Target         debugTarget `json:"target"`
	Server         debugServer `json:"server"`
	DatabaseExists bool        `json:"database_exists"`
	UsuariosExists bool        `json:"usuarios_table_exists"`
}

func (h *Handler) requireDebugToken(next http.Handler) http.Handler {
	expected := []byte(h.cfg.DebugToken)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := []byte(r.Header.Get("X-Debug-Token"))
		if len(expected) == 0 || subtle.ConstantTimeCompare(got, expected) != 1 {
			WriteError(w, http.StatusForbidden, "FORBIDDEN", "token de diagnóstico inválido", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// DebugDB informa para onde a API aponta e se o schema foi aplicado.
func (h *Handler) DebugDB(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	resp := debugDBResponse{Target: h.debugTarget()}

	err := h.db.QueryRow(ctx,
		`SELECT current_database(), current_user, inet_server_port(), to_regclass('public.usuarios') IS NOT NULL`,
	).Scan(&resp.Server.Database, &resp.Server.User, &resp.Server.Port, &resp.UsuariosExists)
	if err != nil {
		writeServiceError(w, r, err, "debug db")
		return
	}

	if resp.Target.Database != "" {
		err = h.db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`, resp.Target.Database,
		).Scan(&resp.DatabaseExists)
		if err != nil {
			writeServiceError(w, r, err, "debug db")
			return
		}
	}

	WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) debugTarget() debugTarget {
	dbCfg := h.cfg.DB
	if dbCfg.DSN == "" {
		return debugTarget{Host: dbCfg.Host, Port: uint16(dbCfg.Port), User: dbCfg.User, Database: dbCfg.Name}
	}
	parsed, err := pgconn.ParseConfig(dbCfg.DSN)
	if err != nil {
		return debugTarget{}
	}
	return debugTarget{Host: parsed.Host, Port: parsed.Port, User: parsed.User, Database: parsed.Database}
}

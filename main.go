package main

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"database/sql"
	_ "embed"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"google.golang.org/api/idtoken"

	"grouper/avatar"
	"grouper/config"
	"grouper/namegen"
	"grouper/partition"
)

//go:embed schema.sql
var schema string

type app struct {
	cfg      config.Config
	db       *sql.DB
	log      *zap.SugaredLogger
	namer    namegen.Namer
	avatars  *avatar.Renderer
	validate *validator.Validate
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("failed to load config", "error", err)
	}

	db, err := sql.Open("postgres", cfg.PGConn)
	if err != nil {
		log.Fatalw("failed to open database", "error", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	log.Infow("connected to database")

	if _, err := db.Exec(schema); err != nil {
		log.Fatalw("failed to apply schema", "error", err)
	}

	a := &app{
		cfg:      cfg,
		db:       db,
		log:      log,
		validate: validator.New(),
	}

	if cfg.GeminiAPIKey != "" {
		namer, err := namegen.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalw("failed to create name generator", "error", err)
		}
		a.namer = namer
	} else {
		log.Infow("GEMINI_API_KEY not set, group names use fallback labels")
	}

	a.avatars, err = avatar.NewRenderer(cfg.AvatarFont)
	if err != nil {
		log.Fatalw("failed to create avatar renderer", "error", err)
	}

	http.HandleFunc("POST /auth/google/callback", a.handleGoogleCallback())
	http.HandleFunc("GET /api/admin/check", a.handleAdminCheck())
	http.HandleFunc("GET /api/rosters", a.handleListRosters())
	http.HandleFunc("POST /api/rosters", a.handleCreateRoster())
	http.HandleFunc("DELETE /api/rosters/{rosterID}", a.handleDeleteRoster())
	http.HandleFunc("PATCH /api/rosters/{rosterID}", a.handleUpdateRoster())
	http.HandleFunc("POST /api/rosters/{rosterID}/admins", a.handleAddRosterAdmin())
	http.HandleFunc("DELETE /api/rosters/{rosterID}/admins/{adminID}", a.handleRemoveRosterAdmin())
	http.HandleFunc("GET /api/rosters/{rosterID}/people", a.handleListPeople())
	http.HandleFunc("POST /api/rosters/{rosterID}/people", a.handleCreatePerson())
	http.HandleFunc("DELETE /api/rosters/{rosterID}/people/{personID}", a.handleDeletePerson())
	http.HandleFunc("GET /api/rosters/{rosterID}/constraints", a.handleListConstraints())
	http.HandleFunc("POST /api/rosters/{rosterID}/constraints", a.handleCreateConstraint())
	http.HandleFunc("DELETE /api/rosters/{rosterID}/constraints/{constraintID}", a.handleDeleteConstraint())
	http.HandleFunc("POST /api/rosters/{rosterID}/groups", a.handleBuildGroups())
	http.HandleFunc("POST /api/partition", a.handlePartition())
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			http.Error(w, "db unhealthy", http.StatusServiceUnavailable)
			return
		}
		fmt.Fprintln(w, "ok")
	})

	log.Infow("listening", "addr", cfg.ListenAddr)
	log.Fatalw("server exited", "error", http.ListenAndServe(cfg.ListenAddr, nil))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (a *app) handleGoogleCallback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		credential := r.FormValue("credential")
		if credential == "" {
			http.Error(w, "missing credential", http.StatusBadRequest)
			return
		}

		payload, err := idtoken.Validate(r.Context(), credential, a.cfg.ClientID)
		if err != nil {
			a.log.Warnw("failed to validate token", "error", err)
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		email := payload.Claims["email"].(string)

		writeJSON(w, http.StatusOK, map[string]any{
			"email":   email,
			"name":    payload.Claims["name"],
			"picture": payload.Claims["picture"],
			"token":   a.signEmail(email),
		})
	}
}

func (a *app) signEmail(email string) string {
	h := hmac.New(sha256.New, []byte(a.cfg.ClientSecret))
	h.Write([]byte(email))
	sig := base64.RawURLEncoding.EncodeToString(h.Sum(nil))
	return base64.RawURLEncoding.EncodeToString([]byte(email)) + "." + sig
}

func (a *app) authorize(r *http.Request) (string, bool) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return "", false
	}
	emailBytes, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", false
	}
	email := string(emailBytes)
	if a.signEmail(email) != token {
		return "", false
	}
	return email, true
}

func (a *app) isAdmin(email string) bool {
	return slices.ContainsFunc(strings.Split(a.cfg.Admins, ","), func(ad string) bool {
		return strings.TrimSpace(ad) == email
	})
}

func (a *app) requireAdmin(w http.ResponseWriter, r *http.Request) (string, bool) {
	email, ok := a.authorize(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	if !a.isAdmin(email) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return "", false
	}
	return email, true
}

func (a *app) isRosterAdmin(email string, rosterID int64) bool {
	var exists bool
	a.db.QueryRow("SELECT EXISTS(SELECT 1 FROM roster_admins WHERE roster_id = $1 AND email = $2)", rosterID, email).Scan(&exists)
	return exists
}

func (a *app) requireRosterAdmin(w http.ResponseWriter, r *http.Request) (string, int64, bool) {
	email, ok := a.authorize(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", 0, false
	}
	rosterID, err := strconv.ParseInt(r.PathValue("rosterID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid roster ID", http.StatusBadRequest)
		return "", 0, false
	}
	if !a.isAdmin(email) && !a.isRosterAdmin(email, rosterID) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return "", 0, false
	}
	return email, rosterID, true
}

func (a *app) handleAdminCheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := a.authorize(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"admin": a.isAdmin(email)})
	}
}

func (a *app) handleListRosters() http.HandlerFunc {
	type rosterAdmin struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
	}
	type roster struct {
		ID         int64         `json:"id"`
		Name       string        `json:"name"`
		GroupCount int           `json:"group_count"`
		Admins     []rosterAdmin `json:"admins"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := a.requireAdmin(w, r); !ok {
			return
		}
		rows, err := a.db.Query(`
			SELECT ro.id, ro.name, ro.group_count, COALESCE(
				json_agg(json_build_object('id', ra.id, 'email', ra.email)) FILTER (WHERE ra.id IS NOT NULL),
				'[]'
			)
			FROM rosters ro
			LEFT JOIN roster_admins ra ON ra.roster_id = ro.id
			GROUP BY ro.id, ro.name, ro.group_count
			ORDER BY ro.id`)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		rosters := []roster{}
		for rows.Next() {
			var ro roster
			var adminsJSON string
			if err := rows.Scan(&ro.ID, &ro.Name, &ro.GroupCount, &adminsJSON); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			json.Unmarshal([]byte(adminsJSON), &ro.Admins)
			rosters = append(rosters, ro)
		}
		writeJSON(w, http.StatusOK, rosters)
	}
}

func (a *app) handleCreateRoster() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := a.requireAdmin(w, r); !ok {
			return
		}
		var body struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}
		var id int64
		err := a.db.QueryRow("INSERT INTO rosters (name) VALUES ($1) RETURNING id", body.Name).Scan(&id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": id, "name": body.Name})
	}
}

func (a *app) handleDeleteRoster() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := a.requireAdmin(w, r); !ok {
			return
		}
		rosterID, err := strconv.ParseInt(r.PathValue("rosterID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid roster ID", http.StatusBadRequest)
			return
		}
		result, err := a.db.Exec("DELETE FROM rosters WHERE id = $1", rosterID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if n, _ := result.RowsAffected(); n == 0 {
			http.Error(w, "roster not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (a *app) handleUpdateRoster() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, rosterID, ok := a.requireRosterAdmin(w, r)
		if !ok {
			return
		}
		var body struct {
			GroupCount *int `json:"group_count"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if body.GroupCount == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if *body.GroupCount < 2 {
			http.Error(w, "group_count must be at least 2", http.StatusBadRequest)
			return
		}
		if _, err := a.db.Exec("UPDATE rosters SET group_count = $1 WHERE id = $2", *body.GroupCount, rosterID); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (a *app) handleAddRosterAdmin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := a.requireAdmin(w, r); !ok {
			return
		}
		rosterID, err := strconv.ParseInt(r.PathValue("rosterID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid roster ID", http.StatusBadRequest)
			return
		}
		var body struct {
			Email string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" {
			http.Error(w, "email is required", http.StatusBadRequest)
			return
		}
		var id int64
		err = a.db.QueryRow("INSERT INTO roster_admins (roster_id, email) VALUES ($1, $2) RETURNING id", rosterID, body.Email).Scan(&id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": id, "email": body.Email})
	}
}

func (a *app) handleRemoveRosterAdmin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := a.requireAdmin(w, r); !ok {
			return
		}
		adminID, err := strconv.ParseInt(r.PathValue("adminID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid admin ID", http.StatusBadRequest)
			return
		}
		result, err := a.db.Exec("DELETE FROM roster_admins WHERE id = $1", adminID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if n, _ := result.RowsAffected(); n == 0 {
			http.Error(w, "roster admin not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (a *app) handleListPeople() http.HandlerFunc {
	type person struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		_, rosterID, ok := a.requireRosterAdmin(w, r)
		if !ok {
			return
		}
		rows, err := a.db.Query("SELECT id, name FROM people WHERE roster_id = $1 ORDER BY name", rosterID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		people := []person{}
		for rows.Next() {
			var p person
			if err := rows.Scan(&p.ID, &p.Name); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			people = append(people, p)
		}
		writeJSON(w, http.StatusOK, people)
	}
}

func (a *app) handleCreatePerson() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, rosterID, ok := a.requireRosterAdmin(w, r)
		if !ok {
			return
		}
		var body struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Name) == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}
		name := strings.TrimSpace(body.Name)
		var id int64
		err := a.db.QueryRow("INSERT INTO people (roster_id, name) VALUES ($1, $2) RETURNING id", rosterID, name).Scan(&id)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
				http.Error(w, "name already in roster", http.StatusConflict)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": id, "name": name})
	}
}

func (a *app) handleDeletePerson() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, rosterID, ok := a.requireRosterAdmin(w, r)
		if !ok {
			return
		}
		personID, err := strconv.ParseInt(r.PathValue("personID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid person ID", http.StatusBadRequest)
			return
		}
		result, err := a.db.Exec("DELETE FROM people WHERE id = $1 AND roster_id = $2", personID, rosterID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if n, _ := result.RowsAffected(); n == 0 {
			http.Error(w, "person not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (a *app) handleListConstraints() http.HandlerFunc {
	type constraint struct {
		ID      int64    `json:"id"`
		Kind    string   `json:"kind"`
		Members []string `json:"members"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		_, rosterID, ok := a.requireRosterAdmin(w, r)
		if !ok {
			return
		}
		rows, err := a.db.Query("SELECT id, kind::text, members FROM grouping_constraints WHERE roster_id = $1 ORDER BY id", rosterID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		constraints := []constraint{}
		for rows.Next() {
			var c constraint
			var members pq.StringArray
			if err := rows.Scan(&c.ID, &c.Kind, &members); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			c.Members = members
			constraints = append(constraints, c)
		}
		writeJSON(w, http.StatusOK, constraints)
	}
}

func (a *app) handleCreateConstraint() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, rosterID, ok := a.requireRosterAdmin(w, r)
		if !ok {
			return
		}
		var body struct {
			Kind    string   `json:"kind"`
			Members []string `json:"members"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if body.Kind != "apart" && body.Kind != "together" {
			http.Error(w, "kind must be apart or together", http.StatusBadRequest)
			return
		}
		members := lo.Map(body.Members, func(m string, _ int) string { return strings.TrimSpace(m) })
		if len(members) < 2 || len(lo.Uniq(members)) != len(members) {
			http.Error(w, "members must be at least two distinct names", http.StatusBadRequest)
			return
		}

		var known int
		err := a.db.QueryRow("SELECT COUNT(*) FROM people WHERE roster_id = $1 AND name = ANY($2)", rosterID, pq.Array(members)).Scan(&known)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if known != len(members) {
			http.Error(w, "all members must be in the roster", http.StatusBadRequest)
			return
		}

		var id int64
		err = a.db.QueryRow("INSERT INTO grouping_constraints (roster_id, kind, members) VALUES ($1, $2::constraint_kind, $3) RETURNING id",
			rosterID, body.Kind, pq.Array(members)).Scan(&id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": id, "kind": body.Kind, "members": members})
	}
}

func (a *app) handleDeleteConstraint() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, rosterID, ok := a.requireRosterAdmin(w, r)
		if !ok {
			return
		}
		constraintID, err := strconv.ParseInt(r.PathValue("constraintID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid constraint ID", http.StatusBadRequest)
			return
		}
		result, err := a.db.Exec("DELETE FROM grouping_constraints WHERE id = $1 AND roster_id = $2", constraintID, rosterID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if n, _ := result.RowsAffected(); n == 0 {
			http.Error(w, "constraint not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type groupResult struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
	// AvatarPNG is base64-encoded; empty when rendering failed.
	AvatarPNG string `json:"avatar_png,omitempty"`
}

func (a *app) handleBuildGroups() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, rosterID, ok := a.requireRosterAdmin(w, r)
		if !ok {
			return
		}

		var groupCount int
		if err := a.db.QueryRow("SELECT group_count FROM rosters WHERE id = $1", rosterID).Scan(&groupCount); err != nil {
			http.Error(w, "roster not found", http.StatusNotFound)
			return
		}

		rows, err := a.db.Query("SELECT name FROM people WHERE roster_id = $1 ORDER BY id", rosterID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()
		var people []string
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			people = append(people, name)
		}

		crows, err := a.db.Query("SELECT kind::text, members FROM grouping_constraints WHERE roster_id = $1 ORDER BY id", rosterID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer crows.Close()
		var apart, together [][]string
		for crows.Next() {
			var kind string
			var members pq.StringArray
			if err := crows.Scan(&kind, &members); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			if kind == "apart" {
				apart = append(apart, members)
			} else {
				together = append(together, members)
			}
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		groups, err := partition.Partition(people, groupCount, apart, together, rng)
		if err != nil {
			a.writeEngineError(w, err)
			return
		}

		runID := uuid.NewString()
		names := a.groupNames(r.Context(), groups)
		results := lo.Map(groups, func(members []string, i int) groupResult {
			g := groupResult{Name: names[i], Members: members}
			if png, err := a.avatars.Render(names[i]); err == nil {
				g.AvatarPNG = base64.StdEncoding.EncodeToString(png)
			} else {
				a.log.Warnw("avatar render failed", "group", names[i], "error", err)
			}
			return g
		})

		a.log.Infow("built groups", "roster_id", rosterID, "run_id", runID, "people", len(people), "groups", groupCount)
		writeJSON(w, http.StatusOK, map[string]any{"run_id": runID, "groups": results})
	}
}

// groupNames asks the configured namer for display names, falling back to
// plain labels so a successful partition always gets named groups.
func (a *app) groupNames(ctx context.Context, groups [][]string) []string {
	if a.namer == nil {
		return namegen.Fallback(len(groups))
	}
	names, err := a.namer.GroupNames(ctx, groups)
	if err != nil {
		a.log.Warnw("group name generation failed, using fallback", "error", err)
		return namegen.Fallback(len(groups))
	}
	return names
}

type partitionRequest struct {
	People   []string   `json:"people" validate:"required,min=2,unique"`
	Groups   int        `json:"groups" validate:"required,min=2"`
	Apart    [][]string `json:"apart" validate:"omitempty,dive,min=2"`
	Together [][]string `json:"together" validate:"omitempty,dive,min=2"`
}

func (a *app) handlePartition() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := a.authorize(r); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		var body partitionRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if err := a.validate.Struct(body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		known := map[string]bool{}
		for _, p := range body.People {
			known[p] = true
		}
		for _, c := range slices.Concat(body.Apart, body.Together) {
			for _, name := range c {
				if !known[name] {
					http.Error(w, fmt.Sprintf("constraint member %q is not in people", name), http.StatusBadRequest)
					return
				}
			}
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		groups, err := partition.Partition(body.People, body.Groups, body.Apart, body.Together, rng)
		if err != nil {
			a.writeEngineError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"run_id": uuid.NewString(), "groups": groups})
	}
}

func (a *app) writeEngineError(w http.ResponseWriter, err error) {
	var conflict *partition.ConflictError
	switch {
	case errors.Is(err, partition.ErrInsufficientPeople):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"code": "insufficient_people", "error": err.Error()})
	case errors.As(err, &conflict):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"code":  "conflicting_constraint",
			"error": err.Error(),
			"names": []string{conflict.NameA, conflict.NameB},
		})
	case errors.Is(err, partition.ErrOversizedClique):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"code": "oversized_clique", "error": err.Error()})
	case errors.Is(err, partition.ErrUnsatisfiable):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"code": "unsatisfiable_constraints", "error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"code": "internal_error", "error": err.Error()})
	}
}

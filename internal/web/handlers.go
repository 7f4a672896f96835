package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/jaminalder/timetravel-tic-tac-toe/internal/app"
)

type handlers struct {
	svc *app.Service
	tpl *templates
	log zerolog.Logger
}

// index starts a new game on every load, so reloading resets the board.
func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	gs, err := h.svc.CreateGame()
	if err != nil {
		h.log.Error().Err(err).Msg("create game")
		http.Error(w, "failed to create", http.StatusInternalServerError)
		return
	}
	h.writePage(w, gs)
}

func (h *handlers) view(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	gs, ok := h.svc.Get(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	h.writePage(w, gs)
}

func (h *handlers) play(w http.ResponseWriter, r *http.Request) {
	cell, ok := formInt(w, r, "cell")
	if !ok {
		return
	}
	gs, err := h.svc.Play(chi.URLParam(r, "id"), cell)
	h.writeFragment(w, r, gs, err)
}

func (h *handlers) jump(w http.ResponseWriter, r *http.Request) {
	step, ok := formInt(w, r, "step")
	if !ok {
		return
	}
	gs, err := h.svc.JumpTo(chi.URLParam(r, "id"), step)
	h.writeFragment(w, r, gs, err)
}

func (h *handlers) writePage(w http.ResponseWriter, gs *app.GameState) {
	b, err := renderTemplate(h.tpl.page, "", newViewData(gs))
	if err != nil {
		h.log.Error().Err(err).Str("game", gs.ID).Msg("render page")
		http.Error(w, "failed to render", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func (h *handlers) writeFragment(w http.ResponseWriter, r *http.Request, gs *app.GameState, err error) {
	switch {
	case errors.Is(err, app.ErrNotFound):
		http.NotFound(w, r)
		return
	case err != nil:
		h.log.Error().Err(err).Msg("apply event")
		http.Error(w, "failed to apply", http.StatusInternalServerError)
		return
	}
	// Plain form posts (no htmx) get the whole page back through a redirect,
	// so the browser never lands on a bare fragment.
	if r.Header.Get("HX-Request") != "true" {
		http.Redirect(w, r, "/game/"+gs.ID, http.StatusSeeOther)
		return
	}
	b, err := renderTemplate(h.tpl.game, "", newViewData(gs))
	if err != nil {
		h.log.Error().Err(err).Str("game", gs.ID).Msg("render fragment")
		http.Error(w, "failed to render", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(b)
}

// formInt reads an integer form value, answering 400 when it is missing or
// malformed.
func formInt(w http.ResponseWriter, r *http.Request, key string) (int, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return 0, false
	}
	v, err := strconv.Atoi(r.Form.Get(key))
	if err != nil {
		http.Error(w, "bad "+key, http.StatusBadRequest)
		return 0, false
	}
	return v, true
}

package httpserver

import (
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/phenrril/customerdesk/internal/domain"
	"github.com/phenrril/customerdesk/internal/usecase"
)

const formTemplate = "customer_form.html"

// Server es la capa de presentación: solo llama a Validate/Submit y muestra el resultado.
type Server struct {
	mux       *http.ServeMux
	tmpl      *template.Template
	customers *usecase.CustomerUC
	metrics   http.Handler
}

func New(t *template.Template, customers *usecase.CustomerUC, metrics http.Handler) http.Handler {
	s := &Server{tmpl: t, customers: customers, metrics: metrics, mux: http.NewServeMux()}
	s.routes()
	return Chain(s.mux,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/", s.handleForm)
	s.mux.HandleFunc("/customers", s.handleSubmitForm)
	s.mux.HandleFunc("/api/customers", s.apiCustomers)
	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	})
	if s.metrics != nil {
		s.mux.Handle("/metrics", s.metrics)
	}
}

type formView struct {
	Input   domain.CustomerInput
	Methods []domain.ContactMethod
	Error   string
	Success string
}

func emptyForm() domain.CustomerInput {
	return domain.CustomerInput{PreferredContact: string(domain.ContactEmail)}
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	s.render(w, http.StatusOK, formView{Input: emptyForm()})
}

func (s *Server) handleSubmitForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, 64<<10)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "form", http.StatusBadRequest)
		return
	}
	in := domain.CustomerInput{
		Name:             r.PostFormValue("name"),
		Birthday:         r.PostFormValue("birthday"),
		Email:            r.PostFormValue("email"),
		Phone:            r.PostFormValue("phone"),
		Address:          r.PostFormValue("address"),
		PreferredContact: r.PostFormValue("preferred_contact"),
	}

	_, err := s.customers.Submit(r.Context(), in)
	var ve *domain.ValidationError
	switch {
	case err == nil:
		s.render(w, http.StatusOK, formView{Input: emptyForm(), Success: "Customer information saved."})
	case errors.As(err, &ve):
		s.render(w, http.StatusUnprocessableEntity, formView{Input: in, Error: ve.Reason})
	default:
		s.render(w, http.StatusInternalServerError, formView{Input: in, Error: "Could not save data: " + err.Error()})
	}
}

func (s *Server) apiCustomers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, 64<<10))
	var in domain.CustomerInput
	if err := dec.Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "json", "message": err.Error()})
		return
	}

	c, err := s.customers.Submit(r.Context(), in)
	var ve *domain.ValidationError
	switch {
	case err == nil:
		w.Header().Set("Location", "/api/customers/"+strconv.FormatUint(uint64(c.ID), 10))
		writeJSON(w, http.StatusCreated, map[string]any{"id": c.ID})
	case errors.As(err, &ve):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"error": "validation", "field": ve.Field, "message": ve.Reason})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "persistence", "message": err.Error()})
	}
}

func (s *Server) render(w http.ResponseWriter, code int, v formView) {
	v.Methods = domain.ContactMethods
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	if err := s.tmpl.ExecuteTemplate(w, formTemplate, v); err != nil {
		log.Error().Err(err).Str("tpl", formTemplate).Msg("render")
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

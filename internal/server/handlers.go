package server

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/username/yearcal/internal/calendar"
	"github.com/username/yearcal/internal/view"
	"github.com/username/yearcal/pkg/dateutil"
)

type errorResponse struct {
	Error string `json:"error"`
}

type holidayResponse struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Name    string `json:"name,omitempty"`
}

type holidaysResponse struct {
	Year     int               `json:"year"`
	Holidays []holidayResponse `json:"holidays"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleIndex renders the year calendar; ?date= adds the result panel
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var (
		result   *view.Result
		selected *calendar.Date
	)

	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := s.selectDate(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		selected = &date
		result = s.query(date)
	}

	var buf bytes.Buffer
	page := view.BuildPage(s.engine.Calendar(), s.engine.Year(), result, selected)
	if err := view.RenderPage(&buf, page); err != nil {
		s.logger.Error("Failed to render page", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Warn("Error writing page", zap.Error(err))
	}
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "date query parameter is required"})
		return
	}

	date, err := s.selectDate(raw)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	s.writeJSON(w, http.StatusOK, s.query(date))
}

func (s *Server) handleHolidays(w http.ResponseWriter, r *http.Request) {
	resp := holidaysResponse{
		Year:     s.engine.Year(),
		Holidays: []holidayResponse{},
	}
	for _, h := range s.engine.Holidays().Holidays() {
		resp.Holidays = append(resp.Holidays, holidayResponse{
			Date:    view.FormatDate(h.Date),
			Weekday: dateutil.WeekdayAbbrev(h.Date.Weekday()),
			Name:    h.Name,
		})
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStock(w http.ResponseWriter, r *http.Request) {
	date, err := parseSelected(chi.URLParam(r, "date"))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	s.writeJSON(w, http.StatusOK, s.stocks.Describe(date))
}

func (s *Server) query(date calendar.Date) *view.Result {
	return view.Present(s.engine.Query(date), s.engine.Policy(), s.stocks.Describe(date))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("Error encoding response", zap.Error(err))
	}
}

// selectDate parses a query date and requires it to be in the engine's year
func (s *Server) selectDate(raw string) (calendar.Date, error) {
	date, err := parseSelected(raw)
	if err != nil {
		return calendar.Date{}, err
	}
	if err := s.engine.CheckSelected(date); err != nil {
		return calendar.Date{}, err
	}
	return date, nil
}

// parseSelected accepts YYYY-MM-DD from the date input and DD-MM-YYYY from calendar cells
func parseSelected(raw string) (calendar.Date, error) {
	t, err := dateutil.ParseDate(strings.TrimSpace(raw))
	if err != nil {
		return calendar.Date{}, err
	}
	return calendar.DateOf(t), nil
}

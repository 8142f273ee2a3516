// Package mockapi implements a small stations API compatible with the
// rental client, for local development and demos. Match semantics for
// ?name= are case-insensitive substring, matching the hosted mock backend.
package mockapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/kmoser/stationcal/internal/rental"
)

// Server serves the stations fixture set over HTTP.
type Server struct {
	stations []rental.Station
}

// NewServer builds a Server over the given stations. A nil slice serves the
// built-in fixtures.
func NewServer(stations []rental.Station) *Server {
	if stations == nil {
		stations = Stations
	}
	return &Server{stations: stations}
}

// Router returns the HTTP routing table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/stations", s.listStations).Methods("GET")
	r.HandleFunc("/stations/{stationID}", s.getStation).Methods("GET")
	r.HandleFunc("/stations/{stationID}/bookings/{bookingID}", s.getBooking).Methods("GET")
	return r
}

func (s *Server) listStations(w http.ResponseWriter, r *http.Request) {
	name, filtered := r.URL.Query()["name"]
	if !filtered {
		writeJSON(w, http.StatusOK, s.stations)
		return
	}

	query := ""
	if len(name) > 0 {
		query = strings.ToLower(strings.TrimSpace(name[0]))
	}
	matches := []rental.Station{}
	for _, station := range s.stations {
		if strings.Contains(strings.ToLower(station.Name), query) {
			matches = append(matches, station)
		}
	}
	writeJSON(w, http.StatusOK, matches)
}

func (s *Server) getStation(w http.ResponseWriter, r *http.Request) {
	stationID := mux.Vars(r)["stationID"]
	station := s.findStation(stationID)
	if station == nil {
		writeError(w, http.StatusNotFound, "station with id "+stationID+" not found")
		return
	}
	writeJSON(w, http.StatusOK, station)
}

func (s *Server) getBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	station := s.findStation(vars["stationID"])
	if station == nil {
		writeError(w, http.StatusNotFound, "station with id "+vars["stationID"]+" not found")
		return
	}
	for _, booking := range station.Bookings {
		if booking.ID == vars["bookingID"] {
			writeJSON(w, http.StatusOK, booking)
			return
		}
	}
	writeError(w, http.StatusNotFound, "booking with id "+vars["bookingID"]+" not found")
}

func (s *Server) findStation(id string) *rental.Station {
	for i := range s.stations {
		if s.stations[i].ID == id {
			return &s.stations[i]
		}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

package server

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeParseError(err error, w http.ResponseWriter, r *http.Request) {
	if err.Error() == "EOF" {
		http.Error(w, "missing request body", http.StatusBadRequest)
		return
	}
	http.Error(w, fmt.Sprintf("could not parse request: %s", err.Error()), http.StatusBadRequest)
}

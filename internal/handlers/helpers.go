package handlers

import (
	"net/http"
	"strconv"
)

// pathID parses the {id} route segment. Returns 0, false after writing the
// 400 response when the segment is not a positive integer.
func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id64, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil || id64 == 0 {
		http.Error(w, `{"error":"invalid_id"}`, http.StatusBadRequest)
		return 0, false
	}
	return uint(id64), true
}

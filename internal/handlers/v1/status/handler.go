package status

import (
	"errors"
	"net/http"

	"github.com/sid200307/product-transactions-server/internal/logging"
)

type Handler struct{}

func NewHandler() Handler {
	return Handler{}
}

// Handler serves the liveness check with a plain text body.
func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write([]byte("product-transactions-server is running"))
	return err
}

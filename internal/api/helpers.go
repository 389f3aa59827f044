package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aeroops/lostfound/internal/entity"
)

const errInternalText = "Internal server error"

type ResponseError struct {
	Message string               `json:"message"`
	Error   string               `json:"error"`
	Holders []entity.UserSummary `json:"holders,omitempty"`
}

func SendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	slog.ErrorContext(ctx, "api error", "error", err, "code", code)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err = json.NewEncoder(w).Encode(ResponseError{Message: msg, Error: err.Error()})
	if err != nil {
		slog.ErrorContext(ctx, "api error", "error", err, "code", http.StatusInternalServerError)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "")
		return
	}
}

// SendServiceErr maps service-layer sentinels onto HTTP statuses so every
// handler reports the same way. A permission-in-use conflict additionally
// carries the holders so the client can show who still has the grant.
func SendServiceErr(ctx context.Context, w http.ResponseWriter, err error) {
	var inUse *entity.PermissionInUseError

	if errors.As(err, &inUse) {
		slog.ErrorContext(ctx, "api error", "error", err, "code", http.StatusConflict)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)

		encodeErr := json.NewEncoder(w).Encode(ResponseError{
			Message: "Permission is still assigned",
			Error:   inUse.Error(),
			Holders: inUse.Holders,
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}

		return
	}

	switch {
	case errors.Is(err, entity.ErrIncorrectRequestBody):
		SendErr(ctx, w, http.StatusBadRequest, err, "Incorrect request")
	case errors.Is(err, entity.ErrUnauthorized),
		errors.Is(err, entity.ErrTokenExpired),
		errors.Is(err, entity.ErrInvalidToken):
		SendErr(ctx, w, http.StatusUnauthorized, err, "Unauthorized")
	case errors.Is(err, entity.ErrForbidden):
		SendErr(ctx, w, http.StatusForbidden, err, "Insufficient rights")
	case errors.Is(err, entity.ErrNotFound):
		SendErr(ctx, w, http.StatusNotFound, err, "Not found")
	case errors.Is(err, entity.ErrAlreadyExists):
		SendErr(ctx, w, http.StatusConflict, err, "Already exists")
	default:
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
	}
}

package api

import (
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/careersync/careersync/internal/common"
)

// genericMessage is shown when the server supplies no usable detail.
const genericMessage = "Error"

// Error is a remote API failure carrying the HTTP status and the
// server-supplied detail message (or a generic fallback).
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is lets errors.Is match a 401 response against common.ErrUnauthorized.
func (e *Error) Is(target error) bool {
	return target == common.ErrUnauthorized && e.Status == http.StatusUnauthorized
}

// errorFromBody builds an Error from a non-2xx response body. The backend
// reports failures as {"detail": ...} where detail is either a single
// string or a list of field errors [{"msg": "..."}]. List messages are
// joined with a space; anything unparseable yields the generic message.
func errorFromBody(status int, body []byte) *Error {
	msg := decodeDetail(body)
	if msg == "" {
		msg = genericMessage
	}
	return &Error{Status: status, Message: msg}
}

func decodeDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return s
	}

	var fields []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &fields); err == nil {
		msgs := make([]string, 0, len(fields))
		for _, f := range fields {
			if f.Msg != "" {
				msgs = append(msgs, f.Msg)
			}
		}
		return strings.Join(msgs, " ")
	}

	return ""
}

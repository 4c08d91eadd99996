package platform

import (
	"encoding/json"
	"fmt"
)

// Result is the outcome of classifying an API response body. Exactly one of
// the two shapes holds: OK with the raw body preserved for the caller, or a
// failure with a human-readable message.
type Result struct {
	OK      bool
	Body    []byte
	Status  string
	Failure string
}

const statusSuccess = "success"

// Classify parses a response body and decides success or failure.
//
// A JSON object carrying a "status" field is explicit: anything other than
// "success" is a failure. Every other well-formed JSON value (arrays, scalars,
// objects without a status field) is implicitly successful and passed through
// unchanged. A body that does not parse as JSON is a protocol error.
func Classify(body []byte) (Result, error) {
	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Result{}, ErrProtocol{Err: err}
	}

	obj, isObject := parsed.(map[string]any)
	if !isObject {
		return Result{OK: true, Status: statusSuccess, Body: body}, nil
	}

	rawStatus, hasStatus := obj["status"]
	if !hasStatus {
		return Result{OK: true, Status: statusSuccess, Body: body}, nil
	}

	status := stringify(rawStatus)
	if status == statusSuccess {
		return Result{OK: true, Status: status, Body: body}, nil
	}

	return Result{Status: status, Failure: failureMessage(obj, parsed)}, nil
}

// failureMessage extracts the most specific message the response offers:
// data, then error.message, then error, then the whole body.
func failureMessage(obj map[string]any, whole any) string {
	if data, ok := obj["data"]; ok {
		return stringify(data)
	}
	if errField, ok := obj["error"]; ok {
		if errObj, ok := errField.(map[string]any); ok {
			if msg, ok := errObj["message"]; ok {
				return stringify(msg)
			}
		}
		return stringify(errField)
	}
	return stringify(whole)
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(encoded)
}

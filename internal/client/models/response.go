package models

import "encoding/json"

// Response is the normalized envelope every backend interaction resolves to,
// regardless of transport outcome. Exactly one meaningful outcome is present:
// when Success is true Data is the authoritative payload, otherwise Error
// explains the failure. Transport-level and application-level failures are
// indistinguishable to callers.
type Response struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// DecodeData unmarshals the envelope's Data payload into T. An empty payload
// yields T's zero value without error.
func DecodeData[T any](r *Response) (T, error) {
	var v T
	if len(r.Data) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(r.Data, &v); err != nil {
		return v, err
	}
	return v, nil
}

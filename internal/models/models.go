package models

import (
	"encoding/json"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ProcessRequest is the inbound body of POST /process.
type ProcessRequest struct {
	Query string `json:"query"`
}

// ProcessResponse is returned once keywords were extracted, whether or not the
// downstream call succeeded.
type ProcessResponse struct {
	Status       string            `json:"status"`
	Data         map[string]string `json:"data"`
	NodeResponse json.RawMessage   `json:"node_response"`
}

// ExtractResponse is returned by the extraction-only endpoint.
type ExtractResponse struct {
	Status string            `json:"status"`
	Data   map[string]string `json:"data"`
}

// StatusMessage is the body for rejected requests.
type StatusMessage struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// VocabularyEntry describes one category of the active vocabulary.
type VocabularyEntry struct {
	Category string   `json:"category"`
	Words    []string `json:"words"`
	Stems    []string `json:"stems"`
}

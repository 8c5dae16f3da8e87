package dto

import "mf-api/internal/api/constant"

// Res is the envelope every API endpoint answers with. Records, Count and
// Data are omitted when unset.
type Res struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Records any    `json:"records,omitempty"`
	Count   *int64 `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ErrorType struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func Success(message string) Res {
	return Res{Status: constant.StatusSuccess, Message: message}
}

func Failure(message string) Res {
	return Res{Status: constant.StatusError, Message: message}
}

func (r Res) WithRecords(records any) Res {
	r.Records = records
	return r
}

func (r Res) WithCount(count int64) Res {
	r.Count = &count
	return r
}

func (r Res) WithData(data any) Res {
	r.Data = data
	return r
}

// Health, readiness and root bodies are not wrapped in Res.

type HealthRes struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

type ReadyRes struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

type RootRes struct {
	Service     string            `json:"service"`
	Version     string            `json:"version"`
	Status      string            `json:"status"`
	CORSOrigins []string          `json:"cors_origins"`
	Endpoints   map[string]string `json:"endpoints"`
}

package dto

import "time"

// HealthDatabase reports store connectivity.
type HealthDatabase struct {
	Connected bool   `json:"connected"`
	Ping      string `json:"ping,omitempty"`
	Error     string `json:"error,omitempty"`
}

// HealthStatus is the detailed health view. Environment reports only the
// presence of required configuration, never its values.
type HealthStatus struct {
	Status      string          `json:"status"`
	Timestamp   time.Time       `json:"timestamp"`
	Database    HealthDatabase  `json:"database"`
	Environment map[string]bool `json:"environment"`
}

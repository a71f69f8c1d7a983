package amqp

import (
	"encoding/json"
	"time"
)

// AnalysisRequestMessage asks the worker to run one analysis over the
// configured dataset source.
type AnalysisRequestMessage struct {
	RunID       string    `json:"run_id"`
	RequestedAt time.Time `json:"requested_at"`
}

// ReportReadyMessage announces a completed analysis run. It carries only the
// headline numbers; consumers fetch the full report from wherever the run
// wrote it.
type ReportReadyMessage struct {
	RunID             string    `json:"run_id"`
	RecordCount       int       `json:"record_count"`
	TotalRevenueCents int64     `json:"total_revenue_cents"`
	GeneratedAt       time.Time `json:"generated_at"`
}

func NewAnalysisRequestMessage(runID string) *AnalysisRequestMessage {
	return &AnalysisRequestMessage{
		RunID:       runID,
		RequestedAt: time.Now().UTC(),
	}
}

func NewReportReadyMessage(runID string, recordCount int, totalRevenueCents int64) *ReportReadyMessage {
	return &ReportReadyMessage{
		RunID:             runID,
		RecordCount:       recordCount,
		TotalRevenueCents: totalRevenueCents,
		GeneratedAt:       time.Now().UTC(),
	}
}

func (m *AnalysisRequestMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func AnalysisRequestMessageFromJSON(data []byte) (*AnalysisRequestMessage, error) {
	var msg AnalysisRequestMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (m *ReportReadyMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ReportReadyMessageFromJSON(data []byte) (*ReportReadyMessage, error) {
	var msg ReportReadyMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

package service

import "time"

// SettlementMetrics records order placement outcomes.
type SettlementMetrics interface {
	OrderPlaced(paymentType string)
	OrderPlacementFailed(reason string)
}

// DistanceMetrics records distance provider latency.
type DistanceMetrics interface {
	ObserveDistanceLookup(provider, status string, elapsed time.Duration)
}

// DispatchMetrics records notification dispatch and delivery outcomes.
type DispatchMetrics interface {
	NotificationDropped()
	PushSent(outcome string)
}

// Push delivery outcomes reported through DispatchMetrics.PushSent.
const (
	PushOutcomeSent         = "sent"
	PushOutcomeSkipped      = "skipped"
	PushOutcomeInvalidToken = "invalid_token"
	PushOutcomeFailed       = "failed"
)

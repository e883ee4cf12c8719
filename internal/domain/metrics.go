package domain

// CashflowMetrics is the aggregated view of projection metrics returned by
// GET /v1/metrics/cashflow.
type CashflowMetrics struct {
	TotalProjections      int64   `json:"total_projections"`
	FailedProjections     int64   `json:"failed_projections"`
	ErrorRate             float64 `json:"error_rate"`
	CacheHitRate          float64 `json:"cache_hit_rate"`
	OptimisticDangerDays  int64   `json:"optimistic_danger_days"`
	PessimisticDangerDays int64   `json:"pessimistic_danger_days"`
}

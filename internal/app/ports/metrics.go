package ports

// CampaignMetrics counts core operations for the ops surface.
type CampaignMetrics interface {
	RecordSuccess(op string)
	RecordRejection(op string)
	RecordConflict()
	RecordFailure()
}

package dto

// InsightsResponse lists the generated productivity insights
type InsightsResponse struct {
	Insights []string `json:"insights"`
}

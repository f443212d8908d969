package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// PapersSubmitted counts accepted paper submissions.
	PapersSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "portal_papers_submitted_total",
			Help: "Number of papers accepted for review.",
		})

	// ReviewsRecorded counts review decisions, labeled by outcome.
	ReviewsRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_reviews_total",
			Help: "Number of review decisions recorded.",
		}, []string{"action"})

	// ReviewerApplications counts stored reviewer applications.
	ReviewerApplications = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "portal_reviewer_applications_total",
			Help: "Number of reviewer applications received.",
		})
)

func init() {
	prometheus.MustRegister(PapersSubmitted, ReviewsRecorded, ReviewerApplications)
}

package models

// Usage feature tags reported by the dispatcher.
const (
	FeatureMeeting = "MEETING"
	FeatureMessage = "MESSAGE"
	FeatureEmail   = "EMAIL"
	FeatureCab     = "CAB"
	FeatureOther   = "OTHER"
)

// UsageStats holds the per-user feature counters.
type UsageStats struct {
	UserID            string `bson:"userId" json:"-"`
	MessagesSent      int64  `bson:"messages_sent_count" json:"messages_sent_count"`
	MeetingsScheduled int64  `bson:"meetings_scheduled_count" json:"meetings_scheduled_count"`
	EmailsSent        int64  `bson:"emails_sent_count" json:"emails_sent_count"`
	CabBookings       int64  `bson:"cab_booking_count" json:"cab_booking_count"`
	OtherFeatureUsage int64  `bson:"other_feature_usage_count" json:"other_feature_usage_count"`
}

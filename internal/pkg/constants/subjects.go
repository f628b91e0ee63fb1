package constants

// Trip event subjects, used as NATS subjects and NSQ topics
const (
	SubjectTripCreated   = "trip.created"
	SubjectTripConfirmed = "trip.confirmed"
	SubjectTripStarted   = "trip.started"
	SubjectTripCompleted = "trip.completed"
	SubjectTripCancelled = "trip.cancelled"
	SubjectTripRated     = "trip.rated"
)

// TripSubjects lists every trip event subject
var TripSubjects = []string{
	SubjectTripCreated,
	SubjectTripConfirmed,
	SubjectTripStarted,
	SubjectTripCompleted,
	SubjectTripCancelled,
	SubjectTripRated,
}

package constants

// NATS Subjects
const (
	// Published by this service
	SubjectLocationUpdate    = "location.update"
	SubjectRideStatusChanged = "ride.status_changed"

	// Consumed from the payments collaborator
	SubjectWalletUpdated   = "wallet.updated"
	SubjectEarningsUpdated = "earnings.updated"
)

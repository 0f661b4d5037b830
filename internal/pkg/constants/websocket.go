package constants

// Server originated events
const (
	EventError                = "error"
	EventPong                 = "pong"
	EventRideRequest          = "ride_request"
	EventDriverLocationUpdate = "driver_location_update"
	EventRideStatusChange     = "ride_status_change"
	EventRideProgress         = "ride_progress"
	EventDashboardUpdate      = "dashboard_update"
	EventWalletUpdate         = "wallet_update"
	EventLocationReminder     = "location_reminder"
	EventRideHistoryUpdate    = "ride_history_update"
)

// Client originated messages
const (
	MsgPing                 = "ping"
	MsgSubscribeDashboard   = "subscribe_dashboard"
	MsgUnsubscribeDashboard = "unsubscribe_dashboard"
	MsgUpdateLocation       = "update_location"
	MsgSubscribeWallet      = "subscribe_wallet"
	MsgSubscribeEarnings    = "subscribe_earnings"
	MsgSubscribeRideHistory = "subscribe_ride_history"
	MsgSubscribeRide        = "subscribe_ride"
	MsgUnsubscribeRide      = "unsubscribe_ride"
)

// WebSocket error codes
const (
	ErrorInvalidFormat     = "invalid_format"
	ErrorValidationFailed  = "validation_failed"
	ErrorForbidden         = "forbidden"
	ErrorNotFound          = "not_found"
	ErrorConflict          = "conflict"
	ErrorInternalError     = "internal_error"
	ErrorRateLimitExceeded = "rate_limit_exceeded"
	ErrorUnknownMessage    = "unknown_message"
)

// WebSocket close codes sent when the handshake credential is rejected
const (
	CloseMissingToken = 4001
	CloseInvalidToken = 4003
)

// Close reasons matching the close codes
const (
	CloseReasonMissingToken = "missing_token"
	CloseReasonInvalidToken = "invalid_token"
)

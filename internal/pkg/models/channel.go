package models

import "fmt"

// ChannelKind is the family a fan-out channel belongs to
type ChannelKind string

const (
	ChannelUser      ChannelKind = "user"
	ChannelRide      ChannelKind = "ride"
	ChannelDashboard ChannelKind = "dashboard"
	ChannelTopic     ChannelKind = "topic"
)

// Named topics clients can subscribe to
const (
	TopicWallet      = "wallet"
	TopicEarnings    = "earnings"
	TopicRideHistory = "ride_history"
)

// ChannelKey identifies a logical fan-out group. It is comparable and used as a map key.
type ChannelKey struct {
	Kind   ChannelKind
	UserID string
	RideID string
	Role   string
	Topic  string
}

// UserChannel is the personal channel of an account
func UserChannel(userID string) ChannelKey {
	return ChannelKey{Kind: ChannelUser, UserID: userID}
}

// RideChannel is the status channel of one subscriber of a ride
func RideChannel(rideID, subscriberID string) ChannelKey {
	return ChannelKey{Kind: ChannelRide, RideID: rideID, UserID: subscriberID}
}

// DashboardChannel is the dashboard channel of a user in a role
func DashboardChannel(userID, role string) ChannelKey {
	return ChannelKey{Kind: ChannelDashboard, UserID: userID, Role: role}
}

// TopicChannel is a named topic channel of a user
func TopicChannel(topic, userID string) ChannelKey {
	return ChannelKey{Kind: ChannelTopic, Topic: topic, UserID: userID}
}

func (k ChannelKey) String() string {
	switch k.Kind {
	case ChannelUser:
		return fmt.Sprintf("user:%s", k.UserID)
	case ChannelRide:
		return fmt.Sprintf("ride:%s:%s", k.RideID, k.UserID)
	case ChannelDashboard:
		return fmt.Sprintf("dashboard:%s:%s", k.UserID, k.Role)
	case ChannelTopic:
		return fmt.Sprintf("topic:%s:%s", k.Topic, k.UserID)
	default:
		return fmt.Sprintf("%s:%s", k.Kind, k.UserID)
	}
}

// Package registry tracks which connections are subscribed to which channels.
// It is process-local and rebuilt as clients reconnect.
package registry

import (
	"sort"
	"sync"

	"github.com/piresc/dispatch/internal/pkg/models"
)

type memberSet map[string]struct{}
type keySet map[models.ChannelKey]struct{}

// Registry is a bidirectional index between connections and channel keys
type Registry struct {
	mu       sync.RWMutex
	channels map[models.ChannelKey]memberSet
	conns    map[string]keySet
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		channels: make(map[models.ChannelKey]memberSet),
		conns:    make(map[string]keySet),
	}
}

// Subscribe adds connID to key. It reports false when it was already a member.
func (r *Registry) Subscribe(connID string, key models.ChannelKey) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.channels[key]
	if !ok {
		members = make(memberSet)
		r.channels[key] = members
	}
	if _, exists := members[connID]; exists {
		return false
	}
	members[connID] = struct{}{}

	keys, ok := r.conns[connID]
	if !ok {
		keys = make(keySet)
		r.conns[connID] = keys
	}
	keys[key] = struct{}{}
	return true
}

// Unsubscribe removes connID from key. It reports false when it was not a member.
func (r *Registry) Unsubscribe(connID string, key models.ChannelKey) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unsubscribe(connID, key)
}

func (r *Registry) unsubscribe(connID string, key models.ChannelKey) bool {
	members, ok := r.channels[key]
	if !ok {
		return false
	}
	if _, exists := members[connID]; !exists {
		return false
	}
	delete(members, connID)
	if len(members) == 0 {
		delete(r.channels, key)
	}

	if keys, ok := r.conns[connID]; ok {
		delete(keys, key)
		if len(keys) == 0 {
			delete(r.conns, connID)
		}
	}
	return true
}

// ChannelMembers returns the connections subscribed to key, sorted
func (r *Registry) ChannelMembers(key models.ChannelKey) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := r.channels[key]
	out := make([]string, 0, len(members))
	for id := range members {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// HasMembers reports whether anyone is subscribed to key
func (r *Registry) HasMembers(key models.ChannelKey) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.channels[key]) > 0
}

// DropConnection removes connID from every channel and returns the keys it left
func (r *Registry) DropConnection(connID string) []models.ChannelKey {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := r.conns[connID]
	left := make([]models.ChannelKey, 0, len(keys))
	for key := range keys {
		left = append(left, key)
	}
	for _, key := range left {
		r.unsubscribe(connID, key)
	}
	sortKeys(left)
	return left
}

// RideChannels returns every subscriber channel of a ride
func (r *Registry) RideChannels(rideID string) []models.ChannelKey {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.ChannelKey, 0)
	for key := range r.channels {
		if key.Kind == models.ChannelRide && key.RideID == rideID {
			out = append(out, key)
		}
	}
	sortKeys(out)
	return out
}

// Channels returns the keys connID is subscribed to
func (r *Registry) Channels(connID string) []models.ChannelKey {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := r.conns[connID]
	out := make([]models.ChannelKey, 0, len(keys))
	for key := range keys {
		out = append(out, key)
	}
	sortKeys(out)
	return out
}

func sortKeys(keys []models.ChannelKey) {
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
}

package snapshot

import (
	"context"
	"time"
)

// Descriptor is one cluster snapshot as known to the remote store.
type Descriptor struct {
	// Identifier is unique among a cluster's manual snapshots.
	Identifier string `json:"identifier"`

	// ClusterIdentifier is the cluster the snapshot was taken from.
	ClusterIdentifier string `json:"cluster_identifier,omitempty"`

	// CreatedAt is set once by the store when the snapshot is created.
	CreatedAt time.Time `json:"created_at"`

	// Status is the store-reported state ("creating", "available", ...).
	Status string `json:"status,omitempty"`

	// ARN is the provider resource name, when the store has one.
	ARN string `json:"arn,omitempty"`
}

// Tag is a key/value label attached to a snapshot at creation time.
type Tag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CreatorTag marks snapshots created by the rotation task. It records
// provenance only; selection for deletion uses the identifier prefix.
var CreatorTag = Tag{Key: "type", Value: "snapper"}

// Store is the remote snapshot store.
type Store interface {
	// Create requests a new manual snapshot of clusterID named identifier.
	Create(ctx context.Context, clusterID, identifier string, tags []Tag) (*Descriptor, error)

	// List returns the manual snapshots of clusterID.
	List(ctx context.Context, clusterID string) ([]Descriptor, error)

	// Delete removes the snapshot named identifier.
	Delete(ctx context.Context, identifier string) error
}

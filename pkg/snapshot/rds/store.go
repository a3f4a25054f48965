package rds

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsrds "github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/rds/types"

	"mercator-hq/snapper/pkg/snapshot"
)

// manualSnapshotType scopes listings to snapshots taken on request, as
// opposed to automated backups.
const manualSnapshotType = "manual"

// API is the subset of the RDS client used by Store.
type API interface {
	CreateDBClusterSnapshot(ctx context.Context, params *awsrds.CreateDBClusterSnapshotInput, optFns ...func(*awsrds.Options)) (*awsrds.CreateDBClusterSnapshotOutput, error)
	DescribeDBClusterSnapshots(ctx context.Context, params *awsrds.DescribeDBClusterSnapshotsInput, optFns ...func(*awsrds.Options)) (*awsrds.DescribeDBClusterSnapshotsOutput, error)
	DeleteDBClusterSnapshot(ctx context.Context, params *awsrds.DeleteDBClusterSnapshotInput, optFns ...func(*awsrds.Options)) (*awsrds.DeleteDBClusterSnapshotOutput, error)
}

// NewClient builds an RDS client from a loaded AWS configuration.
func NewClient(cfg aws.Config) *awsrds.Client {
	return awsrds.NewFromConfig(cfg)
}

// Store is a snapshot.Store backed by RDS cluster snapshots.
type Store struct {
	api API
	now func() time.Time
}

// NewStore wraps an RDS API client.
func NewStore(api API) *Store {
	return &Store{
		api: api,
		now: time.Now,
	}
}

// Create requests a manual cluster snapshot.
func (s *Store) Create(ctx context.Context, clusterID, identifier string, tags []snapshot.Tag) (*snapshot.Descriptor, error) {
	out, err := s.api.CreateDBClusterSnapshot(ctx, &awsrds.CreateDBClusterSnapshotInput{
		DBClusterIdentifier:         aws.String(clusterID),
		DBClusterSnapshotIdentifier: aws.String(identifier),
		Tags:                        toRDSTags(tags),
	})
	if err != nil {
		return nil, err
	}
	if out.DBClusterSnapshot == nil {
		return nil, fmt.Errorf("create cluster snapshot %q: empty response", identifier)
	}

	d := toDescriptor(*out.DBClusterSnapshot)
	// The snapshot may still be "creating" without a timestamp.
	if d.CreatedAt.IsZero() {
		d.CreatedAt = s.now()
	}
	return &d, nil
}

// List returns every manual snapshot of clusterID across all pages.
func (s *Store) List(ctx context.Context, clusterID string) ([]snapshot.Descriptor, error) {
	paginator := awsrds.NewDescribeDBClusterSnapshotsPaginator(s.api, &awsrds.DescribeDBClusterSnapshotsInput{
		DBClusterIdentifier: aws.String(clusterID),
		SnapshotType:        aws.String(manualSnapshotType),
	})

	var out []snapshot.Descriptor
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, snap := range page.DBClusterSnapshots {
			out = append(out, toDescriptor(snap))
		}
	}

	return out, nil
}

// Delete removes a cluster snapshot.
func (s *Store) Delete(ctx context.Context, identifier string) error {
	_, err := s.api.DeleteDBClusterSnapshot(ctx, &awsrds.DeleteDBClusterSnapshotInput{
		DBClusterSnapshotIdentifier: aws.String(identifier),
	})
	return err
}

func toDescriptor(snap types.DBClusterSnapshot) snapshot.Descriptor {
	return snapshot.Descriptor{
		Identifier:        aws.ToString(snap.DBClusterSnapshotIdentifier),
		ClusterIdentifier: aws.ToString(snap.DBClusterIdentifier),
		CreatedAt:         aws.ToTime(snap.SnapshotCreateTime),
		Status:            aws.ToString(snap.Status),
		ARN:               aws.ToString(snap.DBClusterSnapshotArn),
	}
}

func toRDSTags(tags []snapshot.Tag) []types.Tag {
	if len(tags) == 0 {
		return nil
	}
	out := make([]types.Tag, 0, len(tags))
	for _, t := range tags {
		out = append(out, types.Tag{
			Key:   aws.String(t.Key),
			Value: aws.String(t.Value),
		})
	}
	return out
}

package rds

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsrds "github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/rds/types"
	"github.com/aws/smithy-go"
)

// fakeRDS is an in-memory stand-in for the RDS cluster snapshot API.
type fakeRDS struct {
	mu        sync.Mutex
	snapshots map[string]types.DBClusterSnapshot
	tags      map[string][]types.Tag
	pageSize  int
	now       time.Time

	describeCalls int
	createErr     error
}

func newFakeRDS(now time.Time) *fakeRDS {
	return &fakeRDS{
		snapshots: make(map[string]types.DBClusterSnapshot),
		tags:      make(map[string][]types.Tag),
		pageSize:  2,
		now:       now,
	}
}

func (f *fakeRDS) put(cluster, id, snapType string, created time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snapshots[id] = types.DBClusterSnapshot{
		DBClusterIdentifier:         aws.String(cluster),
		DBClusterSnapshotIdentifier: aws.String(id),
		SnapshotCreateTime:          aws.Time(created),
		SnapshotType:                aws.String(snapType),
		Status:                      aws.String("available"),
	}
}

func apiError(code, message string) error {
	return &smithy.GenericAPIError{Code: code, Message: message}
}

func (f *fakeRDS) CreateDBClusterSnapshot(
	ctx context.Context,
	input *awsrds.CreateDBClusterSnapshotInput,
	opts ...func(*awsrds.Options),
) (*awsrds.CreateDBClusterSnapshotOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return nil, f.createErr
	}

	id := aws.ToString(input.DBClusterSnapshotIdentifier)
	if _, exists := f.snapshots[id]; exists {
		return nil, apiError("DBClusterSnapshotAlreadyExistsFault", fmt.Sprintf("snapshot %s exists", id))
	}

	snap := types.DBClusterSnapshot{
		DBClusterIdentifier:         input.DBClusterIdentifier,
		DBClusterSnapshotIdentifier: input.DBClusterSnapshotIdentifier,
		DBClusterSnapshotArn:        aws.String("arn:aws:rds:us-east-1:123456789012:cluster-snapshot:" + id),
		SnapshotType:                aws.String("manual"),
		Status:                      aws.String("creating"),
		SnapshotCreateTime:          aws.Time(f.now),
	}
	f.snapshots[id] = snap
	f.tags[id] = input.Tags

	return &awsrds.CreateDBClusterSnapshotOutput{DBClusterSnapshot: &snap}, nil
}

func (f *fakeRDS) DescribeDBClusterSnapshots(
	ctx context.Context,
	input *awsrds.DescribeDBClusterSnapshotsInput,
	opts ...func(*awsrds.Options),
) (*awsrds.DescribeDBClusterSnapshotsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.describeCalls++

	cluster := aws.ToString(input.DBClusterIdentifier)
	if cluster == "missing" {
		return nil, apiError("DBClusterNotFoundFault", "cluster missing not found")
	}

	var ids []string
	for id, snap := range f.snapshots {
		if aws.ToString(snap.DBClusterIdentifier) != cluster {
			continue
		}
		if input.SnapshotType != nil && aws.ToString(snap.SnapshotType) != aws.ToString(input.SnapshotType) {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	start := 0
	if input.Marker != nil {
		fmt.Sscanf(aws.ToString(input.Marker), "%d", &start)
	}
	end := start + f.pageSize
	if end > len(ids) {
		end = len(ids)
	}

	out := &awsrds.DescribeDBClusterSnapshotsOutput{}
	for _, id := range ids[start:end] {
		out.DBClusterSnapshots = append(out.DBClusterSnapshots, f.snapshots[id])
	}
	if end < len(ids) {
		out.Marker = aws.String(fmt.Sprintf("%d", end))
	}
	return out, nil
}

func (f *fakeRDS) DeleteDBClusterSnapshot(
	ctx context.Context,
	input *awsrds.DeleteDBClusterSnapshotInput,
	opts ...func(*awsrds.Options),
) (*awsrds.DeleteDBClusterSnapshotOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := aws.ToString(input.DBClusterSnapshotIdentifier)
	snap, exists := f.snapshots[id]
	if !exists {
		return nil, apiError("DBClusterSnapshotNotFoundFault", fmt.Sprintf("snapshot %s not found", id))
	}

	delete(f.snapshots, id)
	delete(f.tags, id)
	return &awsrds.DeleteDBClusterSnapshotOutput{DBClusterSnapshot: &snap}, nil
}

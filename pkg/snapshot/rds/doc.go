// Package rds implements snapshot.Store on top of Amazon RDS Aurora cluster
// snapshots using the AWS SDK for Go v2.
//
// Only manual cluster snapshots are listed. Listing follows pagination
// markers until the service reports no further pages.
//
// # Basic Usage
//
//	awsCfg, err := cloud.LoadAWSConfig(ctx, cfg.AWS)
//	if err != nil {
//	    return err
//	}
//	store := rds.NewStore(rds.NewClient(awsCfg))
package rds

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"bytes"
	"context"
	"fmt"
	"io"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/sizewatch/sizewatch/internal/cacheutil"
	"github.com/sizewatch/sizewatch/internal/config"
	"github.com/sizewatch/sizewatch/internal/log"
	"github.com/sizewatch/sizewatch/internal/snapshot"
)

// s3API is the slice of the S3 client the store uses; tests inject a fake.
type s3API interface {
	GetObject(ctx context.Context, in *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3v2.PutObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error)
}

// S3Store keeps the baseline snapshot as a single versioned S3 object at a
// fixed key; Persist overwrites it and bucket versioning preserves history.
type S3Store struct {
	opts   Options
	client s3API
}

// NewS3 builds an S3Store. AWS credentials and region come from the default
// chain (shared config, env, IMDS); Options.Region and Options.Profile
// override when set.
func NewS3(ctx context.Context, opts Options) (*S3Store, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("store bucket is required")
	}
	if opts.Key == "" {
		return nil, fmt.Errorf("store key is required")
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if opts.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(opts.Profile))
	}
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	log.Debugf("s3 store ready: bucket=%s key=%s", opts.Bucket, opts.Key)

	return &S3Store{opts: opts, client: s3v2.NewFromConfig(cfg)}, nil
}

// Fetch retrieves and decodes the baseline document. Any failure along the
// way is logged and yields an empty snapshot so the caller's diff degrades to
// "all files new". Fetched bodies are cached on disk and the cache serves as
// the fallback when S3 is unreachable.
func (s *S3Store) Fetch(ctx context.Context) (snapshot.Snapshot, error) {
	if cleanHours, err := config.GetInt("cache.clean", 0); err == nil {
		if err := cacheutil.Purge(cleanHours); err != nil {
			log.WithError(err).Warnf("failed to purge cache")
		}
	}

	result, err := s.client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(s.opts.Bucket),
		Key:    awsv2.String(s.opts.Key),
	})
	if err != nil {
		log.WithError(err).Errorf("failed to get baseline s3://%s/%s", s.opts.Bucket, s.opts.Key)
		if entry, ok := cacheutil.Read(s.cacheSubdirs(), "baseline"); ok {
			log.Infof("using cached baseline: path=%s", entry.Path)
			snap, _ := decodeOrEmpty(entry.Data)
			return snap, nil
		}
		return snapshot.Snapshot{}, nil
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		log.WithError(err).Errorf("failed to read baseline body")
		return snapshot.Snapshot{}, nil
	}

	snap, err := decodeOrEmpty(data)
	if err == nil {
		if cerr := cacheutil.Write(s.cacheSubdirs(), "baseline", data); cerr != nil {
			log.WithError(cerr).Warnf("failed to cache baseline")
		}
	}
	return snap, nil
}

// Persist overwrites the baseline object with the encoded snapshot.
func (s *S3Store) Persist(ctx context.Context, snap snapshot.Snapshot) error {
	data, err := snapshot.Encode(snap)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, &s3v2.PutObjectInput{
		Bucket:      awsv2.String(s.opts.Bucket),
		Key:         awsv2.String(s.opts.Key),
		Body:        bytes.NewReader(data),
		ContentType: awsv2.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to put baseline s3://%s/%s: %w", s.opts.Bucket, s.opts.Key, err)
	}

	log.Debugf("baseline persisted: bucket=%s key=%s files=%d", s.opts.Bucket, s.opts.Key, len(snap))
	return nil
}

func (s *S3Store) cacheSubdirs() []string {
	return []string{s.opts.Bucket, s.opts.Key}
}

// decodeOrEmpty turns a malformed stored document into an absent baseline.
func decodeOrEmpty(data []byte) (snapshot.Snapshot, error) {
	snap, err := snapshot.Decode(data)
	if err != nil {
		log.WithError(err).Errorf("malformed baseline document, treating as absent")
		return snapshot.Snapshot{}, err
	}
	return snap, nil
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/tfctl/textdiff/internal/aws"
	"github.com/tfctl/textdiff/internal/cacheutil"
)

type s3Source struct {
	spec      string
	bucket    string
	key       string
	versionID string
	api       aws.ObjectGetter
	awsOpts   []aws.Option
}

func newS3Source(spec string, o options) (*s3Source, error) {
	u, err := parseURL(spec)
	if err != nil {
		return nil, err
	}

	key := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return nil, fmt.Errorf("s3 source needs a bucket and key: %s", spec)
	}

	return &s3Source{
		spec:      spec,
		bucket:    u.Host,
		key:       key,
		versionID: u.Query().Get("versionId"),
		api:       o.s3,
		awsOpts:   o.s3Opts,
	}, nil
}

func (s *s3Source) Load(ctx context.Context) ([]byte, error) {
	fetch := func() ([]byte, error) {
		api := s.api
		if api == nil {
			client, err := aws.NewS3(ctx, s.awsOpts...)
			if err != nil {
				return nil, err
			}
			api = client
		}
		return aws.GetObject(ctx, api, s.bucket, s.key, s.versionID)
	}

	// Only a pinned version is immutable.
	if s.versionID == "" {
		return fetch()
	}
	return cacheutil.ReadThrough([]string{"s3", s.bucket}, s.spec, fetch)
}

func (s *s3Source) String() string { return s.spec }

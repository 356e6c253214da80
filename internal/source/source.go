// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/sync/errgroup"

	"github.com/tfctl/textdiff/internal/aws"
	"github.com/tfctl/textdiff/internal/log"
)

// ErrMultipleStdin is returned when both sides of a diff ask for stdin.
var ErrMultipleStdin = errors.New("only one source may read from stdin")

// Source is a loadable text.
type Source interface {
	// Load returns the full content of the source.
	Load(ctx context.Context) ([]byte, error)
	// String names the source for headers and logs.
	String() string
}

// Kind classifies a spec without resolving it.
type Kind string

const (
	KindStdin Kind = "stdin"
	KindFile  Kind = "file"
	KindS3    Kind = "s3"
	KindHTTP  Kind = "http"
	KindGit   Kind = "git"
)

// KindOf returns the kind of source spec would resolve to.
func KindOf(spec string) Kind {
	switch {
	case spec == "-":
		return KindStdin
	case strings.HasPrefix(spec, "s3://"):
		return KindS3
	case strings.HasPrefix(spec, "http://"), strings.HasPrefix(spec, "https://"):
		return KindHTTP
	case strings.HasPrefix(spec, "git:"):
		return KindGit
	default:
		return KindFile
	}
}

type options struct {
	stdin      io.Reader
	s3         aws.ObjectGetter
	s3Opts     []aws.Option
	httpClient *retryablehttp.Client
	repoDir    string
}

// Option customizes source resolution.
type Option func(*options)

// WithStdin replaces os.Stdin for the "-" spec.
func WithStdin(r io.Reader) Option {
	return func(o *options) { o.stdin = r }
}

// WithS3Client uses api instead of a client built from the AWS environment.
func WithS3Client(api aws.ObjectGetter) Option {
	return func(o *options) { o.s3 = api }
}

// WithAWSOptions passes options through to aws.NewS3.
func WithAWSOptions(opts ...aws.Option) Option {
	return func(o *options) { o.s3Opts = append(o.s3Opts, opts...) }
}

// WithHTTPClient replaces the default retrying HTTP client.
func WithHTTPClient(c *retryablehttp.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithRepoDir sets the directory used to discover the git repository for git:
// specs. Defaults to the working directory.
func WithRepoDir(dir string) Option {
	return func(o *options) { o.repoDir = dir }
}

// New resolves spec into a Source.
func New(spec string, opts ...Option) (Source, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if spec == "" {
		return nil, errors.New("empty source spec")
	}

	kind := KindOf(spec)
	log.Debugf("source resolved: spec=%s kind=%s", spec, kind)

	switch kind {
	case KindStdin:
		r := o.stdin
		if r == nil {
			r = os.Stdin
		}
		return &stdinSource{r: r}, nil
	case KindS3:
		return newS3Source(spec, o)
	case KindHTTP:
		return newHTTPSource(spec, o), nil
	case KindGit:
		return newGitSource(spec, o)
	default:
		return &fileSource{path: spec}, nil
	}
}

// NewPair resolves the original and modified specs together, rejecting two
// stdin specs.
func NewPair(original, modified string, opts ...Option) (Source, Source, error) {
	if original == "-" && modified == "-" {
		return nil, nil, ErrMultipleStdin
	}

	a, err := New(original, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("original: %w", err)
	}
	b, err := New(modified, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("modified: %w", err)
	}
	return a, b, nil
}

// LoadPair loads both sources concurrently.
func LoadPair(ctx context.Context, original, modified Source) ([]byte, []byte, error) {
	var a, b []byte
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		a, err = original.Load(ctx)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", original, err)
		}
		return nil
	})
	g.Go(func() (err error) {
		b, err = modified.Load(ctx)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", modified, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

type stdinSource struct {
	r io.Reader
}

func (s *stdinSource) Load(_ context.Context) ([]byte, error) {
	return io.ReadAll(s.r)
}

func (s *stdinSource) String() string { return "-" }

type fileSource struct {
	path string
}

func (s *fileSource) Load(_ context.Context) ([]byte, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("source cannot be a directory: %s", s.path)
	}
	return os.ReadFile(s.path)
}

func (s *fileSource) String() string { return s.path }

// Path returns the local file path of a file source, or false for any other
// kind. Watch mode uses it to find what to watch.
func Path(s Source) (string, bool) {
	if f, ok := s.(*fileSource); ok {
		return f.path, true
	}
	return "", false
}

// parseURL is url.Parse with the spec echoed in the error.
func parseURL(spec string) (*url.URL, error) {
	u, err := url.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid source %q: %w", spec, err)
	}
	return u, nil
}

// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package netsource provides a raw octet provider that fetches batches of
// true random octets from a remote entropy server over HTTP, throttling
// itself according to the server's advertised pool fill level so that many
// cooperating clients do not drain the pool.
package netsource

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"time"
)

const (
	// DefaultLevelURL is the fill level endpoint of the public entropy
	// server used when the caller does not supply one.  The response body
	// is the pool fill level as a percentage.
	DefaultLevelURL = "https://www.random.org/cgi-bin/checkbuf"

	// DefaultFetchURL is the batch fetch endpoint used when the caller
	// does not supply one.  The response body is DefaultBatchSize raw
	// octets.
	DefaultFetchURL = "https://www.random.org/cgi-bin/randbyte?nbytes=256&format=f"

	// DefaultBatchSize is the octet count of a fetched batch when the
	// caller does not supply one.  It must match the batch size the fetch
	// endpoint serves.
	DefaultBatchSize = 256

	// DefaultPollInterval is the base delay used when throttling on a low
	// pool fill level.
	DefaultPollInterval = 10 * time.Second

	// maxLevelBody bounds how much of a fill level response is read.
	maxLevelBody = 64
)

// fillRE extracts the percentage from a fill level response body.
var fillRE = regexp.MustCompile(`^\s*(\d{1,3})%\s*$`)

// HTTPClient is the capability netsource requires of an HTTP client.  It is
// implemented by *http.Client.
type HTTPClient interface {
	Get(url string) (*http.Response, error)
}

// Config holds the configuration options related to a network octet source.
type Config struct {
	// Client is the HTTP client used to contact the entropy server.
	// Defaults to http.DefaultClient if nil.
	Client HTTPClient

	// LevelURL is the fill level endpoint.  Defaults to DefaultLevelURL.
	LevelURL string

	// FetchURL is the batch fetch endpoint.  Defaults to DefaultFetchURL.
	FetchURL string

	// BatchSize is the exact octet count the fetch endpoint serves per
	// request.  Defaults to DefaultBatchSize.
	BatchSize int

	// PollInterval is the base throttle delay.  Defaults to
	// DefaultPollInterval.
	PollInterval time.Duration
}

// Source reads true random octets from a remote entropy server one batch at
// a time.  It implements io.Reader, io.ByteReader, and io.ByteScanner.  The
// stream is forward only.
//
// Any transport or protocol failure is sticky: once a read fails, all
// subsequent reads fail with the same error until ClearErr is called.
//
// Source methods are not safe for concurrent access.
type Source struct {
	client    HTTPClient
	levelURL  string
	fetchURL  string
	batchSize int
	poll      time.Duration
	sleep     func(time.Duration)

	buf    []byte
	cursor int
	last   byte
	read   bool
	pushed bool
	err    error
}

// New returns a network octet source configured per cfg.  Zero-valued config
// fields are replaced with package defaults.
func New(cfg *Config) (*Source, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	s := &Source{
		client:    cfg.Client,
		levelURL:  cfg.LevelURL,
		fetchURL:  cfg.FetchURL,
		batchSize: cfg.BatchSize,
		poll:      cfg.PollInterval,
		sleep:     time.Sleep,
	}
	if s.client == nil {
		s.client = http.DefaultClient
	}
	if s.levelURL == "" {
		s.levelURL = DefaultLevelURL
	}
	if s.fetchURL == "" {
		s.fetchURL = DefaultFetchURL
	}
	if s.batchSize == 0 {
		s.batchSize = DefaultBatchSize
	}
	if s.batchSize < 0 {
		return nil, makeError(ErrShortBatch, "batch size must be positive")
	}
	if s.poll == 0 {
		s.poll = DefaultPollInterval
	}
	return s, nil
}

// fillLevel queries the server's pool fill level as a percentage.
func (s *Source) fillLevel() (int, error) {
	resp, err := s.client.Get(s.levelURL)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		desc := fmt.Sprintf("fill level check answered %s", resp.Status)
		return 0, makeError(ErrUnexpectedStatus, desc)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxLevelBody))
	if err != nil {
		return 0, err
	}
	m := fillRE.FindSubmatch(body)
	if m == nil {
		return 0, makeError(ErrBadFillLevel, "fill level response is "+
			"not a percentage")
	}
	// Regex bounds the match to three digits.
	level, _ := strconv.Atoi(string(m[1]))
	return level, nil
}

// throttle delays the next batch fetch according to the server's pool fill
// level.  Below 20% it sleeps a full poll interval and queries again; from
// 20% to 50% it sleeps once, proportionally to the shortfall; above 50% it
// returns immediately.
func (s *Source) throttle() error {
	for {
		level, err := s.fillLevel()
		if err != nil {
			return err
		}
		if level < 20 {
			log.Debugf("Entropy pool at %d%%, waiting %v", level,
				s.poll)
			s.sleep(s.poll)
			continue
		}
		if level <= 50 {
			d := time.Duration(50-level) * s.poll / 30
			log.Debugf("Entropy pool at %d%%, backing off %v",
				level, d)
			s.sleep(d)
		}
		return nil
	}
}

// refill replaces the in-memory batch with a freshly fetched one.
func (s *Source) refill() error {
	if err := s.throttle(); err != nil {
		return err
	}
	resp, err := s.client.Get(s.fetchURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		desc := fmt.Sprintf("batch fetch answered %s", resp.Status)
		return makeError(ErrUnexpectedStatus, desc)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, int64(s.batchSize)+1))
	if err != nil {
		return err
	}
	if len(body) != s.batchSize {
		desc := fmt.Sprintf("batch fetch returned %d octets, want %d",
			len(body), s.batchSize)
		return makeError(ErrShortBatch, desc)
	}
	log.Tracef("Fetched %d octet batch", len(body))
	s.buf = body
	s.cursor = 0
	return nil
}

// ReadByte returns the next octet, fetching a new batch from the server when
// the in-memory one is spent.
func (s *Source) ReadByte() (byte, error) {
	if s.err != nil {
		return 0, s.err
	}
	if s.pushed {
		s.pushed = false
		return s.last, nil
	}
	if s.cursor == len(s.buf) {
		if err := s.refill(); err != nil {
			s.err = err
			return 0, err
		}
	}
	b := s.buf[s.cursor]
	s.cursor++
	s.last = b
	s.read = true
	return b, nil
}

// UnreadByte pushes back the most recently read octet.  Only a single octet
// of push-back is supported.
func (s *Source) UnreadByte() error {
	if s.pushed || !s.read {
		return makeError(ErrInvalidUnread, "no octet available to unread")
	}
	s.pushed = true
	return nil
}

// Read fills p with successive octets from the server.
func (s *Source) Read(p []byte) (int, error) {
	var n int
	for n < len(p) {
		b, err := s.ReadByte()
		if err != nil {
			if n > 0 {
				return n, nil
			}
			return 0, err
		}
		p[n] = b
		n++
	}
	return n, nil
}

// Err returns the sticky error, if any.
func (s *Source) Err() error {
	return s.err
}

// ClearErr clears the sticky error so that reads may be retried.
func (s *Source) ClearErr() {
	s.err = nil
}

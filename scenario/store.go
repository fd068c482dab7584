package scenario

import (
	"bytes"
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"

	"github.com/katalvlaran/lvgreedy/delivery"
)

// Store reads and writes scenario files under one base location.
type Store struct {
	baseURL string
	fs      afs.Service
}

// NewStore returns a Store rooted at baseURL (a directory path or afs URL).
// The location is not touched until Save or a read is called.
func NewStore(baseURL string) (*Store, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("scenario: base location cannot be empty")
	}

	return &Store{
		baseURL: url.Normalize(baseURL, file.Scheme),
		fs:      afs.New(),
	}, nil
}

// URL returns the full location of name inside the store.
func (s *Store) URL(name string) string {
	return url.Join(s.baseURL, name)
}

// Save writes the three scenario files, creating the base location if needed.
func (s *Store) Save(ctx context.Context, set Set) error {
	exists, err := s.fs.Exists(ctx, s.baseURL)
	if err != nil {
		return fmt.Errorf("scenario: check %s: %w", s.baseURL, err)
	}
	if !exists {
		if err = s.fs.Create(ctx, s.baseURL, file.DefaultDirOsMode, true); err != nil {
			return fmt.Errorf("scenario: create %s: %w", s.baseURL, err)
		}
	}

	if err = s.WriteWindows(ctx, PrioritizationFile, set.Prioritization); err != nil {
		return err
	}
	if err = s.WriteTruck(ctx, TruckLoadingFile, set.Packages, set.TruckCapacity); err != nil {
		return err
	}

	return s.WriteWindows(ctx, AssignmentFile, set.Assignment)
}

// Load reads the three scenario files back into a Set.
func (s *Store) Load(ctx context.Context) (Set, error) {
	var (
		set Set
		err error
	)
	if set.Prioritization, err = s.ReadWindows(ctx, PrioritizationFile); err != nil {
		return Set{}, err
	}
	if set.Packages, set.TruckCapacity, err = s.ReadTruck(ctx, TruckLoadingFile); err != nil {
		return Set{}, err
	}
	if set.Assignment, err = s.ReadWindows(ctx, AssignmentFile); err != nil {
		return Set{}, err
	}

	return set, nil
}

// WriteWindows stores windows as name.
func (s *Store) WriteWindows(ctx context.Context, name string, windows []delivery.Interval) error {
	data, err := EncodeWindows(windows)
	if err != nil {
		return fmt.Errorf("scenario: encode %s: %w", name, err)
	}

	return s.upload(ctx, name, data)
}

// WriteTruck stores packages and capacity as name.
func (s *Store) WriteTruck(ctx context.Context, name string, items []delivery.Item, capacity float64) error {
	data, err := EncodeTruck(items, capacity)
	if err != nil {
		return fmt.Errorf("scenario: encode %s: %w", name, err)
	}

	return s.upload(ctx, name, data)
}

// ReadWindows loads a windows file.
func (s *Store) ReadWindows(ctx context.Context, name string) ([]delivery.Interval, error) {
	data, err := s.download(ctx, name)
	if err != nil {
		return nil, err
	}
	windows, err := DecodeWindows(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.URL(name), err)
	}

	return windows, nil
}

// ReadTruck loads a truck loading file.
func (s *Store) ReadTruck(ctx context.Context, name string) ([]delivery.Item, float64, error) {
	data, err := s.download(ctx, name)
	if err != nil {
		return nil, 0, err
	}
	items, capacity, err := DecodeTruck(data)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", s.URL(name), err)
	}

	return items, capacity, nil
}

func (s *Store) upload(ctx context.Context, name string, data []byte) error {
	target := s.URL(name)
	if err := s.fs.Upload(ctx, target, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("scenario: write %s: %w", target, err)
	}

	return nil
}

func (s *Store) download(ctx context.Context, name string) ([]byte, error) {
	source := s.URL(name)
	data, err := s.fs.DownloadWithURL(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", source, err)
	}

	return data, nil
}

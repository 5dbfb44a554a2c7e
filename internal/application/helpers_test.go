package application

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/bnema/universal-accounts-cli/internal/domain"
	"github.com/stretchr/testify/mock"
)

const (
	testOwner     = "0xA1b2C3d4E5f60718293a4B5c6D7e8F9011223344"
	testRecipient = "0xB2c3D4e5F60718293A4b5C6d7E8f901122334455"
	testOwnerKey  = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
)

func testCredentials() domain.Credentials {
	return domain.Credentials{
		ProjectID: "project-1",
		ClientKey: "client-key",
		AppUUID:   "6f1a8a8e-3c0e-4b53-9a0e-1d2f3b4c5d6e",
	}
}

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFixedClock() *fixedClock {
	return &fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type inMemoryProfileRepo struct {
	profiles map[domain.ProfileName]domain.Profile
	saveErr  error
}

func (r *inMemoryProfileRepo) GetByName(_ context.Context, name domain.ProfileName) (domain.Profile, error) {
	profile, ok := r.profiles[name]
	if !ok {
		return domain.Profile{}, domain.ErrProfileNotFound
	}
	return profile, nil
}

func (r *inMemoryProfileRepo) List(context.Context) ([]domain.Profile, error) {
	profiles := make([]domain.Profile, 0, len(r.profiles))
	for _, profile := range r.profiles {
		profiles = append(profiles, profile)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Name < profiles[j].Name })
	return profiles, nil
}

func (r *inMemoryProfileRepo) Save(_ context.Context, profile domain.Profile) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	if r.profiles == nil {
		r.profiles = map[domain.ProfileName]domain.Profile{}
	}
	r.profiles[profile.Name] = profile
	return nil
}

type inMemorySecretStore struct {
	values map[string]string
	putErr map[string]error
}

func (s *inMemorySecretStore) Get(_ context.Context, key string) (string, error) {
	value, ok := s.values[key]
	if !ok {
		return "", domain.ErrSecretNotFound
	}
	return value, nil
}

func (s *inMemorySecretStore) Put(_ context.Context, key string, value string) error {
	if err, ok := s.putErr[key]; ok {
		return err
	}
	if s.values == nil {
		s.values = map[string]string{}
	}
	s.values[key] = value
	return nil
}

func (s *inMemorySecretStore) Delete(_ context.Context, key string) error {
	delete(s.values, key)
	return nil
}

var errBoom = errors.New("boom")

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(context.Context) bool { return true })
}

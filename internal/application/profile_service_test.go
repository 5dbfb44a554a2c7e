package application

import (
	"context"
	"testing"

	"github.com/bnema/universal-accounts-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileServiceSaveAndLoadCredentials(t *testing.T) {
	t.Parallel()

	repo := &inMemoryProfileRepo{}
	store := &inMemorySecretStore{}
	svc := NewProfileService(repo, store)

	require.NoError(t, svc.SaveProfile(context.Background(), SaveProfileCommand{
		ProjectID:    "project-1",
		AppUUID:      testCredentials().AppUUID,
		ClientKey:    "client-key",
		OwnerKey:     testOwnerKey,
		OwnerAddress: testOwner,
	}))

	profile := repo.profiles[domain.DefaultProfileName]
	assert.Equal(t, "profiles/default/client_key", profile.ClientKeyRef)
	assert.Equal(t, "profiles/default/owner_key", profile.OwnerKeyRef)
	assert.Equal(t, "client-key", store.values[profile.ClientKeyRef])

	loaded, err := svc.LoadCredentials(context.Background(), domain.DefaultProfileName)
	require.NoError(t, err)
	assert.Equal(t, testCredentials(), loaded.Credentials)
	assert.Equal(t, testOwnerKey, loaded.OwnerKey)
	assert.Equal(t, testOwner, loaded.Profile.OwnerAddress)
}

func TestProfileServiceSaveKeepsExistingValues(t *testing.T) {
	t.Parallel()

	repo := &inMemoryProfileRepo{}
	store := &inMemorySecretStore{}
	svc := NewProfileService(repo, store)

	require.NoError(t, svc.SaveProfile(context.Background(), SaveProfileCommand{
		Name:      "staging",
		ProjectID: "project-1",
		AppUUID:   testCredentials().AppUUID,
		ClientKey: "client-key",
	}))
	require.NoError(t, svc.SaveProfile(context.Background(), SaveProfileCommand{
		Name:           "staging",
		ActivityViewer: "https://viewer.example",
	}))

	loaded, err := svc.LoadCredentials(context.Background(), "staging")
	require.NoError(t, err)
	assert.Equal(t, "project-1", loaded.Credentials.ProjectID)
	assert.Equal(t, "client-key", loaded.Credentials.ClientKey)
	assert.Equal(t, "https://viewer.example", loaded.Profile.ActivityViewer)
	assert.Empty(t, loaded.OwnerKey)
}

func TestProfileServiceSaveRollsBackSecretsOnRepositoryFailure(t *testing.T) {
	t.Parallel()

	repo := &inMemoryProfileRepo{saveErr: errBoom}
	store := &inMemorySecretStore{}
	svc := NewProfileService(repo, store)

	err := svc.SaveProfile(context.Background(), SaveProfileCommand{
		ProjectID: "project-1",
		AppUUID:   testCredentials().AppUUID,
		ClientKey: "client-key",
		OwnerKey:  testOwnerKey,
	})
	require.ErrorIs(t, err, errBoom)
	assert.Empty(t, store.values)
}

func TestProfileServiceSaveRollsBackClientKeyWhenOwnerKeyFails(t *testing.T) {
	t.Parallel()

	store := &inMemorySecretStore{putErr: map[string]error{"profiles/default/owner_key": errBoom}}
	svc := NewProfileService(&inMemoryProfileRepo{}, store)

	err := svc.SaveProfile(context.Background(), SaveProfileCommand{ClientKey: "client-key", OwnerKey: testOwnerKey})
	require.ErrorIs(t, err, errBoom)
	assert.Empty(t, store.values)
}

func TestProfileServiceSaveRestoresPreviousSecretsOnRepositoryFailure(t *testing.T) {
	t.Parallel()

	repo := &inMemoryProfileRepo{}
	store := &inMemorySecretStore{}
	svc := NewProfileService(repo, store)

	require.NoError(t, svc.SaveProfile(context.Background(), SaveProfileCommand{
		ProjectID: "project-1",
		AppUUID:   testCredentials().AppUUID,
		ClientKey: "old-key",
		OwnerKey:  testOwnerKey,
	}))

	repo.saveErr = errBoom
	err := svc.SaveProfile(context.Background(), SaveProfileCommand{
		ClientKey: "new-key",
		OwnerKey:  "8da4ef21b864d2cc526dbdb2a120bd2874c36c9d0a1fb7f8c63d7f7a8b41de8f",
	})
	require.ErrorIs(t, err, errBoom)

	assert.Equal(t, map[string]string{
		"profiles/default/client_key": "old-key",
		"profiles/default/owner_key":  testOwnerKey,
	}, store.values)

	loaded, err := svc.LoadCredentials(context.Background(), domain.DefaultProfileName)
	require.NoError(t, err)
	assert.Equal(t, "old-key", loaded.Credentials.ClientKey)
	assert.Equal(t, testOwnerKey, loaded.OwnerKey)
}

func TestProfileServiceSaveOwnerKeyFailureKeepsPreviousClientKey(t *testing.T) {
	t.Parallel()

	store := &inMemorySecretStore{values: map[string]string{"profiles/default/client_key": "old-key"}}
	store.putErr = map[string]error{"profiles/default/owner_key": errBoom}
	svc := NewProfileService(&inMemoryProfileRepo{}, store)

	err := svc.SaveProfile(context.Background(), SaveProfileCommand{ClientKey: "new-key", OwnerKey: testOwnerKey})
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, map[string]string{"profiles/default/client_key": "old-key"}, store.values)
}

func TestProfileServiceLoadCredentialsFailures(t *testing.T) {
	t.Parallel()

	t.Run("missing profile", func(t *testing.T) {
		svc := NewProfileService(&inMemoryProfileRepo{}, &inMemorySecretStore{})

		_, err := svc.LoadCredentials(context.Background(), "nope")
		assert.ErrorIs(t, err, domain.ErrConfiguration)
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	})

	t.Run("missing secret", func(t *testing.T) {
		repo := &inMemoryProfileRepo{profiles: map[domain.ProfileName]domain.Profile{
			"default": {Name: "default", ProjectID: "project-1", AppUUID: testCredentials().AppUUID, ClientKeyRef: "profiles/default/client_key"},
		}}
		svc := NewProfileService(repo, &inMemorySecretStore{})

		_, err := svc.LoadCredentials(context.Background(), "default")
		assert.ErrorIs(t, err, domain.ErrConfiguration)
		assert.ErrorIs(t, err, domain.ErrSecretNotFound)
	})

	t.Run("incomplete credentials", func(t *testing.T) {
		repo := &inMemoryProfileRepo{profiles: map[domain.ProfileName]domain.Profile{
			"default": {Name: "default", ProjectID: "project-1"},
		}}
		svc := NewProfileService(repo, &inMemorySecretStore{})

		_, err := svc.LoadCredentials(context.Background(), "default")
		assert.ErrorIs(t, err, domain.ErrConfiguration)
	})
}

func TestProfileServiceListProfiles(t *testing.T) {
	t.Parallel()

	repo := &inMemoryProfileRepo{profiles: map[domain.ProfileName]domain.Profile{
		"b": {Name: "b"},
		"a": {Name: "a"},
	}}

	profiles, err := NewProfileService(repo, &inMemorySecretStore{}).ListProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, domain.ProfileName("a"), profiles[0].Name)
}

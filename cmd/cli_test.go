package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/universal-accounts-cli/internal/adapters/signer/local"
	"github.com/bnema/universal-accounts-cli/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testOwnerKey  = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	testRecipient = "0xB2c3D4e5F60718293A4b5C6d7E8f901122334455"
	testAppUUID   = "6f1a8a8e-3c0e-4b53-9a0e-1d2f3b4c5d6e"
)

func testOwnerAddress(t *testing.T) string {
	t.Helper()

	signer, err := local.NewSignerFromHex(testOwnerKey)
	require.NoError(t, err)
	return signer.Address().Hex()
}

func TestVersionPrintsVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", stdout)
}

func TestProfileSetThenList(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfileFixture(t, home))

	stdout, _, err := executeCLI(t, home, "profile", "list")
	require.NoError(t, err)
	assert.Equal(t, "default\tproject-1\t"+testOwnerAddress(t)+"\tclient_key,owner_key\n", stdout)

	info, err := os.Stat(filepath.Join(home, ".ua", "secrets", "profiles", "default", "owner_key"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(filepath.Join(home, ".ua", "profiles.toml"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), testOwnerKey)
	assert.NotContains(t, string(data), "client-key-1")
}

func TestProfileListJSONHidesSecrets(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfileFixture(t, home))

	stdout, _, err := executeCLI(t, home, "profile", "list", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"has_owner_key\": true")
	assert.NotContains(t, stdout, testOwnerKey)
}

func TestProfileSetRejectsInvalidInput(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "owner key for another address",
			args: []string{"--owner-key", testOwnerKey, "--owner-address", testRecipient},
			want: "owner key controls",
		},
		{
			name: "malformed owner key",
			args: []string{"--owner-key", "0x1234"},
			want: "parse owner private key",
		},
		{
			name: "bad app uuid",
			args: []string{"--app-uuid", "not-a-uuid"},
			want: "is not a uuid",
		},
		{
			name: "bad owner address",
			args: []string{"--owner-address", "0x1234"},
			want: "not a valid evm address",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := executeCLI(t, t.TempDir(), append([]string{"profile", "set"}, tc.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestAccountShowsUniversalAddresses(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfileFixture(t, home))

	stdout, _, err := executeCLI(t, home, "account")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Universal Account")
	assert.Contains(t, stdout, testOwnerAddress(t))
	assert.Contains(t, stdout, "EVM:")
	assert.Contains(t, stdout, "Solana:")
}

func TestAccountJSONIsDeterministic(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfileFixture(t, home))

	first, _, err := executeCLI(t, home, "account", "--json")
	require.NoError(t, err)
	second, _, err := executeCLI(t, home, "account", "--json")
	require.NoError(t, err)

	var view accountView
	require.NoError(t, json.Unmarshal([]byte(first), &view))
	assert.Equal(t, testOwnerAddress(t), view.Owner)
	assert.Equal(t, "evm", view.OwnerFamily)
	assert.NotEmpty(t, view.EVMAccount)
	assert.NotEmpty(t, view.SolanaAccount)
	assert.Equal(t, first, second)
}

func TestAssetsShowsUniversalBalance(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfileFixture(t, home))

	stdout, _, err := executeCLI(t, home, "assets")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Universal balance: $49.21")
	assert.Contains(t, stdout, "USDC")
	assert.Contains(t, stdout, "ETH")
}

func TestAssetsJSONOutput(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfileFixture(t, home))

	stdout, _, err := executeCLI(t, home, "assets", "--json")
	require.NoError(t, err)

	var view assetsView
	require.NoError(t, json.Unmarshal([]byte(stdout), &view))
	assert.Equal(t, "49.21", view.TotalInUSD)
	assert.Len(t, view.Assets, 3)
}

func TestAssetsWithWatchOnlyProfile(t *testing.T) {
	home := t.TempDir()
	_, _, err := executeCLI(t, home,
		"profile", "set",
		"--project-id", "project-1",
		"--app-uuid", testAppUUID,
		"--client-key", "client-key-1",
		"--owner-address", testRecipient,
	)
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "assets", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, "\"total_in_usd\": \"49.21\"")

	_, _, err = executeCLI(t, home, "send", "--to", testRecipient, "--amount", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no owner key")
}

func TestAssetsUnknownProfile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfileFixture(t, home))

	_, _, err := executeCLI(t, home, "assets", "--profile", "staging")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile \"staging\" is not configured")
}

func TestSendSubmitsAndPrintsTrackingURL(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfileFixture(t, home))

	stdout, _, err := executeCLI(t, home, "send", "--to", testRecipient, "--amount", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Submitted:")
	assert.Contains(t, stdout, "destination: arbitrum")
	assert.Contains(t, stdout, "https://universalx.app/activity/details?id=")
}

func TestSendJSONFundsFromOtherChains(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfileFixture(t, home))

	stdout, _, err := executeCLI(t, home, "send", "--to", testRecipient, "--amount", "10", "--chain", "42161", "--json")
	require.NoError(t, err)

	var view submissionView
	require.NoError(t, json.Unmarshal([]byte(stdout), &view))
	assert.NotEmpty(t, view.TransactionID)
	assert.Equal(t, "https://universalx.app/activity/details?id="+view.TransactionID, view.TrackingURL)
	assert.Equal(t, "arbitrum", view.Chain)
	assert.Len(t, view.RootHash, 66)
	assert.Equal(t, []fundingLegView{
		{FromChain: "arbitrum", Token: "usdc", Amount: "5"},
		{FromChain: "base", Token: "usdc", Amount: "5"},
	}, view.Funding)
}

func TestSendFailures(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want string
	}{
		{name: "insufficient funds", args: []string{"--to", testRecipient, "--amount", "100"}, want: "no funding route"},
		{name: "unsupported chain", args: []string{"--to", testRecipient, "--amount", "1", "--chain", "fantom"}, want: "unsupported chain"},
		{name: "bad amount", args: []string{"--to", testRecipient, "--amount", "0"}, want: "amount must be positive"},
		{name: "bad recipient", args: []string{"--to", "bob", "--amount", "1"}, want: "is not an evm address"},
		{name: "missing flags", args: []string{"--amount", "1"}, want: "required flag(s) \"to\" not set"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			home := t.TempDir()
			require.NoError(t, writeProfileFixture(t, home))

			_, _, err := executeCLI(t, home, append([]string{"send", "--json"}, tc.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("UA_BACKEND", "memory")

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeProfileFixture(t *testing.T, home string) error {
	t.Helper()

	_, _, err := executeCLI(t, home,
		"profile", "set",
		"--project-id", "project-1",
		"--app-uuid", testAppUUID,
		"--client-key", "client-key-1",
		"--owner-key", testOwnerKey,
	)
	return err
}

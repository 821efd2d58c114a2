package cli

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/dmitrijs2005/zkpauth/internal/client/config"
	"github.com/dmitrijs2005/zkpauth/internal/client/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	registerX   *big.Int
	registerErr error
	loginErr    error

	gotPassphrase string
	gotSecret     *big.Int
	forgotten     string
	users         []string
	closed        bool
}

func (f *fakeService) Register(_ context.Context, _ string, pw []byte) (*big.Int, error) {
	f.gotPassphrase = string(pw)
	return f.registerX, f.registerErr
}

func (f *fakeService) Login(_ context.Context, user string, pw []byte) (string, error) {
	f.gotPassphrase = string(pw)
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return "tok-" + user, nil
}

func (f *fakeService) LoginWithSecret(_ context.Context, user string, x *big.Int) (string, error) {
	f.gotSecret = x
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return "tok-" + user, nil
}

func (f *fakeService) ForgetSecret(_ context.Context, user string) error {
	f.forgotten = user
	return nil
}

func (f *fakeService) ListUsers(context.Context) ([]string, error) { return f.users, nil }

func (f *fakeService) Close(context.Context) error {
	f.closed = true
	return nil
}

func run(t *testing.T, f *fakeService, args ...string) (string, *config.Config, error) {
	t.Helper()
	var out bytes.Buffer
	var gotCfg *config.Config

	factory := func(_ context.Context, c *config.Config) (services.AuthService, error) {
		gotCfg = c
		return f, nil
	}

	root := NewRootCommand(factory, &out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), gotCfg, err
}

func TestRegisterCommand(t *testing.T) {
	stubPasswords(t, "pw", "pw")
	f := &fakeService{registerX: big.NewInt(0xabc)}

	out, _, err := run(t, f, "register", "alice")
	require.NoError(t, err)

	assert.Contains(t, out, "Secret for alice (keep it safe): abc")
	assert.Contains(t, out, "Registered alice")
	assert.Contains(t, out, "Session token: tok-alice")
	assert.Equal(t, "pw", f.gotPassphrase)
	assert.Equal(t, int64(0xabc), f.gotSecret.Int64())
	assert.True(t, f.closed)
}

func TestRegisterCommand_PrintsSecretEvenIfSavingFails(t *testing.T) {
	stubPasswords(t, "pw", "pw")
	f := &fakeService{registerX: big.NewInt(0xabc), registerErr: errors.New("disk full")}

	out, _, err := run(t, f, "register", "alice")
	assert.Error(t, err)
	assert.Contains(t, out, "abc")
	assert.NotContains(t, out, "Session token")
}

func TestRegisterCommand_PassphraseMismatch(t *testing.T) {
	stubPasswords(t, "pw", "other")
	_, _, err := run(t, &fakeService{}, "register", "alice")
	assert.ErrorIs(t, err, ErrPassphraseMismatch)
}

func TestLoginCommand_Vault(t *testing.T) {
	stubPasswords(t, "pw")
	f := &fakeService{}

	out, cfg, err := run(t, f, "login", "bob", "-a", "srv:1", "--vault", "/tmp/v.db")
	require.NoError(t, err)

	assert.Contains(t, out, "Session token: tok-bob")
	assert.Equal(t, "pw", f.gotPassphrase)
	assert.Equal(t, "srv:1", cfg.ServerEndpointAddr)
	assert.Equal(t, "/tmp/v.db", cfg.VaultPath)
}

func TestLoginCommand_SecretFlag(t *testing.T) {
	f := &fakeService{}

	out, _, err := run(t, f, "login", "bob", "--secret", "ff")
	require.NoError(t, err)

	assert.Contains(t, out, "tok-bob")
	assert.Equal(t, int64(255), f.gotSecret.Int64())
}

func TestLoginCommand_BadSecret(t *testing.T) {
	_, _, err := run(t, &fakeService{}, "login", "bob", "--secret", "xyz")
	assert.Error(t, err)
}

func TestLoginCommand_Denied(t *testing.T) {
	stubPasswords(t, "pw")
	denied := errors.New("unauthorized")

	_, _, err := run(t, &fakeService{loginErr: denied}, "login", "bob")
	assert.ErrorIs(t, err, denied)
}

func TestForgetAndUsersCommands(t *testing.T) {
	f := &fakeService{users: []string{"alice", "bob"}}

	_, _, err := run(t, f, "forget", "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", f.forgotten)

	out, _, err := run(t, f, "users")
	require.NoError(t, err)
	assert.Equal(t, "alice\nbob\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, cfg, err := run(t, &fakeService{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Build version:")
	assert.Nil(t, cfg, "version must not build an app")
}

func TestCommands_ArgCount(t *testing.T) {
	_, _, err := run(t, &fakeService{}, "login")
	assert.Error(t, err)
}

func TestFactoryError(t *testing.T) {
	var out bytes.Buffer
	boom := errors.New("no vault")
	root := NewRootCommand(func(context.Context, *config.Config) (services.AuthService, error) {
		return nil, boom
	}, &out)
	root.SetArgs([]string{"users"})

	assert.ErrorIs(t, root.ExecuteContext(context.Background()), boom)
}

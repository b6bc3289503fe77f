package operator

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mdrrmo4516/mobile2026/internal/common"
	"github.com/mdrrmo4516/mobile2026/internal/logging"
	"github.com/mdrrmo4516/mobile2026/internal/server/auth"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/users"
	"github.com/mdrrmo4516/mobile2026/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func stubPasswords(t *testing.T, answers ...string) {
	t.Helper()
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) {
		if len(answers) == 0 {
			return nil, errors.New("no more input")
		}
		next := answers[0]
		answers = answers[1:]
		return []byte(next), nil
	}
}

func newService() *services.UserService {
	tokens := auth.NewTokenService([]byte("k"), time.Minute, nil)
	return services.NewUserService(users.NewMemoryRepository(), &auth.BcryptHasher{Cost: bcrypt.MinCost}, tokens, nil, logging.Nop())
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(bufio.NewReader(strings.NewReader("hello world\n")), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())

	got, err = GetSimpleText(bufio.NewReader(strings.NewReader("lastline")), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }

	_, err := GetPassword(&bytes.Buffer{}, "Password")
	assert.Error(t, err)
}

func TestBootstrap_CreatesAdmin(t *testing.T) {
	stubPasswords(t, "s3cret", "s3cret")
	var out bytes.Buffer

	res, err := Bootstrap(context.Background(), newService(), strings.NewReader("root@mdrrmo.ph\nRoot Admin\n0917-123-4567\n"), &out)
	require.NoError(t, err)
	assert.True(t, res.User.IsAdmin)
	assert.Equal(t, "Root Admin", res.User.FullName)
	require.NotNil(t, res.User.Phone)
	assert.Equal(t, "0917-123-4567", *res.User.Phone)
	assert.Contains(t, out.String(), "Administrator root@mdrrmo.ph created")
	assert.NotContains(t, out.String(), "s3cret")
}

func TestBootstrap_EmptyPhoneIsNil(t *testing.T) {
	stubPasswords(t, "pw", "pw")

	res, err := Bootstrap(context.Background(), newService(), strings.NewReader("root@mdrrmo.ph\nRoot\n\n"), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Nil(t, res.User.Phone)
}

func TestBootstrap_PasswordMismatch(t *testing.T) {
	stubPasswords(t, "one", "two")

	_, err := Bootstrap(context.Background(), newService(), strings.NewReader("root@mdrrmo.ph\nRoot\n\n"), &bytes.Buffer{})
	assert.ErrorIs(t, err, errPasswordMismatch)
}

func TestBootstrap_SecondRunIsRejected(t *testing.T) {
	svc := newService()

	stubPasswords(t, "pw", "pw", "pw", "pw")
	_, err := Bootstrap(context.Background(), svc, strings.NewReader("root@mdrrmo.ph\nRoot\n\n"), &bytes.Buffer{})
	require.NoError(t, err)

	_, err = Bootstrap(context.Background(), svc, strings.NewReader("other@mdrrmo.ph\nOther\n\n"), &bytes.Buffer{})
	assert.ErrorIs(t, err, common.ErrAlreadyBootstrapped)
}

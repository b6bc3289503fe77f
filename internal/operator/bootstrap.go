package operator

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mdrrmo4516/mobile2026/internal/server/services"
)

// Bootstrapper creates the first administrator.
type Bootstrapper interface {
	Bootstrap(ctx context.Context, in services.AccountInput) (*services.AuthResult, error)
}

var errPasswordMismatch = errors.New("passwords do not match")

// Bootstrap prompts for the first administrator's details on in/out and runs
// the bootstrap gate. The password is read without echo and asked twice.
func Bootstrap(ctx context.Context, b Bootstrapper, in io.Reader, out io.Writer) (*services.AuthResult, error) {
	reader := bufio.NewReader(in)

	email, err := GetSimpleText(reader, "Admin email", out)
	if err != nil {
		return nil, err
	}
	fullName, err := GetSimpleText(reader, "Full name", out)
	if err != nil {
		return nil, err
	}
	phone, err := GetSimpleText(reader, "Phone (optional)", out)
	if err != nil {
		return nil, err
	}

	password, err := GetPassword(out, "Password")
	if err != nil {
		return nil, err
	}
	confirm, err := GetPassword(out, "Repeat password")
	if err != nil {
		return nil, err
	}
	if password != confirm {
		return nil, errPasswordMismatch
	}

	input := services.AccountInput{Email: email, Password: password, FullName: fullName}
	if phone != "" {
		input.Phone = &phone
	}

	res, err := b.Bootstrap(ctx, input)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "Administrator %s created (id %s)\n", res.User.Email, res.User.ID)
	return res, nil
}

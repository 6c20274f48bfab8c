package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

type registerFlags struct {
	username  *string
	email     *string
	password  *string
	password2 *string
	firstName *string
	lastName  *string
}

func (a *App) handleRegister(ctx context.Context, args []string) error {
	cmd := a.newFlagSet("register")
	flags := registerFlags{
		username:  cmd.String("username", "", "Username"),
		email:     cmd.String("email", "", "Email address"),
		password:  cmd.String("password", "", "Password, at least 8 characters"),
		password2: cmd.String("password2", "", "Password confirmation (defaults to -password)"),
		firstName: cmd.String("first", "", "First name"),
		lastName:  cmd.String("last", "", "Last name"),
	}
	if err := parseFlags(cmd, args); err != nil {
		return err
	}

	confirm := *flags.password2
	if confirm == "" {
		confirm = *flags.password
	}

	user, err := a.auth.Register(ctx, &usecase.RegisterInput{
		Username:  strings.TrimSpace(*flags.username),
		Email:     strings.TrimSpace(*flags.email),
		Password:  *flags.password,
		Password2: confirm,
		FirstName: strings.TrimSpace(*flags.firstName),
		LastName:  strings.TrimSpace(*flags.lastName),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Account %s created. Sign in with: storefront login -username %s\n", user.Username, user.Username)

	return nil
}

func (a *App) handleLogin(ctx context.Context, args []string) error {
	cmd := a.newFlagSet("login")
	username := cmd.String("username", "", "Username")
	password := cmd.String("password", "", "Password (read from stdin when omitted)")
	if err := parseFlags(cmd, args); err != nil {
		return err
	}
	if strings.TrimSpace(*username) == "" {
		return errors.Wrap(ErrUsage, "login requires -username")
	}

	secret := *password
	if secret == "" {
		line, err := a.readLine()
		if err != nil {
			return err
		}
		secret = line
	}

	if err := a.auth.Login(ctx, strings.TrimSpace(*username), secret); err != nil {
		return err
	}

	user, _ := a.auth.User()
	fmt.Fprintf(a.out, "Signed in as %s\n", user.Username)
	a.printCartSummary(a.cart.State())

	return nil
}

func (a *App) handleLogout(ctx context.Context, args []string) error {
	cmd := a.newFlagSet("logout")
	if err := parseFlags(cmd, args); err != nil {
		return err
	}

	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out")

	return nil
}

func (a *App) handleWhoAmI(ctx context.Context, args []string) error {
	cmd := a.newFlagSet("whoami")
	if err := parseFlags(cmd, args); err != nil {
		return err
	}
	if !a.auth.IsAuthenticated() {
		fmt.Fprintln(a.out, "Not signed in")

		return nil
	}

	user, err := a.auth.LoadProfile(ctx)
	if err != nil {
		return err
	}

	role := "customer"
	if user.IsAdmin {
		role = "admin"
	}
	fmt.Fprintf(a.out, "%s (%s)\n", user.Username, role)
	if name := strings.TrimSpace(user.FirstName + " " + user.LastName); name != "" {
		fmt.Fprintf(a.out, "Name:  %s\n", name)
	}
	if user.Email != "" {
		fmt.Fprintf(a.out, "Email: %s\n", user.Email)
	}

	return nil
}

func (a *App) readLine() (string, error) {
	fmt.Fprint(a.errOut, "Password: ")
	scanner := bufio.NewScanner(a.in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", errors.Wrap(err, "read password")
		}

		return "", errors.Wrap(ErrUsage, "no password given")
	}

	return strings.TrimRight(scanner.Text(), "\r\n"), nil
}

package cmd

import (
	"context"
	"fmt"
)

// UsersCmd manages users
type UsersCmd struct {
	Add  UsersAddCmd  `cmd:"add" help:"Add a user"`
	List UsersListCmd `cmd:"list" help:"List users" default:"1"`
}

// UsersAddCmd adds a user
type UsersAddCmd struct {
	Admin    bool   `help:"Allow the user to merge and close pull requests"`
	Username string `arg:"" help:"Username"`
}

// Run executes the add command
func (u *UsersAddCmd) Run(cli *CLI) error {
	user, err := cli.Container.UserService.AddUser(context.Background(), u.Username, u.Admin)
	if err != nil {
		return fmt.Errorf("failed to add user: %w", err)
	}

	role := "user"
	if user.IsAdmin {
		role = "admin"
	}
	fmt.Printf("User '%s' added as %s\n", user.Username, role)
	return nil
}

// UsersListCmd lists users
type UsersListCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
}

// Run executes the list command
func (u *UsersListCmd) Run(cli *CLI) error {
	users, err := cli.Container.UserService.ListUsers(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	if done, err := printStructured(u.Format, users); done {
		return err
	}

	w := newTabWriter()
	fmt.Fprintln(w, "USERNAME\tADMIN\tCREATED")
	for _, user := range users {
		fmt.Fprintf(w, "%s\t%t\t%s\n", user.Username, user.IsAdmin, user.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

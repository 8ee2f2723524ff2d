package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Youngyoon-1/jwp-dashboard-jdbc/internal/transaction"
	"github.com/Youngyoon-1/jwp-dashboard-jdbc/internal/user"
)

// UserResponse is the printed form of a user. The password hash is never shown.
type UserResponse struct {
	ID      int64  `json:"id"`
	Account string `json:"account"`
	Email   string `json:"email"`
}

// HistoryResponse is the printed form of a history entry.
type HistoryResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Account   string    `json:"account"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`
}

func toUserResponse(u *user.User) UserResponse {
	return UserResponse{ID: u.ID, Account: u.Account, Email: u.Email}
}

// getConcurrency bounds parallel lookups in "user get".
const getConcurrency = 4

var getAccounts []string

func init() {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	addCmd := &cobra.Command{
		Use:   "add <account> <email> <password>",
		Short: "Create a user",
		Long:  "Creates a user. Pass - as the password to read it from stdin.",
		Args:  cobra.ExactArgs(3),
		RunE:  runUserAdd,
	}

	getCmd := &cobra.Command{
		Use:   "get [id]... [--account name]...",
		Short: "Show users by ID or account name",
		Long:  "Looks up each ID and each --account concurrently. Results are printed IDs first, in argument order.",
		RunE:  runUserGet,
	}
	getCmd.Flags().StringSliceVar(&getAccounts, "account", nil, "Account name to look up (repeatable)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE:  runUserList,
	}

	passwdCmd := &cobra.Command{
		Use:   "passwd <id> <new-password>",
		Short: "Change a user's password",
		Long:  "Changes a password and records who changed it. Pass - as the password to read it from stdin.",
		Args:  cobra.ExactArgs(2),
		RunE:  runUserPasswd,
	}
	passwdCmd.Flags().String("by", "", "Who is making the change (required)")
	_ = passwdCmd.MarkFlagRequired("by")

	historyCmd := &cobra.Command{
		Use:   "history <id>",
		Short: "Show a user's password change history",
		Long:  "Reads the user and its history in one read-only transaction. Unknown IDs are an error.",
		Args:  cobra.ExactArgs(1),
		RunE:  runUserHistory,
	}

	userCmd.AddCommand(addCmd, getCmd, listCmd, passwdCmd, historyCmd)
	rootCmd.AddCommand(userCmd)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid user id %q", s)
	}
	return id, nil
}

// readPassword returns arg, or the first line of r when arg is "-".
func readPassword(arg string, r io.Reader) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printUsers(w io.Writer, users []UserResponse) error {
	if jsonOutput {
		return printJSON(w, users)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tACCOUNT\tEMAIL")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", u.ID, u.Account, u.Email)
	}
	return tw.Flush()
}

func runUserAdd(cmd *cobra.Command, args []string) error {
	password, err := readPassword(args[2], cmd.InOrStdin())
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	u := &user.User{Account: args[0], Email: args[1], Password: password}
	if err := a.service.Insert(cmd.Context(), u); err != nil {
		return err
	}
	a.logger.Info("user created", "user_id", u.ID, "account", u.Account)
	return printUsers(cmd.OutOrStdout(), []UserResponse{toUserResponse(u)})
}

func runUserGet(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && len(getAccounts) == 0 {
		return fmt.Errorf("give at least one user id or --account")
	}
	ids := make([]int64, len(args))
	for i, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			return err
		}
		ids[i] = id
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	lookups := make([]func(context.Context) (*user.User, error), 0, len(ids)+len(getAccounts))
	for _, id := range ids {
		id := id
		lookups = append(lookups, func(ctx context.Context) (*user.User, error) {
			return a.service.FindByID(ctx, id)
		})
	}
	for _, account := range getAccounts {
		account := account
		lookups = append(lookups, func(ctx context.Context) (*user.User, error) {
			return a.users.FindByAccount(ctx, account)
		})
	}

	results := make([]UserResponse, len(lookups))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(getConcurrency)
	for i, lookup := range lookups {
		i, lookup := i, lookup
		g.Go(func() error {
			u, err := lookup(ctx)
			if err != nil {
				return err
			}
			results[i] = toUserResponse(u)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return printUsers(cmd.OutOrStdout(), results)
}

func runUserList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	users, err := a.users.List(cmd.Context())
	if err != nil {
		return err
	}
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return printUsers(cmd.OutOrStdout(), out)
}

func runUserPasswd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	password, err := readPassword(args[1], cmd.InOrStdin())
	if err != nil {
		return err
	}
	by, _ := cmd.Flags().GetString("by")

	a, err := openApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	if err := a.service.ChangePassword(cmd.Context(), id, password, by); err != nil {
		return err
	}
	a.logger.Info("password changed", "user_id", id, "modified_by", by)
	fmt.Fprintf(cmd.OutOrStdout(), "Password changed for user %d\n", id)
	return nil
}

func runUserHistory(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	entries, err := readHistory(cmd.Context(), a, id)
	if err != nil {
		return err
	}

	out := make([]HistoryResponse, 0, len(entries))
	for _, h := range entries {
		out = append(out, HistoryResponse{
			ID:        h.ID,
			UserID:    h.UserID,
			Account:   h.Account,
			Email:     h.Email,
			CreatedAt: h.CreatedAt,
			CreatedBy: h.CreatedBy,
		})
	}

	w := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(w, out)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCHANGED AT\tCHANGED BY")
	for _, h := range out {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", h.ID, h.CreatedAt.Format(time.RFC3339), h.CreatedBy)
	}
	return tw.Flush()
}

// readHistory checks that the user exists and lists its history from the
// same snapshot.
func readHistory(ctx context.Context, a *app, id int64) ([]*user.History, error) {
	status, err := a.tm.Begin(ctx, transaction.Definition{ReadOnly: true})
	if err != nil {
		return nil, err
	}
	defer func() { _ = a.tm.Rollback(status) }()

	if _, err := a.users.FindByID(status.Context(), id); err != nil {
		return nil, err
	}
	return a.history.ForUser(status.Context(), id)
}

// Package cli is the view layer of the catalog client: a command tree
// that reads session and cache state and routes every action through
// their operations.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"bookcatalog/internal/catalog"
	"bookcatalog/internal/config"
	"bookcatalog/internal/session"
	"bookcatalog/pkg/domain"
)

// App bundles the service objects the commands operate on. Everything is
// constructed once at startup and passed down explicitly.
type App struct {
	Config   config.FileConfig
	Sessions *session.Store
	Routes   *session.Routes
	Cache    *catalog.Cache
}

// NewRootCmd builds the command tree.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "catalog",
		Short: "Book inventory management client",
		Long: `catalog is the command-line client for the book inventory management
system. Sign in first; administrators manage the inventory, other users
browse it read-only.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newLoginCmd(app),
		newSignupCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newBooksCmd(app),
	)
	return root
}

// Execute runs the command tree and returns the process exit code. It is
// also the top-level boundary: an escaped panic is logged and rendered as
// a static fallback instead of a stack trace.
func Execute(app *App) (code int) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("unhandled error", "kind", domain.KindUnhandled, "panic", r)
			fmt.Fprintln(os.Stderr, "Something went wrong. Please try again.")
			code = 1
		}
	}()
	if err := NewRootCmd(app).Execute(); err != nil {
		printError(err)
		return 1
	}
	return 0
}

// printError renders a failure for the user; validation errors list each
// offending field.
func printError(err error) {
	var derr *domain.Error
	if errors.As(err, &derr) && derr.Kind == domain.KindValidation {
		fields := make([]string, 0, len(derr.Fields))
		for name := range derr.Fields {
			fields = append(fields, name)
		}
		sort.Strings(fields)
		for _, name := range fields {
			fmt.Fprintf(os.Stderr, "%s: %s\n", name, derr.Fields[name])
		}
		return
	}
	fmt.Fprintln(os.Stderr, err)
}

// navigate resolves path through the guard. A redirect decision aborts
// the command with the destination the user actually lands on.
func (a *App) navigate(path string) error {
	if dest := a.Routes.Resolve(path, a.Sessions.Current()); dest != path {
		return fmt.Errorf("redirected to %s: sign in with an account that can access %s", dest, path)
	}
	return nil
}

package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"bookcatalog/internal/catalog"
	"bookcatalog/internal/session"
	"bookcatalog/pkg/domain"
	"bookcatalog/pkg/validate"
)

func newBooksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Browse and manage the book inventory",
	}
	cmd.AddCommand(
		newBooksListCmd(app),
		newBooksAddCmd(app),
		newBooksUpdateCmd(app),
		newBooksRemoveCmd(app),
	)
	return cmd
}

func newBooksListCmd(app *App) *cobra.Command {
	var search string
	var page int
	var pageSize int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Any authenticated role lands on its own dashboard.
			if err := app.navigate(session.HomeFor(app.Sessions.Current().Role)); err != nil {
				return err
			}
			if err := app.Cache.Load(); err != nil {
				return err
			}
			if pageSize == 0 {
				pageSize = app.Config.PageSize
			}
			books := catalog.Paginate(catalog.Filter(app.Cache.Books(), search), page, pageSize)
			printBooks(books)
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "filter by title, author, or genre")
	cmd.Flags().IntVar(&page, "page", 0, "page index")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "entries per page (defaults to config)")
	return cmd
}

func newBooksAddCmd(app *App) *cobra.Command {
	var flags bookFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.navigate(session.AdminDashboardPath); err != nil {
				return err
			}
			draft, err := flags.book(0)
			if err != nil {
				return err
			}
			if err := validate.Draft(draft); err != nil {
				return err
			}
			if err := app.Cache.Add(draft); err != nil {
				return err
			}
			fmt.Println("Book added.")
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newBooksUpdateCmd(app *App) *cobra.Command {
	var id int64
	var flags bookFlags
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a book",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.navigate(session.AdminDashboardPath); err != nil {
				return err
			}
			book, err := flags.book(id)
			if err != nil {
				return err
			}
			if err := validate.Draft(book); err != nil {
				return err
			}
			if err := app.Cache.Update(book); err != nil {
				return err
			}
			fmt.Println("Book updated.")
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "book id")
	_ = cmd.MarkFlagRequired("id")
	flags.register(cmd)
	return cmd
}

func newBooksRemoveCmd(app *App) *cobra.Command {
	var id int64
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Delete a book",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.navigate(session.AdminDashboardPath); err != nil {
				return err
			}
			if err := app.Cache.Remove(id); err != nil {
				return err
			}
			fmt.Println("Book deleted.")
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "book id")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

// bookFlags holds the shared book form fields.
type bookFlags struct {
	title       string
	author      string
	genre       string
	description string
	price       string
	stock       int64
}

func (f *bookFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "book title")
	cmd.Flags().StringVar(&f.author, "author", "", "book author")
	cmd.Flags().StringVar(&f.genre, "genre", "", "book genre")
	cmd.Flags().StringVar(&f.description, "description", "", "book description")
	cmd.Flags().StringVar(&f.price, "price", "0", "price, e.g. 12.50")
	cmd.Flags().Int64Var(&f.stock, "stock", 0, "units in stock")
}

func (f *bookFlags) book(id int64) (domain.Book, error) {
	price, err := decimal.NewFromString(f.price)
	if err != nil {
		return domain.Book{}, domain.NewValidationError(map[string]string{
			"price": "Price must be a decimal number.",
		})
	}
	return domain.Book{
		ID:          id,
		Title:       f.title,
		Author:      f.author,
		Genre:       f.genre,
		Description: f.description,
		Price:       price,
		Stock:       f.stock,
	}, nil
}

func printBooks(books []domain.Book) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tGENRE\tPRICE\tSTOCK")
	for _, b := range books {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t$%s\t%d\n",
			b.ID, b.Title, b.Author, b.Genre, b.Price.StringFixed(2), b.Stock)
	}
	_ = w.Flush()
}

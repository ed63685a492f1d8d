package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"pet-adoption-portal/internal/domain/accounts"
	"pet-adoption-portal/internal/domain/adoption"
	"pet-adoption-portal/internal/domain/contact"
	"pet-adoption-portal/internal/pages"
	"pet-adoption-portal/internal/session"
)

func newRoutesCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the portal pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := rt.portal()
			if err != nil {
				return err
			}
			t := newTable("PATH")
			for _, p := range a.Router.Routes() {
				t.AddRow(p)
			}
			printTable(cmd.OutOrStdout(), t, "No routes")
			return nil
		},
	}
}

func newHomeCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show featured pets and products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := open[*pages.Landing](cmd, rt, "/")
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headerColor.Sprint("Featured pets"))
			printPets(out, p.FeaturedPets)
			fmt.Fprintln(out, headerColor.Sprint("Featured products"))
			printProducts(out, p.FeaturedProducts)
			return nil
		},
	}
}

func newAboutCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "About PetNest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := open[*pages.About](cmd, rt, "/about")
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, p.Mission)
			fmt.Fprintln(out)
			for _, v := range p.Values {
				fmt.Fprintln(out, "  • "+v)
			}
			fmt.Fprintln(out)
			t := newTable("", "")
			for _, s := range p.Stats {
				t.AddRow(s.Label, s.Value)
			}
			printTable(out, t, "")
			return nil
		},
	}
}

func newSignupCmd(rt *runtime) *cobra.Command {
	var f accounts.SignupForm
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a user account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := open[*pages.UserReg](cmd, rt, "/user-reg")
			if err != nil {
				return err
			}
			if err := p.Submit(cmd.Context(), f); err != nil {
				return err
			}
			return printGreeting(cmd, rt)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.Username, "username", "", "username (3-30 characters)")
	fl.StringVar(&f.Email, "email", "", "email address")
	fl.StringVar(&f.Password, "password", "", "password (6+ characters)")
	fl.StringVar(&f.ConfirmPassword, "confirm", "", "repeat the password")
	return cmd
}

func newLoginCmd(rt *runtime) *cobra.Command {
	var (
		f     accounts.LoginForm
		owner bool
	)
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as a user (or as a pet owner with --owner)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if owner {
				var p *pages.PetOwnerLogin
				if p, err = open[*pages.PetOwnerLogin](cmd, rt, "/pet-owner-login"); err == nil {
					err = p.Submit(cmd.Context(), f)
				}
			} else {
				var p *pages.UserLogin
				if p, err = open[*pages.UserLogin](cmd, rt, "/login"); err == nil {
					err = p.Submit(cmd.Context(), f)
				}
			}
			if err != nil {
				return err
			}
			return printGreeting(cmd, rt)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.Email, "email", "", "account email")
	fl.StringVar(&f.Password, "password", "", "account password")
	fl.BoolVar(&owner, "owner", false, "log in with a pet owner account")
	return cmd
}

func newLogoutCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := rt.portal()
			if err != nil {
				return err
			}
			if _, ok := a.Sessions.CurrentUser(); !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return nil
			}
			return a.Header.Logout(cmd.Context())
		},
	}
}

func newWhoamiCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session and the menu it unlocks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := rt.portal()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			s, ok := a.Sessions.CurrentUser()
			if !ok {
				fmt.Fprintln(out, "Not logged in")
			} else {
				fmt.Fprintf(out, "%s (%s, %s)\n", a.Header.Greeting(), s.Kind, s.Identity.Role)
			}
			t := newTable("MENU", "PATH")
			for _, l := range a.Header.Links() {
				t.AddRow(l.Label, l.Path)
			}
			printTable(out, t, "")
			return nil
		},
	}
}

func printGreeting(cmd *cobra.Command, rt *runtime) error {
	a, err := rt.portal()
	if err != nil {
		return err
	}
	if g := a.Header.Greeting(); g != "" {
		fmt.Fprintln(cmd.OutOrStdout(), g)
	}
	return nil
}

func newPetsCmd(rt *runtime) *cobra.Command {
	var typ, search string
	cmd := &cobra.Command{
		Use:   "pets",
		Short: "Browse pets available for adoption",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := open[*pages.Pets](cmd, rt, "/pets")
			if err != nil {
				return err
			}
			p.SetType(typ)
			p.SetSearch(search)
			printPets(cmd.OutOrStdout(), p.Visible())
			return nil
		},
	}
	cmd.Flags().StringVar(&typ, "type", "all", "dog, cat, bird, rabbit, other or all")
	cmd.Flags().StringVar(&search, "search", "", "match name, breed or location")

	cmd.AddCommand(newPetShowCmd(rt), newPetAdoptCmd(rt))
	return cmd
}

func newPetShowCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "show <pet-id>",
		Short: "Show a pet's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := open[*pages.Pets](cmd, rt, "/pets")
			if err != nil {
				return err
			}
			if err := p.ShowDetails(args[0]); err != nil {
				return err
			}
			printRegistration(cmd.OutOrStdout(), *p.Selected)
			return nil
		},
	}
}

func newPetAdoptCmd(rt *runtime) *cobra.Command {
	var f adoption.Form
	cmd := &cobra.Command{
		Use:   "adopt <pet-id>",
		Short: "Send an adoption request to the pet's owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := open[*pages.Pets](cmd, rt, "/pets")
			if err != nil {
				return err
			}
			if err := p.Adopt(args[0]); err != nil {
				if errors.Is(err, session.ErrLoginRequired) {
					return fmt.Errorf("%w: run `portal login` first", err)
				}
				return err
			}
			// lo que no se pasa por flag sale del formulario precargado
			if f.AdopterName == "" {
				f.AdopterName = p.Form.AdopterName
			}
			if f.AdopterEmail == "" {
				f.AdopterEmail = p.Form.AdopterEmail
			}
			return p.SubmitAdoption(cmd.Context(), f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.AdopterName, "name", "", "your name (defaults to your username)")
	fl.StringVar(&f.AdopterEmail, "email", "", "contact email (defaults to your account email)")
	fl.StringVar(&f.AdopterPhone, "phone", "", "contact phone")
	fl.StringVar(&f.Message, "message", "", "a note for the owner")
	return cmd
}

func newProductsCmd(rt *runtime) *cobra.Command {
	var category, search string
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the pet supplies store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := open[*pages.Products](cmd, rt, "/products")
			if err != nil {
				return err
			}
			p.SetCategory(category)
			p.SetSearch(search)
			printProducts(cmd.OutOrStdout(), p.Visible())
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "all", "product category or all")
	cmd.Flags().StringVar(&search, "search", "", "match name, brand or description")
	return cmd
}

// newShopCmd arma un carrito en una sola invocación: el carrito vive lo que vive la página.
func newShopCmd(rt *runtime) *cobra.Command {
	var (
		adds     []string
		checkout bool
	)
	cmd := &cobra.Command{
		Use:     "shop",
		Short:   "Add products to a cart and optionally check out",
		Example: "  portal shop --add <product-id>=2 --add <product-id>=1 --checkout",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := open[*pages.Products](cmd, rt, "/products")
			if err != nil {
				return err
			}
			for _, a := range adds {
				id, qty, err := parseAdd(a)
				if err != nil {
					return err
				}
				for range qty {
					if _, err := p.Increment(id); err != nil {
						return err
					}
				}
				if err := p.AddToCart(id); err != nil {
					if errors.Is(err, session.ErrLoginRequired) {
						return fmt.Errorf("%w: run `portal login` first", err)
					}
					return err
				}
			}

			out := cmd.OutOrStdout()
			printLines(out, p.Cart.Lines())
			if !checkout {
				return nil
			}

			if err := p.Checkout(cmd.Context()); err != nil {
				return err
			}
			summary, err := current[*pages.OrderSummary](rt)
			if err != nil {
				return err
			}
			printSummary(out, summary.Summary)
			if err := summary.PlaceOrder(cmd.Context()); err != nil {
				return err
			}
			done, err := current[*pages.OrderSuccess](rt)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Order %s placed on %s\n", done.Confirmation.OrderNumber, done.Confirmation.PlacedAt.Format("2006-01-02 15:04"))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&adds, "add", nil, "product-id=quantity (repeatable)")
	cmd.Flags().BoolVar(&checkout, "checkout", false, "place the order after filling the cart")
	return cmd
}

func parseAdd(s string) (string, int, error) {
	id, qtyStr, found := strings.Cut(s, "=")
	id = strings.TrimSpace(id)
	if id == "" {
		return "", 0, fmt.Errorf("invalid --add %q: want product-id=quantity", s)
	}
	if !found {
		return id, 1, nil
	}
	qty, err := strconv.Atoi(strings.TrimSpace(qtyStr))
	if err != nil || qty < 1 {
		return "", 0, fmt.Errorf("invalid --add %q: quantity must be a positive integer", s)
	}
	return id, qty, nil
}

func newContactCmd(rt *runtime) *cobra.Command {
	var f contact.Form
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a message to the PetNest team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := open[*pages.Contact](cmd, rt, "/contact")
			if err != nil {
				return err
			}
			return p.Submit(cmd.Context(), f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.Name, "name", "", "your name")
	fl.StringVar(&f.Email, "email", "", "your email")
	fl.StringVar(&f.Subject, "subject", "", "subject")
	fl.StringVar(&f.Message, "message", "", "message (10+ characters)")
	return cmd
}

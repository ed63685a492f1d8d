package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pet-adoption-portal/internal/domain/pets"
	"pet-adoption-portal/internal/domain/products"
	"pet-adoption-portal/internal/pages"
)

func newAdminCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Moderate pet registrations and manage the store (admin accounts only)",
	}
	cmd.AddCommand(
		newAdminRegistrationsCmd(rt),
		newAdminDecisionCmd(rt, "approve", "Approve a registration so it is listed for adoption", (*pages.AdminDashboard).Approve),
		newAdminDecisionCmd(rt, "reject", "Reject a registration", (*pages.AdminDashboard).Reject),
		newAdminDecisionCmd(rt, "delete", "Delete a registration and its owner account", (*pages.AdminDashboard).Delete),
		newAdminProductsCmd(rt),
		newAdminAddProductCmd(rt),
		newAdminRestockCmd(rt),
		newAdminRepriceCmd(rt),
	)
	return cmd
}

func newAdminRegistrationsCmd(rt *runtime) *cobra.Command {
	var status, search string
	cmd := &cobra.Command{
		Use:   "registrations",
		Short: "List pet registrations with their moderation status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := open[*pages.AdminDashboard](cmd, rt, "/admin")
			if err != nil {
				return err
			}
			p.SetStatus(status)
			p.SetSearch(search)

			out := cmd.OutOrStdout()
			counts := p.Counts()
			fmt.Fprintf(out, "%d pending · %d approved · %d rejected\n",
				counts[pets.StatusPending], counts[pets.StatusApproved], counts[pets.StatusRejected])
			printRegistrations(out, p.Visible())
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "all", "pending, approved, rejected or all")
	cmd.Flags().StringVar(&search, "search", "", "match pet name, breed or owner")
	return cmd
}

func newAdminDecisionCmd(rt *runtime, use, short string, action func(*pages.AdminDashboard, context.Context, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <registration-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := open[*pages.AdminDashboard](cmd, rt, "/admin")
			if err != nil {
				return err
			}
			return action(p, cmd.Context(), args[0])
		},
	}
}

func newAdminProductsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "Show the store inventory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := open[*pages.ProductReg](cmd, rt, "/product-reg")
			if err != nil {
				return err
			}
			printProducts(cmd.OutOrStdout(), p.Inventory)
			return nil
		},
	}
}

func newAdminAddProductCmd(rt *runtime) *cobra.Command {
	var f products.Form
	cmd := &cobra.Command{
		Use:   "add-product",
		Short: "Add a product to the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := open[*pages.ProductReg](cmd, rt, "/product-reg")
			if err != nil {
				return err
			}
			return p.Submit(cmd.Context(), f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.ProductName, "name", "", "product name")
	fl.StringVar(&f.Category, "category", "", "category, e.g. food or toys")
	fl.StringVar(&f.Brand, "brand", "", "brand")
	fl.StringVar(&f.Description, "description", "", "description")
	fl.StringVar(&f.Price, "price", "", "unit price, e.g. 12.50")
	fl.IntVar(&f.Stock, "stock", 0, "units in stock")
	fl.StringVar(&f.Image, "image", "", "image URL")
	fl.Float64Var(&f.Rating, "rating", 0, "rating from 0 to 5")
	return cmd
}

func newAdminRestockCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "restock <product-id> <stock>",
		Short: "Set the units in stock of a product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stock, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid stock %q: %w", args[1], err)
			}
			p, err := open[*pages.ProductReg](cmd, rt, "/product-reg")
			if err != nil {
				return err
			}
			return p.Restock(cmd.Context(), args[0], stock)
		},
	}
}

func newAdminRepriceCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "reprice <product-id> <price>",
		Short: "Change the price of a product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := open[*pages.ProductReg](cmd, rt, "/product-reg")
			if err != nil {
				return err
			}
			return p.Reprice(cmd.Context(), args[0], args[1])
		},
	}
}

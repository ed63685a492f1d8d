package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pet-adoption-portal/internal/domain/pets"
	"pet-adoption-portal/internal/pages"
)

func newOwnerCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owner",
		Short: "Register your pet and manage its listing (pet owner accounts)",
	}
	cmd.AddCommand(
		newOwnerRegisterCmd(rt),
		newOwnerProfileCmd(rt),
		newOwnerUpdatePetCmd(rt),
		newOwnerUpdateOwnerCmd(rt),
		newOwnerPasswordCmd(rt),
		newOwnerRequestsCmd(rt),
		newOwnerDecisionCmd(rt, "approve", "Approve an adoption request for your pet", (*pages.AdoptionRequests).Approve),
		newOwnerDecisionCmd(rt, "reject", "Reject an adoption request", (*pages.AdoptionRequests).Reject),
	)
	return cmd
}

func bindPetFlags(fl *pflag.FlagSet, f *pets.PetForm, prefix string) {
	fl.StringVar(&f.Name, prefix+"name", "", "pet name")
	fl.Var(&namedString[pets.Type]{dst: &f.Type}, prefix+"type", "dog, cat, bird, rabbit or other")
	fl.StringVar(&f.Breed, prefix+"breed", "", "breed")
	fl.Float64Var(&f.Age, prefix+"age", 0, "age in years (0.5 = six months)")
	fl.Var(&namedString[pets.Gender]{dst: &f.Gender}, prefix+"gender", "male or female")
	fl.StringVar(&f.Location, prefix+"location", "", "city or area")
	fl.StringVar(&f.Description, prefix+"description", "", "a few words about the pet")
	fl.BoolVar(&f.Vaccinated, prefix+"vaccinated", false, "vaccinations are up to date")
	fl.BoolVar(&f.Trained, prefix+"trained", false, "house trained")
	fl.StringSliceVar(&f.Photos, prefix+"photo", nil, "photo URL (repeatable, up to 5)")
	fl.StringVar(&f.License, prefix+"license", "", "license or microchip number")
}

// namedString adapta un flag string a un tipo string con nombre.
type namedString[T ~string] struct {
	dst *T
}

func (n *namedString[T]) String() string {
	if n.dst == nil {
		return ""
	}
	return string(*n.dst)
}

func (n *namedString[T]) Set(v string) error {
	*n.dst = T(v)
	return nil
}

func (n *namedString[T]) Type() string { return "string" }

func newOwnerRegisterCmd(rt *runtime) *cobra.Command {
	var f pets.RegistrationForm
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register an owner account and list a pet (pending admin approval)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := open[*pages.PetReg](cmd, rt, "/pet-reg")
			if err != nil {
				return err
			}
			return p.Submit(cmd.Context(), f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.Owner.Name, "owner-name", "", "your full name")
	fl.StringVar(&f.Owner.Email, "owner-email", "", "your email (used to log in)")
	fl.StringVar(&f.Owner.Phone, "owner-phone", "", "your phone number")
	fl.StringVar(&f.Owner.Password, "owner-password", "", "password for the owner account")
	bindPetFlags(fl, &f.Pet, "pet-")
	return cmd
}

func newOwnerProfileCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show your pet's listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := open[*pages.PetOwnerProfile](cmd, rt, "/pet-owner-profile")
			if err != nil {
				return err
			}
			printRegistration(cmd.OutOrStdout(), p.Registration)
			return nil
		},
	}
}

// newOwnerUpdatePetCmd sólo pisa los campos cuyos flags se pasaron.
func newOwnerUpdatePetCmd(rt *runtime) *cobra.Command {
	var in pets.PetForm
	cmd := &cobra.Command{
		Use:   "update-pet",
		Short: "Edit your pet's details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := open[*pages.PetOwnerProfile](cmd, rt, "/pet-owner-profile")
			if err != nil {
				return err
			}
			p.EditPet()
			f := p.PetForm
			fl := cmd.Flags()
			set := func(name string, apply func()) {
				if fl.Changed(name) {
					apply()
				}
			}
			set("name", func() { f.Name = in.Name })
			set("type", func() { f.Type = in.Type })
			set("breed", func() { f.Breed = in.Breed })
			set("age", func() { f.Age = in.Age })
			set("gender", func() { f.Gender = in.Gender })
			set("location", func() { f.Location = in.Location })
			set("description", func() { f.Description = in.Description })
			set("vaccinated", func() { f.Vaccinated = in.Vaccinated })
			set("trained", func() { f.Trained = in.Trained })
			set("photo", func() { f.Photos = in.Photos })
			set("license", func() { f.License = in.License })
			return p.SavePet(cmd.Context(), f)
		},
	}
	bindPetFlags(cmd.Flags(), &in, "")
	return cmd
}

func newOwnerUpdateOwnerCmd(rt *runtime) *cobra.Command {
	var in pets.OwnerUpdateForm
	cmd := &cobra.Command{
		Use:   "update-owner",
		Short: "Edit your contact details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := open[*pages.PetOwnerProfile](cmd, rt, "/pet-owner-profile")
			if err != nil {
				return err
			}
			p.EditOwner()
			f := p.OwnerForm
			fl := cmd.Flags()
			if fl.Changed("name") {
				f.Name = in.Name
			}
			if fl.Changed("email") {
				f.Email = in.Email
			}
			if fl.Changed("phone") {
				f.Phone = in.Phone
			}
			return p.SaveOwner(cmd.Context(), f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&in.Name, "name", "", "full name")
	fl.StringVar(&in.Email, "email", "", "email")
	fl.StringVar(&in.Phone, "phone", "", "phone number")
	return cmd
}

func newOwnerPasswordCmd(rt *runtime) *cobra.Command {
	var f pets.PasswordForm
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Change the owner account password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := open[*pages.PetOwnerProfile](cmd, rt, "/pet-owner-profile")
			if err != nil {
				return err
			}
			p.ChangePassword()
			return p.SavePassword(cmd.Context(), f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.CurrentPassword, "current", "", "current password")
	fl.StringVar(&f.NewPassword, "new", "", "new password (6+ characters)")
	fl.StringVar(&f.ConfirmPassword, "confirm", "", "repeat the new password")
	return cmd
}

func newOwnerRequestsCmd(rt *runtime) *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "requests",
		Short: "List adoption requests for your pet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := open[*pages.AdoptionRequests](cmd, rt, "/adoption-requests")
			if err != nil {
				return err
			}
			p.SetStatus(status)
			printRequests(cmd.OutOrStdout(), p.Visible())
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "all", "pending, approved, rejected or all")
	return cmd
}

func newOwnerDecisionCmd(rt *runtime, use, short string, action func(*pages.AdoptionRequests, context.Context, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <request-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := open[*pages.AdoptionRequests](cmd, rt, "/adoption-requests")
			if err != nil {
				return err
			}
			return action(p, cmd.Context(), args[0])
		},
	}
}

package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kinecta/kinecta/pkg/profile"
)

func newProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the descendant profile used to personalize conversations",
	}

	cmd.AddCommand(newProfileShowCommand())
	cmd.AddCommand(newProfileSetCommand())

	return cmd
}

func newProfileShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			p, ok := app.profiles.Load()
			if !ok {
				fmt.Println("No profile stored. Use `kinecta profile set` to create one.")
				return nil
			}

			fmt.Printf("Name: %s\n", p.Name)
			if p.Email != "" {
				fmt.Printf("Email: %s\n", p.Email)
			}
			if p.Age > 0 {
				fmt.Printf("Age: %d\n", p.Age)
			}
			if p.Location != "" {
				fmt.Printf("Location: %s\n", p.Location)
			}
			if p.Occupation != "" {
				fmt.Printf("Occupation: %s\n", p.Occupation)
			}
			if p.PersonalBackground != "" {
				fmt.Printf("Personal background: %s\n", p.PersonalBackground)
			}
			if p.FamilyBackground != "" {
				fmt.Printf("Family background: %s\n", p.FamilyBackground)
			}
			if p.CulturalBackground != "" {
				fmt.Printf("Cultural background: %s\n", p.CulturalBackground)
			}
			if len(p.Languages) > 0 {
				fmt.Printf("Languages: %s\n", strings.Join(p.Languages, ", "))
			}
			return nil
		},
	}
}

func newProfileSetCommand() *cobra.Command {
	var (
		name               string
		email              string
		age                int
		location           string
		occupation         string
		personalBackground string
		familyBackground   string
		culturalBackground string
		languages          []string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update the stored profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			p, ok := app.profiles.Load()
			if !ok {
				p = profile.NewProfile(uuid.NewString(), name, email)
			}

			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("email") {
				p.Email = email
			}
			if cmd.Flags().Changed("age") {
				p.Age = age
			}
			if cmd.Flags().Changed("location") {
				p.Location = location
			}
			if cmd.Flags().Changed("occupation") {
				p.Occupation = occupation
			}
			if cmd.Flags().Changed("personal-background") {
				p.PersonalBackground = personalBackground
			}
			if cmd.Flags().Changed("family-background") {
				p.FamilyBackground = familyBackground
			}
			if cmd.Flags().Changed("cultural-background") {
				p.CulturalBackground = culturalBackground
			}
			if cmd.Flags().Changed("languages") {
				p.Languages = languages
			}

			if err := app.profiles.Save(p); err != nil {
				return err
			}
			fmt.Println("Profile saved.")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "your name")
	cmd.Flags().StringVar(&email, "email", "", "your email")
	cmd.Flags().IntVar(&age, "age", 0, "your age")
	cmd.Flags().StringVar(&location, "location", "", "where you live")
	cmd.Flags().StringVar(&occupation, "occupation", "", "what you do")
	cmd.Flags().StringVar(&personalBackground, "personal-background", "", "a few sentences about you")
	cmd.Flags().StringVar(&familyBackground, "family-background", "", "your family background")
	cmd.Flags().StringVar(&culturalBackground, "cultural-background", "", "your cultural background")
	cmd.Flags().StringSliceVar(&languages, "languages", nil, "languages you speak")

	return cmd
}

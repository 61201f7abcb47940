package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/blacktop/uploadpost"
)

func newScheduleCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage scheduled posts",
	}

	var date, timezone string
	edit := &cobra.Command{
		Use:   "edit JOB_ID",
		Short: "Move a scheduled post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" && timezone == "" {
				return errors.New("provide --date, --timezone or both")
			}
			return a.call(cmd, func(ctx context.Context, c *uploadpost.Client) (uploadpost.Response, error) {
				return c.EditScheduled(ctx, args[0], date, timezone)
			})
		},
	}
	edit.Flags().StringVar(&date, "date", "", "New ISO-8601 publish time")
	edit.Flags().StringVar(&timezone, "timezone", "", "New IANA timezone")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List scheduled posts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.call(cmd, func(ctx context.Context, c *uploadpost.Client) (uploadpost.Response, error) {
					return c.ListScheduled(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "cancel JOB_ID",
			Short: "Cancel a scheduled post",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.call(cmd, func(ctx context.Context, c *uploadpost.Client) (uploadpost.Response, error) {
					return c.CancelScheduled(ctx, args[0])
				})
			},
		},
		edit,
	)
	return cmd
}

func newUsersCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage profiles",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List profiles",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.call(cmd, func(ctx context.Context, c *uploadpost.Client) (uploadpost.Response, error) {
					return c.ListUsers(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "create USERNAME",
			Short: "Create a profile",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.call(cmd, func(ctx context.Context, c *uploadpost.Client) (uploadpost.Response, error) {
					return c.CreateUser(ctx, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "delete USERNAME",
			Short: "Delete a profile",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.call(cmd, func(ctx context.Context, c *uploadpost.Client) (uploadpost.Response, error) {
					return c.DeleteUser(ctx, args[0])
				})
			},
		},
	)
	return cmd
}

func newJWTCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generate and check account-linking tokens",
	}

	var (
		req          uploadpost.JWTRequest
		platforms    []string
		showCalendar bool
		readonly     bool
	)
	generate := &cobra.Command{
		Use:   "generate USERNAME",
		Short: "Create a hosted account-linking URL for a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := uploadpost.ParsePlatforms(platforms)
			if err != nil {
				return err
			}
			req.Username = args[0]
			req.Platforms = parsed
			if cmd.Flags().Changed("show-calendar") {
				req.ShowCalendar = uploadpost.Bool(showCalendar)
			}
			if cmd.Flags().Changed("readonly-calendar") {
				req.ReadonlyCalendar = uploadpost.Bool(readonly)
			}
			return a.call(cmd, func(ctx context.Context, c *uploadpost.Client) (uploadpost.Response, error) {
				return c.GenerateJWT(ctx, &req)
			})
		},
	}
	flags := generate.Flags()
	flags.StringVar(&req.RedirectURL, "redirect-url", "", "Where to send the user after linking")
	flags.StringVar(&req.LogoImage, "logo", "", "Logo image URL for the linking page")
	flags.StringVar(&req.RedirectButtonText, "button-text", "", "Text of the redirect button")
	flags.StringSliceVarP(&platforms, "platform", "p", nil, "Platforms offered on the linking page")
	flags.BoolVar(&showCalendar, "show-calendar", false, "Show the content calendar")
	flags.BoolVar(&readonly, "readonly-calendar", false, "Show the calendar without editing or linking")
	flags.StringVar(&req.ConnectTitle, "connect-title", "", "Heading of the linking page")
	flags.StringVar(&req.ConnectDescription, "connect-description", "", "Description on the linking page")

	cmd.AddCommand(
		generate,
		&cobra.Command{
			Use:   "validate TOKEN",
			Short: "Ask the API whether a token is valid",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.call(cmd, func(ctx context.Context, c *uploadpost.Client) (uploadpost.Response, error) {
					return c.ValidateJWT(ctx, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "inspect TOKEN",
			Short: "Decode a token locally without verifying it",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				info, err := uploadpost.InspectJWT(args[0])
				if err != nil {
					return err
				}
				out := map[string]any{"claims": info.Claims}
				if !info.IssuedAt.IsZero() {
					out["issued_at"] = info.IssuedAt.Format(time.RFC3339)
				}
				if !info.ExpiresAt.IsZero() {
					out["expires_at"] = info.ExpiresAt.Format(time.RFC3339)
					out["expired"] = info.Expired(time.Now())
				}
				return printJSON(cmd.OutOrStdout(), out)
			},
		},
	)
	return cmd
}

func newPagesCommand(a *app) *cobra.Command {
	var profile string
	cmd := &cobra.Command{
		Use:   "pages",
		Short: "List connected Facebook pages, LinkedIn pages or Pinterest boards",
	}
	cmd.PersistentFlags().StringVar(&profile, "profile", "", "Limit to one profile")

	lister := func(name string, fn func(*uploadpost.Client, context.Context, string) (uploadpost.Response, error)) *cobra.Command {
		return &cobra.Command{
			Use:   name,
			Short: fmt.Sprintf("List connected %s targets", name),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.call(cmd, func(ctx context.Context, c *uploadpost.Client) (uploadpost.Response, error) {
					return fn(c, ctx, profile)
				})
			},
		}
	}

	cmd.AddCommand(
		lister("facebook", (*uploadpost.Client).FacebookPages),
		lister("linkedin", (*uploadpost.Client).LinkedInPages),
		lister("pinterest", (*uploadpost.Client).PinterestBoards),
	)
	return cmd
}

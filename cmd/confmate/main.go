package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"confmate/internal/bootstrap"
	eventdto "confmate/internal/modules/event/dto"
	"confmate/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "confmate",
		Short:         "Conference companion for your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "confmate.yaml", "config file path")

	root.AddCommand(newTUICmd(&configPath))
	root.AddCommand(newRefreshCmd(&configPath))
	root.AddCommand(newAgendaCmd(&configPath))
	root.AddCommand(newBookmarkCmd(&configPath))
	root.AddCommand(newSponsorsCmd(&configPath))
	root.AddCommand(newFeedbackCmd(&configPath))
	root.AddCommand(newDeviceCmd(&configPath))
	return root
}

func loadApp(ctx context.Context, configPath string) (*bootstrap.App, config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, config.Config{}, err
	}
	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		return nil, config.Config{}, err
	}
	return app, cfg, nil
}

func newTUICmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the confmate terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cfg, err := loadApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer app.Close()
			return bootstrap.RunTUI(cfg.Event.Name, app)
		},
	}
}

func newRefreshCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Fetch the latest schedule from the conference API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			out, err := app.EventCLI.Refresh(cmd.Context())
			if err != nil {
				return err
			}
			if out.Superseded {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "refresh superseded by a newer one")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "fetched %d sessions, %d speakers\n", out.Sessions, out.Speakers)
			return nil
		},
	}
}

func newAgendaCmd(configPath *string) *cobra.Command {
	var rooms, times []string
	var mine bool

	agenda := &cobra.Command{
		Use:   "agenda",
		Short: "Show the time-sectioned session list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			if _, err := app.EventCLI.Refresh(ctx); err != nil {
				return err
			}
			if mine {
				if err := app.EventCLI.SetOption(ctx, "My Timeline", true); err != nil {
					return err
				}
			}
			for _, room := range rooms {
				if err := app.EventCLI.SetSubOption(ctx, "Rooms", room, true); err != nil {
					return err
				}
			}
			for _, label := range times {
				if err := app.EventCLI.SetSubOption(ctx, "Times", label, true); err != nil {
					return err
				}
			}

			out, err := app.EventCLI.Agenda(ctx)
			if err != nil {
				return err
			}
			if len(out.Sections) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions match")
				return nil
			}
			for _, section := range out.Sections {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), section.Title)
				for _, session := range section.Sessions {
					printSession(cmd, session)
				}
			}
			return nil
		},
	}
	agenda.Flags().StringSliceVar(&rooms, "room", nil, "only these rooms")
	agenda.Flags().StringSliceVar(&times, "time", nil, "only these start times, e.g. '9:00 AM'")
	agenda.Flags().BoolVar(&mine, "mine", false, "only bookmarked sessions")
	return agenda
}

func newBookmarkCmd(configPath *string) *cobra.Command {
	bookmark := &cobra.Command{Use: "bookmark", Short: "Manage bookmarked sessions"}

	toggleCmd := &cobra.Command{
		Use:   "toggle <session-id>",
		Short: "Bookmark a session, or remove an existing bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _, err := loadApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			if _, err := app.EventCLI.Refresh(ctx); err != nil {
				return err
			}
			out, err := app.EventCLI.Toggle(ctx, args[0])
			if err != nil {
				return err
			}
			if out.Bookmarked {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "bookmarked %s\n", out.SessionID)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed bookmark %s\n", out.SessionID)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List bookmarked sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			if _, err := app.EventCLI.Refresh(ctx); err != nil {
				return err
			}
			sessions, err := app.EventCLI.Bookmarked(ctx)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no bookmarks")
				return nil
			}
			for _, session := range sessions {
				printSession(cmd, session)
			}
			return nil
		},
	}

	bookmark.AddCommand(toggleCmd, listCmd)
	return bookmark
}

func newSponsorsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "sponsors",
		Short: "List event sponsors and their sponsored sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			if _, err := app.EventCLI.Refresh(ctx); err != nil {
				return err
			}
			groups, err := app.EventCLI.Sponsors(ctx)
			if err != nil {
				return err
			}
			for _, group := range groups {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), group.Level)
				for _, sponsor := range group.Sponsors {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", sponsor.URL)
					for _, session := range sponsor.Sessions {
						_, _ = fmt.Fprintf(cmd.OutOrStdout(), "    %s  %s (%s)\n", session.Start, session.Title, session.Room)
					}
				}
			}
			return nil
		},
	}
}

func newFeedbackCmd(configPath *string) *cobra.Command {
	var sessionID, comment string
	var rating int

	feedback := &cobra.Command{
		Use:   "feedback",
		Short: "Submit feedback for a session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.FeedbackCLI.Submit(cmd.Context(), sessionID, rating, comment); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "feedback sent for %s\n", sessionID)
			return nil
		},
	}
	feedback.Flags().StringVar(&sessionID, "session", "", "session id")
	feedback.Flags().IntVar(&rating, "rating", 0, "rating 1..5")
	feedback.Flags().StringVar(&comment, "comment", "", "optional comment")
	_ = feedback.MarkFlagRequired("session")
	_ = feedback.MarkFlagRequired("rating")
	return feedback
}

func newDeviceCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "device",
		Short: "Print this device's anonymous identifier",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			deviceID, err := app.IdentityCLI.DeviceID(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), deviceID)
			return nil
		},
	}
}

func printSession(cmd *cobra.Command, session eventdto.SessionOutput) {
	mark := " "
	if session.Bookmarked {
		mark = "*"
	}
	names := make([]string, 0, len(session.Speakers))
	for _, speaker := range session.Speakers {
		names = append(names, speaker.FullName)
	}
	line := fmt.Sprintf("%s %s  %s–%s  %s  [%s]", mark, session.ID, session.Starts, session.Ends, session.Title, session.Room)
	if len(names) > 0 {
		line += "  " + strings.Join(names, ", ")
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
}

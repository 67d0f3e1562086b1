package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	bagabo "github.com/bagabo/client-go"
	"github.com/bagabo/client-go/internal/output"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrator commands",
}

var adminStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the dashboard counters",
	RunE:  runAdminStats,
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminStatsCmd)
}

func runAdminStats(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	ctx := cmd.Context()

	session, err := openSession(ctx, printer)
	if err != nil {
		return err
	}
	if err := guardRoute(session, printer, bagabo.Route{Path: "/admin", AdminOnly: true}); err != nil {
		return err
	}

	client, err := newAPIClient(session)
	if err != nil {
		return err
	}

	stats, err := client.Dashboard(ctx)
	if err != nil {
		return err
	}

	printer.Header("Dashboard")
	table := output.NewTable([]string{"USERS", "BOOKINGS", "HOTELS", "ROOMS"})
	table.AddRow([]string{
		strconv.FormatInt(stats.TotalUsers, 10),
		strconv.FormatInt(stats.TotalBookings, 10),
		strconv.FormatInt(stats.TotalHotels, 10),
		strconv.FormatInt(stats.TotalRooms, 10),
	})
	table.Render()
	return nil
}

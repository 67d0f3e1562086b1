package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	bagabo "github.com/bagabo/client-go"
	"github.com/bagabo/client-go/api"
	"github.com/bagabo/client-go/internal/output"
)

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "Create and manage bookings",
	Long: `Create and manage your bookings. Listing every booking in the
system is admin-only.

Examples:
  bagabo bookings create --room 7 --check-in 2026-09-01 --check-out 2026-09-04
  bagabo bookings list
  bagabo bookings all
  bagabo bookings bill 12
  bagabo bookings cancel 12`,
}

var bookingsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Book a room",
	RunE:  runBookingsCreate,
}

var bookingsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List your bookings",
	RunE:    runBookingsList,
}

var bookingsAllCmd = &cobra.Command{
	Use:   "all",
	Short: "List every booking in the system (admin)",
	RunE:  runBookingsAll,
}

var bookingsBillCmd = &cobra.Command{
	Use:   "bill <booking-id>",
	Short: "Show the bill for a booking",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookingsBill,
}

var bookingsCancelCmd = &cobra.Command{
	Use:   "cancel <booking-id>",
	Short: "Cancel a booking",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookingsCancel,
}

func init() {
	rootCmd.AddCommand(bookingsCmd)
	bookingsCmd.AddCommand(bookingsCreateCmd, bookingsListCmd, bookingsAllCmd, bookingsBillCmd, bookingsCancelCmd)

	bookingsCreateCmd.Flags().Int64("room", 0, "room id")
	bookingsCreateCmd.Flags().String("check-in", "", "check-in date (YYYY-MM-DD)")
	bookingsCreateCmd.Flags().String("check-out", "", "check-out date (YYYY-MM-DD)")
	bookingsCreateCmd.Flags().Int("guests", 1, "number of guests")
	_ = bookingsCreateCmd.MarkFlagRequired("room")
	_ = bookingsCreateCmd.MarkFlagRequired("check-in")
	_ = bookingsCreateCmd.MarkFlagRequired("check-out")
}

func runBookingsCreate(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	ctx := cmd.Context()

	session, err := openSession(ctx, printer)
	if err != nil {
		return err
	}
	if err := guardRoute(session, printer, bagabo.Route{Path: "/bookings/new"}); err != nil {
		return err
	}

	client, err := newAPIClient(session)
	if err != nil {
		return err
	}

	roomID, _ := cmd.Flags().GetInt64("room")
	checkIn, _ := cmd.Flags().GetString("check-in")
	checkOut, _ := cmd.Flags().GetString("check-out")
	guests, _ := cmd.Flags().GetInt("guests")

	input := api.BookingInput{
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   guests,
	}

	booking, err := client.CreateBooking(ctx, input)
	if err != nil {
		return err
	}

	nights, nightsErr := input.Nights()
	if nightsErr == nil {
		printer.Success("booking %d confirmed: %d night(s) from %s", booking.ID, nights, checkIn)
	} else {
		printer.Success("booking %d confirmed", booking.ID)
	}
	return nil
}

func runBookingsList(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	ctx := cmd.Context()

	session, err := openSession(ctx, printer)
	if err != nil {
		return err
	}
	if err := guardRoute(session, printer, bagabo.Route{Path: "/bookings"}); err != nil {
		return err
	}

	client, err := newAPIClient(session)
	if err != nil {
		return err
	}

	bookings, err := client.MyBookings(ctx)
	if err != nil {
		return err
	}

	renderBookings(printer, "Your Bookings", bookings)
	return nil
}

func runBookingsAll(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	ctx := cmd.Context()

	session, err := openSession(ctx, printer)
	if err != nil {
		return err
	}
	if err := guardRoute(session, printer, bagabo.Route{Path: "/admin/bookings", AdminOnly: true}); err != nil {
		return err
	}

	client, err := newAPIClient(session)
	if err != nil {
		return err
	}

	bookings, err := client.AllBookings(ctx)
	if err != nil {
		return err
	}

	renderBookings(printer, "All Bookings", bookings)
	return nil
}

func runBookingsBill(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	ctx := cmd.Context()

	bookingID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return err
	}

	session, err := openSession(ctx, printer)
	if err != nil {
		return err
	}
	if err := guardRoute(session, printer, bagabo.Route{Path: "/bookings"}); err != nil {
		return err
	}

	client, err := newAPIClient(session)
	if err != nil {
		return err
	}

	bill, err := client.BillByBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	printer.Header("Bill")
	printer.Print("Booking:   %d", bill.BookingID)
	printer.Print("Amount:    %.2f", bill.Amount)
	if bill.GeneratedAt != "" {
		printer.Print("Generated: %s", bill.GeneratedAt)
	}
	return nil
}

func runBookingsCancel(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	ctx := cmd.Context()

	bookingID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return err
	}

	session, err := openSession(ctx, printer)
	if err != nil {
		return err
	}
	if err := guardRoute(session, printer, bagabo.Route{Path: "/bookings"}); err != nil {
		return err
	}

	client, err := newAPIClient(session)
	if err != nil {
		return err
	}

	if err := client.CancelBooking(ctx, bookingID); err != nil {
		return err
	}

	printer.Success("booking %d cancelled", bookingID)
	return nil
}

func renderBookings(printer *output.Printer, title string, bookings []api.Booking) {
	printer.Header(title)

	table := output.NewTable([]string{"", "ID", "HOTEL", "ROOM", "CHECK-IN", "CHECK-OUT"})
	for _, b := range bookings {
		table.AddRow([]string{
			printer.StatusBadge(string(b.Status)),
			strconv.FormatInt(b.ID, 10),
			b.HotelName,
			strconv.FormatInt(b.RoomID, 10),
			b.CheckIn,
			b.CheckOut,
		})
	}
	table.Render()
}

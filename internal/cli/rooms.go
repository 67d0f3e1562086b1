package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	bagabo "github.com/bagabo/client-go"
	"github.com/bagabo/client-go/api"
	"github.com/bagabo/client-go/internal/output"
)

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "Browse and manage rooms",
	Long: `Browse rooms within a hotel and check availability for a stay.

Examples:
  bagabo rooms list --hotel 3
  bagabo rooms list --hotel 3 --available
  bagabo rooms check 7 --check-in 2026-09-01 --check-out 2026-09-04
  bagabo rooms create --hotel 3 --type DELUXE --price 120`,
}

var roomsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List rooms in a hotel",
	RunE:    runRoomsList,
}

var roomsCheckCmd = &cobra.Command{
	Use:   "check <room-id>",
	Short: "Check whether a room is free for a stay",
	Args:  cobra.ExactArgs(1),
	RunE:  runRoomsCheck,
}

var roomsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a room to a hotel (admin)",
	RunE:  runRoomsCreate,
}

var roomsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a room (admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runRoomsDelete,
}

func init() {
	rootCmd.AddCommand(roomsCmd)
	roomsCmd.AddCommand(roomsListCmd, roomsCheckCmd, roomsCreateCmd, roomsDeleteCmd)

	roomsListCmd.Flags().Int64("hotel", 0, "hotel id")
	roomsListCmd.Flags().Bool("available", false, "only rooms currently available")
	_ = roomsListCmd.MarkFlagRequired("hotel")

	roomsCheckCmd.Flags().String("check-in", "", "check-in date (YYYY-MM-DD)")
	roomsCheckCmd.Flags().String("check-out", "", "check-out date (YYYY-MM-DD)")
	_ = roomsCheckCmd.MarkFlagRequired("check-in")
	_ = roomsCheckCmd.MarkFlagRequired("check-out")

	roomsCreateCmd.Flags().Int64("hotel", 0, "hotel id")
	roomsCreateCmd.Flags().String("type", "", "room type")
	roomsCreateCmd.Flags().Float64("price", 0, "price per night")
	roomsCreateCmd.Flags().Int("capacity", 0, "guest capacity")
	_ = roomsCreateCmd.MarkFlagRequired("hotel")
	_ = roomsCreateCmd.MarkFlagRequired("type")
	_ = roomsCreateCmd.MarkFlagRequired("price")
}

func runRoomsList(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	ctx := cmd.Context()

	hotelID, _ := cmd.Flags().GetInt64("hotel")
	onlyAvailable, _ := cmd.Flags().GetBool("available")

	session, err := openSession(ctx, printer)
	if err != nil {
		return err
	}
	client, err := newAPIClient(session)
	if err != nil {
		return err
	}

	var rooms []api.Room
	if onlyAvailable {
		rooms, err = client.AvailableRoomsByHotel(ctx, hotelID)
	} else {
		rooms, err = client.RoomsByHotel(ctx, hotelID)
	}
	if err != nil {
		return err
	}

	table := output.NewTable([]string{"ID", "TYPE", "PRICE", "CAPACITY", "AVAILABLE"})
	for _, r := range rooms {
		available := ""
		if r.IsAvailable {
			available = "yes"
		}
		table.AddRow([]string{
			strconv.FormatInt(r.ID, 10),
			r.RoomType,
			strconv.FormatFloat(r.Price, 'f', 2, 64),
			strconv.Itoa(r.Capacity),
			available,
		})
	}
	table.Render()
	return nil
}

func runRoomsCheck(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	ctx := cmd.Context()

	roomID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return err
	}

	checkIn, checkOut, err := stayDates(cmd)
	if err != nil {
		return err
	}

	session, err := openSession(ctx, printer)
	if err != nil {
		return err
	}
	client, err := newAPIClient(session)
	if err != nil {
		return err
	}

	available, err := client.CheckAvailability(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return err
	}

	if available {
		printer.Success("room %d is free %s to %s", roomID,
			checkIn.Format(api.DateLayout), checkOut.Format(api.DateLayout))
	} else {
		printer.Warning("room %d is taken for those dates", roomID)
	}
	return nil
}

func runRoomsCreate(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	ctx := cmd.Context()

	session, err := openSession(ctx, printer)
	if err != nil {
		return err
	}
	if err := guardRoute(session, printer, bagabo.Route{Path: "/admin/rooms", AdminOnly: true}); err != nil {
		return err
	}

	client, err := newAPIClient(session)
	if err != nil {
		return err
	}

	hotelID, _ := cmd.Flags().GetInt64("hotel")
	roomType, _ := cmd.Flags().GetString("type")
	price, _ := cmd.Flags().GetFloat64("price")
	capacity, _ := cmd.Flags().GetInt("capacity")

	room, err := client.CreateRoom(ctx, api.RoomInput{
		HotelID:  hotelID,
		RoomType: roomType,
		Price:    price,
		Capacity: capacity,
	})
	if err != nil {
		return err
	}

	printer.Success("room %d added to hotel %d", room.ID, hotelID)
	return nil
}

func runRoomsDelete(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	ctx := cmd.Context()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return err
	}

	session, err := openSession(ctx, printer)
	if err != nil {
		return err
	}
	if err := guardRoute(session, printer, bagabo.Route{Path: "/admin/rooms", AdminOnly: true}); err != nil {
		return err
	}

	client, err := newAPIClient(session)
	if err != nil {
		return err
	}

	if err := client.DeleteRoom(ctx, id); err != nil {
		return err
	}

	printer.Success("room %d deleted", id)
	return nil
}

// stayDates parses the --check-in/--check-out flags.
func stayDates(cmd *cobra.Command) (time.Time, time.Time, error) {
	inRaw, _ := cmd.Flags().GetString("check-in")
	outRaw, _ := cmd.Flags().GetString("check-out")

	checkIn, err := time.Parse(api.DateLayout, inRaw)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid check-in date %q: use YYYY-MM-DD", inRaw)
	}
	checkOut, err := time.Parse(api.DateLayout, outRaw)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid check-out date %q: use YYYY-MM-DD", outRaw)
	}
	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, fmt.Errorf("check-out must be after check-in")
	}
	return checkIn, checkOut, nil
}

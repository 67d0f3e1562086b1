package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	bagabo "github.com/bagabo/client-go"
	"github.com/bagabo/client-go/api"
	"github.com/bagabo/client-go/internal/output"
)

var hotelsCmd = &cobra.Command{
	Use:   "hotels",
	Short: "Browse and manage hotels",
	Long: `Browse hotel listings. Create, update and delete are admin-only.

Examples:
  bagabo hotels list
  bagabo hotels show 3
  bagabo hotels create --name "Lakeside Palace" --location Kampala
  bagabo hotels delete 3`,
}

var hotelsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all hotels",
	RunE:    runHotelsList,
}

var hotelsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single hotel with its rooms",
	Args:  cobra.ExactArgs(1),
	RunE:  runHotelsShow,
}

var hotelsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "List a new hotel (admin)",
	RunE:  runHotelsCreate,
}

var hotelsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a hotel listing (admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runHotelsDelete,
}

func init() {
	rootCmd.AddCommand(hotelsCmd)
	hotelsCmd.AddCommand(hotelsListCmd, hotelsShowCmd, hotelsCreateCmd, hotelsDeleteCmd)

	hotelsCreateCmd.Flags().String("name", "", "hotel name")
	hotelsCreateCmd.Flags().String("location", "", "hotel location")
	hotelsCreateCmd.Flags().String("description", "", "hotel description")
	hotelsCreateCmd.Flags().String("image", "", "hotel image URL")
	_ = hotelsCreateCmd.MarkFlagRequired("name")
	_ = hotelsCreateCmd.MarkFlagRequired("location")
}

func runHotelsList(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	ctx := cmd.Context()

	session, err := openSession(ctx, printer)
	if err != nil {
		return err
	}
	client, err := newAPIClient(session)
	if err != nil {
		return err
	}

	hotels, err := client.ListHotels(ctx)
	if err != nil {
		return err
	}

	printer.Header("Hotels")
	table := output.NewTable([]string{"ID", "NAME", "LOCATION"})
	for _, h := range hotels {
		table.AddRow([]string{
			strconv.FormatInt(h.ID, 10),
			printer.Bold(h.Name),
			h.Location,
		})
	}
	table.Render()
	return nil
}

func runHotelsShow(cmd *cobra.Command, args []string) error {
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
	client, err := newAPIClient(session)
	if err != nil {
		return err
	}

	hotel, err := client.GetHotel(ctx, id)
	if err != nil {
		return err
	}

	printer.Header(hotel.Name)
	printer.Print("Location: %s", hotel.Location)
	if hotel.Description != "" {
		printer.Print("%s", hotel.Description)
	}

	rooms, err := client.RoomsByHotel(ctx, id)
	if err != nil {
		return err
	}

	table := output.NewTable([]string{"ID", "TYPE", "PRICE", "AVAILABLE"})
	for _, r := range rooms {
		available := ""
		if r.IsAvailable {
			available = "yes"
		}
		table.AddRow([]string{
			strconv.FormatInt(r.ID, 10),
			r.RoomType,
			strconv.FormatFloat(r.Price, 'f', 2, 64),
			available,
		})
	}
	table.Render()
	return nil
}

func runHotelsCreate(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	ctx := cmd.Context()

	session, err := openSession(ctx, printer)
	if err != nil {
		return err
	}
	if err := guardRoute(session, printer, bagabo.Route{Path: "/admin/hotels", AdminOnly: true}); err != nil {
		return err
	}

	client, err := newAPIClient(session)
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("name")
	location, _ := cmd.Flags().GetString("location")
	description, _ := cmd.Flags().GetString("description")
	image, _ := cmd.Flags().GetString("image")

	hotel, err := client.CreateHotel(ctx, api.HotelInput{
		Name:        name,
		Location:    location,
		Description: description,
		ImageURL:    image,
	})
	if err != nil {
		return err
	}

	printer.Success("hotel %d created: %s", hotel.ID, hotel.Name)
	return nil
}

func runHotelsDelete(cmd *cobra.Command, args []string) error {
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
	if err := guardRoute(session, printer, bagabo.Route{Path: "/admin/hotels", AdminOnly: true}); err != nil {
		return err
	}

	client, err := newAPIClient(session)
	if err != nil {
		return err
	}

	if err := client.DeleteHotel(ctx, id); err != nil {
		return err
	}

	printer.Success("hotel %d deleted", id)
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"numkit/internal/logging"
	"numkit/internal/reservation"
)

func newHotelCmd() *cobra.Command {
	hotelCmd := &cobra.Command{
		Use:   "hotel",
		Short: "Hotel reservation model",
	}
	hotelCmd.AddCommand(&cobra.Command{
		Use:   "demo",
		Short: "Walk through registering, booking and cancelling a reservation",
		Args:  exactArgs(0, "numkit hotel demo"),
		RunE:  runHotelDemo,
	})
	return hotelCmd
}

func runHotelDemo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	log := logging.Get(logging.CategoryReservation)

	reg := reservation.NewRegistry()
	hotel := &reservation.Hotel{ID: 1, Name: "Grand Hotel", City: "Bogota", Rooms: 2}
	customer := &reservation.Customer{ID: 1, Name: "Ana Perez", Email: "ana@example.com"}
	if err := reg.AddHotel(hotel); err != nil {
		return err
	}
	if err := reg.AddCustomer(customer); err != nil {
		return err
	}
	fmt.Fprintln(out, hotel.DisplayInfo())
	fmt.Fprintln(out, customer.DisplayInfo())

	res, err := reg.Reserve(customer.ID, hotel.ID)
	if err != nil {
		return err
	}
	log.Info("reserved", zap.String("reservation", res.ID), zap.Int("hotel", hotel.ID))
	free, err := reg.Available(hotel.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Reservation %s created, %d of %d rooms free\n", res.ID, free, hotel.Rooms)

	hotel.Modify("", "Medellin", 0)
	fmt.Fprintln(out, hotel.DisplayInfo())

	msg, err := reg.Cancel(res.ID)
	if err != nil {
		return err
	}
	log.Info("cancelled", zap.String("reservation", res.ID))
	fmt.Fprintln(out, msg)
	return nil
}

package reservation_test

import (
	"fmt"

	"github.com/shriyamishra-ctrl/Train-Reservation-system/reservation"
)

func ExampleSystem() {
	sys := reservation.New(reservation.WithTicketFunc(func() string { return "PNR1" }))
	_, _ = sys.AddTrain("12951", "Mumbai", "Delhi", 1, 1384)

	b, _ := sys.Book("12951", "Asha", 34, "P-100")
	fmt.Println("Seat allocated:", b.Seat)

	if _, err := sys.Book("12951", "Ravi", 29, "P-101"); err != nil {
		fmt.Println(err)
	}

	tk, _ := sys.Ticket("12951", "P-100")
	fmt.Print(tk)
	// Output:
	// Seat allocated: 1
	// train 12951: seat: no seats available
	// --- Ticket ---
	// Ticket Ref: PNR1
	// Train Number: 12951
	// From: Mumbai
	// To: Delhi
	// Passenger Name: Asha
	// Age: 34
	// ID: P-100
	// Allocated Seat: 1
	// ------------------
}

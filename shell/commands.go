package shell

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/shriyamishra-ctrl/Train-Reservation-system/account"
	"github.com/shriyamishra-ctrl/Train-Reservation-system/core"
	"github.com/shriyamishra-ctrl/Train-Reservation-system/reservation"
)

func (sh *Shell) signup() error {
	in, err := sh.prompts("Enter Username: ", "Enter Password: ")
	if err != nil {
		return err
	}

	switch err := sh.users.Signup(in[0], in[1]); {
	case errors.Is(err, account.ErrUserExists):
		sh.print("Username already exists! Please try a different username.\n")
	case errors.Is(err, account.ErrInvalidCredentials):
		sh.print("Username and password must be single words, and the username must not start with #.\n")
	case err != nil:
		return err
	default:
		sh.log.Info("signup", zap.String("user", in[0]))
		sh.print("Signup successful!\n")
		sh.save()
	}

	return nil
}

func (sh *Shell) login() error {
	in, err := sh.prompts("Enter Username: ", "Enter Password: ")
	if err != nil {
		return err
	}
	if err := sh.users.Login(in[0], in[1]); err != nil {
		sh.log.Info("login refused", zap.String("user", in[0]))
		sh.print("Invalid username or password!\n")
		return nil
	}

	sh.log.Info("login", zap.String("user", in[0]))
	sh.print("Login successful!\n")
	sh.user = in[0]
	sh.state = LoggedIn

	return nil
}

func (sh *Shell) addTrain() error {
	in, err := sh.prompts("Enter Train Number: ", "Enter Source Station: ", "Enter Destination Station: ")
	if err != nil {
		return err
	}
	seats, err := sh.promptInt("Enter Total Seats: ")
	if err != nil {
		return err
	}
	distance, err := sh.promptInt("Enter Route Distance in km (0 for default): ")
	if err != nil {
		return err
	}
	d := int64(distance)
	if d == 0 {
		d = sh.defaultDistance
	}

	if _, err := sh.sys.AddTrain(in[0], in[1], in[2], seats, d); err != nil {
		sh.report(err)
		return nil
	}
	sh.printf("Train %s added successfully.\n", in[0])
	sh.save()

	return nil
}

func (sh *Shell) book() error {
	in, err := sh.prompts("Enter Train Number: ", "Enter Passenger Name: ")
	if err != nil {
		return err
	}
	age, err := sh.promptInt("Enter Passenger Age: ")
	if err != nil {
		return err
	}
	id, err := sh.prompt("Enter ID Number: ")
	if err != nil {
		return err
	}

	b, err := sh.sys.Book(in[0], in[1], age, id)
	if err != nil {
		sh.report(err)
		return nil
	}
	sh.printf("Seat allocated: %d\n", b.Seat)
	sh.printf("Ticket Ref: %s\n", b.Ticket)

	return nil
}

func (sh *Shell) cancel() error {
	in, err := sh.prompts("Enter Train Number: ", "Enter ID Number of Passenger to Cancel: ")
	if err != nil {
		return err
	}

	b, err := sh.sys.Cancel(in[0], in[1])
	if err != nil {
		sh.report(err)
		return nil
	}
	sh.printf("Seat %d cancelled successfully.\n", b.Seat)

	return nil
}

func (sh *Shell) passengers() error {
	number, err := sh.prompt("Enter Train Number: ")
	if err != nil {
		return err
	}

	ps, err := sh.sys.Passengers(number)
	if err != nil {
		sh.report(err)
		return nil
	}
	if len(ps) == 0 {
		sh.print("No passengers booked.\n")
		return nil
	}
	for _, p := range ps {
		sh.printf("Name: %s, Age: %d, ID: %s, Seat: %d\n", p.Name, p.Age, p.PassengerID, p.Seat)
	}

	return nil
}

// routes prints the adjacency of every station, grouped by origin.
func (sh *Shell) routes() {
	last, seen := "", false
	for r := range sh.sys.Routes() {
		if !seen || r.From != last {
			sh.printf("From %s to:\n", r.From)
			last, seen = r.From, true
		}
		sh.printf("  Destination: %s Distance: %d km\n", r.To, r.Weight)
	}
	if !seen {
		sh.print("No routes yet.\n")
	}
}

func (sh *Shell) shortestRoute() error {
	in, err := sh.prompts("Enter Source Station: ", "Enter Destination Station: ")
	if err != nil {
		return err
	}

	p, err := sh.sys.ShortestRoute(in[0], in[1])
	if err != nil {
		sh.printf("No route found from %s to %s\n", in[0], in[1])
		return nil
	}
	sh.printf("Shortest path from %s to %s is %d km.\n", in[0], in[1], p.Distance)
	sh.printf("Path: %s\n", strings.Join(p.Stations, " -> "))

	return nil
}

func (sh *Shell) ticket() error {
	in, err := sh.prompts("Enter Train Number: ", "Enter Passenger ID to Print Ticket: ")
	if err != nil {
		return err
	}

	tk, err := sh.sys.Ticket(in[0], in[1])
	if err != nil {
		sh.report(err)
		return nil
	}
	sh.print("\n" + tk.String())

	return nil
}

func (sh *Shell) addRoute() error {
	in, err := sh.prompts("Enter First Station: ", "Enter Second Station: ")
	if err != nil {
		return err
	}
	distance, err := sh.promptInt("Enter Distance in km: ")
	if err != nil {
		return err
	}

	if err := sh.sys.AddRoute(in[0], in[1], int64(distance)); err != nil {
		sh.report(err)
		return nil
	}
	sh.printf("Route %s - %s (%d km) added.\n", in[0], in[1], distance)
	sh.save()

	return nil
}

func (sh *Shell) reachable() error {
	station, err := sh.prompt("Enter Station: ")
	if err != nil {
		return err
	}

	order, err := sh.sys.Reachable(station)
	if err != nil {
		sh.report(err)
		return nil
	}
	if len(order) == 1 {
		sh.printf("No stations reachable from %s.\n", station)
		return nil
	}
	sh.printf("Reachable from %s: %s\n", station, strings.Join(order[1:], ", "))

	return nil
}

// report prints the user-facing message for a reservation error.
func (sh *Shell) report(err error) {
	switch {
	case errors.Is(err, reservation.ErrTrainNotFound):
		sh.print("Train not found!\n")
	case errors.Is(err, reservation.ErrNotFound):
		sh.print("Passenger not found!\n")
	case errors.Is(err, reservation.ErrNoSeatsAvailable):
		sh.print("No seats available!\n")
	case errors.Is(err, reservation.ErrDuplicateID):
		sh.print("Passenger ID already booked on this train!\n")
	case errors.Is(err, reservation.ErrTrainExists):
		sh.print("Train already exists!\n")
	case errors.Is(err, reservation.ErrStationNotFound):
		sh.print("Station not found!\n")
	case errors.Is(err, reservation.ErrInvalidTrain),
		errors.Is(err, reservation.ErrInvalidPassenger),
		errors.Is(err, reservation.ErrInvalidStation),
		errors.Is(err, core.ErrBadWeight),
		errors.Is(err, core.ErrLoopNotAllowed),
		errors.Is(err, core.ErrEmptyVertexID):
		sh.printf("Invalid input: %v\n", err)
	default:
		sh.log.Warn("unexpected error", zap.Error(err))
		sh.printf("Error: %v\n", err)
	}
}

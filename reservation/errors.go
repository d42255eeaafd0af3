package reservation

import (
	"errors"

	"github.com/shriyamishra-ctrl/Train-Reservation-system/dijkstra"
	"github.com/shriyamishra-ctrl/Train-Reservation-system/ledger"
	"github.com/shriyamishra-ctrl/Train-Reservation-system/seat"
)

// Error kinds surfaced by System. All are recoverable: the caller reports
// them and carries on. Match with errors.Is.
var (
	ErrTrainNotFound    = errors.New("reservation: train not found")
	ErrStationNotFound  = errors.New("reservation: station not found")
	ErrInvalidStation   = errors.New("reservation: invalid station name")
	ErrTrainExists      = errors.New("reservation: train already exists")
	ErrInvalidTrain     = errors.New("reservation: invalid train")
	ErrInvalidPassenger = errors.New("reservation: invalid passenger")

	// Re-exported from the component packages.
	ErrNoSeatsAvailable = seat.ErrNoSeatsAvailable
	ErrNotFound         = ledger.ErrNotFound
	ErrDuplicateID      = ledger.ErrDuplicateID
	ErrNoRoute          = dijkstra.ErrNoRoute
)

// Package trainreservation is a terminal train reservation system.
//
// The module is organized bottom-up:
//
//	core/         thread-safe undirected route graph of stations
//	dijkstra/     minimum-distance paths over core.Graph
//	bfs/          fewest-legs traversal over core.Graph
//	seat/         per-train seat inventory, lowest free seat first
//	ledger/       per-train passenger bookings, newest first
//	reservation/  the System tying trains, seats, ledgers and routes together
//	account/      bcrypt-backed user registry
//	store/        flat text persistence of trains, routes and users
//	config/       environment and .env configuration
//	shell/        interactive menu state machine
//	cmd/trainres/ the binary
//
// Library packages return sentinel errors matched with errors.Is and never
// log; reservation, store and shell take an injected *zap.Logger.
package trainreservation

// Package shell runs the interactive reservation menu over an io.Reader and
// io.Writer.
//
// The shell is a small state machine:
//
//	LoggedOut --login--> LoggedIn --logout--> LoggedOut
//	    |                    |
//	    +-------exit---------+----> Exiting
//
// Input is read one whitespace-separated token at a time, so a name or
// station is a single word. End of input ends the session cleanly.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/shriyamishra-ctrl/Train-Reservation-system/account"
	"github.com/shriyamishra-ctrl/Train-Reservation-system/reservation"
	"github.com/shriyamishra-ctrl/Train-Reservation-system/store"
)

// State is the session state.
type State int

const (
	LoggedOut State = iota
	LoggedIn
	Exiting
)

func (s State) String() string {
	switch s {
	case LoggedOut:
		return "logged-out"
	case LoggedIn:
		return "logged-in"
	case Exiting:
		return "exiting"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// Saver persists a snapshot after every change worth keeping.
type Saver interface {
	Save(store.Snapshot) error
}

// errBadNumber marks a prompt answer that is not an integer.
var errBadNumber = errors.New("shell: not a number")

// Shell is one interactive session.
type Shell struct {
	sys   *reservation.System
	users *account.Registry
	in    *bufio.Scanner
	out   io.Writer

	// Filled by the reader goroutine started on the first Run. readErr is
	// set before tokens is closed.
	ctx     context.Context
	tokens  chan string
	readErr error

	saver           Saver
	log             *zap.Logger
	defaultDistance int64

	state State
	user  string
}

// Option configures a Shell.
type Option func(*Shell)

// WithSaver saves the system and accounts after each change.
func WithSaver(s Saver) Option {
	return func(sh *Shell) { sh.saver = s }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(sh *Shell) {
		if l != nil {
			sh.log = l
		}
	}
}

// WithDefaultDistance sets the route distance used when a new train is
// given a distance of 0.
func WithDefaultDistance(d int64) Option {
	return func(sh *Shell) {
		if d > 0 {
			sh.defaultDistance = d
		}
	}
}

// New returns a logged-out session reading commands from in.
func New(sys *reservation.System, users *account.Registry, in io.Reader, out io.Writer, opts ...Option) *Shell {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	sh := &Shell{
		sys:             sys,
		users:           users,
		in:              sc,
		out:             out,
		log:             zap.NewNop(),
		defaultDistance: 100,
		state:           LoggedOut,
	}
	for _, opt := range opts {
		opt(sh)
	}

	return sh
}

// State returns the current session state.
func (sh *Shell) State() State { return sh.state }

// User returns the logged-in username, or "" when logged out.
func (sh *Shell) User() string { return sh.user }

// Run shows menus and executes commands until the user exits, input ends or
// ctx is cancelled. End of input and exit return nil; cancellation returns
// ctx.Err(), even while a prompt is waiting for input.
//
// Input is consumed by a goroutine bound to the ctx of the first call, so a
// Shell stopped by cancellation cannot be run again.
func (sh *Shell) Run(ctx context.Context) error {
	if sh.tokens == nil {
		sh.ctx = ctx
		sh.tokens = make(chan string)
		go sh.read(ctx)
	}

	for sh.state != Exiting {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch sh.state {
		case LoggedOut:
			err = sh.loggedOut()
		case LoggedIn:
			err = sh.loggedIn()
		}
		if errors.Is(err, io.EOF) {
			sh.log.Debug("input closed", zap.Stringer("state", sh.state))
			return nil
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (sh *Shell) loggedOut() error {
	sh.print("\n--- Welcome to Train Reservation System ---\n" +
		"1. Signup\n" +
		"2. Login\n" +
		"3. Exit\n")
	choice, err := sh.prompt("Enter your choice: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return sh.signup()
	case "2":
		return sh.login()
	case "3":
		sh.exit()
	default:
		sh.print("Invalid choice. Please try again.\n")
	}

	return nil
}

func (sh *Shell) loggedIn() error {
	sh.print("\n--- Train Reservation System ---\n" +
		"1. Add Train\n" +
		"2. Book Train\n" +
		"3. Cancel Train Booking\n" +
		"4. Display Train Passengers\n" +
		"5. Display Train Routes\n" +
		"6. Find Shortest Route\n" +
		"7. Print Ticket\n" +
		"8. Logout\n" +
		"9. Exit\n" +
		"10. Add Route\n" +
		"11. Reachable Stations\n")
	choice, err := sh.prompt("Enter your choice: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		err = sh.addTrain()
	case "2":
		err = sh.book()
	case "3":
		err = sh.cancel()
	case "4":
		err = sh.passengers()
	case "5":
		sh.routes()
	case "6":
		err = sh.shortestRoute()
	case "7":
		err = sh.ticket()
	case "8":
		sh.logout()
	case "9":
		sh.exit()
	case "10":
		err = sh.addRoute()
	case "11":
		err = sh.reachable()
	default:
		sh.print("Invalid choice. Please try again.\n")
	}
	if errors.Is(err, errBadNumber) {
		sh.print("Invalid number.\n")
		return nil
	}

	return err
}

func (sh *Shell) logout() {
	sh.log.Info("logout", zap.String("user", sh.user))
	sh.print("Logging out...\n")
	sh.user = ""
	sh.state = LoggedOut
}

func (sh *Shell) exit() {
	sh.print("Exiting...\n")
	sh.state = Exiting
}

// read forwards input tokens until input ends or ctx is done. A Scan
// blocked on input outlives ctx; its token is dropped.
func (sh *Shell) read(ctx context.Context) {
	defer close(sh.tokens)
	for sh.in.Scan() {
		select {
		case sh.tokens <- sh.in.Text():
		case <-ctx.Done():
			return
		}
	}
	sh.readErr = sh.in.Err()
}

// prompt writes label and returns the next input token.
func (sh *Shell) prompt(label string) (string, error) {
	sh.print(label)
	select {
	case <-sh.ctx.Done():
		return "", sh.ctx.Err()
	case tok, ok := <-sh.tokens:
		if ok {
			return tok, nil
		}
	}
	if err := sh.ctx.Err(); err != nil {
		return "", err
	}
	if sh.readErr != nil {
		return "", fmt.Errorf("shell: read input: %w", sh.readErr)
	}

	return "", io.EOF
}

// prompts asks each label in turn and returns the answers.
func (sh *Shell) prompts(labels ...string) ([]string, error) {
	out := make([]string, len(labels))
	for i, l := range labels {
		v, err := sh.prompt(l)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

func (sh *Shell) promptInt(label string) (int, error) {
	v, err := sh.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errBadNumber, v)
	}

	return n, nil
}

func (sh *Shell) print(s string) {
	_, _ = io.WriteString(sh.out, s)
}

func (sh *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(sh.out, format, args...)
}

// save persists the current system and accounts if a Saver is configured.
// A failed save is reported but does not end the session.
func (sh *Shell) save() {
	if sh.saver == nil {
		return
	}
	snap := sh.sys.Snapshot()
	snap.Users = sh.users.Records()
	if err := sh.saver.Save(snap); err != nil {
		sh.log.Error("save failed", zap.Error(err))
		sh.printf("Warning: could not save data: %v\n", err)
	}
}

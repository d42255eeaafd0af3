// Package store reads and writes the flat, whitespace-delimited text records
// a reservation system persists between sessions:
//
//	trains.txt  number source destination seats [distance]
//	routes.txt  from to distance
//	users.txt   username password-hash
//
// One record per line. Blank lines and lines starting with '#' are ignored.
// The codecs are pure functions over io.Reader/io.Writer; Files binds them to
// a data directory.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// ErrMalformedRecord indicates a line that does not match its record layout.
var ErrMalformedRecord = errors.New("store: malformed record")

// TrainRecord is the persisted form of a train.
type TrainRecord struct {
	Number      string
	Source      string
	Destination string
	Seats       int
	Distance    int64 // route length between Source and Destination
}

// RouteRecord is a route added independently of any train.
type RouteRecord struct {
	From     string
	To       string
	Distance int64
}

// UserRecord is a registered account.
type UserRecord struct {
	Username string
	Hash     string
}

// Snapshot is everything persisted for one system.
type Snapshot struct {
	Trains []TrainRecord
	Routes []RouteRecord
	Users  []UserRecord
}

// DecodeTrains parses train records. A line with four fields has no distance;
// defaultDistance is used for it.
func DecodeTrains(r io.Reader, defaultDistance int64) ([]TrainRecord, error) {
	var out []TrainRecord
	err := scanRecords(r, func(line int, f []string) error {
		if len(f) != 4 && len(f) != 5 {
			return malformed(line, "want 4 or 5 fields, got %d", len(f))
		}
		seats, err := strconv.Atoi(f[3])
		if err != nil || seats <= 0 {
			return malformed(line, "bad seat count %q", f[3])
		}
		dist := defaultDistance
		if len(f) == 5 {
			if dist, err = parseDistance(f[4]); err != nil {
				return malformed(line, "bad distance %q", f[4])
			}
		}
		out = append(out, TrainRecord{Number: f[0], Source: f[1], Destination: f[2], Seats: seats, Distance: dist})
		return nil
	})

	return out, err
}

// EncodeTrains writes one line per train, always including the distance.
func EncodeTrains(w io.Writer, trains []TrainRecord) error {
	bw := bufio.NewWriter(w)
	for _, t := range trains {
		if err := checkFields(t.Number, t.Source, t.Destination); err != nil {
			return err
		}
		fmt.Fprintf(bw, "%s %s %s %d %d\n", t.Number, t.Source, t.Destination, t.Seats, t.Distance)
	}

	return bw.Flush()
}

// DecodeRoutes parses route records.
func DecodeRoutes(r io.Reader) ([]RouteRecord, error) {
	var out []RouteRecord
	err := scanRecords(r, func(line int, f []string) error {
		if len(f) != 3 {
			return malformed(line, "want 3 fields, got %d", len(f))
		}
		dist, err := parseDistance(f[2])
		if err != nil {
			return malformed(line, "bad distance %q", f[2])
		}
		out = append(out, RouteRecord{From: f[0], To: f[1], Distance: dist})
		return nil
	})

	return out, err
}

// EncodeRoutes writes one line per route.
func EncodeRoutes(w io.Writer, routes []RouteRecord) error {
	bw := bufio.NewWriter(w)
	for _, r := range routes {
		if err := checkFields(r.From, r.To); err != nil {
			return err
		}
		fmt.Fprintf(bw, "%s %s %d\n", r.From, r.To, r.Distance)
	}

	return bw.Flush()
}

// DecodeUsers parses user records.
func DecodeUsers(r io.Reader) ([]UserRecord, error) {
	var out []UserRecord
	err := scanRecords(r, func(line int, f []string) error {
		if len(f) != 2 {
			return malformed(line, "want 2 fields, got %d", len(f))
		}
		out = append(out, UserRecord{Username: f[0], Hash: f[1]})
		return nil
	})

	return out, err
}

// EncodeUsers writes one line per user.
func EncodeUsers(w io.Writer, users []UserRecord) error {
	bw := bufio.NewWriter(w)
	for _, u := range users {
		if err := checkFields(u.Username, u.Hash); err != nil {
			return err
		}
		fmt.Fprintf(bw, "%s %s\n", u.Username, u.Hash)
	}

	return bw.Flush()
}

// scanRecords calls fn with the 1-based line number and fields of every
// non-blank, non-comment line.
func scanRecords(r io.Reader, fn func(line int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := fn(line, strings.Fields(text)); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("store: read: %w", err)
	}

	return nil
}

// CheckField reports whether v can be stored as one field of a record: it
// must be non-empty, contain no whitespace and not start with '#'.
func CheckField(v string) error {
	if v == "" || strings.IndexFunc(v, unicode.IsSpace) >= 0 || strings.HasPrefix(v, "#") {
		return fmt.Errorf("%w: field %q cannot be stored", ErrMalformedRecord, v)
	}

	return nil
}

func checkFields(vals ...string) error {
	for _, v := range vals {
		if err := CheckField(v); err != nil {
			return err
		}
	}

	return nil
}

func parseDistance(s string) (int64, error) {
	d, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("non-positive distance %d", d)
	}

	return d, nil
}

func malformed(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedRecord, line, fmt.Sprintf(format, args...))
}

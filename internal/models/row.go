package models

// RawRow is one record of the facility-reservation export after header
// resolution. All fields are free text exactly as the source system emits
// them; nothing here is trusted until the pipeline normalizes it.
type RawRow struct {
	Location     string `json:"location"`
	Facility     string `json:"facility"`
	ReservedTime string `json:"reservedTime"`
	Reservee     string `json:"reservee"`
	Purpose      string `json:"purpose"`
}

// ParsedTimeRange holds a reservation interval in minutes since local
// midnight. EndMinute exceeds 1440 when the booking wraps past midnight; the
// invariant EndMinute > StartMinute always holds after wrap adjustment.
type ParsedTimeRange struct {
	StartMinute int
	EndMinute   int
}

// TokenKind discriminates the sub-resource shapes a facility label can imply.
type TokenKind int

// Token kinds
const (
	TokenHalfCourt   TokenKind = iota // one explicit half, e.g. "Half Court 1A"
	TokenCourtPair                    // both halves of one court, e.g. "Court 9-AB"
	TokenWholeGym                     // every half in one gym, south or north
	TokenFieldCourt                   // one numbered fieldhouse court, court mode only
	TokenTurfQuarter                  // one turf quarter, turf mode only
)

// FacilityToken is the symbolic identifier produced by classifying one
// facility label under the active mode, before resolution to concrete rooms.
// The zero fields of unused dimensions keep tokens comparable, so a token set
// can be a plain map key set.
type FacilityToken struct {
	Kind    TokenKind
	Court   int    // half/pair/fieldhouse tokens: court number
	Side    string // half tokens: "A" or "B"
	Gym     string // whole-gym tokens: GroupSouth or GroupNorth
	Quarter int    // turf tokens: 1..4
}

// TokenSet is a set of facility tokens. Booking groups union the sets from
// all of their rows before room resolution.
type TokenSet map[FacilityToken]struct{}

// Add inserts a token into the set.
func (ts TokenSet) Add(t FacilityToken) {
	ts[t] = struct{}{}
}

// Union merges another set into this one.
func (ts TokenSet) Union(other TokenSet) {
	for t := range other {
		ts[t] = struct{}{}
	}
}

// BookingGroup is the set of raw rows sharing one logical reservation
// identity. A single reservation is frequently split across several facility
// rows in the export (one per half-court), so their token sets must be
// unioned before rooms are resolved.
type BookingGroup struct {
	Reservee    string
	Purpose     string
	StartMinute int
	EndMinute   int
	Rows        []RawRow
	Tokens      TokenSet
}

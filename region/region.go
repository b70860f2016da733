// Package region defines the routing codes used to reach the API.
//
// Most endpoints are addressed by a Region ("na", "euw"). A few newer ones
// (champion mastery, current game) are addressed by a Platform ("NA1",
// "EUW1") and reach the host of the Region it maps to. The mapping is a fixed
// table; every Platform has an entry, so host construction cannot produce an
// undefined hostname.
package region

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errors returned by Parse and ParsePlatform.
var (
	ErrUnknownRegion   = errors.New("unknown region")
	ErrUnknownPlatform = errors.New("unknown platform")
)

// Region is a validated region code.
// Zero value is invalid and must not be used.
// Use Parse to create from user input, or the pre-parsed values.
type Region struct {
	code string
}

// Platform is a validated platform identifier.
// Zero value is invalid and must not be used.
type Platform struct {
	id string
}

// Compile-time interface compliance checks.
var (
	_ fmt.Stringer = Region{}
	_ fmt.Stringer = Platform{}
)

// Pre-parsed regions.
var (
	BR   = Region{code: "br"}
	EUNE = Region{code: "eune"}
	EUW  = Region{code: "euw"}
	JP   = Region{code: "jp"}
	KR   = Region{code: "kr"}
	LAN  = Region{code: "lan"}
	LAS  = Region{code: "las"}
	NA   = Region{code: "na"}
	OCE  = Region{code: "oce"}
	TR   = Region{code: "tr"}
	RU   = Region{code: "ru"}
	PBE  = Region{code: "pbe"}
)

// Pre-parsed platforms.
var (
	BR1  = Platform{id: "BR1"}
	EUN1 = Platform{id: "EUN1"}
	EUW1 = Platform{id: "EUW1"}
	JP1  = Platform{id: "JP1"}
	KR1  = Platform{id: "KR"}
	LA1  = Platform{id: "LA1"}
	LA2  = Platform{id: "LA2"}
	NA1  = Platform{id: "NA1"}
	OC1  = Platform{id: "OC1"}
	TR1  = Platform{id: "TR1"}
	RU1  = Platform{id: "RU"}
	PBE1 = Platform{id: "PBE1"}
)

// platformRegions maps each platform to the region whose host serves it.
var platformRegions = map[Platform]Region{
	BR1:  BR,
	EUN1: EUNE,
	EUW1: EUW,
	JP1:  JP,
	KR1:  KR,
	LA1:  LAN,
	LA2:  LAS,
	NA1:  NA,
	OC1:  OCE,
	TR1:  TR,
	RU1:  RU,
	PBE1: PBE,
}

// regionPlatforms is the inverse of platformRegions.
var regionPlatforms = func() map[Region]Platform {
	m := make(map[Region]Platform, len(platformRegions))
	for p, r := range platformRegions {
		m[r] = p
	}
	return m
}()

// Parse validates a region code. Matching is case-insensitive.
func Parse(s string) (Region, error) {
	r := Region{code: strings.ToLower(strings.TrimSpace(s))}
	if _, ok := regionPlatforms[r]; !ok {
		return Region{}, fmt.Errorf("%q (valid: %s): %w", s, strings.Join(Codes(), ", "), ErrUnknownRegion)
	}
	return r, nil
}

// MustParse parses a region code, panicking if invalid.
// Use only for compile-time constants and tests.
func MustParse(s string) Region {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// String returns the region code. Returns empty string for zero value.
func (r Region) String() string {
	return r.code
}

// IsZero reports whether r is the zero value.
func (r Region) IsZero() bool {
	return r.code == ""
}

// Platform returns the platform served by r.
func (r Region) Platform() (Platform, error) {
	p, ok := regionPlatforms[r]
	if !ok {
		return Platform{}, fmt.Errorf("%q: %w", r.code, ErrUnknownRegion)
	}
	return p, nil
}

// ParsePlatform validates a platform identifier. Matching is case-insensitive.
func ParsePlatform(s string) (Platform, error) {
	p := Platform{id: strings.ToUpper(strings.TrimSpace(s))}
	if _, ok := platformRegions[p]; !ok {
		return Platform{}, fmt.Errorf("%q: %w", s, ErrUnknownPlatform)
	}
	return p, nil
}

// String returns the platform identifier. Returns empty string for zero value.
func (p Platform) String() string {
	return p.id
}

// Region returns the region whose host serves p.
func (p Platform) Region() (Region, error) {
	r, ok := platformRegions[p]
	if !ok {
		return Region{}, fmt.Errorf("%q: %w", p.id, ErrUnknownPlatform)
	}
	return r, nil
}

// Codes returns all region codes, sorted.
func Codes() []string {
	codes := make([]string, 0, len(regionPlatforms))
	for r := range regionPlatforms {
		codes = append(codes, r.code)
	}
	sort.Strings(codes)
	return codes
}

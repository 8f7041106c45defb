package core

import (
	"errors"
	"strings"
	"time"
)

const (
	CategoryFood           Category = "Food"
	CategoryTransportation Category = "Transportation"
	CategoryHousing        Category = "Housing"
	CategoryEntertainment  Category = "Entertainment"
	CategoryUtilities      Category = "Utilities"
	CategoryHealthcare     Category = "Healthcare"
	CategoryEducation      Category = "Education"
	CategoryShopping       Category = "Shopping"
	CategoryOther          Category = "Other"
)

// DateTimeLayout is the persisted timestamp format (minute precision).
const DateTimeLayout = "2006-01-02 15:04"

// DateLayout is the day-only format used in report artifacts.
const DateLayout = "2006-01-02"

type (
	Category string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	Transaction struct {
		Date        Date
		Description string
		Category    Category
		Amount      Money
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidMonth     = errors.New("invalid month")
	ErrInvalidYear      = errors.New("invalid year")
	ErrEmptyDescription = errors.New("empty description")
)

// Categories is the closed category set, in canonical display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransportation,
	CategoryHousing,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryHealthcare,
	CategoryEducation,
	CategoryShopping,
	CategoryOther,
}

// ParseCategory maps free-form input onto the closed category set.
// Anything not in the set comes back as CategoryOther, never an error.
func ParseCategory(s string) Category {
	c := Category(strings.TrimSpace(s))
	if c.Valid() {
		return c
	}
	return CategoryOther
}

// Valid reports whether c is a member of the closed set.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// NewDate builds a Date at minute precision, dropping seconds and below.
func NewDate(t time.Time) Date {
	return Date{Time: t.Truncate(time.Minute)}
}

// Month returns the calendar month as an int (1-12).
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the calendar year.
func (d Date) Year() int {
	return d.Time.Year()
}

func (d Date) Validate() error {
	if d.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}

// Format renders the date in the persisted minute-precision layout.
func (d Date) Format() string {
	return d.Time.Format(DateTimeLayout)
}

// ParseDate parses a persisted minute-precision timestamp.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (m Money) Validate() error {
	if m.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (t Transaction) Validate() error {
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(t.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if !t.Category.Valid() {
		return errors.New("unknown category")
	}
	return t.Amount.Validate()
}

package domain

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// BirthdayLayout is the DD.MM.YYYY text format accepted for birthdays.
const BirthdayLayout = "02.01.2006"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Name identifies a Record within an AddressBook.
type Name struct {
	value string
}

// NewName validates that value is not empty or whitespace-only.
func NewName(value string) (Name, error) {
	if err := validate.Var(strings.TrimSpace(value), "required"); err != nil {
		return Name{}, NewValidationError("name", "Name is required")
	}
	return Name{value: value}, nil
}

func (n Name) String() string {
	return n.value
}

// Phone is a number of exactly ten decimal digits.
type Phone struct {
	value string
}

// NewPhone validates that value, after trimming, is ten decimal digits.
func NewPhone(value string) (Phone, error) {
	trimmed := strings.TrimSpace(value)
	if err := validate.Var(trimmed, "len=10,number"); err != nil {
		return Phone{}, NewValidationError("phone", "Phone number must be 10 digits")
	}
	return Phone{value: trimmed}, nil
}

func (p Phone) String() string {
	return p.value
}

// Birthday is a calendar date that recurs every year on its month and day.
// The original DD.MM.YYYY text is kept for display.
type Birthday struct {
	date time.Time
	text string
}

// ParseBirthday parses a DD.MM.YYYY date. Impossible dates such as
// 31.02.2020 are rejected; 29.02 is accepted in leap years.
func ParseBirthday(value string) (Birthday, error) {
	date, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		return Birthday{}, NewValidationError("birthday", "Invalid date format. Use DD.MM.YYYY")
	}
	return Birthday{date: date, text: value}, nil
}

// Date returns the parsed date at midnight UTC.
func (b Birthday) Date() time.Time {
	return b.date
}

// Month returns the month of the birthday.
func (b Birthday) Month() time.Month {
	return b.date.Month()
}

// Day returns the day of month of the birthday.
func (b Birthday) Day() int {
	return b.date.Day()
}

// IsLeapDay reports whether the birthday falls on February 29.
func (b Birthday) IsLeapDay() bool {
	return b.date.Month() == time.February && b.date.Day() == 29
}

func (b Birthday) String() string {
	return b.text
}

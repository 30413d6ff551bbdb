package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"addressbook/internal/domain"
)

// Hello handles "hello".
func (h *Handler) Hello(_ string, _ []string) (string, error) {
	return MsgHello, nil
}

// Add handles "add <name> <phone>".
func (h *Handler) Add(_ string, args []string) (string, error) {
	if err := validateArgs(args, argsAdd); err != nil {
		return "", err
	}

	name, phone := args[0], args[1]
	if err := h.service.AddContact(name, phone); err != nil {
		if errors.Is(err, domain.ErrContactExists) {
			return "", domain.NewValidationError("name", fmt.Sprintf(MsgContactExists, name))
		}
		return "", err
	}
	return MsgContactAdded, nil
}

// Change handles "change <name> <old phone> <new phone>".
func (h *Handler) Change(_ string, args []string) (string, error) {
	if err := validateArgs(args, argsChange); err != nil {
		return "", err
	}

	if err := h.service.ChangePhone(args[0], args[1], args[2]); err != nil {
		return "", err
	}
	return MsgContactUpdated, nil
}

// Phone handles "phone <name>".
func (h *Handler) Phone(_ string, args []string) (string, error) {
	if err := validateArgs(args, argsName); err != nil {
		return "", err
	}

	phones, err := h.service.Phones(args[0])
	if err != nil {
		return "", err
	}
	return joinPhones(phones), nil
}

// All handles "all".
func (h *Handler) All(_ string, _ []string) (string, error) {
	records := h.service.Contacts()
	if len(records) == 0 {
		return MsgNoContacts, nil
	}

	rows := lo.Map(records, func(r *domain.Record, _ int) []string {
		return []string{r.Name().String(), joinPhones(r.Phones()), birthdayText(r)}
	})
	return renderTable([]string{"Name", "Phone", "Birthday"}, rows), nil
}

// AddBirthday handles "add-birthday <name> <DD.MM.YYYY>".
func (h *Handler) AddBirthday(_ string, args []string) (string, error) {
	if err := validateArgs(args, argsAddBirthday); err != nil {
		return "", err
	}

	name := args[0]
	if err := h.service.SetBirthday(name, args[1]); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return "", domain.NewValidationError("birthday", MsgInvalidBirthday)
		}
		return "", err
	}
	return fmt.Sprintf(MsgBirthdayAdded, name), nil
}

// ShowBirthday handles "show-birthday <name>".
func (h *Handler) ShowBirthday(_ string, args []string) (string, error) {
	if err := validateArgs(args, argsName); err != nil {
		return "", err
	}

	name := args[0]
	bd, err := h.service.Birthday(name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(MsgBirthdayShow, name, bd), nil
}

// Birthdays handles "birthdays [days]".
func (h *Handler) Birthdays(_ string, args []string) (string, error) {
	if len(args) > maxBirthdaysArgs {
		return "", domain.NewValidationError("args", fmt.Sprintf(MsgTooManyArgs, "at most 1 argument: number of days"))
	}

	days := h.cfg.DefaultDays
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return "", domain.NewValidationError("days", MsgInvalidDays)
		}
		days = n
	}

	upcoming := h.service.UpcomingBirthdays(days)
	if len(upcoming) == 0 {
		return fmt.Sprintf(MsgNoUpcoming, days), nil
	}

	rows := lo.Map(upcoming, func(u domain.Upcoming, _ int) []string {
		return []string{
			u.Record.Name().String(),
			joinPhones(u.Record.Phones()),
			birthdayText(u.Record),
			u.CongratulationDay.Format(domain.BirthdayLayout),
		}
	})
	return renderTable([]string{"Name", "Phone", "Birthday", "Congratulation day"}, rows), nil
}

// Delete handles "delete <name>".
func (h *Handler) Delete(_ string, args []string) (string, error) {
	if err := validateArgs(args, argsName); err != nil {
		return "", err
	}

	if err := h.service.DeleteContact(args[0]); err != nil {
		return "", err
	}
	return MsgContactDeleted, nil
}

// RemovePhone handles "remove-phone <name> <phone>".
func (h *Handler) RemovePhone(_ string, args []string) (string, error) {
	if err := validateArgs(args, argsRemovePhone); err != nil {
		return "", err
	}

	if err := h.service.RemovePhone(args[0], args[1]); err != nil {
		return "", err
	}
	return MsgPhoneRemoved, nil
}

func joinPhones(phones []domain.Phone) string {
	return strings.Join(lo.Map(phones, func(p domain.Phone, _ int) string {
		return p.String()
	}), ", ")
}

func birthdayText(r *domain.Record) string {
	if bd, ok := r.Birthday(); ok {
		return bd.String()
	}
	return ""
}

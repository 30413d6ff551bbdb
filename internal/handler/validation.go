package handler

import (
	"errors"
	"fmt"

	"addressbook/internal/domain"
)

// argSpec describes the exact argument count a command takes.
type argSpec struct {
	count   int
	missing string
	takes   string
}

var (
	argsAdd          = argSpec{count: 2, missing: MsgMissingNamePhone, takes: "2 arguments: name and phone number"}
	argsChange       = argSpec{count: 3, missing: MsgMissingChange, takes: "3 arguments: name, old phone number and new phone number"}
	argsName         = argSpec{count: 1, missing: MsgMissingName, takes: "only 1 argument: name"}
	argsAddBirthday  = argSpec{count: 2, missing: MsgMissingNameBirth, takes: "2 arguments: name and birthday"}
	argsRemovePhone  = argSpec{count: 2, missing: MsgMissingRemovePhone, takes: "2 arguments: name and phone number"}
	maxBirthdaysArgs = 1
)

func validateArgs(args []string, spec argSpec) error {
	if len(args) < spec.count {
		return domain.NewValidationError("args", spec.missing)
	}
	if len(args) > spec.count {
		return domain.NewValidationError("args", fmt.Sprintf(MsgTooManyArgs, spec.takes))
	}
	return nil
}

// errorMessage converts a service error into the text shown to the user.
func errorMessage(err error) string {
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		switch notFound.Kind {
		case "contact":
			return fmt.Sprintf(MsgContactNotFound, notFound.Key)
		case "phone":
			return fmt.Sprintf(MsgPhoneNotFound, notFound.Key)
		case "birthday":
			return fmt.Sprintf(MsgBirthdayNotFound, notFound.Key)
		}
	}

	var invalid *domain.ValidationError
	if errors.As(err, &invalid) {
		return invalid.Reason
	}

	return err.Error()
}

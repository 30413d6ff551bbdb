package handler

import (
	"strings"

	"addressbook/internal/domain"
)

// ContactService defines the service interface.
// This allows testing handlers without real service implementation.
type ContactService interface {
	AddContact(name, phone string) error
	ChangePhone(name, oldPhone, newPhone string) error
	RemovePhone(name, phone string) error
	Phones(name string) ([]domain.Phone, error)
	Contacts() []*domain.Record
	DeleteContact(name string) error
	SetBirthday(name, birthday string) error
	Birthday(name string) (domain.Birthday, error)
	UpcomingBirthdays(days int) []domain.Upcoming
}

// CommandFunc executes one command with its arguments and returns the reply.
type CommandFunc func(cmd string, args []string) (string, error)

// Middleware wraps a CommandFunc.
type Middleware func(next CommandFunc) CommandFunc

// Config holds handler configuration.
type Config struct {
	// DefaultDays is the birthdays window used when no argument is given.
	DefaultDays int
}

// Handler dispatches command lines to the contact service.
type Handler struct {
	service  ContactService
	cfg      Config
	commands map[string]CommandFunc
}

// New creates a new Handler. Middlewares wrap every command, the first
// one being the outermost.
func New(service ContactService, cfg Config, middlewares ...Middleware) *Handler {
	if cfg.DefaultDays <= 0 {
		cfg.DefaultDays = domain.DefaultUpcomingDays
	}

	h := &Handler{
		service: service,
		cfg:     cfg,
	}

	h.commands = map[string]CommandFunc{
		CmdHello:        h.Hello,
		CmdAdd:          h.Add,
		CmdChange:       h.Change,
		CmdPhone:        h.Phone,
		CmdAll:          h.All,
		CmdAddBirthday:  h.AddBirthday,
		CmdShowBirthday: h.ShowBirthday,
		CmdBirthdays:    h.Birthdays,
		CmdDelete:       h.Delete,
		CmdRemovePhone:  h.RemovePhone,
	}

	for name, fn := range h.commands {
		for i := len(middlewares) - 1; i >= 0; i-- {
			fn = middlewares[i](fn)
		}
		h.commands[name] = fn
	}

	return h
}

// Handle executes one input line. It returns the text to show the user
// and whether the session should end. Command errors never end the session;
// they are turned into an "Error: ..." reply.
func (h *Handler) Handle(line string) (reply string, exit bool) {
	cmd, args := ParseInput(line)

	switch cmd {
	case "":
		return "", false
	case CmdClose, CmdExit:
		return MsgGoodbye, true
	}

	fn, ok := h.commands[cmd]
	if !ok {
		return MsgInvalidCommand, false
	}

	out, err := fn(cmd, args)
	if err != nil {
		return "Error: " + errorMessage(err), false
	}
	return out, false
}

// ParseInput splits a line into a lower-cased command and its arguments.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

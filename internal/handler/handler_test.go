package handler_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"addressbook/internal/domain"
	"addressbook/internal/handler"
	"addressbook/internal/repository"
	"addressbook/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newHandler(t *testing.T, middlewares ...handler.Middleware) *handler.Handler {
	t.Helper()
	clock := domain.NewMockClock(time.Date(2024, 5, 13, 10, 0, 0, 0, time.UTC)) // Monday
	svc := service.NewContactService(repository.NewMemoryRepository(), clock, zap.NewNop())
	require.NoError(t, svc.Load(context.Background()))
	return handler.New(svc, handler.Config{DefaultDays: 7}, middlewares...)
}

// run feeds lines to h and returns the reply to the last one.
func run(t *testing.T, h *handler.Handler, lines ...string) string {
	t.Helper()
	var reply string
	for _, line := range lines {
		reply, _ = h.Handle(line)
	}
	return reply
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		line     string
		wantCmd  string
		wantArgs []string
	}{
		{line: "add John 0123456789", wantCmd: "add", wantArgs: []string{"John", "0123456789"}},
		{line: "  ADD   John\t0123456789  ", wantCmd: "add", wantArgs: []string{"John", "0123456789"}},
		{line: "All", wantCmd: "all", wantArgs: []string{}},
		{line: "", wantCmd: "", wantArgs: nil},
		{line: "   ", wantCmd: "", wantArgs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd, args := handler.ParseInput(tt.line)
			assert.Equal(t, tt.wantCmd, cmd)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestHandle_SessionCommands(t *testing.T) {
	h := newHandler(t)

	reply, exit := h.Handle("hello")
	assert.Equal(t, "How can I help you?", reply)
	assert.False(t, exit)

	reply, exit = h.Handle("dance")
	assert.Equal(t, "Invalid command.", reply)
	assert.False(t, exit)

	reply, exit = h.Handle("")
	assert.Empty(t, reply)
	assert.False(t, exit)

	for _, cmd := range []string{"close", "exit", "EXIT"} {
		reply, exit = h.Handle(cmd)
		assert.Equal(t, "Good bye!", reply)
		assert.True(t, exit)
	}
}

func TestHandle_Add(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "success",
			lines: []string{"add John 0123456789"},
			want:  "Contact added.",
		},
		{
			name:  "missing phone",
			lines: []string{"add John"},
			want:  "Error: You did not provide a name or phone number.",
		},
		{
			name:  "too many arguments",
			lines: []string{"add John 0123456789 extra"},
			want:  "Error: You have specified more arguments than required.\nThe command takes 2 arguments: name and phone number.",
		},
		{
			name:  "duplicate name",
			lines: []string{"add John 0123456789", "add John 1111111111"},
			want:  "Error: Contact with name John already added.",
		},
		{
			name:  "invalid phone",
			lines: []string{"add John 12345"},
			want:  "Error: Phone number must be 10 digits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(t, newHandler(t), tt.lines...))
		})
	}
}

func TestHandle_ChangeAndPhone(t *testing.T) {
	h := newHandler(t)
	run(t, h, "add John 0123456789")

	assert.Equal(t, "0123456789", run(t, h, "phone John"))
	assert.Equal(t, "Contact updated.", run(t, h, "change John 0123456789 9876543210"))
	assert.Equal(t, "9876543210", run(t, h, "phone John"))

	assert.Equal(t, "Error: Phone 0000000000 not found", run(t, h, "change John 0000000000 1111111111"))
	assert.Equal(t, "Error: There is no contact with name Jane.", run(t, h, "change Jane 0123456789 1111111111"))
	assert.Equal(t, "Error: You did not provide a name, old phone number or new phone number.", run(t, h, "change John"))
	assert.Equal(t, "Error: Phone number must be 10 digits", run(t, h, "change John 9876543210 abc"))

	assert.Equal(t, "Error: There is no contact with name Jane.", run(t, h, "phone Jane"))
	assert.Equal(t, "Error: You did not provide a name.", run(t, h, "phone"))
	assert.Equal(t,
		"Error: You have specified more arguments than required.\nThe command takes only 1 argument: name.",
		run(t, h, "phone John Jane"))
}

func TestHandle_RemovePhoneAndDelete(t *testing.T) {
	h := newHandler(t)
	run(t, h, "add John 0123456789")

	assert.Equal(t, "Phone removed.", run(t, h, "remove-phone John 0123456789"))
	assert.Equal(t, "", run(t, h, "phone John"))

	assert.Equal(t, "Contact deleted.", run(t, h, "delete John"))
	assert.Equal(t, "Error: There is no contact with name John.", run(t, h, "delete John"))
	assert.Equal(t, "Address book is empty.", run(t, h, "all"))
}

func TestHandle_Birthday(t *testing.T) {
	h := newHandler(t)
	run(t, h, "add John 0123456789")

	assert.Equal(t, "Error: There is no birthday for John.", run(t, h, "show-birthday John"))
	assert.Equal(t, "Error: Invalid birthday format. Use DD.MM.YYYY.", run(t, h, "add-birthday John 1990-05-18"))
	assert.Equal(t, "Error: Invalid birthday format. Use DD.MM.YYYY.", run(t, h, "add-birthday John 31.02.2020"))
	assert.Equal(t, "Error: There is no contact with name Jane.", run(t, h, "add-birthday Jane 18.05.1990"))
	assert.Equal(t, "Error: You did not provide a name or birthday.", run(t, h, "add-birthday John"))

	assert.Equal(t, "Birthday for John added successfully.", run(t, h, "add-birthday John 18.05.1990"))
	assert.Equal(t, "Birthday of John is 18.05.1990.", run(t, h, "show-birthday John"))
}

func TestHandle_All(t *testing.T) {
	h := newHandler(t)
	assert.Equal(t, "Address book is empty.", run(t, h, "all"))

	run(t, h, "add John 0123456789", "add Jane 1111111111", "add-birthday Jane 01.01.1990")

	out := run(t, h, "all")
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "Phone")
	assert.Contains(t, out, "John")
	assert.Contains(t, out, "0123456789")
	assert.Contains(t, out, "01.01.1990")
	assert.Less(t, strings.Index(out, "John"), strings.Index(out, "Jane"), "rows follow insertion order")
}

func TestHandle_Birthdays(t *testing.T) {
	h := newHandler(t)
	run(t, h,
		"add John 0123456789", "add-birthday John 18.05.1990",
		"add Jane 1111111111", "add-birthday Jane 01.01.1990",
	)

	out := run(t, h, "birthdays")
	assert.Contains(t, out, "Congratulation day")
	assert.Contains(t, out, "John")
	assert.Contains(t, out, "20.05.2024")
	assert.NotContains(t, out, "Jane")

	out = run(t, h, "birthdays 365")
	assert.Contains(t, out, "Jane")
	assert.Contains(t, out, "01.01.2025")

	assert.Equal(t, "No upcoming birthdays within the next 3 days.", run(t, h, "birthdays 3"))
	assert.Equal(t, "Error: Please provide a valid number of days.", run(t, h, "birthdays soon"))
	assert.Equal(t, "Error: Please provide a valid number of days.", run(t, h, "birthdays -1"))
	assert.Equal(t,
		"Error: You have specified more arguments than required.\nThe command takes at most 1 argument: number of days.",
		run(t, h, "birthdays 1 2"))
}

func TestHandle_MiddlewareOrder(t *testing.T) {
	var calls []string
	trace := func(tag string) handler.Middleware {
		return func(next handler.CommandFunc) handler.CommandFunc {
			return func(cmd string, args []string) (string, error) {
				calls = append(calls, tag+":"+cmd)
				return next(cmd, args)
			}
		}
	}

	h := newHandler(t, trace("outer"), trace("inner"))

	reply, _ := h.Handle("hello")
	assert.Equal(t, "How can I help you?", reply)
	assert.Equal(t, []string{"outer:hello", "inner:hello"}, calls)
}

package handler

// Command names.
const (
	CmdHello        = "hello"
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdAll          = "all"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdDelete       = "delete"
	CmdRemovePhone  = "remove-phone"
	CmdClose        = "close"
	CmdExit         = "exit"
)

// User-facing replies.
const (
	MsgWelcome        = "Welcome to the assistant bot!"
	MsgGoodbye        = "Good bye!"
	MsgHello          = "How can I help you?"
	MsgInvalidCommand = "Invalid command."

	MsgContactAdded   = "Contact added."
	MsgContactUpdated = "Contact updated."
	MsgContactDeleted = "Contact deleted."
	MsgPhoneRemoved   = "Phone removed."
	MsgBirthdayAdded  = "Birthday for %s added successfully."
	MsgBirthdayShow   = "Birthday of %s is %s."
	MsgNoContacts     = "Address book is empty."
	MsgNoUpcoming     = "No upcoming birthdays within the next %d days."

	MsgContactExists      = "Contact with name %s already added."
	MsgContactNotFound    = "There is no contact with name %s."
	MsgPhoneNotFound      = "Phone %s not found"
	MsgBirthdayNotFound   = "There is no birthday for %s."
	MsgInvalidBirthday    = "Invalid birthday format. Use DD.MM.YYYY."
	MsgInvalidDays        = "Please provide a valid number of days."
	MsgTooManyArgs        = "You have specified more arguments than required.\nThe command takes %s."
	MsgMissingNamePhone   = "You did not provide a name or phone number."
	MsgMissingChange      = "You did not provide a name, old phone number or new phone number."
	MsgMissingName        = "You did not provide a name."
	MsgMissingNameBirth   = "You did not provide a name or birthday."
	MsgMissingRemovePhone = "You did not provide a name or phone number to remove."
)

// internal/sms/commands.go
package sms

import "strings"

// Command is a keyword a tradie can text back to the service number.
type Command string

const (
	CommandNone        Command = ""
	CommandLastCaller  Command = "send_last_caller_number"
	CommandSetBusy     Command = "set_status_busy"
	CommandSetBack     Command = "set_status_available"
	CommandSetOffHours Command = "set_after_hours"
	CommandSetOn       Command = "set_available"
)

var commands = map[string]Command{
	"CALL": CommandLastCaller,
	"BUSY": CommandSetBusy,
	"BACK": CommandSetBack,
	"OFF":  CommandSetOffHours,
	"ON":   CommandSetOn,
}

// ParseCommand maps an inbound SMS body to a command, case-insensitively.
// Unrecognized bodies return CommandNone.
func ParseCommand(body string) Command {
	return commands[strings.ToUpper(strings.TrimSpace(body))]
}

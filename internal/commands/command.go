// Package commands parses command-palette input into structured commands.
package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeExport   Type = "export"
	TypeImport   Type = "import"
	TypeTheme    Type = "theme"
	TypeLang     Type = "lang"
	TypeMode     Type = "mode"
	TypeDuration Type = "duration"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type ImportArgs struct {
	Path string
}

// ThemeArgs carries "light", "dark", or empty meaning toggle.
type ThemeArgs struct {
	Theme string
}

type LangArgs struct {
	Lang string
}

type ModeArgs struct {
	Mode string
}

type DurationArgs struct {
	Minutes int
}

type Command struct {
	Type     Type
	Raw      string
	Import   *ImportArgs
	Theme    *ThemeArgs
	Lang     *LangArgs
	Mode     *ModeArgs
	Duration *DurationArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeExport:
		return Command{Type: TypeExport, Raw: input}, nil
	case TypeImport:
		return parseImport(input, args)
	case TypeTheme:
		return parseTheme(input, args)
	case TypeLang:
		return parseLang(input, args)
	case TypeMode:
		return parseMode(input, args)
	case TypeDuration:
		return parseDuration(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseImport(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "import requires a file path"}
	}
	path := strings.TrimSpace(strings.Join(args, " "))
	return Command{Type: TypeImport, Raw: raw, Import: &ImportArgs{Path: path}}, nil
}

func parseTheme(raw string, args []string) (Command, error) {
	theme := ""
	if len(args) > 0 {
		theme = strings.ToLower(args[0])
		if theme != "light" && theme != "dark" {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown theme: %s", args[0])}
		}
	}
	return Command{Type: TypeTheme, Raw: raw, Theme: &ThemeArgs{Theme: theme}}, nil
}

func parseLang(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "lang requires de or en"}
	}
	lang := strings.ToLower(args[0])
	if lang != "de" && lang != "en" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown language: %s", args[0])}
	}
	return Command{Type: TypeLang, Raw: raw, Lang: &LangArgs{Lang: lang}}, nil
}

func parseMode(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "mode requires pomodoro or stopwatch"}
	}
	mode := strings.ToLower(args[0])
	if mode != "pomodoro" && mode != "stopwatch" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown mode: %s", args[0])}
	}
	return Command{Type: TypeMode, Raw: raw, Mode: &ModeArgs{Mode: mode}}, nil
}

func parseDuration(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "duration requires minutes"}
	}
	minutes, err := strconv.Atoi(args[0])
	if err != nil || minutes <= 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid minutes: %s", args[0])}
	}
	return Command{Type: TypeDuration, Raw: raw, Duration: &DurationArgs{Minutes: minutes}}, nil
}

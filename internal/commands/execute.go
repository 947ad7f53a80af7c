package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Export   func() (Result, error)
	Import   func(ImportArgs) (Result, error)
	Theme    func(ThemeArgs) (Result, error)
	Lang     func(LangArgs) (Result, error)
	Mode     func(ModeArgs) (Result, error)
	Duration func(DurationArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeExport:
		if handlers.Export == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "export handler not configured"}
		}
		return handlers.Export()
	case TypeImport:
		if handlers.Import == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "import handler not configured"}
		}
		return handlers.Import(*cmd.Import)
	case TypeTheme:
		if handlers.Theme == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "theme handler not configured"}
		}
		return handlers.Theme(*cmd.Theme)
	case TypeLang:
		if handlers.Lang == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "lang handler not configured"}
		}
		return handlers.Lang(*cmd.Lang)
	case TypeMode:
		if handlers.Mode == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "mode handler not configured"}
		}
		return handlers.Mode(*cmd.Mode)
	case TypeDuration:
		if handlers.Duration == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "duration handler not configured"}
		}
		return handlers.Duration(*cmd.Duration)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

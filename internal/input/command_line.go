package input

import (
	"time"

	"github.com/google/shlex"

	"github.com/aesop-editor/aesop/internal/state"
	"github.com/aesop-editor/aesop/internal/syntax"
)

// RunCommandLine parses and executes a Command-mode line per spec.md
// §4.6's recognized-command table, plus the supplemented `r!` and
// `syntax <lang>` verbs from teacher's input/command.go menu. Unknown
// or malformed lines produce an error message rather than a panic.
// None of these verbs mutate the rope directly (save/reload/quit/
// syntax-select), so Controller calls this outside the
// BeginCommand/EndCommand undo boundary Dispatch applies to Normal and
// Insert mode commands.
func RunCommandLine(s *state.EditorState, line string) {
	words, err := shlex.Split(line)
	if err != nil {
		state.SetMessage(s, state.MessageError, "malformed command: "+err.Error())
		return
	}
	if len(words) == 0 {
		return
	}

	now := time.Now()
	switch words[0] {
	case "q":
		if s.Buf.Modified() {
			state.SetMessage(s, state.MessageError, "No write since last change")
			return
		}
		s.Quit = true
	case "q!":
		s.Quit = true
	case "w":
		if err := saveBuffer(s, words, now); err != nil {
			state.SetMessage(s, state.MessageError, err.Error())
		}
	case "wq":
		if err := saveBuffer(s, words, now); err != nil {
			state.SetMessage(s, state.MessageError, err.Error())
			return
		}
		s.Quit = true
	case "e":
		if len(words) < 2 {
			state.SetMessage(s, state.MessageError, "e requires a path")
			return
		}
		if err := state.OpenBuffer(s, words[1], now); err != nil {
			state.SetMessage(s, state.MessageError, err.Error())
		}
	case "r!":
		if err := s.Buf.Reload(now); err != nil {
			state.SetMessage(s, state.MessageError, err.Error())
			return
		}
		state.SetMessage(s, state.MessageSuccess, "reloaded")
	case "syntax":
		if len(words) < 2 {
			state.SetMessage(s, state.MessageError, "syntax requires a language name")
			return
		}
		lang := syntax.Language(words[1])
		s.SyntaxLang = lang
		s.Provider = syntax.NewProvider(lang)
	default:
		state.SetMessage(s, state.MessageError, "unrecognized command: "+words[0])
	}
}

func saveBuffer(s *state.EditorState, words []string, now time.Time) error {
	if len(words) >= 2 {
		return s.Buf.SaveAs(words[1], now)
	}
	return s.Buf.Save(now)
}

package config

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Settings is the resolved set of process-wide options read from the
// flat key=value settings file.
type Settings struct {
	TabWidth              int
	ExpandTabs            bool
	LineNumbers           bool
	RelativeLineNumbers   bool
	SyntaxHighlighting    bool
	HighlightCurrentLine  bool
	SearchCaseSensitive   bool
	SearchWrapAround      bool
	AutoPairBrackets      bool
	AutoIndent            bool
	MaxUndoHistory        int
	MaxCursors            int
	ThemeName             string
}

// DefaultSettings returns the Settings used when no settings file is
// present, or before any key in it is applied.
func DefaultSettings() Settings {
	return Settings{
		TabWidth:            4,
		ExpandTabs:          true,
		LineNumbers:         true,
		SyntaxHighlighting:  true,
		SearchWrapAround:    true,
		MaxUndoHistory:      10,
		MaxCursors:          1,
		ThemeName:           "default",
	}
}

// ParseSettings reads a line-oriented key=value settings file: blank
// lines are ignored, lines beginning with "#" (after leading
// whitespace) are comments, and every other line must be "key=value".
// Unrecognized keys are ignored rather than rejected, so older config
// files keep working against a newer binary.
func ParseSettings(r io.Reader) (Settings, error) {
	s := DefaultSettings()
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return Settings{}, errors.Errorf("line %d: expected key=value, got %q", lineNum, line)
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if err := applySetting(&s, key, value); err != nil {
			return Settings{}, errors.Wrapf(err, "line %d", lineNum)
		}
	}
	if err := scanner.Err(); err != nil {
		return Settings{}, errors.Wrap(err, "bufio.Scanner")
	}
	return s, nil
}

func applySetting(s *Settings, key, value string) error {
	switch key {
	case "tab_width":
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(err, "tab_width")
		}
		s.TabWidth = n
	case "expand_tabs":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, "expand_tabs")
		}
		s.ExpandTabs = b
	case "line_numbers":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, "line_numbers")
		}
		s.LineNumbers = b
	case "relative_line_numbers":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, "relative_line_numbers")
		}
		s.RelativeLineNumbers = b
	case "syntax_highlighting":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, "syntax_highlighting")
		}
		s.SyntaxHighlighting = b
	case "highlight_current_line":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, "highlight_current_line")
		}
		s.HighlightCurrentLine = b
	case "search_case_sensitive":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, "search_case_sensitive")
		}
		s.SearchCaseSensitive = b
	case "search_wrap_around":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, "search_wrap_around")
		}
		s.SearchWrapAround = b
	case "auto_pair_brackets":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, "auto_pair_brackets")
		}
		s.AutoPairBrackets = b
	case "auto_indent":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, "auto_indent")
		}
		s.AutoIndent = b
	case "max_undo_history":
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(err, "max_undo_history")
		}
		s.MaxUndoHistory = n
	case "max_cursors":
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(err, "max_cursors")
		}
		s.MaxCursors = n
	case "theme_name":
		s.ThemeName = value
	default:
		// Unrecognized keys are ignored (see doc comment above).
	}
	return nil
}

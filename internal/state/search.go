package state

import "strings"

// StartSearch begins an incremental search in dir, clearing any
// previous query.
func StartSearch(s *EditorState, dir ReadDirection) {
	s.SearchDir = dir
	s.SearchQuery = ""
	s.SearchActive = true
	s.Mode = ModeCommand
}

// AppendRuneToSearchQuery appends r to the in-progress query.
func AppendRuneToSearchQuery(s *EditorState, r rune) {
	s.SearchQuery += string(r)
}

// DeleteRuneFromSearchQuery removes the last rune of the in-progress
// query.
func DeleteRuneFromSearchQuery(s *EditorState) {
	if s.SearchQuery == "" {
		return
	}
	runes := []rune(s.SearchQuery)
	s.SearchQuery = string(runes[:len(runes)-1])
}

// CompleteSearch ends the search, returning to Normal mode. If commit
// is false the cursor is left where the search began (abort).
func CompleteSearch(s *EditorState, commit bool) {
	s.Mode = ModeNormal
	s.SearchActive = false
	if !commit {
		s.SearchQuery = ""
	}
}

// FindNextMatch moves the primary cursor to the next (or, if reverse,
// previous) occurrence of SearchQuery, honoring
// Settings.SearchCaseSensitive and Settings.SearchWrapAround. Plain
// substring search only, per spec.md's "full regex engine" non-goal.
func FindNextMatch(s *EditorState, reverse bool) {
	if s.SearchQuery == "" {
		return
	}
	text := s.Buf.Rope().String()
	query := s.SearchQuery
	haystack := text
	if !s.Settings.SearchCaseSensitive {
		haystack = strings.ToLower(haystack)
		query = strings.ToLower(query)
	}

	pos := int(s.Selections.Primary().Head)
	var matchStart int
	var found bool
	if reverse {
		matchStart, found = lastIndexBefore(haystack, query, pos)
		if !found && s.Settings.SearchWrapAround {
			matchStart, found = lastIndexBefore(haystack, query, len(haystack))
		}
	} else {
		matchStart, found = firstIndexAfter(haystack, query, pos+1)
		if !found && s.Settings.SearchWrapAround {
			matchStart, found = firstIndexAfter(haystack, query, 0)
		}
	}
	if !found {
		SetMessage(s, MessageInfo, "pattern not found: "+s.SearchQuery)
		return
	}
	s.Selections.SetSingleCursor(uint64(matchStart))
}

func firstIndexAfter(haystack, query string, from int) (int, bool) {
	if from > len(haystack) {
		from = len(haystack)
	}
	idx := strings.Index(haystack[from:], query)
	if idx < 0 {
		return 0, false
	}
	return from + idx, true
}

func lastIndexBefore(haystack, query string, before int) (int, bool) {
	if before > len(haystack) {
		before = len(haystack)
	}
	idx := strings.LastIndex(haystack[:before], query)
	if idx < 0 {
		return 0, false
	}
	return idx, true
}

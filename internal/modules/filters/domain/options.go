package domain

import (
	programdomain "confmate/internal/modules/program/domain"
)

// Top-level option names. The option list always carries these three, in
// this order; Rooms and Times are rebuilt from each fetched collection while
// My Timeline keeps whatever state the user gave it.
const (
	OptionMyTimeline = "My Timeline"
	OptionRooms      = "Rooms"
	OptionTimes      = "Times"
)

type SubOption struct {
	Name     string
	Selected bool
}

type Option struct {
	Name     string
	Selected bool
	Options  []SubOption
}

func Defaults() []Option {
	return []Option{
		{Name: OptionMyTimeline},
		{Name: OptionRooms},
		{Name: OptionTimes},
	}
}

// Rebuild recomputes the Rooms and Times sub-option lists from the
// collection, in first-seen order while scanning sessions. Sub-options whose
// name survives the rebuild keep their selection; vanished names are
// silently dropped. Entries other than Rooms and Times pass through
// untouched.
func Rebuild(current []Option, c programdomain.Collection) []Option {
	var rooms, times []string
	seenRoom := map[string]bool{}
	seenTime := map[string]bool{}
	for _, session := range c.Sessions {
		if !seenRoom[session.Room] {
			seenRoom[session.Room] = true
			rooms = append(rooms, session.Room)
		}
		label := programdomain.FormatClock(session.StartsAt)
		if !seenTime[label] {
			seenTime[label] = true
			times = append(times, label)
		}
	}

	if len(current) == 0 {
		current = Defaults()
	}

	rebuilt := make([]Option, 0, len(current))
	for _, option := range current {
		switch option.Name {
		case OptionRooms:
			option.Options = rebuildSubOptions(rooms, option.Options)
		case OptionTimes:
			option.Options = rebuildSubOptions(times, option.Options)
		}
		rebuilt = append(rebuilt, option)
	}
	return rebuilt
}

func rebuildSubOptions(names []string, previous []SubOption) []SubOption {
	wasSelected := make(map[string]bool, len(previous))
	for _, sub := range previous {
		wasSelected[sub.Name] = sub.Selected
	}
	subs := make([]SubOption, 0, len(names))
	for _, name := range names {
		subs = append(subs, SubOption{Name: name, Selected: wasSelected[name]})
	}
	return subs
}

// Apply derives the filtered section list. When My Timeline is selected the
// candidate set is first restricted to bookmarked sessions; then, if any
// room or time sub-options are selected, each item must match every
// dimension that has selections. Sections left without items are dropped,
// never rendered as empty headers.
func Apply(sections []programdomain.Section, options []Option, bookmarked func(sessionID string) bool) []programdomain.Section {
	if optionSelected(options, OptionMyTimeline) && bookmarked != nil {
		sections = filterSections(sections, func(s programdomain.Session) bool {
			return bookmarked(s.ID)
		})
	}

	rooms := selectedNames(options, OptionRooms)
	times := selectedNames(options, OptionTimes)
	if len(rooms) == 0 && len(times) == 0 {
		return sections
	}

	return filterSections(sections, func(s programdomain.Session) bool {
		if len(rooms) > 0 && !containsName(rooms, s.Room) {
			return false
		}
		if len(times) > 0 && !containsName(times, programdomain.FormatClock(s.StartsAt)) {
			return false
		}
		return true
	})
}

// SelectedNames reports the currently selected sub-option names of a
// top-level option, in option order.
func SelectedNames(options []Option, optionName string) []string {
	return selectedNames(options, optionName)
}

// SetSelected flips a top-level option. It reports whether the option
// exists.
func SetSelected(options []Option, optionName string, selected bool) bool {
	for i := range options {
		if options[i].Name == optionName {
			options[i].Selected = selected
			return true
		}
	}
	return false
}

// SetSubSelected flips one sub-option of a top-level option. It reports
// whether both names were found.
func SetSubSelected(options []Option, optionName, subName string, selected bool) bool {
	for i := range options {
		if options[i].Name != optionName {
			continue
		}
		for j := range options[i].Options {
			if options[i].Options[j].Name == subName {
				options[i].Options[j].Selected = selected
				return true
			}
		}
	}
	return false
}

func filterSections(sections []programdomain.Section, keep func(programdomain.Session) bool) []programdomain.Section {
	filtered := make([]programdomain.Section, 0, len(sections))
	for _, section := range sections {
		var kept []programdomain.Session
		for _, session := range section.Sessions {
			if keep(session) {
				kept = append(kept, session)
			}
		}
		if len(kept) > 0 {
			filtered = append(filtered, programdomain.Section{
				Title:    section.Title,
				StartsAt: section.StartsAt,
				Sessions: kept,
			})
		}
	}
	return filtered
}

func optionSelected(options []Option, name string) bool {
	for _, option := range options {
		if option.Name == name {
			return option.Selected
		}
	}
	return false
}

func selectedNames(options []Option, optionName string) []string {
	var names []string
	for _, option := range options {
		if option.Name != optionName {
			continue
		}
		for _, sub := range option.Options {
			if sub.Selected {
				names = append(names, sub.Name)
			}
		}
	}
	return names
}

func containsName(names []string, name string) bool {
	for _, candidate := range names {
		if candidate == name {
			return true
		}
	}
	return false
}

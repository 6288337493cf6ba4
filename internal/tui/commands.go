package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	cmdInsert   = "Insert"
	cmdRemove   = "Remove"
	cmdContains = "Contains"
	cmdAdd      = "Add"
	cmdAddAt    = "Add at"
	cmdGet      = "Get"
	cmdRemoveAt = "Remove at"
	cmdAddAll   = "Add all"
	cmdReset    = "Reset"
	cmdExit     = "Exit"
)

var errMissingValue = errors.New("a value is required")

// execute applies one menu command to the containers and reports the outcome
// in the output pane. Failures are reported, never fatal.
func (m *model) execute(command, arg string) tea.Cmd {
	if command == cmdExit {
		return tea.Quit
	}

	line, err := m.apply(command, arg)
	if err != nil {
		m.log.Debug("command failed", "command", command, "arg", arg, "error", err)
		m.appendOutput(fmt.Sprintf("%s %s: error: %v", command, arg, err))
		return nil
	}
	m.log.Debug("command applied", "command", command, "arg", arg)
	m.appendOutput(line)
	return nil
}

func (m *model) apply(command, arg string) (string, error) {
	switch command {
	case cmdInsert, cmdRemove, cmdContains:
		return m.applySet(command, arg)
	case cmdAdd, cmdAddAt, cmdGet, cmdRemoveAt, cmdAddAll:
		return m.applyList(command, arg)
	case cmdReset:
		m.resetContainers()
		m.refresh(-1, -1)
		return "reset: " + m.setState() + "; " + m.listState(), nil
	}
	return "", fmt.Errorf("unknown command %q", command)
}

func (m *model) applySet(command, value string) (string, error) {
	if value == "" {
		return "", errMissingValue
	}

	bucket := m.set.Index(value)
	var line string
	switch command {
	case cmdInsert:
		m.set.Insert(value)
		line = fmt.Sprintf("insert %q (bucket %d) → %s", value, bucket, m.setState())
	case cmdRemove:
		removed := m.set.Remove(value)
		line = fmt.Sprintf("remove %q: %t → %s", value, removed, m.setState())
	case cmdContains:
		line = fmt.Sprintf("contains %q: %t", value, m.set.Contains(value))
	}
	m.refresh(bucket, -1)
	return line, nil
}

func (m *model) applyList(command, arg string) (string, error) {
	switch command {
	case cmdAdd:
		v, err := parseInt(arg)
		if err != nil {
			return "", err
		}
		m.list.Add(v)
		m.refresh(-1, m.list.Size()-1)
		return fmt.Sprintf("add %d → %s", v, m.listState()), nil

	case cmdAddAt:
		fields := strings.Fields(arg)
		if len(fields) != 2 {
			return "", errors.New("want an index and a number")
		}
		index, err := parseInt(fields[0])
		if err != nil {
			return "", err
		}
		v, err := parseInt(fields[1])
		if err != nil {
			return "", err
		}
		if err := m.list.AddAt(index, v); err != nil {
			return "", err
		}
		m.refresh(-1, index)
		return fmt.Sprintf("add %d at %d → %s", v, index, m.listState()), nil

	case cmdGet:
		index, err := parseInt(arg)
		if err != nil {
			return "", err
		}
		v, err := m.list.Get(index)
		if err != nil {
			return "", err
		}
		m.refresh(-1, index)
		return fmt.Sprintf("get %d: %d", index, v), nil

	case cmdRemoveAt:
		index, err := parseInt(arg)
		if err != nil {
			return "", err
		}
		v, err := m.list.Remove(index)
		if err != nil {
			return "", err
		}
		m.refresh(-1, -1)
		return fmt.Sprintf("remove at %d: %d → %s", index, v, m.listState()), nil

	case cmdAddAll:
		values, err := parseInts(arg)
		if err != nil {
			return "", err
		}
		m.list.AddAll(values...)
		m.refresh(-1, m.list.Size()-1)
		return fmt.Sprintf("add all %v → %s", values, m.listState()), nil
	}
	return "", fmt.Errorf("unknown command %q", command)
}

func (m *model) setState() string {
	return fmt.Sprintf("HashSet: %s, Size: %d", m.set, m.set.Size())
}

func (m *model) listState() string {
	return fmt.Sprintf("ArrayList: %s, Size: %d, Capacity: %d", m.list, m.list.Size(), m.list.Cap())
}

func parseInt(s string) (int, error) {
	if s == "" {
		return 0, errMissingValue
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}

func parseInts(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil, errMissingValue
	}
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := parseInt(f)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

package lights

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseMachine parses one line of the form
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
//
// The bracketed diagram is required and comes first; button groups follow;
// the braced joltage list is optional and must come last when present.
func ParseMachine(line string) (Machine, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Machine{}, fmt.Errorf("%w: empty line", ErrMalformedMachine)
	}

	var m Machine
	diagram, ok := enclosed(fields[0], '[', ']')
	if !ok {
		return Machine{}, fmt.Errorf("%w: expected [diagram], got %q", ErrMalformedMachine, fields[0])
	}
	if len(diagram) == 0 || len(diagram) > MaxLights {
		return Machine{}, fmt.Errorf("%w: diagram must have 1..%d lights, got %d",
			ErrMalformedMachine, MaxLights, len(diagram))
	}
	m.Lights = len(diagram)
	for i, r := range diagram {
		switch r {
		case '#':
			m.Target |= 1 << uint(i)
		case '.':
		default:
			return Machine{}, fmt.Errorf("%w: bad light %q in %q", ErrMalformedMachine, r, fields[0])
		}
	}

	rest := fields[1:]
	if n := len(rest); n > 0 {
		if body, ok := enclosed(rest[n-1], '{', '}'); ok {
			vals, err := parseInts(body)
			if err != nil {
				return Machine{}, fmt.Errorf("%w: joltage %q: %v", ErrMalformedMachine, rest[n-1], err)
			}
			if len(vals) != m.Lights {
				return Machine{}, fmt.Errorf("%w: %d joltage values for %d lights",
					ErrMalformedMachine, len(vals), m.Lights)
			}
			m.Joltage = vals
			rest = rest[:n-1]
		}
	}

	m.Buttons = make([]Mask, 0, len(rest))
	for _, f := range rest {
		body, ok := enclosed(f, '(', ')')
		if !ok {
			return Machine{}, fmt.Errorf("%w: expected (button), got %q", ErrMalformedMachine, f)
		}
		idx, err := parseInts(body)
		if err != nil {
			return Machine{}, fmt.Errorf("%w: button %q: %v", ErrMalformedMachine, f, err)
		}
		var b Mask
		for _, i := range idx {
			if i < 0 || i >= m.Lights {
				return Machine{}, fmt.Errorf("%w: button %q wires light %d of %d",
					ErrMalformedMachine, f, i, m.Lights)
			}
			b |= 1 << uint(i)
		}
		m.Buttons = append(m.Buttons, b)
	}
	return m, nil
}

// ParseMachines parses one machine per non-blank line.
func ParseMachines(lines []string) ([]Machine, error) {
	out := make([]Machine, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m, err := ParseMachine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// LightPresses returns the fewest presses that light the target diagram.
func (m Machine) LightPresses() (int, error) {
	res, err := FewestPresses(m.Target, m.Buttons)
	if err != nil {
		return 0, err
	}
	return res.Presses, nil
}

// JoltagePresses returns the fewest presses that drive every counter to its
// joltage target.
func (m Machine) JoltagePresses() (int, error) {
	if m.Joltage == nil {
		return 0, fmt.Errorf("%w: machine has no joltage targets", ErrBadJoltage)
	}
	return MinJoltagePresses(m.Buttons, m.Joltage)
}

// String renders the machine in its input form.
func (m Machine) String() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(m.Target.Format(m.Lights))
	b.WriteByte(']')
	for _, btn := range m.Buttons {
		b.WriteString(" (")
		b.WriteString(joinInts(btn.Indices()))
		b.WriteByte(')')
	}
	if m.Joltage != nil {
		b.WriteString(" {")
		b.WriteString(joinInts(m.Joltage))
		b.WriteByte('}')
	}
	return b.String()
}

func enclosed(s string, open, end byte) (string, bool) {
	if len(s) < 2 || s[0] != open || s[len(s)-1] != end {
		return "", false
	}
	return s[1 : len(s)-1], true
}

func parseInts(s string) ([]int, error) {
	if s == "" {
		return nil, errors.New("empty list")
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

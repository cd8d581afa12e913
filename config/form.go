package config

import "unicode"

// Form is the name and difficulty picker shown before the first round
type Form struct {
	name     []rune
	selected int
	done     bool
}

// NewForm starts with name (left empty for the default name) and the named preset selected
func NewForm(name, difficulty string) *Form {
	f := &Form{selected: DifficultyIndex(difficulty)}
	if name != DefaultPlayerName {
		for _, r := range name {
			f.Type(r)
		}
	}
	return f
}

// Type appends a printable rune, up to MaxNameLength
func (f *Form) Type(r rune) {
	if !unicode.IsPrint(r) || len(f.name) >= MaxNameLength {
		return
	}
	f.name = append(f.name, r)
}

func (f *Form) Backspace() {
	if len(f.name) > 0 {
		f.name = f.name[:len(f.name)-1]
	}
}

// Select moves the difficulty cursor by delta, clamped to the presets
func (f *Form) Select(delta int) {
	f.SelectIndex(f.selected + delta)
}

func (f *Form) SelectIndex(i int) {
	if i < 0 {
		i = 0
	}
	if n := len(Difficulties()); i >= n {
		i = n - 1
	}
	f.selected = i
}

func (f *Form) Selected() int { return f.selected }

func (f *Form) Submit() { f.done = true }

func (f *Form) Done() bool { return f.done }

func (f *Form) Name() string { return string(f.name) }

func (f *Form) Difficulty() Difficulty {
	return Difficulties()[f.selected]
}

// Session returns the chosen name and preset
func (f *Form) Session() Session {
	return Session{PlayerName: f.Name()}.WithDifficulty(f.Difficulty()).Normalize()
}

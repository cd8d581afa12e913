package config

import (
	"strings"
	"time"
)

// Difficulty is a named speed / growth preset offered on the welcome screen
type Difficulty struct {
	Name   string
	Speed  time.Duration
	Growth int
}

var (
	Easy   = Difficulty{Name: "easy", Speed: 200 * time.Millisecond, Growth: 1}
	Medium = Difficulty{Name: "medium", Speed: DefaultSpeed, Growth: DefaultGrowth}
	Hard   = Difficulty{Name: "hard", Speed: 100 * time.Millisecond, Growth: 3}
)

// Difficulties lists the presets in menu order
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty matches a preset by name, case-insensitively
func ParseDifficulty(name string) (Difficulty, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, d := range Difficulties() {
		if d.Name == name {
			return d, true
		}
	}
	return Difficulty{}, false
}

// DifficultyIndex returns the menu position of the named preset, or Medium's
func DifficultyIndex(name string) int {
	for i, d := range Difficulties() {
		if d.Name == name {
			return i
		}
	}
	return 1
}

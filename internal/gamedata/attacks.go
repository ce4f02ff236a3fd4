package gamedata

import "time"

// Attack kinds the player can perform.
const (
	AttackPunch   = "punch"
	AttackKick    = "kick"
	AttackSpecial = "special"
)

// AttackDef defines a player attack loaded from JSON.
//
// An attack deals Damage once, at activation, to every enemy strictly closer
// than Range on the arena floor. DurationMs is the active window during which
// no other attack can start.
type AttackDef struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Key        string  `json:"key"` // Keyboard binding
	Damage     int     `json:"damage"`
	Range      float64 `json:"range"`
	DurationMs int     `json:"durationMs"`
}

// Duration returns the attack window as a time.Duration.
func (a *AttackDef) Duration() time.Duration {
	return time.Duration(a.DurationMs) * time.Millisecond
}

// KeyRune returns the key binding as a rune.
func (a *AttackDef) KeyRune() rune {
	if len(a.Key) == 0 {
		return 0
	}
	return rune(a.Key[0])
}

// AttacksFile represents the structure of attacks.json.
type AttacksFile struct {
	Attacks []AttackDef `json:"attacks"`
}

// LoadAttacks loads attack definitions from the embedded attacks.json file.
func LoadAttacks() ([]AttackDef, error) {
	file, err := Load[AttacksFile]("attacks.json")
	if err != nil {
		return nil, err
	}
	return file.Attacks, nil
}

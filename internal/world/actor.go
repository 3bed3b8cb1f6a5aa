package world

// Actor is a live combatant (player or mob). Health values are integers and
// stay clamped to [0, MaxHealth].
type Actor struct {
	ID        string   `json:"id"`
	Tags      []string `json:"tags,omitempty"`
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	Health    int      `json:"health"`
	MaxHealth int      `json:"maxHealth"`
}

// ApplyDamage subtracts the given non-negative amount from the actor's health
// and reports whether the value changed.
func (a *Actor) ApplyDamage(amount int) bool {
	if a == nil || amount <= 0 {
		return false
	}
	if a.Health <= 0 {
		return false
	}
	next := a.Health - amount
	if next < 0 {
		next = 0
	}
	if next == a.Health {
		return false
	}
	a.Health = next
	return true
}

// Heal adds the given non-negative amount to the actor's health, clamped to
// MaxHealth, and reports whether the value changed.
func (a *Actor) Heal(amount int) bool {
	if a == nil || amount <= 0 {
		return false
	}
	next := a.Health + amount
	if a.MaxHealth > 0 && next > a.MaxHealth {
		next = a.MaxHealth
	}
	if next == a.Health {
		return false
	}
	a.Health = next
	return true
}

// HasTag reports whether the actor carries the given tag.
func (a *Actor) HasTag(tag string) bool {
	if a == nil {
		return false
	}
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

package entities

// Attack is a single attack line from a creature statblock.
type Attack struct {
	Name   string `json:"name" yaml:"name"`
	Bonus  int    `json:"bonus" yaml:"bonus"`
	Damage string `json:"damage" yaml:"damage"` // dice notation
}

// CreatureDefinition is a named statblock. The resolver only consumes
// Name and NumberAppearing; the rest rides along for presentation.
type CreatureDefinition struct {
	Name            string   `json:"name" yaml:"name"`
	Kind            string   `json:"kind,omitempty" yaml:"kind,omitempty"`
	HitDice         string   `json:"hit_dice,omitempty" yaml:"hit_dice,omitempty"`
	ArmourClass     int      `json:"armour_class,omitempty" yaml:"armour_class,omitempty"`
	Speed           int      `json:"speed,omitempty" yaml:"speed,omitempty"`
	Morale          int      `json:"morale,omitempty" yaml:"morale,omitempty"`
	Alignment       string   `json:"alignment,omitempty" yaml:"alignment,omitempty"`
	Attacks         []Attack `json:"attacks,omitempty" yaml:"attacks,omitempty"`
	NumberAppearing string   `json:"number_appearing,omitempty" yaml:"number_appearing,omitempty"` // dice notation
	XP              int      `json:"xp,omitempty" yaml:"xp,omitempty"`
	Description     string   `json:"description,omitempty" yaml:"description,omitempty"`
}

package dnd5e

import "strings"

// ArmorCategory groups armor by weight
type ArmorCategory int

// Armor categories
const (
	ArmorCategoryUnarmored ArmorCategory = iota
	ArmorCategoryLight
	ArmorCategoryMedium
	ArmorCategoryHeavy
)

func (c ArmorCategory) String() string {
	switch c {
	case ArmorCategoryLight:
		return "light"
	case ArmorCategoryMedium:
		return "medium"
	case ArmorCategoryHeavy:
		return "heavy"
	default:
		return "unarmored"
	}
}

// DexRule says how much of the Dexterity modifier an armor lets through
type DexRule int

// Dexterity rules
const (
	DexRuleFull DexRule = iota
	DexRuleCapped
	DexRuleNone
)

// DexCap is the largest Dexterity contribution under DexRuleCapped
const DexCap = 2

// ShieldBonus is added to AC when a shield is equipped
const ShieldBonus = 2

func (r DexRule) String() string {
	switch r {
	case DexRuleCapped:
		return "capped"
	case DexRuleNone:
		return "none"
	default:
		return "full"
	}
}

// Armor is one entry of the armor catalog
type Armor struct {
	Name     string
	Category ArmorCategory
	BaseAC   int
	DexRule  DexRule
}

// Armor names
const (
	ArmorUnarmored      = "Unarmored"
	ArmorPadded         = "Padded"
	ArmorLeather        = "Leather"
	ArmorStuddedLeather = "Studded Leather"
	ArmorHide           = "Hide"
	ArmorChainShirt     = "Chain Shirt"
	ArmorScaleMail      = "Scale Mail"
	ArmorBreastplate    = "Breastplate"
	ArmorHalfPlate      = "Half Plate"
	ArmorRingMail       = "Ring Mail"
	ArmorChainMail      = "Chain Mail"
	ArmorSplint         = "Splint"
	ArmorPlate          = "Plate"
)

var armorCatalog = []Armor{
	{Name: ArmorUnarmored, Category: ArmorCategoryUnarmored, BaseAC: 10, DexRule: DexRuleFull},
	{Name: ArmorPadded, Category: ArmorCategoryLight, BaseAC: 11, DexRule: DexRuleFull},
	{Name: ArmorLeather, Category: ArmorCategoryLight, BaseAC: 11, DexRule: DexRuleFull},
	{Name: ArmorStuddedLeather, Category: ArmorCategoryLight, BaseAC: 12, DexRule: DexRuleFull},
	{Name: ArmorHide, Category: ArmorCategoryMedium, BaseAC: 12, DexRule: DexRuleCapped},
	{Name: ArmorChainShirt, Category: ArmorCategoryMedium, BaseAC: 13, DexRule: DexRuleCapped},
	{Name: ArmorScaleMail, Category: ArmorCategoryMedium, BaseAC: 14, DexRule: DexRuleCapped},
	{Name: ArmorBreastplate, Category: ArmorCategoryMedium, BaseAC: 14, DexRule: DexRuleCapped},
	{Name: ArmorHalfPlate, Category: ArmorCategoryMedium, BaseAC: 15, DexRule: DexRuleCapped},
	{Name: ArmorRingMail, Category: ArmorCategoryHeavy, BaseAC: 14, DexRule: DexRuleNone},
	{Name: ArmorChainMail, Category: ArmorCategoryHeavy, BaseAC: 16, DexRule: DexRuleNone},
	{Name: ArmorSplint, Category: ArmorCategoryHeavy, BaseAC: 17, DexRule: DexRuleNone},
	{Name: ArmorPlate, Category: ArmorCategoryHeavy, BaseAC: 18, DexRule: DexRuleNone},
}

// ArmorCatalog returns a copy of the catalog in display order
func ArmorCatalog() []Armor {
	out := make([]Armor, len(armorCatalog))
	copy(out, armorCatalog)
	return out
}

// Unarmored is the fallback entry for unknown armor
func Unarmored() Armor {
	return armorCatalog[0]
}

// LookupArmor finds an entry by name, ignoring case and surrounding space
func LookupArmor(name string) (Armor, bool) {
	name = strings.TrimSpace(name)
	for _, a := range armorCatalog {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	return Armor{}, false
}

// ArmorSelection is what the character is wearing. When ManualOverride is set
// ManualAC is reported as-is and nothing is recomputed.
type ArmorSelection struct {
	Equipped       string
	Shield         bool
	MiscBonus      int
	ManualOverride bool
	ManualAC       int
}

// DefaultArmorSelection is no armor, no shield
func DefaultArmorSelection() ArmorSelection {
	return ArmorSelection{Equipped: ArmorUnarmored}
}

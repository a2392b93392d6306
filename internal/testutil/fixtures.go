package testutil

// Statblock text fixtures used across parser tests. They mirror the kind of
// text tesseract produces for a clean statblock photo.

// GoblinText is a small complete statblock.
const GoblinText = `Goblin
Small humanoid, neutral evil.
Armor Class 15 (leather armor, shield)
Hit Points 7 (2d6)
Speed 30 ft.
STR 8 (-1) DEX 14 (+2) CON 10 (+0)
INT 10 (+0) WIS 8 (-1) CHA 8 (-1)
Skills Stealth +6
Senses darkvision 60 ft., passive Perception 9
Languages Common, Goblin
Challenge 1/4 (50 XP)
TRAITS
Nimble Escape. The goblin can take the Disengage or Hide action as a bonus action.
ACTIONS
Scimitar. Melee Weapon Attack: +4 to hit, reach 5 ft., one target.
Shortbow. Ranged Weapon Attack: +4 to hit, range 80/320 ft., one target.`

// DragonText exercises saving throws, resistances, and legendary actions.
const DragonText = `Adult Red Dragon
Huge dragon, chaotic evil.
Armor Class 19 (natural armor)
Hit Points 256 (19d12+133)
Speed 40 ft., climb 40 ft., fly 80 ft.
STR 27 (+8) DEX 10 (+0) CON 25 (+7)
INT 16 (+3) WIS 13 (+1) CHA 21 (+5)
Saving Throws Dex +6, Con +13, Wis +7, Cha +11
Skills Perception +13, Stealth +6
Damage Immunities fire
Senses blindsight 60 ft., darkvision 120 ft., passive Perception 23
Languages Common, Draconic
Challenge 17 (18,000 XP)
TRAITS
Legendary Resistance (3/Day). If the dragon fails a saving throw, it can choose to succeed instead.
ACTIONS
Multiattack. The dragon can use its Frightful Presence.
Bite. Melee Weapon Attack: +14 to hit, reach 10 ft., one target.
LEGENDARY ACTIONS
Detect. The dragon makes a Wisdom (Perception) check.
Tail Attack. The dragon makes a tail attack.`

// PartialText is missing several required fields on purpose.
const PartialText = `Mystery Beast
Armor Class 13
ACTIONS
Slam. Melee Weapon Attack: +3 to hit.`

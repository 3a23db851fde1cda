package campaign

// CooldownTable tracks remaining turns per faction per stratagem. A missing
// entry means the stratagem is usable.
type CooldownTable map[string]map[string]int

func (c CooldownTable) Remaining(factionID, stratagemID string) int {
	return c[factionID][stratagemID]
}

func (c CooldownTable) Set(factionID, stratagemID string, turns int) {
	if turns <= 0 {
		return
	}
	if c[factionID] == nil {
		c[factionID] = map[string]int{}
	}
	c[factionID][stratagemID] = turns
}

// TickDown decrements every entry by one turn and drops entries that reach
// zero, so absence stays the "usable" representation.
func (c CooldownTable) TickDown() {
	for factionID, byStratagem := range c {
		for stratagemID, turns := range byStratagem {
			turns--
			if turns <= 0 {
				delete(byStratagem, stratagemID)
				continue
			}
			byStratagem[stratagemID] = turns
		}
		if len(byStratagem) == 0 {
			delete(c, factionID)
		}
	}
}
